package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/calccraft/internal/app"
	"github.com/zhubert/calccraft/internal/config"
	"github.com/zhubert/calccraft/internal/logger"
	"github.com/zhubert/calccraft/internal/ui"
)

var (
	debugMode             bool
	quietMode             bool
	themeOverride         string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "calccraft",
	Short: "Keyboard and mouse driven calculator for the terminal",
	Long: `CalcCraft is an arithmetic calculator for the terminal.
Type an expression and the result previews as you go; press = or Enter to
commit it to the history. Supports + - * /, parentheses, decimals and %.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().StringVar(&themeOverride, "theme", "", "Theme for this run (see 'calccraft themes')")
}

func initLogging() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("calccraft %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("calccraft %s\n", version)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if themeOverride != "" && !ui.IsValidTheme(themeOverride) {
		return fmt.Errorf("unknown theme %q (see 'calccraft themes')", themeOverride)
	}

	defer logger.Close()

	m := app.New(cfg, version)
	// the override is not written back to the config
	if themeOverride != "" {
		ui.SetThemeByName(themeOverride)
	}
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
