package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhubert/calccraft/internal/ui"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	RunE:  runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	names := ui.ThemeNames()
	display := ui.ThemeDisplayNames()
	for i, name := range names {
		marker := " "
		if name == ui.DefaultTheme {
			marker = "*"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %-10s %s\n", marker, name, display[i])
	}
	return nil
}
