package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zhubert/calccraft/internal/calc"
	"github.com/zhubert/calccraft/internal/script"
)

var (
	runExample string
	runJSON    bool
)

var runCmd = &cobra.Command{
	Use:   "run [script.yaml]",
	Short: "Run a YAML action script against a fresh calculator",
	Long: `Loads an action script, applies its steps to a new session and prints the
final state. Any failed expectation stops the run with an error naming the step.

Examples:
  calccraft run session.yaml
  calccraft run --example percent --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	runCmd.Flags().StringVar(&runExample, "example", "", "Run a built-in script ("+strings.Join(script.ExampleNames(), ", ")+")")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "Print the result as JSON instead of YAML")
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	s, err := loadScript(args)
	if err != nil {
		return err
	}

	res, runErr := s.Run(calc.NewSession())
	if res != nil {
		if err := writeResult(cmd.OutOrStdout(), res, runJSON); err != nil {
			return err
		}
	}
	return runErr
}

// loadScript resolves the script from a path argument or --example.
func loadScript(args []string) (*script.Script, error) {
	switch {
	case runExample != "" && len(args) > 0:
		return nil, fmt.Errorf("give either a script path or --example, not both")
	case runExample != "":
		return script.Example(runExample)
	case len(args) == 1:
		return script.Load(args[0])
	default:
		return nil, fmt.Errorf("a script path or --example is required")
	}
}

func writeResult(w io.Writer, res *script.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return err
	}
	return enc.Close()
}
