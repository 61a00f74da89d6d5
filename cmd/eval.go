package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/calccraft/internal/calc"
	cerrors "github.com/zhubert/calccraft/internal/errors"
	"github.com/zhubert/calccraft/internal/logger"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>...",
	Short: "Evaluate an expression and print the result",
	Long: `Joins the arguments, drops characters outside the calculator alphabet and
evaluates what is left, printing the result the way the TUI would.

Examples:
  calccraft eval '12+34*2'
  calccraft eval 2 '*' '(3+4)'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	expr := calc.Sanitize(strings.Join(args, " "))
	v, err := calc.Evaluate(expr)
	if err != nil {
		logger.ComponentLogger("cmd").Debug("eval failed", "expression", expr, "error", err)
		return fmt.Errorf("%s: %w", cerrors.GetKind(err), err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), calc.Format(v))
	return nil
}
