package script

import (
	"fmt"
	"strings"

	"github.com/zhubert/calccraft/internal/calc"
	cerrors "github.com/zhubert/calccraft/internal/errors"
	"github.com/zhubert/calccraft/internal/keys"
)

// ValidationError describes a single validation problem.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Problems checks the script and returns every problem found.
func (s *Script) Problems() []ValidationError {
	var errs []ValidationError

	if len(s.Steps) == 0 {
		errs = append(errs, ValidationError{Field: "steps", Message: "script has no steps"})
	}

	for i, step := range s.Steps {
		field := fmt.Sprintf("steps[%d]", i)

		switch step.kind() {
		case "":
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "step must set exactly one of keys, action, load or expect",
			})
		case "keys":
			for _, r := range step.Keys {
				if _, ok := keys.ActionForKey(string(r)); !ok {
					errs = append(errs, ValidationError{
						Field:   field + ".keys",
						Message: fmt.Sprintf("key %q has no calculator action", r),
					})
					break
				}
			}
		case "action":
			if _, _, ok := resolveAction(step.Action); !ok {
				errs = append(errs, ValidationError{
					Field:   field + ".action",
					Message: fmt.Sprintf("unknown action %q (must be all-clear, backspace, percent, evaluate or clear-history)", step.Action),
				})
			}
		case "expect":
			e := step.Expect
			if e.Expression == nil && e.Preview == nil && e.HistoryLen == nil {
				errs = append(errs, ValidationError{Field: field + ".expect", Message: "expect checks nothing"})
			}
			if e.HistoryLen != nil && (*e.HistoryLen < 0 || *e.HistoryLen > calc.DefaultHistoryCapacity) {
				errs = append(errs, ValidationError{
					Field:   field + ".expect.history_len",
					Message: fmt.Sprintf("must be between 0 and %d", calc.DefaultHistoryCapacity),
				})
			}
		}
	}

	return errs
}

// Validate returns nil for a runnable script, or a KindInvalid error
// listing every problem.
func (s *Script) Validate() error {
	problems := s.Problems()
	if len(problems) == 0 {
		return nil
	}
	msgs := make([]string, len(problems))
	for i, p := range problems {
		msgs[i] = p.Error()
	}
	return cerrors.ScriptInvalid(strings.Join(msgs, "; "))
}

// resolveAction maps a step's action name to a session action, or reports
// clearHistory for the history-only action.
func resolveAction(name string) (a calc.Action, clearHistory, ok bool) {
	if strings.EqualFold(strings.TrimSpace(name), ActionClearHistory) {
		return calc.Action{}, true, true
	}
	a, ok = calc.ParseAction(name)
	return a, false, ok
}
