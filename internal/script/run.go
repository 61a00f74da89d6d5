package script

import (
	"fmt"

	"github.com/zhubert/calccraft/internal/calc"
	cerrors "github.com/zhubert/calccraft/internal/errors"
	"github.com/zhubert/calccraft/internal/keys"
	"github.com/zhubert/calccraft/internal/logger"
)

const opRun cerrors.Op = "script.Run"

// Result is what a finished run reports.
type Result struct {
	Name    string     `json:"name" yaml:"name"`
	Steps   int        `json:"steps" yaml:"steps"`
	Actions int        `json:"actions" yaml:"actions"`
	Final   calc.State `json:"final" yaml:"final"`
}

// Run validates the script and applies its steps to sess in order. It stops
// at the first failed expectation, returning the partial result together
// with a KindInvalid error naming the step.
func (s *Script) Run(sess *calc.Session) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	log := logger.ComponentLogger("script")
	log.Info("running script", "name", s.Name, "steps", len(s.Steps))

	res := &Result{Name: s.Name}
	for i, step := range s.Steps {
		switch step.kind() {
		case "keys":
			for _, r := range step.Keys {
				a, _ := keys.ActionForKey(string(r))
				sess.Apply(a)
				res.Actions++
			}
		case "action":
			a, clearHistory, _ := resolveAction(step.Action)
			if clearHistory {
				sess.ClearHistory()
			} else {
				sess.Apply(a)
			}
			res.Actions++
		case "load":
			sess.Load(*step.Load)
			res.Actions++
		case "expect":
			if err := check(i, step.Expect, sess.State()); err != nil {
				res.Steps = i
				res.Final = sess.State()
				log.Warn("expectation failed", "step", i, "error", err)
				return res, err
			}
		}
		log.Debug("step applied", "index", i, "expression", sess.Expression(), "preview", sess.Preview())
	}

	res.Steps = len(s.Steps)
	res.Final = sess.State()
	return res, nil
}

func check(i int, e *Expectation, st calc.State) error {
	if e.Expression != nil && *e.Expression != st.Expression {
		return cerrors.E(opRun, cerrors.KindInvalid,
			fmt.Sprintf("step %d: expression = %q, want %q", i, st.Expression, *e.Expression))
	}
	if e.Preview != nil && *e.Preview != st.Preview {
		return cerrors.E(opRun, cerrors.KindInvalid,
			fmt.Sprintf("step %d: preview = %q, want %q", i, st.Preview, *e.Preview))
	}
	if e.HistoryLen != nil && *e.HistoryLen != len(st.History) {
		return cerrors.E(opRun, cerrors.KindInvalid,
			fmt.Sprintf("step %d: history has %d entries, want %d", i, len(st.History), *e.HistoryLen))
	}
	return nil
}
