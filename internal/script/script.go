// Package script runs YAML action scripts against a calculator session.
//
// A script is a list of steps. Each step does exactly one thing:
//
//	name: percent
//	steps:
//	  - keys: "200+50"        # each rune goes through keys.ActionForKey
//	  - action: percent       # all-clear, backspace, percent, evaluate, clear-history
//	  - expect:
//	      expression: "200+0.5"
//	      preview: "200.5"
//	  - load: "3*(4+5)"      # replace the buffer, as a paste would
//	  - keys: "="
//	  - expect: {history_len: 1}
//
// The CLI's run command and the tests use scripts to drive the engine
// without a terminal.
package script

// ActionClearHistory is the one script action that is not a calc.Action.
const ActionClearHistory = "clear-history"

// Script is a named sequence of steps.
type Script struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Steps       []Step `yaml:"steps"`
}

// Step is one entry of a script. Exactly one field is set.
type Step struct {
	Keys   string       `yaml:"keys,omitempty"`
	Action string       `yaml:"action,omitempty"`
	Load   *string      `yaml:"load,omitempty"`
	Expect *Expectation `yaml:"expect,omitempty"`
}

// Expectation asserts on the session state. Nil fields are not checked.
type Expectation struct {
	Expression *string `yaml:"expression,omitempty"`
	Preview    *string `yaml:"preview,omitempty"`
	HistoryLen *int    `yaml:"history_len,omitempty"`
}

// kind names the populated field, or "" when none or several are set.
func (s Step) kind() string {
	var kinds []string
	if s.Keys != "" {
		kinds = append(kinds, "keys")
	}
	if s.Action != "" {
		kinds = append(kinds, "action")
	}
	if s.Load != nil {
		kinds = append(kinds, "load")
	}
	if s.Expect != nil {
		kinds = append(kinds, "expect")
	}
	if len(kinds) != 1 {
		return ""
	}
	return kinds[0]
}
