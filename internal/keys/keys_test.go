package keys

import (
	"testing"

	"github.com/zhubert/calccraft/internal/calc"
)

// TestKeyStringValues guards against Bubble Tea changing its key string
// format underneath the constants.
func TestKeyStringValues(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"Up", Up, "up"},
		{"Down", Down, "down"},
		{"Home", Home, "home"},
		{"End", End, "end"},
		{"PgUp", PgUp, "pgup"},
		{"PgDown", PgDown, "pgdown"},

		{"Enter", Enter, "enter"},
		{"Tab", Tab, "tab"},
		{"ShiftTab", ShiftTab, "shift+tab"},
		{"Space", Space, "space"},
		{"Backspace", Backspace, "backspace"},
		{"Delete", Delete, "delete"},
		{"Escape", Escape, "esc"},

		{"CtrlC", CtrlC, "ctrl+c"},
		{"CtrlV", CtrlV, "ctrl+v"},
		{"CtrlY", CtrlY, "ctrl+y"},
		{"CtrlO", CtrlO, "ctrl+o"},
		{"CtrlT", CtrlT, "ctrl+t"},
		{"CtrlB", CtrlB, "ctrl+b"},
		{"CtrlK", CtrlK, "ctrl+k"},
		{"CtrlL", CtrlL, "ctrl+l"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("keys.%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestActionForKey(t *testing.T) {
	tests := []struct {
		key    string
		want   calc.Action
		wantOK bool
	}{
		{"7", calc.AppendChar('7'), true},
		{"0", calc.AppendChar('0'), true},
		{"+", calc.AppendChar('+'), true},
		{"-", calc.AppendChar('-'), true},
		{"*", calc.AppendChar('*'), true},
		{"/", calc.AppendChar('/'), true},
		{".", calc.AppendChar('.'), true},
		{"(", calc.AppendChar('('), true},
		{")", calc.AppendChar(')'), true},
		{"%", calc.Percent, true},
		{"enter", calc.Eval, true},
		{"=", calc.Eval, true},
		{"backspace", calc.Backspace, true},
		{"delete", calc.AllClear, true},
		{"c", calc.AllClear, true},
		{"C", calc.AllClear, true},
		{"x", calc.Action{}, false},
		{" ", calc.Action{}, false},
		{"space", calc.Action{}, false},
		{"ctrl+c", calc.Action{}, false},
		{"", calc.Action{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := ActionForKey(tt.key)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ActionForKey(%q) = %v, %v; want %v, %v", tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
