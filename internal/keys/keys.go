// Package keys provides string constants for Bubble Tea v2 key press events
// and the keyboard-to-action mapping shared by the TUI and scripts.
//
// The constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// so they match the runtime values exactly ("esc", not "escape").
//
// Printable keys such as "7" or "+" are not listed; their String() is the
// typed text itself.
package keys

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/calccraft/internal/calc"
)

// Navigation keys
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()   // "down"
	Home   = tea.KeyPressMsg{Code: tea.KeyHome}.String()   // "home"
	End    = tea.KeyPressMsg{Code: tea.KeyEnd}.String()    // "end"
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"
)

// Action keys
var (
	Enter     = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                    // "enter"
	Tab       = tea.KeyPressMsg{Code: tea.KeyTab}.String()                      // "tab"
	ShiftTab  = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String() // "shift+tab"
	Space     = tea.KeyPressMsg{Code: tea.KeySpace}.String()                    // "space"
	Backspace = tea.KeyPressMsg{Code: tea.KeyBackspace}.String()                // "backspace"
	Delete    = tea.KeyPressMsg{Code: tea.KeyDelete}.String()                   // "delete"
	Escape    = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                   // "esc"
)

// Ctrl combinations
var (
	CtrlC = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String() // "ctrl+c"
	CtrlV = (tea.KeyPressMsg{Code: 'v', Mod: tea.ModCtrl}).String() // "ctrl+v"
	CtrlY = (tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}).String() // "ctrl+y"
	CtrlO = (tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}).String() // "ctrl+o"
	CtrlT = (tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}).String() // "ctrl+t"
	CtrlB = (tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl}).String() // "ctrl+b"
	CtrlK = (tea.KeyPressMsg{Code: 'k', Mod: tea.ModCtrl}).String() // "ctrl+k"
	CtrlL = (tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}).String() // "ctrl+l"
)

// ActionForKey maps a key string to the calculator action it triggers:
// digits, operators, '.', '(' and ')' append; '%' rewrites the trailing
// number; Backspace deletes; Delete, 'c' and 'C' clear; Enter and '='
// evaluate. Anything else reports false.
func ActionForKey(key string) (calc.Action, bool) {
	switch key {
	case Enter, "=":
		return calc.Eval, true
	case Backspace:
		return calc.Backspace, true
	case Delete, "c", "C":
		return calc.AllClear, true
	case "%":
		return calc.Percent, true
	}

	if len(key) != 1 {
		return calc.Action{}, false
	}
	r := rune(key[0])
	if r == ' ' || !calc.IsAllowed(r) {
		return calc.Action{}, false
	}
	return calc.AppendChar(r), true
}
