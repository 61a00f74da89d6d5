package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

// At 120x40 the calculator column is 80 wide, so the 31-cell keypad starts
// at column 24, one line under the 7-line display.
const (
	testKeypadX = 24
	testKeypadY = 9
)

// keyCell returns the top-left screen cell of the keypad key at row, col.
func keyCell(row, col int) (int, int) {
	return testKeypadX + col*8, testKeypadY + row*2
}

func TestMouse_KeypadOrigin(t *testing.T) {
	setupTestEnv(t)
	m := testModelWithSize(testConfig(t), 120, 40)

	x, y := m.keypadOrigin()
	if x != testKeypadX || y != testKeypadY {
		t.Errorf("keypadOrigin() = (%d, %d), want (%d, %d)", x, y, testKeypadX, testKeypadY)
	}
}

func TestMouse_ClickKeypad(t *testing.T) {
	setupTestEnv(t)
	m := testModelWithSize(testConfig(t), 120, 40)

	clicks := [][2]int{
		{1, 0}, // 7
		{3, 3}, // +
		{3, 0}, // 1
		{4, 3}, // =
	}
	for _, c := range clicks {
		x, y := keyCell(c[0], c[1])
		m.Update(mouseClick(x+1, y))
	}

	if got := m.Session().Expression(); got != "8" {
		t.Errorf("Expression = %q, want 8", got)
	}
	if m.history.Len() != 1 {
		t.Errorf("history Len = %d, want 1", m.history.Len())
	}
	if k, ok := m.keypad.Pressed(); !ok || k.Label != "=" {
		t.Errorf("Pressed() = %q, %v; want =", k.Label, ok)
	}
}

func TestMouse_ClickTallEqualsLowerHalf(t *testing.T) {
	setupTestEnv(t)
	m := testModelWithSize(testConfig(t), 120, 40)
	typeText(m, "2*3")

	x, y := keyCell(5, 3)
	m.Update(mouseClick(x, y))

	if got := m.Session().Expression(); got != "6" {
		t.Errorf("Expression = %q, want 6", got)
	}
}

func TestMouse_ClickOutsideKeys(t *testing.T) {
	setupTestEnv(t)
	m := testModelWithSize(testConfig(t), 120, 40)

	m.Update(mouseClick(2, 2))
	m.Update(mouseClick(testKeypadX+7, testKeypadY+2)) // gap column

	if got := m.Session().Expression(); got != "" {
		t.Errorf("Expression = %q, want empty", got)
	}
}

func TestMouse_RightClickIgnored(t *testing.T) {
	setupTestEnv(t)
	m := testModelWithSize(testConfig(t), 120, 40)

	x, y := keyCell(1, 0)
	m.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseRight})

	if got := m.Session().Expression(); got != "" {
		t.Errorf("Expression = %q, want empty", got)
	}
}

func TestMouse_ClickHistory(t *testing.T) {
	setupTestEnv(t)
	m := testModelWithSize(testConfig(t), 120, 40)
	commit(m, "1+1", "5*5")
	sendKey(m, "c")

	_, listY := m.historyListOrigin()
	// second entry: each entry is two lines
	m.Update(mouseClick(90, listY+2))

	if m.Focus() != FocusHistory {
		t.Fatalf("Focus() = %v, want History", m.Focus())
	}
	if e, ok := m.history.Selected(); !ok || e.Result != "2" {
		t.Fatalf("Selected() = %+v, %v; want the 1+1 entry", e, ok)
	}

	// clicking the selected entry again reuses it
	m.Update(mouseClick(90, listY+3))
	if got := m.Session().Expression(); got != "2" {
		t.Errorf("Expression = %q, want 2", got)
	}
	if m.Focus() != FocusCalculator {
		t.Errorf("Focus() = %v, want Calculator", m.Focus())
	}
}

func TestMouse_ClickCalculatorTakesFocus(t *testing.T) {
	setupTestEnv(t)
	m := testModelWithSize(testConfig(t), 120, 40)
	sendKey(m, "tab")

	m.Update(mouseClick(5, 3))

	if m.Focus() != FocusCalculator {
		t.Errorf("Focus() = %v, want Calculator", m.Focus())
	}
}

func TestMouse_IgnoredUnderModal(t *testing.T) {
	setupTestEnv(t)
	m := testModelWithSize(testConfig(t), 120, 40)
	sendKey(m, "?")

	x, y := keyCell(1, 0)
	m.Update(mouseClick(x, y))

	if got := m.Session().Expression(); got != "" {
		t.Errorf("Expression = %q, want empty", got)
	}
}
