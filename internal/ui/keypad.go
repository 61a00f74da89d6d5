package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/calccraft/internal/calc"
)

type keyKind int

const (
	keyDigit keyKind = iota
	keyOperator
	keyAction
	keyEquals
)

// KeypadKey is one clickable button
type KeypadKey struct {
	Label  string
	Action calc.Action
	kind   keyKind
}

// keypadKeys and keypadGrid describe the button layout. A key index that
// repeats across columns spans them; one that repeats down a column is a
// tall key. -1 is an empty cell.
var keypadKeys = []KeypadKey{
	{"AC", calc.AllClear, keyAction},
	{"⌫", calc.Backspace, keyAction},
	{"/", calc.AppendChar('/'), keyOperator},
	{"7", calc.AppendChar('7'), keyDigit},
	{"8", calc.AppendChar('8'), keyDigit},
	{"9", calc.AppendChar('9'), keyDigit},
	{"*", calc.AppendChar('*'), keyOperator},
	{"4", calc.AppendChar('4'), keyDigit},
	{"5", calc.AppendChar('5'), keyDigit},
	{"6", calc.AppendChar('6'), keyDigit},
	{"-", calc.AppendChar('-'), keyOperator},
	{"1", calc.AppendChar('1'), keyDigit},
	{"2", calc.AppendChar('2'), keyDigit},
	{"3", calc.AppendChar('3'), keyDigit},
	{"+", calc.AppendChar('+'), keyOperator},
	{"%", calc.Percent, keyAction},
	{"0", calc.AppendChar('0'), keyDigit},
	{".", calc.AppendChar('.'), keyDigit},
	{"=", calc.Eval, keyEquals},
	{"(", calc.AppendChar('('), keyOperator},
	{")", calc.AppendChar(')'), keyOperator},
}

var keypadGrid = [][KeypadColumns]int{
	{0, 0, 1, 2},
	{3, 4, 5, 6},
	{7, 8, 9, 10},
	{11, 12, 13, 14},
	{15, 16, 17, 18},
	{19, 20, -1, 18},
}

// keypadRowStride is the number of lines per grid row: the key and a gap
const keypadRowStride = 2

// Keypad renders the on-screen buttons and maps clicks back to actions
type Keypad struct {
	pressed int
}

// NewKeypad creates a keypad with nothing highlighted
func NewKeypad() *Keypad {
	return &Keypad{pressed: -1}
}

// Width returns the rendered width of the keypad
func (k *Keypad) Width() int {
	return KeypadColumns*KeyWidth + (KeypadColumns-1)*KeyGap
}

// Height returns the rendered height of the keypad
func (k *Keypad) Height() int {
	return len(keypadGrid)*keypadRowStride - 1
}

// Keys returns the buttons in layout order
func (k *Keypad) Keys() []KeypadKey {
	return keypadKeys
}

// SetPressed highlights the button that triggers a, or clears the
// highlight if no button does.
func (k *Keypad) SetPressed(a calc.Action) {
	k.pressed = -1
	for i, key := range keypadKeys {
		if key.Action == a {
			k.pressed = i
			return
		}
	}
}

// Pressed returns the highlighted button
func (k *Keypad) Pressed() (KeypadKey, bool) {
	if k.pressed < 0 {
		return KeypadKey{}, false
	}
	return keypadKeys[k.pressed], true
}

// KeyAt returns the button under (x, y), relative to the keypad's top-left.
func (k *Keypad) KeyAt(x, y int) (KeypadKey, bool) {
	if x < 0 || y < 0 || x >= k.Width() || y >= k.Height() {
		return KeypadKey{}, false
	}

	row := y / keypadRowStride
	col := x / (KeyWidth + KeyGap)
	idx := keypadGrid[row][col]

	if y%keypadRowStride != 0 && keypadGrid[row+1][col] != idx {
		return KeypadKey{}, false
	}
	if x%(KeyWidth+KeyGap) >= KeyWidth && (col+1 >= KeypadColumns || keypadGrid[row][col+1] != idx) {
		return KeypadKey{}, false
	}
	if idx < 0 {
		return KeypadKey{}, false
	}
	return keypadKeys[idx], true
}

// View renders the keypad
func (k *Keypad) View() string {
	lines := make([]string, 0, k.Height())
	for r, row := range keypadGrid {
		lines = append(lines, k.renderRow(r, row))
		if r < len(keypadGrid)-1 {
			lines = append(lines, k.renderGap(row, keypadGrid[r+1]))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (k *Keypad) renderRow(r int, row [KeypadColumns]int) string {
	var b strings.Builder
	for c := 0; c < KeypadColumns; {
		idx := row[c]
		span := 1
		for c+span < KeypadColumns && row[c+span] == idx && idx >= 0 {
			span++
		}
		if c > 0 {
			b.WriteString(strings.Repeat(" ", KeyGap))
		}
		width := span*KeyWidth + (span-1)*KeyGap

		if idx < 0 {
			b.WriteString(strings.Repeat(" ", width))
		} else {
			label := keypadKeys[idx].Label
			// tall keys show their label on the top row only
			if r > 0 && keypadGrid[r-1][c] == idx {
				label = ""
			}
			b.WriteString(k.styleFor(idx).Render(center(label, width)))
		}
		c += span
	}
	return b.String()
}

func (k *Keypad) renderGap(above, below [KeypadColumns]int) string {
	var b strings.Builder
	for c := range KeypadColumns {
		if c > 0 {
			b.WriteString(strings.Repeat(" ", KeyGap))
		}
		if above[c] >= 0 && above[c] == below[c] {
			b.WriteString(k.styleFor(above[c]).Render(strings.Repeat(" ", KeyWidth)))
			continue
		}
		b.WriteString(strings.Repeat(" ", KeyWidth))
	}
	return b.String()
}

func (k *Keypad) styleFor(idx int) lipgloss.Style {
	if idx == k.pressed {
		return KeyPressedStyle
	}
	switch keypadKeys[idx].kind {
	case keyOperator:
		return KeyOperatorStyle
	case keyAction:
		return KeyActionStyle
	case keyEquals:
		return KeyEqualsStyle
	default:
		return KeyStyle
	}
}

// center pads label to width display cells.
func center(label string, width int) string {
	w := runewidth.StringWidth(label)
	if w >= width {
		return runewidth.Truncate(label, width, "")
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", width-w-left)
}
