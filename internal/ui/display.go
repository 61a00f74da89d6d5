package ui

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Display shows the expression buffer above its live preview
type Display struct {
	width      int
	expression string
	preview    string
	errText    string
	focused    bool
}

// NewDisplay creates an empty display
func NewDisplay() *Display {
	return &Display{}
}

// SetSize sets the outer width of the display panel
func (d *Display) SetSize(width int) {
	d.width = width
}

// SetFocused toggles the focused border
func (d *Display) SetFocused(focused bool) {
	d.focused = focused
}

// SetState updates the expression and its preview
func (d *Display) SetState(expression, preview string) {
	d.expression = expression
	d.preview = preview
}

// SetError shows a short reason in place of an empty preview
func (d *Display) SetError(text string) {
	d.errText = text
}

// Height returns the rendered height including borders
func (d *Display) Height() int {
	return DisplayHeight + BorderSize
}

// View renders the display
func (d *Display) View() string {
	inner := max(d.width-BorderSize-2, 1)

	expr := DisplayPlaceholder.Render("0")
	if d.expression != "" {
		// keep the tail visible; the cursor is always at the end
		shown, cut := tail(d.expression, inner)
		expr = DisplayExpressionStyle.Render(HighlightExpression(shown))
		if cut {
			expr = DisplayPlaceholder.Render("…") + expr
		}
	}

	var result string
	switch {
	case d.preview != "":
		result = DisplayResultStyle.Render(ansi.Truncate(d.preview, inner, "…"))
	case d.errText != "":
		result = StatusErrorStyle.Render(ansi.Truncate(d.errText, inner, "…"))
	default:
		result = DisplayPlaceholder.Render("—")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		DisplayLabelStyle.Render("EXPRESSION"),
		expr,
		"",
		DisplayLabelStyle.Render("RESULT"),
		result,
	)

	style := PanelStyle
	if d.focused {
		style = PanelFocusedStyle
	}
	return style.Width(d.width).Padding(0, 1).Render(body)
}

// tail returns the last cells of an ASCII expression that fit in n, leaving
// room for an ellipsis when it had to cut.
func tail(s string, n int) (string, bool) {
	if len(s) <= n {
		return s, false
	}
	return s[len(s)-max(n-1, 0):], true
}
