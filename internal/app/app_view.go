package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/calccraft/internal/ui"
)

// keypadTopGap is the blank line between the display and the keypad
const keypadTopGap = 1

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current screen as a string. Tests and the
// view function share it.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.modal.IsVisible() {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.modal.View(m.width, m.height),
		)
	}

	m.updateFooterContext()

	ctx := ui.GetViewContext()
	panels := m.renderCalculator(ctx)
	if m.showHistory {
		panels = lipgloss.JoinHorizontal(lipgloss.Top, panels, m.history.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		panels,
		m.footer.View(),
	)
}

// renderCalculator draws the display with the keypad centered under it,
// padded to the full content height.
func (m *Model) renderCalculator(ctx *ui.ViewContext) string {
	parts := []string{m.display.View()}
	if m.keypadVisible() {
		x, _ := m.keypadOrigin()
		pad := strings.Repeat(" ", x)
		lines := strings.Split(m.keypad.View(), "\n")
		for i := range lines {
			lines[i] = pad + lines[i]
		}
		parts = append(parts, "", strings.Join(lines, "\n"))
	}

	return lipgloss.NewStyle().
		Width(ctx.CalculatorWidth).
		Height(ctx.ContentHeight).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// keypadVisible reports whether the keypad is enabled and fits.
func (m *Model) keypadVisible() bool {
	if !m.showKeypad {
		return false
	}
	ctx := ui.GetViewContext()
	return ctx.ContentHeight >= m.display.Height()+keypadTopGap+m.keypad.Height() &&
		ctx.CalculatorWidth >= m.keypad.Width()
}

// keypadOrigin returns the screen cell of the keypad's top-left corner.
func (m *Model) keypadOrigin() (x, y int) {
	ctx := ui.GetViewContext()
	x = max((ctx.CalculatorWidth-m.keypad.Width())/2, 0)
	y = ctx.HeaderHeight + m.display.Height() + keypadTopGap
	return x, y
}

// historyListOrigin returns the screen cell of the first history row:
// inside the left border and below the top border and title.
func (m *Model) historyListOrigin() (x, y int) {
	ctx := ui.GetViewContext()
	return ctx.CalculatorWidth + 1, ctx.HeaderHeight + 2
}

// updateFooterContext passes the state the footer needs to pick its hints.
func (m *Model) updateFooterContext() {
	m.footer.SetContext(m.focus == FocusHistory, m.showHistory, m.modal.IsVisible())
}

// updateHeader shows the active theme on the right of the header.
func (m *Model) updateHeader() {
	m.header.SetStatus(ui.CurrentTheme().Name)
}

// updateSizes recomputes the layout after a resize or a panel toggle.
func (m *Model) updateSizes() {
	m.updateHeader()
	if m.width == 0 || m.height == 0 {
		return
	}

	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height, m.showHistory)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.display.SetSize(ctx.CalculatorWidth)
	m.history.SetSize(ctx.HistoryWidth, ctx.ContentHeight)
}
