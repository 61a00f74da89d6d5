package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/calccraft/internal/logger"
)

// handleMouseClick presses keypad keys and selects history entries.
// Clicks are ignored while a modal is open.
func (m *Model) handleMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	if m.width == 0 || m.modal.IsVisible() || msg.Button != tea.MouseLeft {
		return nil
	}

	if m.showHistory && msg.X >= m.historyX() {
		return m.clickHistory(msg.X, msg.Y)
	}

	if m.focus != FocusCalculator {
		m.setFocus(FocusCalculator)
	}
	if !m.keypadVisible() {
		return nil
	}

	kx, ky := m.keypadOrigin()
	key, ok := m.keypad.KeyAt(msg.X-kx, msg.Y-ky)
	if !ok {
		return nil
	}
	logger.ComponentLogger("app").Debug("keypad click", "key", key.Label)
	return m.applyAction(key.Action)
}

// clickHistory focuses the history panel and selects the clicked entry.
// Clicking the already selected entry reuses it.
func (m *Model) clickHistory(x, y int) tea.Cmd {
	_, listY := m.historyListOrigin()
	entry, ok := m.history.EntryAt(y - listY)

	wasSelected := false
	if sel, has := m.history.Selected(); has && ok && m.focus == FocusHistory {
		wasSelected = sel.ID == entry.ID
	}

	m.setFocus(FocusHistory)
	if !ok {
		return nil
	}
	m.history.SelectByID(entry.ID)
	if wasSelected {
		return m.reuseSelected()
	}
	return nil
}

// handleMouseWheel scrolls the history list when the pointer is over it.
func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) tea.Cmd {
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return cmd
	}
	if m.width == 0 || !m.showHistory || msg.X < m.historyX() {
		return nil
	}
	return m.history.Update(msg)
}

// historyX is the first screen column of the history panel.
func (m *Model) historyX() int {
	x, _ := m.historyListOrigin()
	return x - 1
}
