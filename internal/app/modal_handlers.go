package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/calccraft/internal/keys"
	"github.com/zhubert/calccraft/internal/logger"
	"github.com/zhubert/calccraft/internal/ui"
)

// handleModalKey routes modal key events to the handler for the open
// modal's state type.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *ui.SettingsState:
		return m.handleSettingsModal(key, msg, s)
	case *ui.HelpState:
		return m.handleHelpModal(key, msg, s)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleSettingsModal handles key events for the Settings modal.
func (m *Model) handleSettingsModal(key string, msg tea.KeyPressMsg, state *ui.SettingsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		maxLen, err := state.GetMaxExpressionLength()
		if err != nil {
			m.modal.SetError("Max expression length " + err.Error())
			return m, nil
		}

		m.config.SetBellOnError(state.BellOnError)
		m.config.SetNotificationsEnabled(state.NotificationsEnabled)
		m.config.SetShowKeypad(state.ShowKeypad)
		m.config.SetShowHistory(state.ShowHistory)
		m.config.SetMaxExpressionLength(maxLen)
		if state.ThemeChanged() {
			m.config.SetTheme(state.GetSelectedTheme())
		}

		if err := m.config.Save(); err != nil {
			logger.ComponentLogger("app").Error("failed to save settings", "error", err)
			m.modal.SetError("Failed to save settings: " + err.Error())
			return m, nil
		}

		if state.ThemeChanged() {
			ui.SetThemeByName(state.GetSelectedTheme())
		}
		m.showKeypad = state.ShowKeypad
		m.showHistory = state.ShowHistory
		if !m.showHistory && m.focus == FocusHistory {
			m.setFocus(FocusCalculator)
		}
		m.setMaxLength(maxLen)
		m.updateSizes()
		m.modal.Hide()
		return m, m.ShowFlashSuccess("Settings saved")
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpModal handles key events for the help modal. Enter runs the
// highlighted shortcut.
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *ui.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, forward all keys to the list (Esc cancels filter, Enter applies)
	if state.IsFiltering() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	switch key {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		selected := state.SelectedShortcut()
		if selected == nil {
			return m, nil
		}
		s, ok := shortcutByDisplayKey(selected.Key)
		if !ok {
			return m, nil
		}
		m.modal.Hide()
		logger.ComponentLogger("app").Debug("running shortcut from help", "key", s.Key)
		result, cmd, _ := m.ExecuteShortcut(s.Key)
		return result, cmd
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}
