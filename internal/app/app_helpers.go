package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/calccraft/internal/calc"
	"github.com/zhubert/calccraft/internal/clipboard"
	cerrors "github.com/zhubert/calccraft/internal/errors"
	"github.com/zhubert/calccraft/internal/logger"
	"github.com/zhubert/calccraft/internal/notification"
	"github.com/zhubert/calccraft/internal/ui"
)

// applyAction feeds one action into the session and refreshes the panels.
// A failed evaluate leaves the buffer alone and reports why.
func (m *Model) applyAction(a calc.Action) tea.Cmd {
	log := logger.ComponentLogger("app")

	m.session.Apply(a)
	m.keypad.SetPressed(a)
	m.syncState()

	if a.Kind != calc.ActionEvaluate {
		return nil
	}

	if err := m.session.LastError(); err != nil {
		kind := cerrors.GetKind(err).String()
		log.Debug("evaluate rejected", "expression", m.session.Expression(), "kind", kind)
		m.display.SetError(kind)
		if m.config.GetBellOnError() {
			if berr := notification.Bell(); berr != nil {
				log.Warn("bell failed", "error", berr)
			}
		}
		return m.ShowFlashError("Cannot evaluate: " + kind)
	}

	log.Info("committed", "result", m.session.Expression(), "history", m.session.History().Len())
	return nil
}

// syncState copies the session's state into the display and history panel.
func (m *Model) syncState() {
	st := m.session.State()
	m.display.SetState(st.Expression, st.Preview)
	m.display.SetError("")
	m.history.SetEntries(st.History)
}

// loadExpression replaces the buffer, keeping the keypad highlight off.
func (m *Model) loadExpression(expr string) {
	m.session.Load(expr)
	m.keypad.SetPressed(calc.Action{})
	m.syncState()
}

// copyResult puts the preview, or the buffer when there is none, on the
// clipboard.
func (m *Model) copyResult() tea.Cmd {
	text := m.session.Preview()
	if text == "" {
		text = m.session.Expression()
	}
	if text == "" {
		return m.ShowFlashWarning("Nothing to copy")
	}

	if err := clipboard.WriteText(text); err != nil {
		logger.ComponentLogger("app").Warn("copy failed", "error", err)
		return m.ShowFlashError("Clipboard unavailable")
	}

	if m.config.GetNotificationsEnabled() {
		if err := notification.ResultCopied(text); err != nil {
			logger.ComponentLogger("app").Warn("notification failed", "error", err)
		}
	}
	return m.ShowFlashSuccess(fmt.Sprintf("Copied %s", text))
}

// pasteFromClipboard appends the clipboard's text to the buffer.
func (m *Model) pasteFromClipboard() tea.Cmd {
	text, err := clipboard.ReadText()
	if err != nil {
		logger.ComponentLogger("app").Warn("paste failed", "error", err)
		return m.ShowFlashError("Clipboard unavailable")
	}
	return m.pasteText(text)
}

// pasteText appends text to the buffer through Session.Load so it is
// filtered and bounded like typed input.
func (m *Model) pasteText(text string) tea.Cmd {
	if text == "" {
		return m.ShowFlashWarning("Clipboard is empty")
	}
	if m.focus != FocusCalculator {
		m.setFocus(FocusCalculator)
	}

	before := m.session.Expression()
	m.loadExpression(before + text)
	if m.session.Expression() == before {
		return m.ShowFlashWarning("Nothing to paste")
	}
	return nil
}

// setFocus moves keyboard focus between the calculator and history.
func (m *Model) setFocus(f Focus) {
	if f == FocusHistory && !m.showHistory {
		f = FocusCalculator
	}
	m.focus = f
	m.display.SetFocused(f == FocusCalculator)
	m.history.SetFocused(f == FocusHistory)
}

// toggleFocus switches between the two panels
func (m *Model) toggleFocus() {
	if m.focus == FocusCalculator {
		m.setFocus(FocusHistory)
		return
	}
	m.setFocus(FocusCalculator)
}

// reuseSelected loads the selected history result into the buffer and
// returns focus to the calculator.
func (m *Model) reuseSelected() tea.Cmd {
	entry, ok := m.history.Selected()
	if !ok {
		return nil
	}
	m.loadExpression(entry.Result)
	m.setFocus(FocusCalculator)
	return m.ShowFlashInfo(fmt.Sprintf("Reusing %s", entry.Result))
}

// clearHistory empties the history log
func (m *Model) clearHistory() tea.Cmd {
	if m.session.History().Len() == 0 {
		return nil
	}
	m.session.ClearHistory()
	m.syncState()
	return m.ShowFlashInfo("History cleared")
}

// cycleTheme advances to the next theme and persists the choice.
func (m *Model) cycleTheme() tea.Cmd {
	next := ui.NextTheme(ui.CurrentThemeName())
	return m.applyTheme(string(next))
}

// applyTheme switches the palette and saves it to the config.
func (m *Model) applyTheme(name string) tea.Cmd {
	ui.SetThemeByName(name)
	m.config.SetTheme(string(ui.CurrentThemeName()))
	m.updateHeader()
	if err := m.config.Save(); err != nil {
		logger.ComponentLogger("app").Warn("failed to save theme", "error", err)
		return m.ShowFlashWarning("Theme applied but not saved")
	}
	return m.ShowFlashInfo("Theme: " + ui.CurrentTheme().Name)
}

// toggleHistory shows or hides the history panel and persists the choice.
func (m *Model) toggleHistory() tea.Cmd {
	m.showHistory = !m.showHistory
	m.config.SetShowHistory(m.showHistory)
	if !m.showHistory && m.focus == FocusHistory {
		m.setFocus(FocusCalculator)
	}
	m.updateSizes()
	return m.saveConfig()
}

// toggleKeypad shows or hides the keypad and persists the choice.
func (m *Model) toggleKeypad() tea.Cmd {
	m.showKeypad = !m.showKeypad
	m.config.SetShowKeypad(m.showKeypad)
	m.updateSizes()
	return m.saveConfig()
}

// saveConfig writes the config, flashing a warning when it cannot.
func (m *Model) saveConfig() tea.Cmd {
	if err := m.config.Save(); err != nil {
		logger.ComponentLogger("app").Warn("failed to save config", "error", err)
		return m.ShowFlashWarning("Settings not saved")
	}
	return nil
}

// setMaxLength rebuilds the session with a new length limit. History and
// the (possibly truncated) buffer carry over.
func (m *Model) setMaxLength(n int) {
	if n == m.session.MaxLength() {
		return
	}
	expr := m.session.Expression()
	m.session = calc.NewSession(calc.WithMaxLength(n), calc.WithHistory(m.session.History()))
	m.session.Load(expr)
	m.syncState()
}
