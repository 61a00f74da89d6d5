package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/calccraft/internal/config"
	"github.com/zhubert/calccraft/internal/keys"
	"github.com/zhubert/calccraft/internal/logger"
	"github.com/zhubert/calccraft/internal/ui"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for the shortcuts that are not plain
// calculator input.
type Shortcut struct {
	Key         string                              // The key binding (e.g., "tab", "ctrl+y")
	DisplayKey  string                              // Display name in help; defaults to Key
	Description string                              // Human-readable description
	Category    string                              // Section for help modal grouping
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional guard
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryCalculator = "Calculator"
	CategoryHistory    = "History"
	CategoryClipboard  = "Clipboard"
	CategoryView       = "View"
	CategoryGeneral    = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryCalculator,
	CategoryHistory,
	CategoryClipboard,
	CategoryView,
	CategoryGeneral,
}

func historyFocused(m *Model) bool { return m.focus == FocusHistory }

// ShortcutRegistry is the central registry of keyboard shortcuts. Entries
// appear in the help modal and can be run from it.
var ShortcutRegistry = []Shortcut{
	// History
	{
		Key:         keys.Tab,
		DisplayKey:  "Tab",
		Description: "Switch between calculator and history",
		Category:    CategoryHistory,
		Handler:     shortcutToggleFocus,
		Condition:   func(m *Model) bool { return m.showHistory },
	},
	{
		Key:         keys.ShiftTab,
		DisplayKey:  "Shift+Tab",
		Description: "Switch panels",
		Category:    CategoryHistory,
		Handler:     shortcutToggleFocus,
		Condition:   func(m *Model) bool { return m.showHistory },
	},
	{
		Key:         keys.Up,
		DisplayKey:  "↑",
		Description: "Select newer entry",
		Category:    CategoryHistory,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { m.history.MoveSelection(-1); return m, nil },
		Condition:   historyFocused,
	},
	{
		Key:         keys.Down,
		DisplayKey:  "↓",
		Description: "Select older entry",
		Category:    CategoryHistory,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { m.history.MoveSelection(1); return m, nil },
		Condition:   historyFocused,
	},
	{
		Key:         keys.PgUp,
		DisplayKey:  "PgUp",
		Description: "Page toward newer entries",
		Category:    CategoryHistory,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { m.history.MoveSelection(-m.history.PageSize()); return m, nil },
		Condition:   historyFocused,
	},
	{
		Key:         keys.PgDown,
		DisplayKey:  "PgDn",
		Description: "Page toward older entries",
		Category:    CategoryHistory,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { m.history.MoveSelection(m.history.PageSize()); return m, nil },
		Condition:   historyFocused,
	},
	{
		Key:         keys.Home,
		DisplayKey:  "Home",
		Description: "Jump to newest entry",
		Category:    CategoryHistory,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { m.history.MoveSelection(-m.history.Len()); return m, nil },
		Condition:   historyFocused,
	},
	{
		Key:         keys.End,
		DisplayKey:  "End",
		Description: "Jump to oldest entry",
		Category:    CategoryHistory,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { m.history.MoveSelection(m.history.Len()); return m, nil },
		Condition:   historyFocused,
	},
	{
		Key:         keys.Enter,
		DisplayKey:  "Enter",
		Description: "Reuse selected result",
		Category:    CategoryHistory,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.reuseSelected() },
		Condition:   historyFocused,
	},
	{
		Key:         "x",
		Description: "Clear history",
		Category:    CategoryHistory,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.clearHistory() },
		Condition:   historyFocused,
	},
	{
		Key:         keys.CtrlL,
		DisplayKey:  "ctrl-l",
		Description: "Clear history from anywhere",
		Category:    CategoryHistory,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.clearHistory() },
	},
	{
		Key:         keys.Escape,
		DisplayKey:  "Esc",
		Description: "Back to calculator",
		Category:    CategoryHistory,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { m.setFocus(FocusCalculator); return m, nil },
		Condition:   historyFocused,
	},

	// Clipboard
	{
		Key:         keys.CtrlY,
		DisplayKey:  "ctrl-y",
		Description: "Copy result",
		Category:    CategoryClipboard,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.copyResult() },
	},
	{
		Key:         keys.CtrlV,
		DisplayKey:  "ctrl-v",
		Description: "Paste expression",
		Category:    CategoryClipboard,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.pasteFromClipboard() },
	},

	// View
	{
		Key:         keys.CtrlT,
		DisplayKey:  "ctrl-t",
		Description: "Cycle theme",
		Category:    CategoryView,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.cycleTheme() },
	},
	{
		Key:         keys.CtrlB,
		DisplayKey:  "ctrl-b",
		Description: "Show or hide history",
		Category:    CategoryView,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.toggleHistory() },
	},
	{
		Key:         keys.CtrlK,
		DisplayKey:  "ctrl-k",
		Description: "Show or hide keypad",
		Category:    CategoryView,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, m.toggleKeypad() },
	},
	{
		Key:         keys.CtrlO,
		DisplayKey:  "ctrl-o",
		Description: "Settings",
		Category:    CategoryView,
		Handler:     shortcutSettings,
	},

	// General
	{
		Key:         keys.CtrlC,
		DisplayKey:  "ctrl-c",
		Description: "Quit",
		Category:    CategoryGeneral,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, tea.Quit },
	},
}

// helpShortcut is defined separately to avoid an initialization cycle
// (shortcutHelp reads ShortcutRegistry).
var helpShortcut = Shortcut{
	Key:         "?",
	Description: "Show this help",
	Category:    CategoryGeneral,
}

// DisplayOnlyShortcuts are shown in help but not executable from it.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "0-9 . ( )", Description: "Type into the expression", Category: CategoryCalculator},
	{DisplayKey: "+ - * /", Description: "Operators", Category: CategoryCalculator},
	{DisplayKey: "= or Enter", Description: "Evaluate and save to history", Category: CategoryCalculator},
	{DisplayKey: "%", Description: "Turn the last number into a percentage", Category: CategoryCalculator},
	{DisplayKey: "Backspace", Description: "Delete last character", Category: CategoryCalculator},
	{DisplayKey: "c or Delete", Description: "Clear expression", Category: CategoryCalculator},
	{DisplayKey: "Mouse click", Description: "Press keypad keys, pick history entries", Category: CategoryCalculator},
}

// isShortcutApplicable checks whether a shortcut's guard passes in the
// current state.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	return s.Condition == nil || s.Condition(m)
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or its guard failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	if key == helpShortcut.Key {
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			logger.ComponentLogger("app").Debug("shortcut guard failed", "key", key, "focus", m.focus.String())
			continue
		}
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// getApplicableHelpSections builds help modal sections from the shortcuts
// whose guards pass, followed by the display-only entries.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []ui.HelpSection {
	categories := make(map[string][]ui.HelpShortcut)

	add := func(s Shortcut) {
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		categories[s.Category] = append(categories[s.Category], ui.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}

	for _, s := range displayOnly {
		add(s)
	}
	for _, s := range append(registry, helpShortcut) {
		if m.isShortcutApplicable(s) {
			add(s)
		}
	}

	var sections []ui.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, ui.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}
	return sections
}

// shortcutByDisplayKey resolves a help entry back to its registry entry.
func shortcutByDisplayKey(displayKey string) (Shortcut, bool) {
	for _, s := range append(ShortcutRegistry, helpShortcut) {
		if s.DisplayKey == displayKey || (s.DisplayKey == "" && s.Key == displayKey) {
			return s, true
		}
	}
	return Shortcut{}, false
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutToggleFocus(m *Model) (tea.Model, tea.Cmd) {
	m.toggleFocus()
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	sections := m.getApplicableHelpSections(ShortcutRegistry, DisplayOnlyShortcuts)
	m.modal.Show(ui.NewHelpState(sections))
	return m, nil
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(ui.NewSettingsState(ui.SettingsValues{
		Theme:                string(ui.CurrentThemeName()),
		BellOnError:          m.config.GetBellOnError(),
		NotificationsEnabled: m.config.GetNotificationsEnabled(),
		ShowKeypad:           m.showKeypad,
		ShowHistory:          m.showHistory,
		MaxExpressionLength:  m.session.MaxLength(),
		MaxExpressionLimit:   config.MaxExpressionLengthLimit,
	}))
	return m, nil
}
