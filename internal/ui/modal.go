package ui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/calccraft/internal/ui/modals"
)

// Modal hosts at most one dialog. State is nil when nothing is shown.
type Modal struct {
	State ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message shown under the modal content
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal box (unplaced; the caller centers it)
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	width := min(ModalWidth, screenWidth-4)
	if sized, ok := m.State.(modals.ModalWithSize); ok {
		sized.SetSize(width-6, screenHeight-6)
	}

	content := m.State.Render()
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}
	return ModalStyle.Width(width).Render(content)
}

// RefreshModalStyles pushes the current palette into the modals package.
func RefreshModalStyles() {
	modals.SetStyles(
		ModalTitleStyle, ModalHelpStyle,
		ColorPrimary, ColorSecondary, ColorText, ColorTextMuted, ColorTextInverse, ColorWarning,
		ModalWidth,
	)
}

// Modal types re-exported so callers only import ui.
type (
	ModalState     = modals.ModalState
	SettingsState  = modals.SettingsState
	SettingsValues = modals.SettingsValues
	HelpState      = modals.HelpState
	HelpSection    = modals.HelpSection
	HelpShortcut   = modals.HelpShortcut
)

// NewSettingsState opens the settings form with every built-in theme listed.
func NewSettingsState(v SettingsValues) *SettingsState {
	names := ThemeNames()
	ids := make([]string, len(names))
	for i, n := range names {
		ids[i] = string(n)
	}
	return modals.NewSettingsState(ids, ThemeDisplayNames(), v)
}

// NewHelpState opens the shortcut reference
func NewHelpState(sections []HelpSection) *HelpState {
	return modals.NewHelpState(sections)
}
