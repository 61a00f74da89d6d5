package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/calccraft/internal/ui"
)

// errorFlashDuration is how long error flashes stay up
const errorFlashDuration = 4 * time.Second

// ShowFlash replaces the footer hints with text and starts the expiry tick
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	return m.ShowFlashFor(text, flashType, ui.DefaultFlashDuration)
}

// ShowFlashFor is ShowFlash with an explicit lifetime
func (m *Model) ShowFlashFor(text string, flashType ui.FlashType, d time.Duration) tea.Cmd {
	m.footer.SetFlashWithDuration(text, flashType, d)
	return ui.FlashTick()
}

// ShowFlashError flashes an error
func (m *Model) ShowFlashError(text string) tea.Cmd {
	return m.ShowFlashFor(text, ui.FlashError, errorFlashDuration)
}

// ShowFlashWarning flashes a warning
func (m *Model) ShowFlashWarning(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashWarning)
}

// ShowFlashInfo flashes an informational message
func (m *Model) ShowFlashInfo(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashInfo)
}

// ShowFlashSuccess flashes a success message
func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashSuccess)
}
