package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/calccraft/internal/calc"
	"github.com/zhubert/calccraft/internal/clipboard"
	"github.com/zhubert/calccraft/internal/config"
	"github.com/zhubert/calccraft/internal/keys"
	"github.com/zhubert/calccraft/internal/logger"
	"github.com/zhubert/calccraft/internal/ui"
)

// Focus represents which panel receives keyboard input
type Focus int

const (
	FocusCalculator Focus = iota
	FocusHistory
)

// String returns a human-readable name for the focus
func (f Focus) String() string {
	switch f {
	case FocusCalculator:
		return "Calculator"
	case FocusHistory:
		return "History"
	default:
		return "Unknown"
	}
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string

	session *calc.Session

	header  *ui.Header
	footer  *ui.Footer
	display *ui.Display
	keypad  *ui.Keypad
	history *ui.HistoryPanel
	modal   *ui.Modal

	width  int
	height int
	focus  Focus

	showKeypad  bool
	showHistory bool
}

// New creates a new app model
func New(cfg *config.Config, version string) *Model {
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:      cfg,
		version:     version,
		session:     calc.NewSession(calc.WithMaxLength(cfg.GetMaxExpressionLength())),
		header:      ui.NewHeader(),
		footer:      ui.NewFooter(),
		display:     ui.NewDisplay(),
		keypad:      ui.NewKeypad(),
		history:     ui.NewHistoryPanel(),
		modal:       ui.NewModal(),
		focus:       FocusCalculator,
		showKeypad:  cfg.GetShowKeypad(),
		showHistory: cfg.GetShowHistory(),
	}
	m.display.SetFocused(true)
	m.updateHeader()
	m.syncState()
	return m
}

// Session returns the calculator session driven by the model
func (m *Model) Session() *calc.Session {
	return m.session
}

// Focus returns the focused panel
func (m *Model) Focus() Focus {
	return m.focus
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	log := logger.ComponentLogger("app")
	log.Info("starting", "version", m.version, "theme", ui.CurrentThemeName())
	if err := clipboard.Init(); err != nil {
		log.Warn("clipboard unavailable, copy and paste disabled", "error", err)
	}
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() || !m.footer.HasFlash() {
			return m, nil
		}
		return m, ui.FlashTick()

	case tea.PasteMsg:
		if m.modal.IsVisible() {
			modal, cmd := m.modal.Update(msg)
			m.modal = modal
			return m, cmd
		}
		return m, m.pasteText(msg.Content)

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.MouseClickMsg:
		return m, m.handleMouseClick(msg)

	case tea.MouseWheelMsg:
		return m, m.handleMouseWheel(msg)
	}

	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}
	return m, nil
}

// handleKey routes a key press: modal first, then shortcuts, then the
// calculator keyboard mapping.
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keys.CtrlC {
		return m, tea.Quit
	}
	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}
	if result, cmd, ok := m.ExecuteShortcut(key); ok {
		return result, cmd
	}
	if m.focus != FocusCalculator {
		return m, nil
	}
	if action, ok := keys.ActionForKey(key); ok {
		return m, m.applyAction(action)
	}
	return m, nil
}
