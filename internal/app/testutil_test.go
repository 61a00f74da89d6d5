package app

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/calccraft/internal/clipboard"
	"github.com/zhubert/calccraft/internal/config"
	"github.com/zhubert/calccraft/internal/keys"
	"github.com/zhubert/calccraft/internal/logger"
	"github.com/zhubert/calccraft/internal/notification"
	"github.com/zhubert/calccraft/internal/ui"
)

func TestMain(m *testing.M) {
	if err := logger.Init(os.DevNull); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// memoryClipboard is an in-process clipboard backend.
type memoryClipboard struct {
	mu      sync.Mutex
	data    []byte
	initErr error
}

func (c *memoryClipboard) Init() error { return c.initErr }

func (c *memoryClipboard) Read() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data
}

func (c *memoryClipboard) Write(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = append([]byte(nil), data...)
}

func (c *memoryClipboard) text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return string(c.data)
}

// notifications records what the stubbed notifier and bell received.
type notifications struct {
	mu       sync.Mutex
	messages []string
	bells    int
}

func (n *notifications) bellCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.bells
}

func (n *notifications) sent() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

// testEnv holds the fakes installed for one test.
type testEnv struct {
	clipboard *memoryClipboard
	notes     *notifications
}

// setupTestEnv installs fake clipboard and notification backends and
// restores the real ones and the default theme afterwards.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{clipboard: &memoryClipboard{}, notes: &notifications{}}
	clipboard.SetBackend(env.clipboard)
	notification.SetNotifier(func(title, message string, _ any) error {
		env.notes.mu.Lock()
		defer env.notes.mu.Unlock()
		env.notes.messages = append(env.notes.messages, message)
		return nil
	})
	notification.SetBeeper(func(float64, int) error {
		env.notes.mu.Lock()
		defer env.notes.mu.Unlock()
		env.notes.bells++
		return nil
	})

	t.Cleanup(func() {
		clipboard.ResetBackend()
		notification.ResetNotifier()
		ui.SetTheme(ui.DefaultTheme)
	})
	return env
}

// testConfig creates a default config bound to a temp file.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.SetFilePath(filepath.Join(t.TempDir(), "config.json"))
	return cfg
}

// testModel creates a test Model with the given config.
func testModel(cfg *config.Config) *Model {
	return New(cfg, "0.0.0-test")
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(cfg *config.Config, width, height int) *Model {
	m := testModel(cfg)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "7", "enter", "tab", "esc", "ctrl+y", "up"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Delete:
		return tea.KeyPressMsg{Code: tea.KeyDelete}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Home:
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case keys.End:
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.CtrlL:
		return tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}
	case keys.Space:
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlV:
		return tea.KeyPressMsg{Code: 'v', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	case keys.CtrlO:
		return tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}
	case keys.CtrlT:
		return tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}
	case keys.CtrlB:
		return tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl}
	case keys.CtrlK:
		return tea.KeyPressMsg{Code: 'k', Mod: tea.ModCtrl}
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press and returns the command it produced.
func sendKey(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyPress(key))
	return cmd
}

// typeText sends each character of text as a key press.
func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(keyPress(string(r)))
	}
}

// mouseClick creates a tea.MouseClickMsg at the given coordinates.
func mouseClick(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseLeft,
	}
}

// screen renders the model without ANSI escapes.
func screen(m *Model) string {
	return ansi.Strip(m.RenderToString())
}
