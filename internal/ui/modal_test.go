package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestModal_ShowHide(t *testing.T) {
	m := NewModal()
	if m.IsVisible() {
		t.Error("new modal should be hidden")
	}
	if m.View(80, 24) != "" {
		t.Error("hidden modal should render nothing")
	}

	m.Show(NewHelpState([]HelpSection{{Title: "Calculator", Shortcuts: []HelpShortcut{{Key: "=", Desc: "evaluate"}}}}))
	if !m.IsVisible() {
		t.Fatal("modal should be visible after Show")
	}
	if view := ansi.Strip(m.View(80, 24)); !strings.Contains(view, "Keyboard Shortcuts") {
		t.Errorf("modal view missing title:\n%s", view)
	}

	m.SetError("bad value")
	if view := ansi.Strip(m.View(80, 24)); !strings.Contains(view, "bad value") {
		t.Error("modal view should include the error")
	}

	m.Hide()
	if m.IsVisible() || m.GetError() != "" {
		t.Error("Hide should clear state and error")
	}
}

func TestNewSettingsState_ListsThemes(t *testing.T) {
	s := NewSettingsState(SettingsValues{
		Theme:               string(ThemeNord),
		ShowKeypad:          true,
		MaxExpressionLength: 256,
		MaxExpressionLimit:  4096,
	})
	if s.GetSelectedTheme() != "nord" {
		t.Errorf("selected theme = %q, want nord", s.GetSelectedTheme())
	}
	if view := ansi.Strip(s.Render()); !strings.Contains(view, "Nord") {
		t.Errorf("settings should list theme display names:\n%s", view)
	}
}
