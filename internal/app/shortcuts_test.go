package app

import (
	"testing"

	"github.com/zhubert/calccraft/internal/ui"
)

func TestShortcutRegistry_UniqueKeys(t *testing.T) {
	// ExecuteShortcut stops at the first match whose guard passes
	seen := make(map[string]int)
	for _, s := range ShortcutRegistry {
		seen[s.Key]++
		if s.Handler == nil {
			t.Errorf("shortcut %q has no handler", s.Key)
		}
		if s.Description == "" {
			t.Errorf("shortcut %q has no description", s.Key)
		}
	}
	for key, n := range seen {
		if n > 1 {
			t.Errorf("key %q registered %d times", key, n)
		}
	}
}

func TestShortcutRegistry_CategoriesOrdered(t *testing.T) {
	known := make(map[string]bool)
	for _, c := range categoryOrder {
		known[c] = true
	}
	for _, s := range append(append([]Shortcut{}, ShortcutRegistry...), DisplayOnlyShortcuts...) {
		if !known[s.Category] {
			t.Errorf("shortcut %q uses unknown category %q", s.Description, s.Category)
		}
	}
}

func TestExecuteShortcut(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		history   bool
		wantFound bool
	}{
		{"copy", "ctrl+y", false, true},
		{"help", "?", false, true},
		{"settings", "ctrl+o", false, true},
		{"digit is not a shortcut", "7", false, false},
		{"clear history needs history focus", "x", false, false},
		{"clear history in history focus", "x", true, true},
		{"enter in calculator focus evaluates instead", "enter", false, false},
		{"enter in history focus", "enter", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestEnv(t)
			m := testModelWithSize(testConfig(t), 120, 40)
			if tt.history {
				m.setFocus(FocusHistory)
			}

			_, _, found := m.ExecuteShortcut(tt.key)
			if found != tt.wantFound {
				t.Errorf("ExecuteShortcut(%q) found = %v, want %v", tt.key, found, tt.wantFound)
			}
		})
	}
}

func TestHelpSections_FollowFocus(t *testing.T) {
	setupTestEnv(t)
	m := testModelWithSize(testConfig(t), 120, 40)

	has := func(sections []ui.HelpSection, desc string) bool {
		for _, sec := range sections {
			for _, sc := range sec.Shortcuts {
				if sc.Desc == desc {
					return true
				}
			}
		}
		return false
	}

	calcSections := m.getApplicableHelpSections(ShortcutRegistry, DisplayOnlyShortcuts)
	if has(calcSections, "Clear history") {
		t.Error("history-only shortcuts should be hidden in calculator focus")
	}
	if !has(calcSections, "Show this help") {
		t.Error("help shortcut should be listed")
	}
	if calcSections[0].Title != CategoryCalculator {
		t.Errorf("first section = %q, want %q", calcSections[0].Title, CategoryCalculator)
	}

	m.setFocus(FocusHistory)
	if !has(m.getApplicableHelpSections(ShortcutRegistry, DisplayOnlyShortcuts), "Clear history") {
		t.Error("history shortcuts should be listed in history focus")
	}
}

func TestShortcutByDisplayKey(t *testing.T) {
	tests := []struct {
		displayKey string
		wantKey    string
		wantOK     bool
	}{
		{"ctrl-y", "ctrl+y", true},
		{"Tab", "tab", true},
		{"x", "x", true},
		{"?", "?", true},
		{"0-9 . ( )", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.displayKey, func(t *testing.T) {
			s, ok := shortcutByDisplayKey(tt.displayKey)
			if ok != tt.wantOK || s.Key != tt.wantKey {
				t.Errorf("shortcutByDisplayKey(%q) = %q, %v; want %q, %v", tt.displayKey, s.Key, ok, tt.wantKey, tt.wantOK)
			}
		})
	}
}
