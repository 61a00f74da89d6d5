package ui

import (
	"regexp"
	"testing"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func TestBuiltinThemesComplete(t *testing.T) {
	for name, theme := range BuiltinThemes {
		t.Run(string(name), func(t *testing.T) {
			fields := map[string]string{
				"Primary":   theme.Primary,
				"Secondary": theme.Secondary,
				"Bg":        theme.Bg,
				"Text":      theme.Text,
				"TextMuted": theme.TextMuted,
				"Error":     theme.Error,
				"Success":   theme.Success,
				"Border":    theme.Border,
				"Number":    theme.Number,
				"Operator":  theme.Operator,
				"Paren":     theme.Paren,
				"Percent":   theme.Percent,
			}
			for field, v := range fields {
				if !hexColor.MatchString(v) {
					t.Errorf("%s = %q is not a #RRGGBB color", field, v)
				}
			}
		})
	}
}

func TestThemeNamesMatchBuiltins(t *testing.T) {
	names := ThemeNames()
	if len(names) != len(BuiltinThemes) {
		t.Fatalf("ThemeNames() has %d entries, BuiltinThemes has %d", len(names), len(BuiltinThemes))
	}
	display := ThemeDisplayNames()
	for i, n := range names {
		if !IsValidTheme(string(n)) {
			t.Errorf("%q is listed but not built in", n)
		}
		if display[i] != BuiltinThemes[n].Name {
			t.Errorf("display name %d = %q, want %q", i, display[i], BuiltinThemes[n].Name)
		}
	}
	if names[0] != DefaultTheme {
		t.Errorf("first theme = %q, want the default %q", names[0], DefaultTheme)
	}
}

func TestNextThemeCycles(t *testing.T) {
	seen := map[ThemeName]bool{}
	n := DefaultTheme
	for range BuiltinThemes {
		seen[n] = true
		n = NextTheme(n)
	}
	if n != DefaultTheme {
		t.Errorf("cycle ended at %q, want %q", n, DefaultTheme)
	}
	if len(seen) != len(BuiltinThemes) {
		t.Errorf("cycle visited %d themes, want %d", len(seen), len(BuiltinThemes))
	}
	if NextTheme("bogus") != ThemeDark {
		t.Errorf("NextTheme(unknown) = %q, want the first theme", NextTheme("bogus"))
	}
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultTheme) })

	SetThemeByName("nord")
	if CurrentThemeName() != ThemeNord {
		t.Errorf("CurrentThemeName() = %q, want nord", CurrentThemeName())
	}
	if CurrentTheme().Name != "Nord" {
		t.Errorf("CurrentTheme().Name = %q, want Nord", CurrentTheme().Name)
	}

	SetThemeByName("does-not-exist")
	if CurrentThemeName() != DefaultTheme {
		t.Errorf("unknown theme should fall back to %q, got %q", DefaultTheme, CurrentThemeName())
	}
}

func TestThemeDefaults(t *testing.T) {
	th := Theme{Primary: "#111111"}
	if th.GetBgSelected() != "#111111" || th.GetBorderFocus() != "#111111" {
		t.Error("empty BgSelected/BorderFocus should fall back to Primary")
	}
	th.BgSelected = "#222222"
	if th.GetBgSelected() != "#222222" {
		t.Error("explicit BgSelected should win")
	}
}
