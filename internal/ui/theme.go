// Package ui provides theme management for the application.
// Themes define the color palette used throughout the UI, allowing users
// to customize the visual appearance of CalcCraft.
package ui

import (
	"slices"

	"charm.land/lipgloss/v2"
)

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (focus, header, the "=" key)
	Primary string
	// Secondary is the secondary accent color (operator keys, result)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)
	KeyBg      string // Keypad key background

	// Text colors
	Text        string // Primary text
	TextMuted   string // Labels, hints
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	Warning string
	Error   string
	Info    string
	Success string

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused panel borders (defaults to Primary if empty)

	// Expression highlighting
	Number   string
	Operator string
	Paren    string
	Percent  string
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDark    ThemeName = "dark"
	ThemeLight   ThemeName = "light"
	ThemeNord    ThemeName = "nord"
	ThemeDracula ThemeName = "dracula"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDark

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDark: {
		Name:        "Dark",
		Primary:     "#10B981",
		Secondary:   "#38BDF8",
		Bg:          "#09090B",
		BgSelected:  "#27272A",
		KeyBg:       "#18181B",
		Text:        "#FAFAFA",
		TextMuted:   "#A1A1AA",
		TextInverse: "#09090B",
		Warning:     "#F59E0B",
		Error:       "#F43F5E",
		Info:        "#38BDF8",
		Success:     "#10B981",
		Border:      "#3F3F46",
		Number:      "#FAFAFA",
		Operator:    "#38BDF8",
		Paren:       "#A78BFA",
		Percent:     "#F59E0B",
	},
	ThemeLight: {
		Name:        "Light",
		Primary:     "#059669",
		Secondary:   "#0284C7",
		Bg:          "#FFFFFF",
		BgSelected:  "#E4E4E7",
		KeyBg:       "#F4F4F5",
		Text:        "#18181B",
		TextMuted:   "#71717A",
		TextInverse: "#FFFFFF",
		Warning:     "#B45309",
		Error:       "#E11D48",
		Info:        "#0284C7",
		Success:     "#059669",
		Border:      "#D4D4D8",
		Number:      "#18181B",
		Operator:    "#0284C7",
		Paren:       "#7C3AED",
		Percent:     "#B45309",
	},
	ThemeNord: {
		Name:        "Nord",
		Primary:     "#88C0D0",
		Secondary:   "#81A1C1",
		Bg:          "#2E3440",
		BgSelected:  "#434C5E",
		KeyBg:       "#3B4252",
		Text:        "#ECEFF4",
		TextMuted:   "#D8DEE9",
		TextInverse: "#2E3440",
		Warning:     "#EBCB8B",
		Error:       "#BF616A",
		Info:        "#81A1C1",
		Success:     "#A3BE8C",
		Border:      "#4C566A",
		Number:      "#ECEFF4",
		Operator:    "#88C0D0",
		Paren:       "#B48EAD",
		Percent:     "#EBCB8B",
	},
	ThemeDracula: {
		Name:        "Dracula",
		Primary:     "#BD93F9",
		Secondary:   "#8BE9FD",
		Bg:          "#282A36",
		BgSelected:  "#44475A",
		KeyBg:       "#343746",
		Text:        "#F8F8F2",
		TextMuted:   "#6272A4",
		TextInverse: "#282A36",
		Warning:     "#FFB86C",
		Error:       "#FF5555",
		Info:        "#8BE9FD",
		Success:     "#50FA7B",
		Border:      "#44475A",
		Number:      "#F8F8F2",
		Operator:    "#FF79C6",
		Paren:       "#BD93F9",
		Percent:     "#FFB86C",
	},
}

// themeOrder is the cycle order used by NextTheme and listings.
var themeOrder = []ThemeName{ThemeDark, ThemeLight, ThemeNord, ThemeDracula}

// ThemeNames returns all theme identifiers in display order
func ThemeNames() []ThemeName {
	return slices.Clone(themeOrder)
}

// ThemeDisplayNames returns the display names matching ThemeNames
func ThemeDisplayNames() []string {
	names := make([]string, len(themeOrder))
	for i, n := range themeOrder {
		names[i] = BuiltinThemes[n].Name
	}
	return names
}

// IsValidTheme reports whether name is a built-in theme
func IsValidTheme(name string) bool {
	_, ok := BuiltinThemes[ThemeName(name)]
	return ok
}

// GetTheme returns a theme by name, or the default theme if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// NextTheme returns the theme after name in cycle order
func NextTheme(name ThemeName) ThemeName {
	i := slices.Index(themeOrder, name)
	return themeOrder[(i+1)%len(themeOrder)]
}

var (
	currentTheme     = BuiltinThemes[DefaultTheme]
	currentThemeName = DefaultTheme
)

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// CurrentThemeName returns the identifier of the current theme
func CurrentThemeName() ThemeName {
	return currentThemeName
}

// SetTheme sets the active theme and regenerates all styles.
// Unknown names fall back to the default theme.
func SetTheme(name ThemeName) {
	if _, ok := BuiltinThemes[name]; !ok {
		name = DefaultTheme
	}
	currentThemeName = name
	currentTheme = BuiltinThemes[name]
	regenerateStyles()
	RefreshModalStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorBgSelected = lipgloss.Color(t.GetBgSelected())
	ColorKeyBg = lipgloss.Color(t.KeyBg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	buildStyles()
}
