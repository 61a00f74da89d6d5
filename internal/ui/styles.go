package ui

import "charm.land/lipgloss/v2"

// Color palette, reassigned by regenerateStyles whenever the theme changes.
var (
	ColorPrimary     = lipgloss.Color("#10B981")
	ColorSecondary   = lipgloss.Color("#38BDF8")
	ColorBorder      = lipgloss.Color("#3F3F46")
	ColorBorderFocus = lipgloss.Color("#10B981")
	ColorBg          = lipgloss.Color("#09090B")
	ColorBgSelected  = lipgloss.Color("#27272A")
	ColorKeyBg       = lipgloss.Color("#18181B")
	ColorText        = lipgloss.Color("#FAFAFA")
	ColorTextMuted   = lipgloss.Color("#A1A1AA")
	ColorTextInverse = lipgloss.Color("#09090B")
	ColorWarning     = lipgloss.Color("#F59E0B")
	ColorInfo        = lipgloss.Color("#38BDF8")
	ColorError       = lipgloss.Color("#F43F5E")
	ColorSuccess     = lipgloss.Color("#10B981")
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Display styles
var (
	DisplayLabelStyle      lipgloss.Style
	DisplayExpressionStyle lipgloss.Style
	DisplayResultStyle     lipgloss.Style
	DisplayPlaceholder     lipgloss.Style
)

// Keypad styles
var (
	KeyStyle         lipgloss.Style
	KeyOperatorStyle lipgloss.Style
	KeyActionStyle   lipgloss.Style
	KeyEqualsStyle   lipgloss.Style
	KeyPressedStyle  lipgloss.Style
)

// History styles
var (
	HistoryExprStyle     lipgloss.Style
	HistoryResultStyle   lipgloss.Style
	HistorySelectedStyle lipgloss.Style
	HistoryEmptyStyle    lipgloss.Style
)

// Modal styles
var (
	ModalStyle       lipgloss.Style
	ModalTitleStyle  lipgloss.Style
	ModalHelpStyle   lipgloss.Style
	StatusErrorStyle lipgloss.Style
)

func init() {
	buildStyles()
	RefreshModalStyles()
}

// buildStyles derives every style from the current Color* values.
func buildStyles() {
	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	DisplayLabelStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Bold(true)

	DisplayExpressionStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	DisplayResultStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	DisplayPlaceholder = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	KeyStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorKeyBg).
		Align(lipgloss.Center)

	KeyOperatorStyle = KeyStyle.
		Foreground(ColorSecondary).
		Bold(true)

	KeyActionStyle = KeyStyle.
		Foreground(ColorWarning).
		Bold(true)

	KeyEqualsStyle = KeyStyle.
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Bold(true)

	KeyPressedStyle = KeyStyle.
		Foreground(ColorTextInverse).
		Background(ColorSecondary).
		Bold(true)

	HistoryExprStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	HistoryResultStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)

	HistorySelectedStyle = lipgloss.NewStyle().
		Background(ColorBgSelected).
		BorderLeft(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(ColorPrimary)

	HistoryEmptyStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
}
