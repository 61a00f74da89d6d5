package modals

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// SettingsState - State for the Settings modal
// =============================================================================

// SettingsState edits the persisted calculator preferences.
type SettingsState struct {
	selectedTheme string
	OriginalTheme string
	maxLength     string
	maxLimit      int

	BellOnError          bool
	NotificationsEnabled bool
	ShowKeypad           bool
	ShowHistory          bool

	// MultiSelect binding
	options []string

	form *huh.Form

	availableWidth int
}

const (
	optionBell          = "bell"
	optionNotifications = "notifications"
	optionKeypad        = "keypad"
	optionHistory       = "history"
)

// SettingsValues carries the current preferences into NewSettingsState.
type SettingsValues struct {
	Theme                string
	BellOnError          bool
	NotificationsEnabled bool
	ShowKeypad           bool
	ShowHistory          bool
	MaxExpressionLength  int
	MaxExpressionLimit   int
}

func (*SettingsState) modalState() {}

// SetSize updates the available width for rendering content.
func (s *SettingsState) SetSize(width, height int) {
	s.availableWidth = width
	s.form.WithWidth(s.contentWidth())
}

func (s *SettingsState) contentWidth() int {
	if s.availableWidth > 0 {
		return s.availableWidth - 6
	}
	return ModalWidth - 6
}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Space: toggle  Enter: save  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	s.syncFromMultiSelect()
	return s, cmd
}

// syncFromMultiSelect updates boolean fields from the MultiSelect binding.
func (s *SettingsState) syncFromMultiSelect() {
	s.BellOnError = slices.Contains(s.options, optionBell)
	s.NotificationsEnabled = slices.Contains(s.options, optionNotifications)
	s.ShowKeypad = slices.Contains(s.options, optionKeypad)
	s.ShowHistory = slices.Contains(s.options, optionHistory)
}

// GetSelectedTheme returns the theme chosen in the form
func (s *SettingsState) GetSelectedTheme() string {
	return s.selectedTheme
}

// ThemeChanged reports whether the selected theme differs from the one the
// modal was opened with.
func (s *SettingsState) ThemeChanged() bool {
	return s.selectedTheme != s.OriginalTheme
}

// GetMaxExpressionLength returns the parsed length limit, or an error when
// the input does not hold a number in range.
func (s *SettingsState) GetMaxExpressionLength() (int, error) {
	return parseMaxLength(s.maxLength, s.maxLimit)
}

func parseMaxLength(v string, limit int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("must be a whole number")
	}
	if n < 1 || n > limit {
		return 0, fmt.Errorf("must be between 1 and %d", limit)
	}
	return n, nil
}

// NewSettingsState creates a new SettingsState with the current settings values.
func NewSettingsState(themes, themeDisplayNames []string, v SettingsValues) *SettingsState {
	s := &SettingsState{
		selectedTheme:        v.Theme,
		OriginalTheme:        v.Theme,
		maxLength:            strconv.Itoa(v.MaxExpressionLength),
		maxLimit:             v.MaxExpressionLimit,
		BellOnError:          v.BellOnError,
		NotificationsEnabled: v.NotificationsEnabled,
		ShowKeypad:           v.ShowKeypad,
		ShowHistory:          v.ShowHistory,
		availableWidth:       ModalWidth,
	}

	themeOptions := make([]huh.Option[string], len(themes))
	for i := range themes {
		themeOptions[i] = huh.NewOption(themeDisplayNames[i], themes[i])
	}

	opts := []huh.Option[string]{
		huh.NewOption("Bell on invalid expression", optionBell).Selected(v.BellOnError),
		huh.NewOption("Notify when a result is copied", optionNotifications).Selected(v.NotificationsEnabled),
		huh.NewOption("Show keypad", optionKeypad).Selected(v.ShowKeypad),
		huh.NewOption("Show history", optionHistory).Selected(v.ShowHistory),
	}
	for _, o := range []struct {
		on  bool
		key string
	}{
		{v.BellOnError, optionBell},
		{v.NotificationsEnabled, optionNotifications},
		{v.ShowKeypad, optionKeypad},
		{v.ShowHistory, optionHistory},
	} {
		if o.on {
			s.options = append(s.options, o.key)
		}
	}

	group := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.selectedTheme),
		huh.NewMultiSelect[string]().
			Title("Options").
			Options(opts...).
			Height(len(opts)).
			Value(&s.options),
		huh.NewInput().
			Title("Max expression length").
			Description(fmt.Sprintf("Characters, 1 to %d", v.MaxExpressionLimit)).
			CharLimit(len(strconv.Itoa(v.MaxExpressionLimit))).
			Validate(func(in string) error {
				_, err := parseMaxLength(in, v.MaxExpressionLimit)
				return err
			}).
			Value(&s.maxLength),
	)

	s.form = huh.NewForm(group).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(s.contentWidth()).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}
