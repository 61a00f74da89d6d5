package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/calccraft/internal/calc"
)

// HistoryEmptyText is shown when nothing has been committed yet
const HistoryEmptyText = "No calculations yet. Try 12+34*2 then press ="

// historyEntryLines is the number of lines one entry occupies
const historyEntryLines = 2

// HistoryPanel lists committed calculations, newest first
type HistoryPanel struct {
	width, height int
	entries       []calc.Entry
	selectedID    string
	focused       bool
	viewport      viewport.Model
}

// NewHistoryPanel creates an empty history panel
func NewHistoryPanel() *HistoryPanel {
	return &HistoryPanel{viewport: viewport.New()}
}

// SetSize sets the outer size of the panel, borders included
func (h *HistoryPanel) SetSize(width, height int) {
	h.width = width
	h.height = height
	h.viewport.SetWidth(max(width-BorderSize, 1))
	h.viewport.SetHeight(max(height-BorderSize-1, 1))
	h.refresh()
}

// SetFocused toggles keyboard focus. Focusing selects the newest entry if
// nothing is selected.
func (h *HistoryPanel) SetFocused(focused bool) {
	h.focused = focused
	if focused && h.selectedID == "" && len(h.entries) > 0 {
		h.selectedID = h.entries[0].ID
	}
	h.refresh()
}

// IsFocused reports whether the panel has keyboard focus
func (h *HistoryPanel) IsFocused() bool {
	return h.focused
}

// SetEntries replaces the listed entries, keeping the selection when the
// selected entry is still present.
func (h *HistoryPanel) SetEntries(entries []calc.Entry) {
	h.entries = entries
	if h.indexOf(h.selectedID) < 0 {
		h.selectedID = ""
		if h.focused && len(entries) > 0 {
			h.selectedID = entries[0].ID
		}
	}
	h.refresh()
}

// Len returns the number of listed entries
func (h *HistoryPanel) Len() int {
	return len(h.entries)
}

// Selected returns the selected entry
func (h *HistoryPanel) Selected() (calc.Entry, bool) {
	i := h.indexOf(h.selectedID)
	if i < 0 {
		return calc.Entry{}, false
	}
	return h.entries[i], true
}

// SelectByID selects the entry with id and reports whether it exists
func (h *HistoryPanel) SelectByID(id string) bool {
	if h.indexOf(id) < 0 {
		return false
	}
	h.selectedID = id
	h.refresh()
	return true
}

// MoveSelection moves the selection by delta entries, clamped to the list
func (h *HistoryPanel) MoveSelection(delta int) {
	if len(h.entries) == 0 {
		return
	}
	i := h.indexOf(h.selectedID)
	if i < 0 {
		i = 0
	} else {
		i = min(max(i+delta, 0), len(h.entries)-1)
	}
	h.selectedID = h.entries[i].ID
	h.refresh()
}

// PageSize returns how many entries fit in the visible list, at least one.
func (h *HistoryPanel) PageSize() int {
	return max(h.viewport.Height()/historyEntryLines, 1)
}

// EntryAt returns the entry drawn at line y of the list area, where 0 is
// the first line below the panel title.
func (h *HistoryPanel) EntryAt(y int) (calc.Entry, bool) {
	if y < 0 || y >= h.viewport.Height() {
		return calc.Entry{}, false
	}
	i := (y + h.viewport.YOffset()) / historyEntryLines
	if i >= len(h.entries) {
		return calc.Entry{}, false
	}
	return h.entries[i], true
}

// Update forwards scrolling input to the viewport
func (h *HistoryPanel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return cmd
}

func (h *HistoryPanel) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, e := range h.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// refresh re-renders the list into the viewport and scrolls the selection
// into view.
func (h *HistoryPanel) refresh() {
	width := h.viewport.Width()
	if width <= 0 {
		return
	}

	if len(h.entries) == 0 {
		h.viewport.SetContent(HistoryEmptyStyle.Width(width).Render(HistoryEmptyText))
		h.viewport.SetYOffset(0)
		return
	}

	selected := h.indexOf(h.selectedID)
	var sb strings.Builder
	for i, e := range h.entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(h.renderEntry(e, width, h.focused && i == selected))
	}
	h.viewport.SetContent(sb.String())

	if selected >= 0 {
		top := selected * historyEntryLines
		switch {
		case top < h.viewport.YOffset():
			h.viewport.SetYOffset(top)
		case top+historyEntryLines > h.viewport.YOffset()+h.viewport.Height():
			h.viewport.SetYOffset(top + historyEntryLines - h.viewport.Height())
		}
	}
}

func (h *HistoryPanel) renderEntry(e calc.Entry, width int, selected bool) string {
	text := width - 1
	expr := HistoryExprStyle.Render(ansi.Truncate(e.Expression, text, "…"))
	result := HistoryResultStyle.Render(ansi.Truncate("= "+e.Result, text, "…"))
	block := lipgloss.JoinVertical(lipgloss.Left, expr, result)

	if selected {
		return HistorySelectedStyle.Width(width).Render(block)
	}
	return lipgloss.NewStyle().PaddingLeft(1).Width(width).Render(block)
}

// View renders the panel
func (h *HistoryPanel) View() string {
	title := PanelTitleStyle.Render(fmt.Sprintf("History (%d)", len(h.entries)))
	body := lipgloss.JoinVertical(lipgloss.Left, title, h.viewport.View())

	style := PanelStyle
	if h.focused {
		style = PanelFocusedStyle
	}
	return style.Width(h.width).Height(h.height).Render(body)
}
