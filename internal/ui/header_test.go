package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestHeader_View(t *testing.T) {
	h := NewHeader()
	h.SetWidth(50)
	h.SetStatus("nord")

	view := h.View()
	plain := ansi.Strip(view)
	if !strings.HasPrefix(plain, " CalcCraft") {
		t.Errorf("header should start with the title, got %q", plain)
	}
	if !strings.HasSuffix(plain, "nord ") {
		t.Errorf("header should end with the status, got %q", plain)
	}
	if w := ansi.StringWidth(view); w != 50 {
		t.Errorf("header width = %d, want 50", w)
	}
}

func TestHeader_NarrowWidth(t *testing.T) {
	h := NewHeader()
	h.SetWidth(4)
	if plain := ansi.Strip(h.View()); !strings.Contains(plain, "CalcCraft") {
		t.Errorf("title should never be dropped, got %q", plain)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{"#10B981", 0x10, 0xB9, 0x81},
		{"#ffffff", 255, 255, 255},
		{"bogus", 0, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := parseHexColor(tt.hex)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHexColor(%q) = %d,%d,%d; want %d,%d,%d", tt.hex, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
