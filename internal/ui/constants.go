// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// MinTerminalWidth and MinTerminalHeight clamp tiny terminals
	MinTerminalWidth  = 40
	MinTerminalHeight = 12

	// HistoryWidthRatio is the denominator for the history panel width (1/3 of total width)
	HistoryWidthRatio = 3

	// MinHistoryWidth keeps the history panel readable on narrow terminals
	MinHistoryWidth = 24

	// DisplayHeight is the number of lines the expression/result display uses
	// inside its border: label, expression, blank, label, result.
	DisplayHeight = 5
)

// Keypad dimensions
const (
	// KeypadColumns is the number of key columns in the grid
	KeypadColumns = 4

	// KeyWidth is the rendered width of a single-column key, including padding
	KeyWidth = 7

	// KeyGap is the horizontal space between adjacent keys
	KeyGap = 1
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 56
)
