// Package ui provides the visual components of the CalcCraft TUI.
//
// # Layout
//
//	┌──────────────────────────────────────────────────────┐
//	│ Header (1 line)                                      │
//	├───────────────────────────────────┬──────────────────┤
//	│ Display (expression / result)     │                  │
//	│                                   │  History panel   │
//	│ Keypad                            │  (1/3 width)     │
//	│                                   │                  │
//	├───────────────────────────────────┴──────────────────┤
//	│ Footer (1 line, key hints or a flash message)        │
//	└──────────────────────────────────────────────────────┘
//
// The history panel and keypad can each be hidden; the calculator column
// then takes the freed space.
//
// # Components
//
// ViewContext is the singleton holding layout arithmetic. Header draws the
// title on a gradient. Display highlights the expression with a chroma
// lexer built for calculator input. Keypad draws the button grid and maps
// mouse positions back to calc actions. HistoryPanel lists entries inside a
// viewport. Footer shows context-aware key hints or a timed flash message.
// Modal hosts dialogs from the modals subpackage.
//
// # Themes
//
// Themes live in theme.go. SetTheme swaps the palette and rebuilds every
// exported style, so components must read styles at render time rather
// than caching them.
package ui
