// Package calc implements the CalcCraft expression engine.
//
// # Overview
//
// The engine turns a stream of discrete key actions into a live arithmetic
// expression, a best-effort preview of its value, and a bounded history of
// committed results. It has no knowledge of the terminal UI that drives it.
//
// # Components
//
// Sanitize: filters raw text down to the calculator alphabet
// (digits, '.', '+', '-', '*', '/', '(', ')', '%' and whitespace).
//
// Evaluate: tokenizes a sanitized expression and evaluates it with a
// recursive-descent parser. Nothing in the input is ever executed; the
// parser only walks its own token slice.
//
// Format: renders a float64 the way the display shows it, switching to
// exponential notation outside [1e-6, 1e12].
//
// Session: owns the expression buffer and applies Actions to it. Every
// mutating action recomputes the preview; Evaluate commits the result to
// History and replaces the buffer.
//
// History: newest-first log of committed calculations, capped at
// DefaultHistoryCapacity entries.
//
// # Errors
//
// Evaluation failures are *errors.Error values from the internal errors
// package with one of KindEmpty, KindSyntax, KindDivisionByZero or
// KindNonFinite. A Session never returns them from Apply: a failed preview
// is blank and a failed commit leaves the buffer untouched.
//
// # Concurrency
//
// A Session is not safe for concurrent use. Each UI instance owns its own.
package calc
