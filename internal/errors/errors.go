// Package errors provides structured error types for CalcCraft.
// These errors carry the operation that failed and a Kind that callers
// branch on, so evaluation failures can be told apart without string matching.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindEmpty
	KindSyntax
	KindDivisionByZero
	KindNonFinite
	KindInvalid
	KindConfig
	KindIO
	KindClipboard
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty expression"
	case KindSyntax:
		return "invalid syntax"
	case KindDivisionByZero:
		return "division by zero"
	case KindNonFinite:
		return "non-finite result"
	case KindInvalid:
		return "invalid"
	case KindConfig:
		return "configuration error"
	case KindIO:
		return "I/O error"
	case KindClipboard:
		return "clipboard error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for CalcCraft.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

const opEvaluate Op = "calc.Evaluate"

// Evaluation errors

func Empty() error {
	return E(opEvaluate, KindEmpty, "nothing to evaluate")
}

func Syntax(pos int, msg string) error {
	return E(opEvaluate, KindSyntax, fmt.Sprintf("%s at position %d", msg, pos))
}

func DivisionByZero(pos int) error {
	return E(opEvaluate, KindDivisionByZero, fmt.Sprintf("division by zero at position %d", pos))
}

func NonFinite() error {
	return E(opEvaluate, KindNonFinite, "result is not a finite number")
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Script errors
func ScriptLoadFailed(path string, err error) error {
	return E(Op("script.Load"), KindIO, fmt.Sprintf("failed to load script %s", path), err)
}

func ScriptInvalid(reason string) error {
	return E(Op("script.Validate"), KindInvalid, reason)
}

// Clipboard errors
func ClipboardFailed(op string, err error) error {
	return E(Op("clipboard."+op), KindClipboard, err)
}
