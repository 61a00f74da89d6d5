package calc

import (
	"strings"
	"unicode"
)

// IsAllowed reports whether r belongs to the calculator alphabet.
// Whitespace is allowed so Sanitize can tolerate spaced-out input.
func IsAllowed(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case strings.ContainsRune("+-*/().%", r):
		return true
	default:
		return unicode.IsSpace(r)
	}
}

// Sanitize removes every rune outside the calculator alphabet and trims
// surrounding whitespace. An exponent marker survives when it sits between
// a digit and an [+-]?[0-9]+ suffix, so scientific results read back as
// the same number. It never fails; empty input yields "".
func Sanitize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i, r := range raw {
		if IsAllowed(r) || (i > 0 && isDigit(raw[i-1]) && exponentLen(raw, i) > 0) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// stripSpace drops all whitespace from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
