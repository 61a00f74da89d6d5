package calc

import (
	"math"
	"strconv"
	"strings"
)

const (
	// expUpper and expLower bound the magnitudes shown in plain decimal.
	expUpper = 1e12
	expLower = 1e-6

	// expDigits is the number of mantissa digits after the point in
	// exponential form.
	expDigits = 6

	// fixedDigits is the number of fractional digits kept in decimal form.
	fixedDigits = 10
)

// Format renders n for display. NaN yields "". Magnitudes above 1e12 or
// below 1e-6 (other than zero) use exponential notation with six mantissa
// digits, e.g. "1.234568e+13". Everything else is rounded to ten fractional
// digits and printed without trailing zeros.
//
// Previews and committed results both go through Format, so a result
// copied back into the buffer parses to the same display string.
func Format(n float64) string {
	switch {
	case math.IsNaN(n):
		return ""
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}

	abs := math.Abs(n)
	if abs > expUpper || (abs > 0 && abs < expLower) {
		return formatExponential(n)
	}

	rounded, err := strconv.ParseFloat(strconv.FormatFloat(n, 'f', fixedDigits, 64), 64)
	if err != nil {
		return ""
	}
	if rounded == 0 {
		// covers -0 and tiny negatives that rounded away
		return "0"
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// formatExponential prints n as d.dddddde±x, without the zero padding Go
// applies to single-digit exponents.
func formatExponential(n float64) string {
	s := strconv.FormatFloat(n, 'e', expDigits, 64)
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok || len(exp) < 2 {
		return s
	}
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

// formatPercent renders the result of a percent rewrite in plain decimal so
// the buffer never picks up characters outside the calculator alphabet.
func formatPercent(n float64) string {
	if n == 0 {
		return "0"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
