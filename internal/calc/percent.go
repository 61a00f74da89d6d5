package calc

import (
	"math"
	"strconv"
)

// lastNumber locates the rightmost numeric run in s, i.e. the match of
// [0-9]*\.?[0-9]+ that no later digit follows. It returns the run's byte
// range, or ok=false when s contains no digit.
//
// The scan runs right to left: trailing digits, then an optional point,
// then the digits before it. A point with no digits in front of it still
// belongs to the run (".5"); one with no digits behind it does not. When
// the trailing digits are the exponent of a scientific literal the run
// covers the whole literal.
func lastNumber(s string) (start, end int, ok bool) {
	end = -1
	for i := len(s) - 1; i >= 0; i-- {
		if isDigit(s[i]) {
			end = i + 1
			break
		}
	}
	if end < 0 {
		return 0, 0, false
	}

	start = end
	for start > 0 && isDigit(s[start-1]) {
		start--
	}
	if m := mantissaEnd(s, start); m > 0 {
		start = m
		for start > 0 && isDigit(s[start-1]) {
			start--
		}
	}
	if start > 0 && s[start-1] == '.' {
		start--
		for start > 0 && isDigit(s[start-1]) {
			start--
		}
	}
	return start, end, true
}

// mantissaEnd reports where the mantissa ends when the digit run starting
// at i is an exponent, as in "2.5e+3". It returns 0 otherwise.
func mantissaEnd(s string, i int) int {
	e := i - 1
	if e > 0 && (s[e] == '+' || s[e] == '-') {
		e--
	}
	if e < 1 || (s[e] != 'e' && s[e] != 'E') || !isDigit(s[e-1]) {
		return 0
	}
	return e
}

// percentRewrite divides the rightmost number in buf by 100 in place. With
// no number present it appends a literal '%', which later fails evaluation.
// If the run does not parse to a finite number buf is returned unchanged.
func percentRewrite(buf string) string {
	start, end, ok := lastNumber(buf)
	if !ok {
		return buf + "%"
	}

	n, err := strconv.ParseFloat(buf[start:end], 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return buf
	}
	return buf[:start] + formatPercent(n/100) + buf[end:]
}
