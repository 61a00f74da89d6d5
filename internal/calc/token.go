package calc

import (
	"math"
	"strconv"
	"unicode"
	"unicode/utf8"

	cerrors "github.com/zhubert/calccraft/internal/errors"
)

// tokenKind tags the variants of token.
type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenOperator
	tokenLParen
	tokenRParen
)

// token is a lexical unit produced and consumed within one Evaluate call.
type token struct {
	kind tokenKind
	num  float64 // tokenNumber
	op   byte    // tokenOperator: one of + - * /
	pos  int     // byte offset in the source, for error messages
	text string
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// scanNumber returns the end offset of the numeric literal starting at i,
// matching [0-9]*\.?[0-9]+ as long as possible, plus an optional
// [eE][+-]?[0-9]+ exponent. ok is false when no digit follows a leading or
// embedded point.
func scanNumber(s string, i int) (end int, ok bool) {
	j := i
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	if j < len(s) && s[j] == '.' {
		k := j + 1
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k == j+1 {
			// "3." backs off to "3"; a lone "." is not a number
			return j, j > i
		}
		j = k
	}
	if j == i {
		return j, false
	}
	return j + exponentLen(s, j), true
}

// exponentLen returns the length of the [eE][+-]?[0-9]+ suffix starting at
// i, or 0 when there is none.
func exponentLen(s string, i int) int {
	if i >= len(s) || (s[i] != 'e' && s[i] != 'E') {
		return 0
	}
	k := i + 1
	if k < len(s) && (s[k] == '+' || s[k] == '-') {
		k++
	}
	digits := k
	for k < len(s) && isDigit(s[k]) {
		k++
	}
	if k == digits {
		return 0
	}
	return k - i
}

// tokenize splits expr into tokens. It rejects runes outside the grammar
// (a bare '%' included) and adjacent "++"/"--" pairs, which are not
// operators. Signs separated by whitespace are two operators.
func tokenize(expr string) ([]token, error) {
	var tokens []token
	spaced := false
	for i := 0; i < len(expr); {
		c := expr[i]
		if r, size := utf8.DecodeRuneInString(expr[i:]); unicode.IsSpace(r) {
			i += size
			spaced = true
			continue
		}
		switch {
		case isDigit(c) || c == '.':
			end, ok := scanNumber(expr, i)
			if !ok {
				return nil, cerrors.Syntax(i, "malformed number")
			}
			text := expr[i:end]
			n, err := strconv.ParseFloat(text, 64)
			if err != nil && !math.IsInf(n, 0) {
				return nil, cerrors.Syntax(i, "malformed number "+strconv.Quote(text))
			}
			if math.IsInf(n, 0) {
				return nil, cerrors.NonFinite()
			}
			tokens = append(tokens, token{kind: tokenNumber, num: n, pos: i, text: text})
			i = end
		case c == '+' || c == '-' || c == '*' || c == '/':
			if (c == '+' || c == '-') && !spaced && len(tokens) > 0 {
				prev := tokens[len(tokens)-1]
				if prev.kind == tokenOperator && prev.op == c {
					return nil, cerrors.Syntax(i, "unexpected "+strconv.Quote(string([]byte{c, c})))
				}
			}
			tokens = append(tokens, token{kind: tokenOperator, op: c, pos: i, text: string(c)})
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tokenLParen, pos: i, text: "("})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokenRParen, pos: i, text: ")"})
			i++
		default:
			r, _ := utf8.DecodeRuneInString(expr[i:])
			return nil, cerrors.Syntax(i, "unexpected character "+strconv.QuoteRune(r))
		}
		spaced = false
	}
	return tokens, nil
}
