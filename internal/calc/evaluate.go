package calc

import (
	"math"
	"strconv"
	"strings"

	cerrors "github.com/zhubert/calccraft/internal/errors"
)

// MaxNestingDepth bounds how deeply parentheses and unary signs may nest.
const MaxNestingDepth = 64

// Evaluate parses expr and computes its value using standard arithmetic
// precedence:
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/') unary)*
//	unary   := ('-' | '+') unary | primary
//	primary := NUMBER | '(' expr ')'
//
// Operators of equal precedence associate left to right. The returned error
// is always an *errors.Error of kind KindEmpty, KindSyntax,
// KindDivisionByZero or KindNonFinite. A nil error guarantees a finite value.
func Evaluate(expr string) (float64, error) {
	if strings.TrimSpace(expr) == "" {
		return 0, cerrors.Empty()
	}

	tokens, err := tokenize(expr)
	if err != nil {
		return 0, err
	}

	p := &parser{tokens: tokens, end: len(expr)}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if tok, ok := p.peek(); ok {
		return 0, cerrors.Syntax(tok.pos, "unexpected "+strconv.Quote(tok.text))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, cerrors.NonFinite()
	}
	return v, nil
}

// parser walks a token slice. It never looks at the source text again.
type parser struct {
	tokens []token
	pos    int
	depth  int
	end    int // source length, reported for errors at end of input
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

// peekOperator reports whether the next token is one of ops.
func (p *parser) peekOperator(ops string) (byte, bool) {
	tok, ok := p.peek()
	if !ok || tok.kind != tokenOperator || strings.IndexByte(ops, tok.op) < 0 {
		return 0, false
	}
	return tok.op, true
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > MaxNestingDepth {
		pos := p.end
		if tok, ok := p.peek(); ok {
			pos = tok.pos
		}
		return cerrors.Syntax(pos, "expression nested too deeply")
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peekOperator("+-")
		if !ok {
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			left += right
		} else {
			left -= right
		}
		if math.IsInf(left, 0) || math.IsNaN(left) {
			return 0, cerrors.NonFinite()
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peekOperator("*/")
		if !ok {
			return left, nil
		}
		opTok := p.next()
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			left *= right
		} else {
			if right == 0 {
				return 0, cerrors.DivisionByZero(opTok.pos)
			}
			left /= right
		}
		if math.IsInf(left, 0) || math.IsNaN(left) {
			return 0, cerrors.NonFinite()
		}
	}
}

func (p *parser) parseUnary() (float64, error) {
	op, ok := p.peekOperator("+-")
	if !ok {
		return p.parsePrimary()
	}
	p.next()
	if err := p.enter(); err != nil {
		return 0, err
	}
	defer p.leave()

	v, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	if op == '-' {
		return -v, nil
	}
	return v, nil
}

func (p *parser) parsePrimary() (float64, error) {
	tok, ok := p.peek()
	if !ok {
		return 0, cerrors.Syntax(p.end, "unexpected end of expression")
	}

	switch tok.kind {
	case tokenNumber:
		p.next()
		return tok.num, nil
	case tokenLParen:
		p.next()
		if err := p.enter(); err != nil {
			return 0, err
		}
		defer p.leave()

		if next, ok := p.peek(); ok && next.kind == tokenRParen {
			return 0, cerrors.Syntax(next.pos, "empty parentheses")
		}
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		closing, ok := p.peek()
		if !ok {
			return 0, cerrors.Syntax(p.end, "missing ')'")
		}
		if closing.kind != tokenRParen {
			return 0, cerrors.Syntax(closing.pos, "expected ')' but found "+strconv.Quote(closing.text))
		}
		p.next()
		return v, nil
	default:
		return 0, cerrors.Syntax(tok.pos, "unexpected "+strconv.Quote(tok.text))
	}
}
