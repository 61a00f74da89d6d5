package ui

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/x/ansi"
)

func TestExpressionLexerRegistered(t *testing.T) {
	if lexers.Get(ExpressionLexerName) == nil {
		t.Fatalf("lexer %q not registered", ExpressionLexerName)
	}
}

func TestExpressionLexerTokens(t *testing.T) {
	iter, err := chroma.Coalesce(expressionLexer).Tokenise(nil, "(12.5+3)*4%x")
	if err != nil {
		t.Fatalf("Tokenise: %v", err)
	}

	var got []chroma.TokenType
	var text strings.Builder
	for _, tok := range iter.Tokens() {
		got = append(got, tok.Type)
		text.WriteString(tok.Value)
	}
	want := []chroma.TokenType{
		chroma.Punctuation, chroma.LiteralNumber, chroma.Operator, chroma.LiteralNumber,
		chroma.Punctuation, chroma.Operator, chroma.LiteralNumber, chroma.NameBuiltin, chroma.Error,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
	if text.String() != "(12.5+3)*4%x" {
		t.Errorf("tokens reassemble to %q", text.String())
	}
}

func TestExpressionLexerScientificNumber(t *testing.T) {
	iter, err := chroma.Coalesce(expressionLexer).Tokenise(nil, "9.999998e+13*2")
	if err != nil {
		t.Fatalf("Tokenise: %v", err)
	}

	tokens := iter.Tokens()
	if len(tokens) == 0 || tokens[0].Type != chroma.LiteralNumber || tokens[0].Value != "9.999998e+13" {
		t.Fatalf("first token = %+v, want number 9.999998e+13", tokens)
	}
}

func TestHighlightExpression(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultTheme) })

	for _, name := range ThemeNames() {
		SetTheme(name)
		out := HighlightExpression("12+34*2")
		if ansi.Strip(out) != "12+34*2" {
			t.Errorf("%s: stripped output = %q", name, ansi.Strip(out))
		}
		if out == "12+34*2" {
			t.Errorf("%s: expected ANSI styling", name)
		}
	}

	if HighlightExpression("") != "" {
		t.Error("empty expression should render empty")
	}
}
