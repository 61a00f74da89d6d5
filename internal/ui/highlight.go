package ui

import (
	"bytes"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ExpressionLexerName is the chroma alias of the arithmetic lexer
const ExpressionLexerName = "calc"

// expressionLexer tokenises calculator input. Anything outside the
// calculator alphabet is marked as an error token.
var expressionLexer = lexers.Register(chroma.MustNewLexer(
	&chroma.Config{
		Name:      "Calculator Expression",
		Aliases:   []string{ExpressionLexerName},
		MimeTypes: []string{"text/x-calc"},
	},
	func() chroma.Rules {
		return chroma.Rules{
			"root": {
				{Pattern: `\s+`, Type: chroma.TextWhitespace},
				{Pattern: `(\d+\.?\d*|\.\d+)([eE][+\-]?\d+)?`, Type: chroma.LiteralNumber},
				{Pattern: `[+\-*/]`, Type: chroma.Operator},
				{Pattern: `[()]`, Type: chroma.Punctuation},
				{Pattern: `%`, Type: chroma.NameBuiltin},
				{Pattern: `.`, Type: chroma.Error},
			},
		}
	},
))

var (
	highlightMu    sync.Mutex
	highlightStyle = map[ThemeName]*chroma.Style{}
)

// chromaStyleFor builds and registers the chroma style mirroring theme name.
func chromaStyleFor(name ThemeName) *chroma.Style {
	highlightMu.Lock()
	defer highlightMu.Unlock()

	if s, ok := highlightStyle[name]; ok {
		return s
	}
	t := GetTheme(name)
	s := styles.Register(chroma.MustNewStyle("calccraft-"+string(name), chroma.StyleEntries{
		chroma.Text:          t.Text,
		chroma.LiteralNumber: t.Number,
		chroma.Operator:      "bold " + t.Operator,
		chroma.Punctuation:   t.Paren,
		chroma.NameBuiltin:   "bold " + t.Percent,
		chroma.Error:         "underline " + t.Error,
	}))
	highlightStyle[name] = s
	return s
}

// HighlightExpression colors an expression with the current theme. It falls
// back to the raw text if highlighting fails.
func HighlightExpression(expr string) string {
	if expr == "" {
		return ""
	}

	lexer := lexers.Get(ExpressionLexerName)
	if lexer == nil {
		lexer = expressionLexer
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyleFor(CurrentThemeName())

	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, expr)
	if err != nil {
		return expr
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return expr
	}
	return buf.String()
}
