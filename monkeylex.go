package monkeylex

import (
	"github.com/chrismwendt/go-monkeylex/lexer"
	"github.com/chrismwendt/go-monkeylex/token"
)

// Tokenize scans src and returns its tokens in order. The returned
// slice is never empty and always ends with exactly one EOF token.
func Tokenize(src []byte, opts ...lexer.Option) []token.Token {
	l := lexer.New(src, opts...)

	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}
