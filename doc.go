/*
Package monkeylex provides a lexer for the Monkey programming language.
It converts a source string into a sequence of typed tokens covering
identifiers, keywords, integer literals, operators and delimiters.

The package offers two ways to consume tokens depending on the use case:

1. Pull-Based Scanning

A parser (or any other consumer) pulls tokens one at a time until it
observes an EOF token. This is the primary interface and never fails:
characters the lexical grammar does not recognize are returned as
ILLEGAL tokens rather than errors, leaving error reporting to the
consumer.

	l := lexer.New([]byte("let five = 5;"))
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		// use tok
	}

2. One-Shot Tokenizing

For tools that want the whole stream at once, Tokenize drives a lexer
to EOF and collects the tokens:

	toks := monkeylex.Tokenize([]byte("let add = fn(x, y) { x + y; };"))
	// toks ends with the EOF token

The identifier character set is a policy knob rather than a fixed law.
By default identifiers are ASCII letters and underscores, with digits
permitted after the first character; lexer.WithLetterFunc swaps in a
different predicate, for example to admit '?' or '!'.
*/
package monkeylex
