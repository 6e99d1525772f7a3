package lexer

import (
	"github.com/sirupsen/logrus"

	"github.com/chrismwendt/go-monkeylex/token"
)

// Lexer transforms Monkey source into a stream of tokens.
type Lexer struct {
	input        []byte
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination

	isLetter LetterFunc
	logger   logrus.FieldLogger
}

// New creates a new Lexer for input. The first character of input is
// already loaded when New returns, so the first call to NextToken
// behaves the same as every later one.
func New(input []byte, opts ...Option) *Lexer {
	l := &Lexer{
		input:    input,
		isLetter: isLetter,
		logger:   logrus.New(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.readChar()
	return l
}

// NextToken returns the next token from the input. Lexing never fails:
// unrecognized characters come back as ILLEGAL tokens, and once the
// input is exhausted every call returns EOF.
func (l *Lexer) NextToken() token.Token {
	tok := l.scan()
	l.logger.Debugf("lexer: %s %q", tok.Type, tok.Literal)
	return tok
}

func (l *Lexer) scan() token.Token {
	var tok token.Token

	l.skipWhitespace()

	switch l.ch {
	case '=':
		tok.Type = token.ASSIGN
		tok.Literal = string(l.ch)
	case '+':
		tok.Type = token.PLUS
		tok.Literal = string(l.ch)
	case ',':
		tok.Type = token.COMMA
		tok.Literal = string(l.ch)
	case ';':
		tok.Type = token.SEMICOLON
		tok.Literal = string(l.ch)
	case '(':
		tok.Type = token.LPAREN
		tok.Literal = string(l.ch)
	case ')':
		tok.Type = token.RPAREN
		tok.Literal = string(l.ch)
	case '{':
		tok.Type = token.LBRACE
		tok.Literal = string(l.ch)
	case '}':
		tok.Type = token.RBRACE
		tok.Literal = string(l.ch)
	case 0:
		tok.Literal = ""
		tok.Type = token.EOF
		return tok
	default:
		if l.isLetter(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Type = token.LookupIdent(tok.Literal)
			return tok
		} else if isDigit(l.ch) {
			tok.Type = token.INT
			tok.Literal = l.readNumber()
			return tok
		} else {
			tok.Type = token.ILLEGAL
			tok.Literal = string(l.ch)
		}
	}

	l.readChar()
	return tok
}

// readChar gives us the next character and advances our position in the
// input string.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // NUL character, signifies EOF
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for l.isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return string(l.input[position:l.position])
}

func (l *Lexer) readNumber() string {
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return string(l.input[position:l.position])
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
