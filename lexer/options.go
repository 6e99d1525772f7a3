package lexer

import "github.com/sirupsen/logrus"

// Option defines the Lexer functional option type.
type Option func(*Lexer)

// LetterFunc reports whether a byte may appear in an identifier.
type LetterFunc func(byte) bool

// WithLetterFunc replaces the predicate that decides which bytes count
// as identifier characters. The default accepts 'a'-'z', 'A'-'Z' and
// '_'. ASCII digits are always accepted after the first character and
// are not affected by this option. The predicate must reject the NUL
// byte, which the lexer uses as its end-of-input sentinel. A nil fn
// leaves the default in place.
func WithLetterFunc(fn LetterFunc) Option {
	return func(l *Lexer) {
		if fn != nil {
			l.isLetter = fn
		}
	}
}

// WithLogger sets the logger used for debug-level scan traces. The
// default logger discards them at its standard Info level.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(l *Lexer) {
		if logger != nil {
			l.logger = logger
		}
	}
}
