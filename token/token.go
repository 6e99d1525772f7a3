package token

// Type is the type of a token.
type Type string

// Token represents a lexical token. The literal is the exact source
// text the token was scanned from; it is empty for EOF.
type Token struct {
	Type    Type
	Literal string
}

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // An unrecognized character
	EOF     Type = "EOF"     // End of input

	// Identifiers and literals
	IDENT Type = "IDENT" // add, foobar, x, y
	INT   Type = "INT"   // 1343456

	// Operators
	ASSIGN Type = "="
	PLUS   Type = "+"

	// Delimiters
	COMMA     Type = ","
	SEMICOLON Type = ";"

	LPAREN Type = "("
	RPAREN Type = ")"
	LBRACE Type = "{"
	RBRACE Type = "}"

	// Keywords
	FUNCTION Type = "FUNCTION"
	LET      Type = "LET"
)

var keywords = map[string]Type{
	"fn":  FUNCTION,
	"let": LET,
}

// LookupIdent checks the keywords table for an identifier.
// If the identifier is a keyword, it returns the keyword's token type.
// Otherwise, it returns IDENT.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
