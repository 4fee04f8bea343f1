package parser

import (
	"fmt"

	"github.com/ian-shakespeare/gmplus/internal/lexer"
)

const (
	STATEMENT_PRODUCTION     = "Statement"
	EXPRESSION_PRODUCTION    = "Expression"
	PRIMARY_PRODUCTION       = "Primary"
	INT64_LITERAL_PRODUCTION = "NumericLiteral within int64 range"
)

// ParseError reports the production that was being attempted and the token
// that could not satisfy it.
type ParseError struct {
	Expected string
	Found    lexer.TokenType
	Lexeme   string
	Pos      lexer.Position
}

func NewParseError(expected string, found lexer.Token) *ParseError {
	return &ParseError{
		Expected: expected,
		Found:    found.Type,
		Lexeme:   found.Value,
		Pos:      found.Pos,
	}
}

// expectedToken builds the error for a production that needed a single
// token of type t.
func expectedToken(t lexer.TokenType, found lexer.Token) *ParseError {
	return NewParseError(t.String(), found)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parseerror: expected %s, found %s %q at %s", e.Expected, e.Found, e.Lexeme, e.Pos)
}
