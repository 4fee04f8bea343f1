package lexer

import (
	"fmt"

	"github.com/ian-shakespeare/gmplus/pkg/array"
)

type TokenType int

const (
	UNKNOWN_TOKEN         TokenType = 0
	EQUALS_TOKEN          TokenType = 1
	BINARY_OPERATOR_TOKEN TokenType = 2
	SEMICOLON_TOKEN       TokenType = 3
	OPEN_PAREN_TOKEN      TokenType = 4
	CLOSE_PAREN_TOKEN     TokenType = 5
	IDENTIFIER_TOKEN      TokenType = 6
	NUMERIC_LITERAL_TOKEN TokenType = 7
	LET_TOKEN             TokenType = 8
	CONST_TOKEN           TokenType = 9
	FUNCTION_TOKEN        TokenType = 10
	RETURN_TOKEN          TokenType = 11
	COMMA_TOKEN           TokenType = 12
	OPEN_CURLY_TOKEN      TokenType = 13
	CLOSE_CURLY_TOKEN     TokenType = 14
	EOF_TOKEN             TokenType = 15
)

// EOF_LEXEME is the text carried by every end-of-input token.
const EOF_LEXEME = "EOF"

var tokenTypeNames = map[TokenType]string{
	EQUALS_TOKEN:          "Equals",
	BINARY_OPERATOR_TOKEN: "BinaryOperator",
	SEMICOLON_TOKEN:       "Semicolon",
	OPEN_PAREN_TOKEN:      "OpenParen",
	CLOSE_PAREN_TOKEN:     "CloseParen",
	IDENTIFIER_TOKEN:      "Identifier",
	NUMERIC_LITERAL_TOKEN: "NumericLiteral",
	LET_TOKEN:             "Let",
	CONST_TOKEN:           "Const",
	FUNCTION_TOKEN:        "Function",
	RETURN_TOKEN:          "Return",
	COMMA_TOKEN:           "Comma",
	OPEN_CURLY_TOKEN:      "OpenCurly",
	CLOSE_CURLY_TOKEN:     "CloseCurly",
	EOF_TOKEN:             "EOF",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

var keywords = map[string]TokenType{
	"let":      LET_TOKEN,
	"const":    CONST_TOKEN,
	"function": FUNCTION_TOKEN,
	"return":   RETURN_TOKEN,
}

var punctuation = map[rune]TokenType{
	';': SEMICOLON_TOKEN,
	'=': EQUALS_TOKEN,
	'(': OPEN_PAREN_TOKEN,
	')': CLOSE_PAREN_TOKEN,
	'{': OPEN_CURLY_TOKEN,
	'}': CLOSE_CURLY_TOKEN,
	',': COMMA_TOKEN,
	'+': BINARY_OPERATOR_TOKEN,
	'-': BINARY_OPERATOR_TOKEN,
	'*': BINARY_OPERATOR_TOKEN,
	'/': BINARY_OPERATOR_TOKEN,
}

// Position locates a rune in the source. Offset counts runes from zero,
// Line and Column start at one.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Type  TokenType
	Value string
	Pos   Position
}

// NewEOF builds the terminating token placed at pos.
func NewEOF(pos Position) Token {
	return Token{Type: EOF_TOKEN, Value: EOF_LEXEME, Pos: pos}
}

func (t Token) Is(types ...TokenType) bool {
	return array.Contains(types, t.Type)
}

func (t Token) String() string {
	if t.Type == EOF_TOKEN {
		return EOF_LEXEME
	}
	return fmt.Sprintf("%s(%s)", t.Type, t.Value)
}
