package lexer

import "fmt"

// LexError reports a character no token can start with.
type LexError struct {
	Character rune
	Pos       Position
}

func NewLexError(character rune, pos Position) *LexError {
	return &LexError{
		Character: character,
		Pos:       pos,
	}
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexerror: unexpected character %q at %s", e.Character, e.Pos)
}
