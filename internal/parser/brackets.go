package parser

import (
	"github.com/ian-shakespeare/gmplus/internal/lexer"
	"github.com/ian-shakespeare/gmplus/pkg/array"
)

// brackets is a depth counter over the token types that open and close a
// nesting level.
type brackets struct {
	open  []lexer.TokenType
	close []lexer.TokenType
}

var (
	parens  = brackets{open: []lexer.TokenType{lexer.OPEN_PAREN_TOKEN}, close: []lexer.TokenType{lexer.CLOSE_PAREN_TOKEN}}
	curlies = brackets{open: []lexer.TokenType{lexer.OPEN_CURLY_TOKEN}, close: []lexer.TokenType{lexer.CLOSE_CURLY_TOKEN}}
	groups  = brackets{
		open:  []lexer.TokenType{lexer.OPEN_PAREN_TOKEN, lexer.OPEN_CURLY_TOKEN},
		close: []lexer.TokenType{lexer.CLOSE_PAREN_TOKEN, lexer.CLOSE_CURLY_TOKEN},
	}
)

func (b brackets) delta(token lexer.Token) int {
	switch {
	case array.Contains(b.open, token.Type):
		return 1
	case array.Contains(b.close, token.Type):
		return -1
	default:
		return 0
	}
}

// matchClose returns the index of the token that brings the depth back to
// zero, counting from tokens[start]. It returns -1 if the depth never
// returns to zero or drops below it.
func (b brackets) matchClose(tokens []lexer.Token, start int) int {
	depth := 0
	for i := start; i < len(tokens); i++ {
		depth += b.delta(tokens[i])
		if depth == 0 {
			return i
		}
		if depth < 0 {
			return -1
		}
	}
	return -1
}

// split cuts s at every sep token found at depth zero. Each piece is bounded
// by the separator that ended it, the last one by the bound of s. An empty
// span yields no pieces.
func (b brackets) split(s span, sep lexer.TokenType) []span {
	if s.len() == 0 {
		return nil
	}

	pieces := []span{}
	depth := 0
	start := 0

	for i, token := range s.tokens {
		depth += b.delta(token)
		if depth == 0 && token.Is(sep) {
			pieces = append(pieces, s.slice(start, i))
			start = i + 1
		}
	}

	return append(pieces, s.slice(start, s.len()))
}
