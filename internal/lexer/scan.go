package lexer

import (
	"errors"
	"io"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/ian-shakespeare/gmplus/pkg/array"
	"github.com/ian-shakespeare/gmplus/pkg/iterator"
	"github.com/ian-shakespeare/gmplus/pkg/runes"
)

var skippable = []rune{' ', '\t', '\r', '\n'}

type Scanner struct {
	input *runes.Reader
	pos   Position
}

func NewScanner(input io.Reader) *Scanner {
	return &Scanner{
		input: runes.NewReader(input),
		pos:   Position{Offset: 0, Line: 1, Column: 1},
	}
}

// Tokenize scans the whole source and returns its tokens followed by a
// single EOF token.
func Tokenize(source string) ([]Token, error) {
	return iterator.CollectUntilErr(NewScanner(strings.NewReader(source)).Tokens())
}

// NextToken returns the next token of the input. Once the input is exhausted
// every call returns an EOF token.
func (s *Scanner) NextToken() (Token, error) {
	for {
		start := s.pos
		char, err := s.getNextCharacter()
		if errors.Is(err, io.EOF) {
			return NewEOF(start), nil
		}
		if err != nil {
			return Token{}, err
		}

		switch {
		case array.Contains(skippable, char):
			continue
		case isIdentifierStart(char):
			return s.scanIdentifier(char, start)
		case isDigit(char):
			return s.scanNumeric(char, start)
		}

		if tokenType, ok := punctuation[char]; ok {
			return Token{Type: tokenType, Value: string(char), Pos: start}, nil
		}

		return Token{}, NewLexError(char, start)
	}
}

// Tokens yields every token up to and including EOF. Iteration stops after
// the first error.
func (s *Scanner) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			token, err := s.NextToken()
			if !yield(token, err) {
				return
			}
			if err != nil || token.Type == EOF_TOKEN {
				return
			}
		}
	}
}

func (s *Scanner) getNextCharacter() (rune, error) {
	char, err := s.input.NextRune()
	if errors.Is(err, runes.ErrInvalidRune) {
		return 0, NewLexError(utf8.RuneError, s.pos)
	}
	if err != nil {
		return 0, err
	}

	s.pos.Offset++
	if char == '\n' {
		s.pos.Line++
		s.pos.Column = 1
	} else {
		s.pos.Column++
	}

	return char, nil
}

// scanWhile extends word with every following rune accepted by cond.
func (s *Scanner) scanWhile(word []rune, cond func(rune) bool) ([]rune, error) {
	for {
		next, err := s.input.PeekRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, runes.ErrInvalidRune) {
			return nil, NewLexError(utf8.RuneError, s.pos)
		}
		if err != nil {
			return nil, err
		}

		if !cond(next) {
			break
		}

		char, err := s.getNextCharacter()
		if err != nil {
			return nil, err
		}
		word = append(word, char)
	}

	return word, nil
}

func (s *Scanner) scanIdentifier(first rune, start Position) (Token, error) {
	word, err := s.scanWhile([]rune{first}, isIdentifierPart)
	if err != nil {
		return Token{}, err
	}

	value := string(word)
	t := IDENTIFIER_TOKEN
	if keyword, ok := keywords[value]; ok {
		t = keyword
	}

	return Token{Type: t, Value: value, Pos: start}, nil
}

func (s *Scanner) scanNumeric(first rune, start Position) (Token, error) {
	word, err := s.scanWhile([]rune{first}, isDigit)
	if err != nil {
		return Token{}, err
	}

	return Token{Type: NUMERIC_LITERAL_TOKEN, Value: string(word), Pos: start}, nil
}

func isDigit(char rune) bool {
	return char >= '0' && char <= '9'
}

func isIdentifierStart(char rune) bool {
	return (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || char == '_'
}

func isIdentifierPart(char rune) bool {
	return isIdentifierStart(char) || isDigit(char)
}
