package runes

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"
)

var ErrInvalidRune = errors.New("rune error")

type Reader struct {
	*bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{bufio.NewReader(r)}
}

// PeekRunes returns up to n runes without consuming them. Fewer runes are
// returned when the input ends first.
func (r *Reader) PeekRunes(n int) ([]rune, error) {
	if n < 1 {
		return nil, nil
	}

	word := []rune{}
	peekOffset := 0

	for i := 0; i < n; i++ {
		found := false

	charBuilder:
		for peekBytes := utf8.UTFMax; peekBytes > 0; peekBytes-- {
			b, err := r.Peek(peekBytes + peekOffset)
			if err != nil {
				continue charBuilder
			}

			char, size := utf8.DecodeRune(b[peekOffset:])
			if char == utf8.RuneError && size <= 1 {
				return nil, ErrInvalidRune
			}

			peekOffset += size
			word = append(word, char)
			found = true
			break charBuilder
		}

		if !found {
			break
		}
	}

	return word, nil
}

// PeekRune returns the next rune without consuming it, or io.EOF when the
// input is exhausted.
func (r *Reader) PeekRune() (rune, error) {
	chars, err := r.PeekRunes(1)
	if err != nil {
		return 0, err
	}
	if len(chars) == 0 {
		return 0, io.EOF
	}
	return chars[0], nil
}

// NextRune consumes one rune, rejecting invalid UTF-8.
func (r *Reader) NextRune() (rune, error) {
	char, size, err := r.ReadRune()
	if err != nil {
		return 0, err
	}
	if char == utf8.RuneError && size == 1 {
		return 0, ErrInvalidRune
	}
	return char, nil
}
