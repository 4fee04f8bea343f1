package lexer_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ian-shakespeare/gmplus/internal/lexer"
	"github.com/ian-shakespeare/gmplus/pkg/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type typed struct {
	Type  lexer.TokenType
	Value string
}

func stripPositions(tokens []lexer.Token) []typed {
	return array.Map(tokens, func(t lexer.Token) typed {
		return typed{Type: t.Type, Value: t.Value}
	})
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"", "   ", "\n\t\r\n"} {
			tokens, err := lexer.Tokenize(input)
			require.NoError(t, err)
			assert.Equal(t, []typed{{lexer.EOF_TOKEN, lexer.EOF_LEXEME}}, stripPositions(tokens))
		}
	})

	t.Run("declaration", func(t *testing.T) {
		t.Parallel()

		tokens, err := lexer.Tokenize("let x = 1 + 2;")
		require.NoError(t, err)
		assert.Equal(t, []typed{
			{lexer.LET_TOKEN, "let"},
			{lexer.IDENTIFIER_TOKEN, "x"},
			{lexer.EQUALS_TOKEN, "="},
			{lexer.NUMERIC_LITERAL_TOKEN, "1"},
			{lexer.BINARY_OPERATOR_TOKEN, "+"},
			{lexer.NUMERIC_LITERAL_TOKEN, "2"},
			{lexer.SEMICOLON_TOKEN, ";"},
			{lexer.EOF_TOKEN, lexer.EOF_LEXEME},
		}, stripPositions(tokens))
	})

	singles := []struct {
		name      string
		value     string
		tokenType lexer.TokenType
	}{
		{"semicolon", ";", lexer.SEMICOLON_TOKEN},
		{"equals", "=", lexer.EQUALS_TOKEN},
		{"openParen", "(", lexer.OPEN_PAREN_TOKEN},
		{"closeParen", ")", lexer.CLOSE_PAREN_TOKEN},
		{"openCurly", "{", lexer.OPEN_CURLY_TOKEN},
		{"closeCurly", "}", lexer.CLOSE_CURLY_TOKEN},
		{"comma", ",", lexer.COMMA_TOKEN},
		{"plus", "+", lexer.BINARY_OPERATOR_TOKEN},
		{"minus", "-", lexer.BINARY_OPERATOR_TOKEN},
		{"star", "*", lexer.BINARY_OPERATOR_TOKEN},
		{"slash", "/", lexer.BINARY_OPERATOR_TOKEN},
		{"integer", "1234567890", lexer.NUMERIC_LITERAL_TOKEN},
		{"identifier", "_my_Var9", lexer.IDENTIFIER_TOKEN},
		{"let", "let", lexer.LET_TOKEN},
		{"const", "const", lexer.CONST_TOKEN},
		{"function", "function", lexer.FUNCTION_TOKEN},
		{"return", "return", lexer.RETURN_TOKEN},
		{"keywordPrefix", "letter", lexer.IDENTIFIER_TOKEN},
		{"keywordSuffix", "const2", lexer.IDENTIFIER_TOKEN},
		{"keywordUnderscore", "_return", lexer.IDENTIFIER_TOKEN},
		{"keywordCase", "Function", lexer.IDENTIFIER_TOKEN},
	}

	for _, input := range singles {
		t.Run(input.name, func(t *testing.T) {
			t.Parallel()

			tokens, err := lexer.Tokenize(input.value)
			require.NoError(t, err)
			require.Len(t, tokens, 2)
			assert.Equal(t, typed{input.tokenType, input.value}, stripPositions(tokens)[0])
			assert.Equal(t, lexer.EOF_TOKEN, tokens[1].Type)
		})
	}

	t.Run("numberThenName", func(t *testing.T) {
		t.Parallel()

		tokens, err := lexer.Tokenize("12ab")
		require.NoError(t, err)
		assert.Equal(t, []typed{
			{lexer.NUMERIC_LITERAL_TOKEN, "12"},
			{lexer.IDENTIFIER_TOKEN, "ab"},
			{lexer.EOF_TOKEN, lexer.EOF_LEXEME},
		}, stripPositions(tokens))
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		inputs := []struct {
			value  string
			char   rune
			offset int
		}{
			{"#", '#', 0},
			{"let x = 1 % 2;", '%', 10},
			{"let é = 1;", 'é', 4},
			{"x\xff", utf8.RuneError, 1},
		}

		for _, input := range inputs {
			tokens, err := lexer.Tokenize(input.value)
			assert.Nil(t, tokens)

			var lexErr *lexer.LexError
			require.True(t, errors.As(err, &lexErr), "input %q", input.value)
			assert.Equal(t, input.char, lexErr.Character)
			assert.Equal(t, input.offset, lexErr.Pos.Offset)
		}
	})

	t.Run("reconstruct", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"let x = 1 + 2;",
			"const total=a*b-c/d;",
			"function add(a, b) {\n\treturn a + b;\n}\r\nadd(1, 2);",
			";;; _x1 99 {}(),",
		}

		for _, input := range inputs {
			tokens, err := lexer.Tokenize(input)
			require.NoError(t, err)
			require.Equal(t, lexer.EOF_TOKEN, tokens[len(tokens)-1].Type)

			lexemes := array.Map(tokens[:len(tokens)-1], func(t lexer.Token) string {
				return t.Value
			})
			expect := strings.Map(func(r rune) rune {
				if strings.ContainsRune(" \t\r\n", r) {
					return -1
				}
				return r
			}, input)
			assert.Equal(t, expect, strings.Join(lexemes, ""))

			for _, token := range tokens[:len(tokens)-1] {
				assert.NotEqual(t, lexer.EOF_TOKEN, token.Type)
			}
		}
	})

	t.Run("positions", func(t *testing.T) {
		t.Parallel()

		tokens, err := lexer.Tokenize("let a = 1;\n  return a;")
		require.NoError(t, err)

		expect := []lexer.Position{
			{Offset: 0, Line: 1, Column: 1},
			{Offset: 4, Line: 1, Column: 5},
			{Offset: 6, Line: 1, Column: 7},
			{Offset: 8, Line: 1, Column: 9},
			{Offset: 9, Line: 1, Column: 10},
			{Offset: 13, Line: 2, Column: 3},
			{Offset: 20, Line: 2, Column: 10},
			{Offset: 21, Line: 2, Column: 11},
			{Offset: 22, Line: 2, Column: 12},
		}
		assert.Equal(t, expect, array.Map(tokens, func(t lexer.Token) lexer.Position {
			return t.Pos
		}))
	})
}

func TestScanner(t *testing.T) {
	t.Parallel()

	t.Run("eofRepeats", func(t *testing.T) {
		t.Parallel()

		s := lexer.NewScanner(strings.NewReader("x"))
		token, err := s.NextToken()
		require.NoError(t, err)
		assert.Equal(t, lexer.IDENTIFIER_TOKEN, token.Type)

		for range 3 {
			token, err = s.NextToken()
			require.NoError(t, err)
			assert.Equal(t, lexer.EOF_TOKEN, token.Type)
		}
	})

	t.Run("tokensStopAtError", func(t *testing.T) {
		t.Parallel()

		s := lexer.NewScanner(strings.NewReader("a b # c d"))
		var values []string
		var errs []error
		for token, err := range s.Tokens() {
			values = append(values, token.Value)
			errs = append(errs, err)
		}

		assert.Equal(t, []string{"a", "b", ""}, values)
		assert.NoError(t, errs[0])
		assert.NoError(t, errs[1])
		assert.Error(t, errs[2])
	})

	t.Run("tokensEndWithEOF", func(t *testing.T) {
		t.Parallel()

		s := lexer.NewScanner(strings.NewReader("f(1)"))
		count := 0
		var last lexer.Token
		for token, err := range s.Tokens() {
			require.NoError(t, err)
			last = token
			count++
		}

		assert.Equal(t, 5, count)
		assert.Equal(t, lexer.EOF_TOKEN, last.Type)
	})
}

func TestTokenString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Identifier(add)", lexer.Token{Type: lexer.IDENTIFIER_TOKEN, Value: "add"}.String())
	assert.Equal(t, "EOF", lexer.NewEOF(lexer.Position{}).String())
	assert.Equal(t, "Unknown", lexer.UNKNOWN_TOKEN.String())
	assert.Equal(t, "2:7", lexer.Position{Line: 2, Column: 7}.String())
}
