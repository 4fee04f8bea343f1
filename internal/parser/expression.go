package parser

import (
	"strconv"

	"github.com/ian-shakespeare/gmplus/internal/ast"
	"github.com/ian-shakespeare/gmplus/internal/lexer"
	"github.com/ian-shakespeare/gmplus/pkg/array"
)

// span is the window of tokens an expression production may consume. bound
// is the token just past the window and is what gets reported when a
// production runs out of tokens.
type span struct {
	tokens []lexer.Token
	bound  lexer.Token
}

// window returns tokens[from:to] bounded by tokens[to].
func window(tokens []lexer.Token, from, to int) span {
	return span{tokens: tokens[from:to], bound: tokens[to]}
}

// rest spans an EOF-terminated stream, bounded by its EOF.
func rest(tokens []lexer.Token) span {
	return window(tokens, 0, len(tokens)-1)
}

func (s span) len() int {
	return len(s.tokens)
}

func (s span) at(i int) lexer.Token {
	if i < len(s.tokens) {
		return s.tokens[i]
	}
	return s.bound
}

func (s span) slice(from, to int) span {
	return span{tokens: s.tokens[from:to], bound: s.at(to)}
}

func parseExpression(s span) (int, ast.Node, error) {
	if s.len() >= 2 && s.tokens[0].Is(lexer.IDENTIFIER_TOKEN) && s.tokens[1].Is(lexer.OPEN_PAREN_TOKEN) {
		closing := parens.matchClose(s.tokens, 1)
		if closing < 0 {
			return 0, nil, expectedToken(lexer.CLOSE_PAREN_TOKEN, s.bound)
		}
		return parseFunctionCall(s.slice(0, closing+1))
	}

	return parseAdditive(s)
}

// parseWholeExpression parses an expression that must use every token of s.
func parseWholeExpression(s span) (ast.Node, error) {
	if s.len() == 0 {
		return nil, NewParseError(EXPRESSION_PRODUCTION, s.bound)
	}

	consumed, node, err := parseExpression(s)
	if err != nil {
		return nil, err
	}
	if consumed < s.len() {
		return nil, expectedToken(s.bound.Type, s.tokens[consumed])
	}

	return node, nil
}

// parseFunctionCall expects s to hold exactly Identifier '(' ArgList ')'.
func parseFunctionCall(s span) (int, ast.Node, error) {
	if s.len() < 3 {
		return 0, nil, expectedToken(lexer.CLOSE_PAREN_TOKEN, s.bound)
	}

	arguments, err := parseArguments(s.slice(2, s.len()-1))
	if err != nil {
		return 0, nil, err
	}

	return s.len(), &ast.FunctionCall{
		Callee:    &ast.Identifier{Name: s.tokens[0].Value},
		Arguments: arguments,
	}, nil
}

func parseArguments(s span) (*ast.Arguments, error) {
	arguments := &ast.Arguments{}

	for _, piece := range groups.split(s, lexer.COMMA_TOKEN) {
		value, err := parseWholeExpression(piece)
		if err != nil {
			return nil, err
		}
		arguments.Values = append(arguments.Values, value)
	}

	return arguments, nil
}

func parseAdditive(s span) (int, ast.Node, error) {
	consumed, left, err := parseMultiplicative(s)
	if err != nil {
		return 0, nil, err
	}

	for consumed < s.len() && isOperator(s.tokens[consumed], "+", "-") {
		operatorToken := s.tokens[consumed]
		operator, err := parsePrimary(operatorToken)
		if err != nil {
			return 0, nil, err
		}

		n, right, err := parseMultiplicative(s.slice(consumed+1, s.len()))
		if err != nil {
			return 0, nil, err
		}

		left, err = parseBinaryExpression(left, operator, right, operatorToken)
		if err != nil {
			return 0, nil, err
		}
		consumed += 1 + n
	}

	return consumed, left, nil
}

func parseMultiplicative(s span) (int, ast.Node, error) {
	left, err := primaryAt(s, 0)
	if err != nil {
		return 0, nil, err
	}
	consumed := 1

	for consumed < s.len() && isOperator(s.tokens[consumed], "*", "/") {
		operatorToken := s.tokens[consumed]
		operator, err := parsePrimary(operatorToken)
		if err != nil {
			return 0, nil, err
		}

		right, err := primaryAt(s, consumed+1)
		if err != nil {
			return 0, nil, err
		}

		left, err = parseBinaryExpression(left, operator, right, operatorToken)
		if err != nil {
			return 0, nil, err
		}
		consumed += 2
	}

	return consumed, left, nil
}

// parseBinaryExpression only checks that operator is some BinaryOperator
// node; the symbol it carries is not inspected.
func parseBinaryExpression(left, operator, right ast.Node, at lexer.Token) (ast.Node, error) {
	if !ast.WeakEqual(operator, &ast.BinaryOperator{Symbol: "+"}) {
		return nil, expectedToken(lexer.BINARY_OPERATOR_TOKEN, at)
	}

	return &ast.BinaryExpression{
		Left:     left,
		Operator: operator,
		Right:    right,
	}, nil
}

func primaryAt(s span, i int) (ast.Node, error) {
	if i >= s.len() {
		return nil, NewParseError(PRIMARY_PRODUCTION, s.bound)
	}
	return parsePrimary(s.tokens[i])
}

func parsePrimary(token lexer.Token) (ast.Node, error) {
	node := primary(token)
	if ast.WeakEqual(node, &ast.Failure{}) {
		if token.Is(lexer.NUMERIC_LITERAL_TOKEN) {
			return nil, NewParseError(INT64_LITERAL_PRODUCTION, token)
		}
		return nil, NewParseError(PRIMARY_PRODUCTION, token)
	}
	return node, nil
}

func primary(token lexer.Token) ast.Node {
	switch token.Type {
	case lexer.NUMERIC_LITERAL_TOKEN:
		value, err := strconv.ParseInt(token.Value, 10, 64)
		if err != nil {
			return &ast.Failure{}
		}
		return &ast.NumericLiteral{Value: value}
	case lexer.IDENTIFIER_TOKEN:
		return &ast.Identifier{Name: token.Value}
	case lexer.BINARY_OPERATOR_TOKEN:
		return &ast.BinaryOperator{Symbol: token.Value}
	default:
		return &ast.Failure{}
	}
}

func isOperator(token lexer.Token, symbols ...string) bool {
	return token.Is(lexer.BINARY_OPERATOR_TOKEN) && array.Contains(symbols, token.Value)
}
