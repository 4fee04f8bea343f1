package parser

import (
	"slices"

	"github.com/ian-shakespeare/gmplus/internal/ast"
	"github.com/ian-shakespeare/gmplus/internal/lexer"
	"github.com/ian-shakespeare/gmplus/pkg/array"
)

// Parse builds a Program from an EOF-terminated token stream. Every
// production reports how many tokens it used and the loop advances by
// exactly that amount. The first error aborts the parse.
func Parse(tokens []lexer.Token) (*ast.Program, error) {
	if err := checkTerminated(tokens); err != nil {
		return nil, err
	}

	program := &ast.Program{}

	for !tokens[0].Is(lexer.EOF_TOKEN) {
		consumed, statement, err := parseStatement(tokens)
		if err != nil {
			return nil, err
		}
		tokens = tokens[consumed:]

		if ast.WeakEqual(statement, &ast.Ignore{}) {
			continue
		}
		program.Body = append(program.Body, statement)
	}

	return program, nil
}

func checkTerminated(tokens []lexer.Token) error {
	if len(tokens) == 0 {
		return expectedToken(lexer.EOF_TOKEN, lexer.Token{})
	}

	eof := array.Some(tokens, isEOF)
	switch {
	case eof < 0:
		return expectedToken(lexer.EOF_TOKEN, tokens[len(tokens)-1])
	case eof < len(tokens)-1:
		return expectedToken(lexer.EOF_TOKEN, tokens[eof+1])
	default:
		return nil
	}
}

func parseStatement(tokens []lexer.Token) (int, ast.Node, error) {
	first := tokens[0]

	switch first.Type {
	case lexer.LET_TOKEN, lexer.CONST_TOKEN:
		return parseVariableDeclaration(tokens)
	case lexer.FUNCTION_TOKEN:
		return parseFunctionDeclaration(tokens)
	case lexer.IDENTIFIER_TOKEN:
		return parseExpression(rest(tokens))
	case lexer.RETURN_TOKEN:
		return parseReturn(tokens)
	case lexer.SEMICOLON_TOKEN:
		return 1, &ast.Ignore{}, nil
	default:
		return 0, nil, NewParseError(STATEMENT_PRODUCTION, first)
	}
}

// parseVariableDeclaration handles (Let|Const) Identifier Equals Expression
// Semicolon. The initialiser runs up to the first semicolon of the stream.
func parseVariableDeclaration(tokens []lexer.Token) (int, ast.Node, error) {
	declarationType := &ast.DeclarationType{Kind: tokens[0].Type}

	if !tokens[1].Is(lexer.IDENTIFIER_TOKEN) {
		return 0, nil, expectedToken(lexer.IDENTIFIER_TOKEN, tokens[1])
	}
	name := tokens[1].Value

	if !tokens[2].Is(lexer.EQUALS_TOKEN) {
		return 0, nil, expectedToken(lexer.EQUALS_TOKEN, tokens[2])
	}

	semicolon := array.Some(tokens, isSemicolon)
	if semicolon < 0 {
		return 0, nil, expectedToken(lexer.SEMICOLON_TOKEN, tokens[len(tokens)-1])
	}

	value, err := parseWholeExpression(window(tokens, 3, semicolon))
	if err != nil {
		return 0, nil, err
	}

	return semicolon + 1, &ast.VariableDeclaration{
		DeclarationType: declarationType,
		Name:            name,
		Value:           value,
	}, nil
}

// parseFunctionDeclaration handles Function Identifier '(' ParamList ')'
// '{' StatementList '}'. The body is parsed on its own as a nested program
// with a synthetic EOF.
func parseFunctionDeclaration(tokens []lexer.Token) (int, ast.Node, error) {
	if !tokens[1].Is(lexer.IDENTIFIER_TOKEN) {
		return 0, nil, expectedToken(lexer.IDENTIFIER_TOKEN, tokens[1])
	}
	name := tokens[1].Value

	if !tokens[2].Is(lexer.OPEN_PAREN_TOKEN) {
		return 0, nil, expectedToken(lexer.OPEN_PAREN_TOKEN, tokens[2])
	}

	consumed, parameters, err := parseParameters(tokens[3:])
	if err != nil {
		return 0, nil, err
	}

	open := 3 + consumed
	if !tokens[open].Is(lexer.OPEN_CURLY_TOKEN) {
		return 0, nil, expectedToken(lexer.OPEN_CURLY_TOKEN, tokens[open])
	}

	closing := curlies.matchClose(tokens, open)
	if closing < 0 {
		return 0, nil, expectedToken(lexer.CLOSE_CURLY_TOKEN, tokens[len(tokens)-1])
	}

	bodyTokens := append(slices.Clone(tokens[open+1:closing]), lexer.NewEOF(tokens[closing].Pos))
	body, err := Parse(bodyTokens)
	if err != nil {
		return 0, nil, err
	}

	return closing + 1, &ast.FunctionDeclaration{
		Name:       name,
		Parameters: parameters,
		Body:       body,
	}, nil
}

// parseParameters reads ParamList and the closing parenthesis. tokens starts
// just after the opening parenthesis and must end with EOF.
func parseParameters(tokens []lexer.Token) (int, []*ast.FunctionParameter, error) {
	var parameters []*ast.FunctionParameter

	if tokens[0].Is(lexer.CLOSE_PAREN_TOKEN) {
		return 1, parameters, nil
	}

	i := 0
	for {
		if !tokens[i].Is(lexer.IDENTIFIER_TOKEN) {
			return 0, nil, expectedToken(lexer.IDENTIFIER_TOKEN, tokens[i])
		}
		parameters = append(parameters, &ast.FunctionParameter{Name: tokens[i].Value})
		i++

		switch {
		case tokens[i].Is(lexer.COMMA_TOKEN):
			i++
		case tokens[i].Is(lexer.CLOSE_PAREN_TOKEN):
			return i + 1, parameters, nil
		default:
			return 0, nil, expectedToken(lexer.CLOSE_PAREN_TOKEN, tokens[i])
		}
	}
}

// parseReturn handles Return Expression Semicolon.
func parseReturn(tokens []lexer.Token) (int, ast.Node, error) {
	semicolon := array.Some(tokens, isSemicolon)
	if semicolon < 0 {
		return 0, nil, expectedToken(lexer.SEMICOLON_TOKEN, tokens[len(tokens)-1])
	}

	value, err := parseWholeExpression(window(tokens, 1, semicolon))
	if err != nil {
		return 0, nil, err
	}

	return semicolon + 1, &ast.ReturnStatement{Value: value}, nil
}

func isEOF(token lexer.Token) bool {
	return token.Is(lexer.EOF_TOKEN)
}

func isSemicolon(token lexer.Token) bool {
	return token.Is(lexer.SEMICOLON_TOKEN)
}
