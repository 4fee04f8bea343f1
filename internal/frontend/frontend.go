package frontend

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/ian-shakespeare/gmplus/internal/ast"
	"github.com/ian-shakespeare/gmplus/internal/lexer"
	"github.com/ian-shakespeare/gmplus/internal/parser"
)

// Result is everything the front end produced for one source.
type Result struct {
	Tokens  []lexer.Token
	Program *ast.Program
}

type Frontend struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Frontend {
	return &Frontend{logger: logger}
}

func (f *Frontend) ReadSource(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading source %s", path)
	}
	f.logger.Debug("read source", "path", path, "bytes", len(content))
	return string(content), nil
}

// Build tokenizes and parses source. Errors are the *lexer.LexError or
// *parser.ParseError that stopped it.
func (f *Frontend) Build(source string) (Result, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return Result{}, err
	}
	f.logger.Debug("tokenized", "tokens", len(tokens))

	program, err := parser.Parse(tokens)
	if err != nil {
		return Result{}, err
	}

	nodes := 0
	ast.Walk(program, func(ast.Node) bool {
		nodes++
		return true
	})
	f.logger.Debug("parsed", "statements", len(program.Body), "nodes", nodes)

	return Result{Tokens: tokens, Program: program}, nil
}

func (f *Frontend) BuildFile(path string) (Result, error) {
	source, err := f.ReadSource(path)
	if err != nil {
		return Result{}, err
	}

	result, err := f.Build(source)
	if err != nil {
		return Result{}, errors.WithMessage(err, path)
	}
	return result, nil
}
