package main

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ian-shakespeare/gmplus/internal/ast"
	"github.com/ian-shakespeare/gmplus/internal/config"
	"github.com/ian-shakespeare/gmplus/internal/lexer"
)

// renderer writes tokens and trees either as plain text or as YAML
// documents. YAML documents share one encoder so they come out separated by
// "---".
type renderer struct {
	format string
	indent int
	enc    *yaml.Encoder
}

func (r *renderer) header(w io.Writer, path string, strict bool) error {
	if r.format == config.FORMAT_YAML {
		return r.encode(w, mapping(
			"path", scalar(path),
			"strict", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(strict)},
		))
	}

	_, err := fmt.Fprintf(w, "Path: %s\nStrict: %t\n\n", path, strict)
	return err
}

func (r *renderer) tokens(w io.Writer, tokens []lexer.Token) error {
	if r.format == config.FORMAT_YAML {
		return r.encode(w, tokensNode(tokens))
	}

	for _, token := range tokens {
		if _, err := fmt.Fprintf(w, "%-14s %-10q %s\n", token.Type, token.Value, token.Pos); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func (r *renderer) tree(w io.Writer, program *ast.Program) error {
	if r.format == config.FORMAT_YAML {
		return r.encode(w, treeNode(program))
	}
	return ast.Printer{Indent: r.indent}.Fprint(w, program)
}

func (r *renderer) encode(w io.Writer, doc *yaml.Node) error {
	if r.enc == nil {
		r.enc = yaml.NewEncoder(w)
		r.enc.SetIndent(r.indent)
	}
	return r.enc.Encode(doc)
}

func (r *renderer) close() error {
	if r.enc == nil {
		return nil
	}
	return r.enc.Close()
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func integer(value int64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(value, 10)}
}

func sequence(items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Content: items}
}

// mapping builds a mapping node from alternating keys and values.
func mapping(pairs ...any) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Content = append(m.Content, scalar(pairs[i].(string)), pairs[i+1].(*yaml.Node))
	}
	return m
}

func tokensNode(tokens []lexer.Token) *yaml.Node {
	items := make([]*yaml.Node, 0, len(tokens))
	for _, token := range tokens {
		items = append(items, mapping(
			"type", scalar(token.Type.String()),
			"value", scalar(token.Value),
			"line", integer(int64(token.Pos.Line)),
			"column", integer(int64(token.Pos.Column)),
		))
	}
	return mapping("tokens", sequence(items...))
}

func nodes[T ast.Node](children []T) *yaml.Node {
	items := make([]*yaml.Node, 0, len(children))
	for _, child := range children {
		items = append(items, treeNode(child))
	}
	return sequence(items...)
}

func treeNode(n ast.Node) *yaml.Node {
	if n == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}

	kind := scalar(n.Type().String())

	switch n := n.(type) {
	case *ast.Program:
		return mapping("node", kind, "body", nodes(n.Body))
	case *ast.NumericLiteral:
		return mapping("node", kind, "value", integer(n.Value))
	case *ast.Identifier:
		return mapping("node", kind, "name", scalar(n.Name))
	case *ast.BinaryOperator:
		return mapping("node", kind, "symbol", scalar(n.Symbol))
	case *ast.BinaryExpression:
		return mapping("node", kind,
			"left", treeNode(n.Left),
			"operator", treeNode(n.Operator),
			"right", treeNode(n.Right),
		)
	case *ast.DeclarationType:
		return mapping("node", kind, "kind", scalar(n.Kind.String()))
	case *ast.VariableDeclaration:
		return mapping("node", kind,
			"declaration", scalar(n.DeclarationType.Kind.String()),
			"name", scalar(n.Name),
			"value", treeNode(n.Value),
		)
	case *ast.FunctionParameter:
		return mapping("node", kind, "name", scalar(n.Name))
	case *ast.FunctionDeclaration:
		return mapping("node", kind,
			"name", scalar(n.Name),
			"parameters", nodes(n.Parameters),
			"body", treeNode(n.Body),
		)
	case *ast.Arguments:
		return mapping("node", kind, "values", nodes(n.Values))
	case *ast.FunctionCall:
		return mapping("node", kind,
			"callee", scalar(n.Callee.Name),
			"arguments", nodes(n.Arguments.Values),
		)
	case *ast.ReturnStatement:
		return mapping("node", kind, "value", treeNode(n.Value))
	default:
		return mapping("node", kind)
	}
}
