package ast

import (
	"fmt"
	"io"
	"strings"
)

const DEFAULT_INDENT = 2

// Printer writes an indented, human readable rendering of a tree. The layout
// is meant for inspection and is not parsed back.
type Printer struct {
	Indent int
}

func Fprint(w io.Writer, n Node) error {
	return Printer{Indent: DEFAULT_INDENT}.Fprint(w, n)
}

func Sprint(n Node) string {
	var sb strings.Builder
	_ = Fprint(&sb, n)
	return sb.String()
}

func (p Printer) Fprint(w io.Writer, n Node) error {
	pw := &printWriter{w: w, indent: max(p.Indent, 0)}
	pw.node(n, 0)
	return pw.err
}

type printWriter struct {
	w      io.Writer
	indent int
	err    error
}

func (p *printWriter) line(depth int, format string, a ...any) {
	if p.err != nil {
		return
	}
	pad := strings.Repeat(" ", depth*p.indent)
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", pad, fmt.Sprintf(format, a...))
}

func (p *printWriter) block(depth int, title string, body func()) {
	p.line(depth, "%s {", title)
	body()
	p.line(depth, "}")
}

func (p *printWriter) node(n Node, depth int) {
	switch n := n.(type) {
	case nil:
		p.line(depth, "<nil>")
	case *Program:
		p.block(depth, "Program", func() {
			for _, stmt := range n.Body {
				p.node(stmt, depth+1)
			}
		})
	case *NumericLiteral:
		p.line(depth, "NumericLiteral: %d", n.Value)
	case *Identifier:
		p.line(depth, "Identifier: %s", n.Name)
	case *BinaryOperator:
		p.line(depth, "BinaryOperator: %s", n.Symbol)
	case *BinaryExpression:
		p.block(depth, "BinaryExpression", func() {
			p.node(n.Left, depth+1)
			p.node(n.Operator, depth+1)
			p.node(n.Right, depth+1)
		})
	case *DeclarationType:
		p.line(depth, "DeclarationType: %s", n.Kind)
	case *VariableDeclaration:
		p.block(depth, "VariableDeclaration", func() {
			if n.DeclarationType != nil {
				p.node(n.DeclarationType, depth+1)
			}
			p.line(depth+1, "Name: %s", n.Name)
			p.block(depth+1, "Value", func() {
				p.node(n.Value, depth+2)
			})
		})
	case *FunctionParameter:
		p.line(depth, "FunctionParameter: %s", n.Name)
	case *FunctionDeclaration:
		p.block(depth, "FunctionDeclaration", func() {
			p.line(depth+1, "Name: %s", n.Name)
			p.block(depth+1, "Parameters", func() {
				for _, param := range n.Parameters {
					p.node(param, depth+2)
				}
			})
			if n.Body != nil {
				p.node(n.Body, depth+1)
			}
		})
	case *Arguments:
		p.block(depth, "Arguments", func() {
			for _, value := range n.Values {
				p.node(value, depth+1)
			}
		})
	case *FunctionCall:
		p.block(depth, "FunctionCall", func() {
			if n.Callee != nil {
				p.node(n.Callee, depth+1)
			}
			if n.Arguments != nil {
				p.node(n.Arguments, depth+1)
			}
		})
	case *ReturnStatement:
		p.block(depth, "ReturnStatement", func() {
			p.node(n.Value, depth+1)
		})
	default:
		p.line(depth, "%s", n.Type())
	}
}
