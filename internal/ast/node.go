package ast

import "github.com/ian-shakespeare/gmplus/internal/lexer"

type NodeType int

const (
	UNKNOWN_NODE              NodeType = 0
	PROGRAM_NODE              NodeType = 1
	NUMERIC_LITERAL_NODE      NodeType = 2
	IDENTIFIER_NODE           NodeType = 3
	BINARY_OPERATOR_NODE      NodeType = 4
	BINARY_EXPRESSION_NODE    NodeType = 5
	DECLARATION_TYPE_NODE     NodeType = 6
	VARIABLE_DECLARATION_NODE NodeType = 7
	FUNCTION_PARAMETER_NODE   NodeType = 8
	FUNCTION_DECLARATION_NODE NodeType = 9
	ARGUMENTS_NODE            NodeType = 10
	FUNCTION_CALL_NODE        NodeType = 11
	RETURN_STATEMENT_NODE     NodeType = 12
	IGNORE_NODE               NodeType = 13
	FAILURE_NODE              NodeType = 14
)

var nodeTypeNames = map[NodeType]string{
	PROGRAM_NODE:              "Program",
	NUMERIC_LITERAL_NODE:      "NumericLiteral",
	IDENTIFIER_NODE:           "Identifier",
	BINARY_OPERATOR_NODE:      "BinaryOperator",
	BINARY_EXPRESSION_NODE:    "BinaryExpression",
	DECLARATION_TYPE_NODE:     "DeclarationType",
	VARIABLE_DECLARATION_NODE: "VariableDeclaration",
	FUNCTION_PARAMETER_NODE:   "FunctionParameter",
	FUNCTION_DECLARATION_NODE: "FunctionDeclaration",
	ARGUMENTS_NODE:            "Arguments",
	FUNCTION_CALL_NODE:        "FunctionCall",
	RETURN_STATEMENT_NODE:     "ReturnStatement",
	IGNORE_NODE:               "Ignore",
	FAILURE_NODE:              "Failure",
}

func (t NodeType) String() string {
	if name, ok := nodeTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Node is implemented only by the variants in this file.
type Node interface {
	Type() NodeType
	node()
}

// Program is an ordered block of statements, either the whole source or a
// function body.
type Program struct {
	Body []Node
}

type NumericLiteral struct {
	Value int64
}

type Identifier struct {
	Name string
}

// BinaryOperator holds one of + - * /.
type BinaryOperator struct {
	Symbol string
}

type BinaryExpression struct {
	Left     Node
	Operator Node
	Right    Node
}

// DeclarationType records whether a declaration used let or const.
type DeclarationType struct {
	Kind lexer.TokenType
}

type VariableDeclaration struct {
	DeclarationType *DeclarationType
	Name            string
	Value           Node
}

type FunctionParameter struct {
	Name string
}

type FunctionDeclaration struct {
	Name       string
	Parameters []*FunctionParameter
	Body       *Program
}

type Arguments struct {
	Values []Node
}

type FunctionCall struct {
	Callee    *Identifier
	Arguments *Arguments
}

type ReturnStatement struct {
	Value Node
}

// Ignore marks a statement that parsed but contributes nothing, such as a
// bare semicolon.
type Ignore struct{}

// Failure marks a rejected primary. It never leaves the parser.
type Failure struct{}

func (*Program) Type() NodeType             { return PROGRAM_NODE }
func (*NumericLiteral) Type() NodeType      { return NUMERIC_LITERAL_NODE }
func (*Identifier) Type() NodeType          { return IDENTIFIER_NODE }
func (*BinaryOperator) Type() NodeType      { return BINARY_OPERATOR_NODE }
func (*BinaryExpression) Type() NodeType    { return BINARY_EXPRESSION_NODE }
func (*DeclarationType) Type() NodeType     { return DECLARATION_TYPE_NODE }
func (*VariableDeclaration) Type() NodeType { return VARIABLE_DECLARATION_NODE }
func (*FunctionParameter) Type() NodeType   { return FUNCTION_PARAMETER_NODE }
func (*FunctionDeclaration) Type() NodeType { return FUNCTION_DECLARATION_NODE }
func (*Arguments) Type() NodeType           { return ARGUMENTS_NODE }
func (*FunctionCall) Type() NodeType        { return FUNCTION_CALL_NODE }
func (*ReturnStatement) Type() NodeType     { return RETURN_STATEMENT_NODE }
func (*Ignore) Type() NodeType              { return IGNORE_NODE }
func (*Failure) Type() NodeType             { return FAILURE_NODE }

func (*Program) node()             {}
func (*NumericLiteral) node()      {}
func (*Identifier) node()          {}
func (*BinaryOperator) node()      {}
func (*BinaryExpression) node()    {}
func (*DeclarationType) node()     {}
func (*VariableDeclaration) node() {}
func (*FunctionParameter) node()   {}
func (*FunctionDeclaration) node() {}
func (*Arguments) node()           {}
func (*FunctionCall) node()        {}
func (*ReturnStatement) node()     {}
func (*Ignore) node()              {}
func (*Failure) node()             {}

// WeakEqual compares only the variants of a and b, ignoring their payloads.
func WeakEqual(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Type() == b.Type()
}

// IsSentinel reports whether n is Ignore or Failure.
func IsSentinel(n Node) bool {
	return WeakEqual(n, &Ignore{}) || WeakEqual(n, &Failure{})
}

// Walk calls fn for n and then for each of its descendants in source order.
// Returning false from fn skips the children of that node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	switch n := n.(type) {
	case *Program:
		for _, stmt := range n.Body {
			Walk(stmt, fn)
		}
	case *BinaryExpression:
		Walk(n.Left, fn)
		Walk(n.Operator, fn)
		Walk(n.Right, fn)
	case *VariableDeclaration:
		if n.DeclarationType != nil {
			Walk(n.DeclarationType, fn)
		}
		Walk(n.Value, fn)
	case *FunctionDeclaration:
		for _, param := range n.Parameters {
			Walk(param, fn)
		}
		if n.Body != nil {
			Walk(n.Body, fn)
		}
	case *Arguments:
		for _, value := range n.Values {
			Walk(value, fn)
		}
	case *FunctionCall:
		if n.Callee != nil {
			Walk(n.Callee, fn)
		}
		if n.Arguments != nil {
			Walk(n.Arguments, fn)
		}
	case *ReturnStatement:
		Walk(n.Value, fn)
	}
}
