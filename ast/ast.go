package ast

import "github.com/lumenlang/lumenc/report"

// Node is the abstract interface for all AST nodes.
type Node interface {
	// The text span of the node.
	Span() *report.TextSpan
}

// ASTBase is a utility base struct for all AST nodes.
type ASTBase struct {
	// The span over which the AST node occurs.
	span *report.TextSpan
}

// NewASTBaseOn creates a new AST base with the given span.
func NewASTBaseOn(span *report.TextSpan) ASTBase {
	return ASTBase{span: span}
}

// NewASTBaseOver creates a new AST base spanning over two spans.
func NewASTBaseOver(start, end *report.TextSpan) ASTBase {
	return ASTBase{span: report.NewSpanOver(start, end)}
}

func (ab ASTBase) Span() *report.TextSpan {
	return ab.span
}

// -----------------------------------------------------------------------------

// Program is the root node of a parsed source file.  Its items are function
// definitions and the entry-point definition, in source order.
type Program struct {
	Items []Node
}
