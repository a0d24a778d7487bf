package ast

import (
	"github.com/lumenlang/lumenc/report"
	"github.com/lumenlang/lumenc/types"
)

// FuncDef is the AST node for a function definition.
type FuncDef struct {
	ASTBase

	// The name of the function.
	Name string

	// The span of the function's name.
	NamePos *report.TextSpan

	// The function's parameters, in declaration order.
	Params []Param

	// The return type of the function.  Void when the definition carries no
	// return type annotation.
	ReturnType types.Type

	// The statements of the function body.
	Body []Stmt
}

// Param represents a single function parameter.
type Param struct {
	Name    string
	NamePos *report.TextSpan
	Type    types.Type
}

// EntryDef is the AST node for the program entry point.  The entry point has
// no parameters and returns nothing.
type EntryDef struct {
	ASTBase

	// The statements of the entry-point body.
	Body []Stmt
}
