package ast

import (
	"github.com/lumenlang/lumenc/report"
	"github.com/lumenlang/lumenc/types"
)

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node

	// stmtNode is a marker distinguishing statements from other nodes.
	stmtNode()
}

// StmtBase is the base struct for all statement nodes.
type StmtBase struct {
	ASTBase
}

func (StmtBase) stmtNode() {}

// NewStmtBaseOn creates a new statement base with the given span.
func NewStmtBaseOn(span *report.TextSpan) StmtBase {
	return StmtBase{ASTBase: NewASTBaseOn(span)}
}

// -----------------------------------------------------------------------------

// VarDecl represents a variable declaration: one declared type shared by one
// or more names, each with an optional initializer.
type VarDecl struct {
	StmtBase

	// The declared type of all names in this declaration.
	DeclType types.Type

	// The declared names, in source order.
	Names []VarName
}

// VarName is a single declared name within a variable declaration.
type VarName struct {
	Name    string
	NamePos *report.TextSpan

	// The optional initializer.  Nil when the name is declared without one.
	Init Expr
}

// ExprStmt represents an expression evaluated for its side effects.
type ExprStmt struct {
	StmtBase

	Expr Expr
}

// PrintStmt represents a print statement with one or more arguments.
type PrintStmt struct {
	StmtBase

	Args []Expr
}

// ReadStmt represents a read statement naming the variable read into.
type ReadStmt struct {
	StmtBase

	Name    string
	NamePos *report.TextSpan
}

// -----------------------------------------------------------------------------

// IfStmt represents an if/else-if/else chain.
type IfStmt struct {
	StmtBase

	// The conditional arms of the chain: the leading if plus any else-ifs.
	Arms []CondArm

	// The optional else block.  Nil when absent.
	ElseBlock []Stmt
}

// CondArm is a single conditional arm of an if chain.
type CondArm struct {
	Cond Expr
	Body []Stmt
}

// WhileStmt represents a while loop.
type WhileStmt struct {
	StmtBase

	Cond Expr
	Body []Stmt
}

// DoWhileStmt represents a do-while loop: the body runs once before the
// condition is first tested.
type DoWhileStmt struct {
	StmtBase

	Body []Stmt
	Cond Expr
}

// ForStmt represents a C-style for loop.  Init, Cond, and Updates are all
// optional.
type ForStmt struct {
	StmtBase

	Init    Stmt
	Cond    Expr
	Updates []Expr
	Body    []Stmt
}

// SwitchStmt represents a switch statement.  Case labels are raw lexemes, not
// expressions: they are never type-checked against the scrutinee.
type SwitchStmt struct {
	StmtBase

	Scrutinee Expr
	Cases     []CaseArm

	// The optional default block.  Nil when absent.
	DefaultBlock []Stmt
}

// CaseArm is a single case of a switch statement.
type CaseArm struct {
	Label    string
	LabelPos *report.TextSpan
	Body     []Stmt
}

// ReturnStmt represents a return statement with an optional value.
type ReturnStmt struct {
	StmtBase

	// The returned value.  Nil for a bare return.
	Value Expr
}

// BlockStmt represents a freestanding braced block, which introduces a new
// scope.
type BlockStmt struct {
	StmtBase

	Stmts []Stmt
}
