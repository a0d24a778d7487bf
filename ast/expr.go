package ast

import (
	"github.com/lumenlang/lumenc/report"
	"github.com/lumenlang/lumenc/types"
)

// Expr is the interface for all expression nodes.  Expressions carry no type
// of their own: resolved types live in a side table keyed by node identity,
// produced by the semantic analyzer.
type Expr interface {
	Node

	// exprNode is a marker distinguishing expressions from other nodes.
	exprNode()
}

// ExprBase is the base struct for all expression nodes.
type ExprBase struct {
	ASTBase
}

func (ExprBase) exprNode() {}

// NewExprBaseOn creates a new expression base with the given span.
func NewExprBaseOn(span *report.TextSpan) ExprBase {
	return ExprBase{ASTBase: NewASTBaseOn(span)}
}

// -----------------------------------------------------------------------------

// LitKind identifies the category of a literal.
type LitKind int

const (
	LitInt = LitKind(iota)
	LitReal
	LitString
	LitChar
	LitBool
)

// Literal represents a single literal value.
type Literal struct {
	ExprBase

	// The category of the literal.
	Kind LitKind

	// The literal's lexeme.  String and char literals have their quotes
	// trimmed; boolean literals are "true" or "false".
	Value string
}

// Identifier represents a named value.
type Identifier struct {
	ExprBase

	Name string
}

// IndexExpr represents indexing into a named array with one index per
// dimension accessed.
type IndexExpr struct {
	ExprBase

	// The name of the indexed array and the span of that name.
	Name    string
	NamePos *report.TextSpan

	// The index expressions, outermost dimension first.
	Indices []Expr
}

// Grouping represents a parenthesized expression.  It is transparent: its
// type is its inner expression's type.
type Grouping struct {
	ExprBase

	Inner Expr
}

// CallExpr represents a function call.
type CallExpr struct {
	ExprBase

	// The name of the called function and the span of that name.
	Callee    string
	CalleePos *report.TextSpan

	Args []Expr
}

// -----------------------------------------------------------------------------

// OpKind identifies a binary or unary operator.
type OpKind int

const (
	// Arithmetic operators.
	OpAdd = OpKind(iota)
	OpSub
	OpMul
	OpDiv
	OpMod

	// Equality operators.
	OpEq
	OpNeq

	// Relational operators.
	OpLt
	OpLe
	OpGt
	OpGe

	// Logical operators.
	OpAnd
	OpOr

	// Unary operators.
	OpNot
	OpNeg
)

var opReprs = map[OpKind]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
	OpEq: "==", OpNeq: "!=",
	OpLt: "<", OpLe: "<=", OpGt: ">", OpGe: ">=",
	OpAnd: "&&", OpOr: "||",
	OpNot: "!", OpNeg: "-",
}

func (op OpKind) Repr() string {
	return opReprs[op]
}

// IsArithmetic returns whether the operator belongs to the arithmetic class.
func (op OpKind) IsArithmetic() bool {
	return OpAdd <= op && op <= OpMod
}

// IsEquality returns whether the operator belongs to the equality class.
func (op OpKind) IsEquality() bool {
	return op == OpEq || op == OpNeq
}

// IsRelational returns whether the operator belongs to the relational class.
func (op OpKind) IsRelational() bool {
	return OpLt <= op && op <= OpGe
}

// IsLogical returns whether the operator belongs to the logical class.
func (op OpKind) IsLogical() bool {
	return op == OpAnd || op == OpOr
}

// BinaryOp represents a binary operator application.
type BinaryOp struct {
	ExprBase

	Op    OpKind
	OpPos *report.TextSpan
	Lhs   Expr
	Rhs   Expr
}

// UnaryOp represents a unary operator application.
type UnaryOp struct {
	ExprBase

	Op      OpKind
	OpPos   *report.TextSpan
	Operand Expr
}

// Assign represents an assignment.  Assignment is an expression: its value is
// the assigned target's value and its type is the target's type.
type Assign struct {
	ExprBase

	// The assignment target: always an *Identifier or an *IndexExpr (the
	// parser guarantees this shape).
	Target Expr

	Value Expr
}

// CastExpr represents an explicit C-style cast.
type CastExpr struct {
	ExprBase

	// The target type of the cast.
	TargetType types.Type

	Inner Expr
}
