package codegen

import (
	"strconv"

	"github.com/lumenlang/lumenc/ast"
	"github.com/lumenlang/lumenc/types"
)

// genExpr generates code for an expression, leaving its value on the stack.
func (g *Generator) genExpr(expr ast.Expr) {
	switch v := expr.(type) {
	case *ast.Literal:
		g.emitOperand(OpPush, literalValue(v))
	case *ast.Identifier:
		g.emitOperand(OpLoad, v.Name)
	case *ast.IndexExpr:
		for _, idx := range v.Indices {
			g.genExpr(idx)
		}
		g.emitOperand2(OpALoad, v.Name, len(v.Indices))
	case *ast.Grouping:
		g.genExpr(v.Inner)
	case *ast.CallExpr:
		for _, arg := range v.Args {
			g.genExpr(arg)
		}
		g.emitOperand2(OpCall, v.Callee, len(v.Args))
	case *ast.BinaryOp:
		g.genBinaryOp(v)
	case *ast.UnaryOp:
		g.genExpr(v.Operand)
		if v.Op == ast.OpNeg {
			g.emit(OpNeg)
		} else {
			g.emit(OpNot)
		}
	case *ast.Assign:
		g.genAssign(v)
	case *ast.CastExpr:
		g.genCastExpr(v)
	}
}

// literalValue converts a literal node into the value pushed for it.  A
// character literal pushes its first rune: escape sequences are kept as
// written, so an escaped character pushes the backslash.
func literalValue(lit *ast.Literal) interface{} {
	switch lit.Kind {
	case ast.LitInt:
		if n, err := strconv.Atoi(lit.Value); err == nil {
			return n
		}
		return lit.Value
	case ast.LitReal:
		if f, err := strconv.ParseFloat(lit.Value, 64); err == nil {
			return f
		}
		return lit.Value
	case ast.LitChar:
		for _, c := range lit.Value {
			return c
		}
		return rune(0)
	case ast.LitBool:
		return lit.Value == "true"
	default:
		return lit.Value
	}
}

// binOpcodes maps binary AST operators to their stack machine opcode.
var binOpcodes = map[ast.OpKind]Opcode{
	ast.OpAdd: OpAdd,
	ast.OpSub: OpSub,
	ast.OpMul: OpMul,
	ast.OpDiv: OpDiv,
	ast.OpMod: OpMod,
	ast.OpEq:  OpEq,
	ast.OpNeq: OpNeq,
	ast.OpLt:  OpLt,
	ast.OpLe:  OpLe,
	ast.OpGt:  OpGt,
	ast.OpGe:  OpGe,
	ast.OpAnd: OpAnd,
	ast.OpOr:  OpOr,
}

// genBinaryOp generates code for a binary operator: both operands, left
// first, then the operation.
func (g *Generator) genBinaryOp(binop *ast.BinaryOp) {
	g.genExpr(binop.Lhs)
	g.genExpr(binop.Rhs)
	g.emit(binOpcodes[binop.Op])
}

// genAssign generates code for an assignment.  A plain assignment reloads the
// target afterwards so the assignment's value stays on the stack; an indexed
// assignment does not, because the stored element cannot be reloaded without
// re-evaluating its indices.
func (g *Generator) genAssign(assign *ast.Assign) {
	g.genExpr(assign.Value)

	switch target := assign.Target.(type) {
	case *ast.Identifier:
		g.emitOperand(OpStore, target.Name)
		g.emitOperand(OpLoad, target.Name)
	case *ast.IndexExpr:
		for _, idx := range target.Indices {
			g.genExpr(idx)
		}
		g.emitOperand2(OpAStore, target.Name, len(target.Indices))
	}
}

// genCastExpr generates code for an explicit cast.  Only numeric conversions
// emit an instruction; an identity cast is free.
func (g *Generator) genCastExpr(cast *ast.CastExpr) {
	g.genExpr(cast.Inner)

	castType := g.typeOf(cast)
	innerType := g.typeOf(cast.Inner)

	switch {
	case types.IsInteger(castType) && !types.IsInteger(innerType):
		g.emit(OpCastToInt)
	case types.IsReal(castType) && !types.IsReal(innerType):
		g.emit(OpCastToReal)
	}
}
