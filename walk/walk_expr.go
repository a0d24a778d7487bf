package walk

import (
	"github.com/lumenlang/lumenc/ast"
	"github.com/lumenlang/lumenc/report"
	"github.com/lumenlang/lumenc/types"
)

// resolve determines the type of an expression bottom-up and records it in the
// expression type table.  Every expression that survives analysis has an
// entry.
func (w *Walker) resolve(expr ast.Expr) types.Type {
	if t, ok := w.exprTypes[expr]; ok {
		return t
	}

	var t types.Type
	switch v := expr.(type) {
	case *ast.Literal:
		t = literalType(v)
	case *ast.Identifier:
		t = w.lookupSymbol(v.Name, v.Span()).Type
	case *ast.IndexExpr:
		t = w.resolveIndexExpr(v)
	case *ast.Grouping:
		t = w.resolve(v.Inner)
	case *ast.CallExpr:
		t = w.resolveCallExpr(v)
	case *ast.BinaryOp:
		t = w.resolveBinaryOp(v)
	case *ast.UnaryOp:
		t = w.resolveUnaryOp(v)
	case *ast.Assign:
		t = w.resolveAssign(v)
	case *ast.CastExpr:
		t = w.resolveCastExpr(v)
	}

	w.exprTypes[expr] = t

	return t
}

// literalType returns the primitive type of a literal.
func literalType(lit *ast.Literal) types.Type {
	switch lit.Kind {
	case ast.LitInt:
		return types.PrimInteger
	case ast.LitReal:
		return types.PrimReal
	case ast.LitString:
		return types.PrimString
	case ast.LitChar:
		return types.PrimChar
	default:
		return types.PrimBoolean
	}
}

// resolveIndexExpr types an index expression.  The target must be an array
// variable, every index must be an Integer, and the index count must not
// exceed the array's rank.
func (w *Walker) resolveIndexExpr(index *ast.IndexExpr) types.Type {
	sym := w.lookupVariable(index.Name, index.NamePos)

	if !types.IsArray(sym.Type) {
		w.error(report.ErrInvalidIndexTarget, index.NamePos,
			"`%s` has type %s, which cannot be indexed", index.Name, types.Repr(sym.Type))
	}

	for _, idx := range index.Indices {
		idxType := w.resolve(idx)
		if !types.IsInteger(idxType) {
			w.error(report.ErrInvalidIndexType, idx.Span(),
				"index has type %s, expected Integer", types.Repr(idxType))
		}
	}

	elemType := types.ArrayElementType(sym.Type, len(index.Indices))
	if elemType == nil {
		w.error(report.ErrInvalidIndexTarget, index.Span(),
			"`%s` has type %s, which has fewer than %d dimensions",
			index.Name, types.Repr(sym.Type), len(index.Indices))
	}

	return elemType
}

// resolveCallExpr types a function call.  The callee must be a declared
// function and every argument must match its parameter's type exactly.
func (w *Walker) resolveCallExpr(call *ast.CallExpr) types.Type {
	sym, ok := w.table.Lookup(call.Callee)
	if !ok {
		w.error(report.ErrUndeclaredFunction, call.CalleePos,
			"function `%s` is not declared", call.Callee)
	}

	if !sym.IsFunction() {
		w.error(report.ErrInvalidCallTarget, call.CalleePos,
			"`%s` is a variable, not a function", call.Callee)
	}

	if len(call.Args) != len(sym.Params) {
		w.error(report.ErrArgumentCountMismatch, call.Span(),
			"`%s` takes %d arguments, got %d", call.Callee, len(sym.Params), len(call.Args))
	}

	for i, arg := range call.Args {
		argType := w.resolve(arg)

		if !types.IsAssignable(sym.Params[i].Type, argType) {
			w.error(report.ErrArgumentTypeMismatch, arg.Span(),
				"argument %d of `%s` has type %s, expected %s",
				i+1, call.Callee, types.Repr(argType), types.Repr(sym.Params[i].Type))
		}
	}

	return sym.Type
}

// resolveBinaryOp types a binary operator application using the rule for the
// operator's class.
func (w *Walker) resolveBinaryOp(binop *ast.BinaryOp) types.Type {
	lhsType := w.resolve(binop.Lhs)
	rhsType := w.resolve(binop.Rhs)

	var result types.Type
	var kind report.ErrorKind

	switch {
	case binop.Op.IsArithmetic():
		result = types.ArithmeticResult(lhsType, rhsType)
		kind = report.ErrTypeMismatchArithmetic
	case binop.Op.IsEquality():
		result = types.EqualityResult(lhsType, rhsType)
		kind = report.ErrTypeMismatchRelational
	case binop.Op.IsRelational():
		result = types.RelationalResult(lhsType, rhsType)
		kind = report.ErrTypeMismatchRelational
	default:
		result = types.LogicalResult(lhsType, rhsType)
		kind = report.ErrTypeMismatchLogical
	}

	if result == nil {
		w.error(kind, binop.OpPos, "operator `%s` is not defined for %s and %s",
			binop.Op.Repr(), types.Repr(lhsType), types.Repr(rhsType))
	}

	return result
}

// resolveUnaryOp types a unary operator application.
func (w *Walker) resolveUnaryOp(unop *ast.UnaryOp) types.Type {
	operandType := w.resolve(unop.Operand)

	var result types.Type
	var kind report.ErrorKind

	if unop.Op == ast.OpNot {
		result = types.UnaryNotResult(operandType)
		kind = report.ErrTypeMismatchLogical
	} else {
		result = types.UnaryMinusResult(operandType)
		kind = report.ErrTypeMismatchArithmetic
	}

	if result == nil {
		w.error(kind, unop.OpPos, "operator `%s` is not defined for %s",
			unop.Op.Repr(), types.Repr(operandType))
	}

	return result
}

// resolveAssign types an assignment.  The value's type must exactly equal the
// target's type; the assignment itself takes the target's type.
func (w *Walker) resolveAssign(assign *ast.Assign) types.Type {
	targetType := w.resolve(assign.Target)
	valueType := w.resolve(assign.Value)

	if !types.IsAssignable(targetType, valueType) {
		w.error(report.ErrTypeMismatchAssignment, assign.Value.Span(),
			"cannot assign a value of type %s to a target of type %s",
			types.Repr(valueType), types.Repr(targetType))
	}

	return targetType
}

// resolveCastExpr types an explicit cast.
func (w *Walker) resolveCastExpr(cast *ast.CastExpr) types.Type {
	innerType := w.resolve(cast.Inner)

	result := types.CastResult(innerType, cast.TargetType)
	if result == nil {
		w.error(report.ErrInvalidCast, cast.Span(), "cannot cast %s to %s",
			types.Repr(innerType), types.Repr(cast.TargetType))
	}

	return result
}
