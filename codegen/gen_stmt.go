package codegen

import (
	"strconv"

	"github.com/lumenlang/lumenc/ast"
	"github.com/lumenlang/lumenc/types"
)

// genStmt generates code for a single statement.
func (g *Generator) genStmt(stmt ast.Stmt) {
	switch v := stmt.(type) {
	case *ast.VarDecl:
		g.genVarDecl(v)
	case *ast.ExprStmt:
		g.genExpr(v.Expr)
		// Every expression statement discards the value it leaves behind.
		g.emit(OpPop)
	case *ast.PrintStmt:
		for _, arg := range v.Args {
			g.genExpr(arg)
			g.emit(OpPrint)
		}
	case *ast.ReadStmt:
		g.emitOperand(OpRead, v.Name)
	case *ast.IfStmt:
		g.genIfStmt(v)
	case *ast.WhileStmt:
		g.genWhileStmt(v)
	case *ast.DoWhileStmt:
		g.genDoWhileStmt(v)
	case *ast.ForStmt:
		g.genForStmt(v)
	case *ast.SwitchStmt:
		g.genSwitchStmt(v)
	case *ast.ReturnStmt:
		if v.Value != nil {
			g.genExpr(v.Value)
		}
		g.emit(OpRet)
	case *ast.BlockStmt:
		for _, inner := range v.Stmts {
			g.genStmt(inner)
		}
	}
}

// genVarDecl generates code for a variable declaration.  Every declared name
// is stored, using the type's default value when it has no initializer.
func (g *Generator) genVarDecl(decl *ast.VarDecl) {
	for _, name := range decl.Names {
		if name.Init != nil {
			g.genExpr(name.Init)
		} else {
			g.emitOperand(OpPush, defaultValue(decl.DeclType))
		}

		g.emitOperand(OpStore, name.Name)
	}
}

// defaultValue returns the value a variable of the given type starts with.
// Arrays take the default of their element type.
func defaultValue(t types.Type) interface{} {
	prim, ok := t.(types.PrimitiveType)
	if !ok {
		if at, isArray := t.(*types.ArrayType); isArray {
			prim = at.Elem
		} else {
			return 0
		}
	}

	switch prim {
	case types.PrimReal:
		return 0.0
	case types.PrimString:
		return ""
	case types.PrimChar:
		return rune(0)
	case types.PrimBoolean:
		return false
	default:
		return 0
	}
}

// genIfStmt generates code for an if/else-if/else chain.
func (g *Generator) genIfStmt(ifStmt *ast.IfStmt) {
	elseLabel := g.newLabel("else")
	endLabel := g.newLabel("endif")

	first := ifStmt.Arms[0]
	g.genExpr(first.Cond)
	g.emitOperand(OpJz, elseLabel)

	for _, stmt := range first.Body {
		g.genStmt(stmt)
	}
	g.emitOperand(OpJmp, endLabel)

	g.emitOperand(OpLabel, elseLabel)

	for _, arm := range ifStmt.Arms[1:] {
		nextLabel := g.newLabel("elseif")

		g.genExpr(arm.Cond)
		g.emitOperand(OpJz, nextLabel)

		for _, stmt := range arm.Body {
			g.genStmt(stmt)
		}
		g.emitOperand(OpJmp, endLabel)

		g.emitOperand(OpLabel, nextLabel)
	}

	for _, stmt := range ifStmt.ElseBlock {
		g.genStmt(stmt)
	}

	g.emitOperand(OpLabel, endLabel)
}

// genWhileStmt generates code for a while loop.
func (g *Generator) genWhileStmt(whileStmt *ast.WhileStmt) {
	startLabel := g.newLabel("while_start")
	endLabel := g.newLabel("while_end")

	g.emitOperand(OpLabel, startLabel)

	g.genExpr(whileStmt.Cond)
	g.emitOperand(OpJz, endLabel)

	for _, stmt := range whileStmt.Body {
		g.genStmt(stmt)
	}

	g.emitOperand(OpJmp, startLabel)
	g.emitOperand(OpLabel, endLabel)
}

// genDoWhileStmt generates code for a do-while loop: the body runs once, then
// the condition jumps back while it holds.
func (g *Generator) genDoWhileStmt(doStmt *ast.DoWhileStmt) {
	startLabel := g.newLabel("dowhile_start")

	g.emitOperand(OpLabel, startLabel)

	for _, stmt := range doStmt.Body {
		g.genStmt(stmt)
	}

	g.genExpr(doStmt.Cond)
	g.emitOperand(OpJnz, startLabel)
}

// genForStmt generates code for a C-style for loop.  Update expressions run
// after the body; their values are discarded.
func (g *Generator) genForStmt(forStmt *ast.ForStmt) {
	startLabel := g.newLabel("for_start")
	endLabel := g.newLabel("for_end")

	if forStmt.Init != nil {
		g.genStmt(forStmt.Init)
	}

	g.emitOperand(OpLabel, startLabel)

	if forStmt.Cond != nil {
		g.genExpr(forStmt.Cond)
		g.emitOperand(OpJz, endLabel)
	}

	for _, stmt := range forStmt.Body {
		g.genStmt(stmt)
	}

	for _, update := range forStmt.Updates {
		g.genExpr(update)
		g.emit(OpPop)
	}

	g.emitOperand(OpJmp, startLabel)
	g.emitOperand(OpLabel, endLabel)
}

// genSwitchStmt generates code for a switch statement.  The scrutinee is
// compared against each case label in turn; the first comparison consumes it,
// so only the first case can actually match a scrutinee value.
func (g *Generator) genSwitchStmt(switchStmt *ast.SwitchStmt) {
	endLabel := g.newLabel("switch_end")

	g.genExpr(switchStmt.Scrutinee)

	caseLabels := make([]string, len(switchStmt.Cases))
	for i := range switchStmt.Cases {
		caseLabels[i] = g.newLabel("case")
	}

	defaultLabel := endLabel
	if switchStmt.DefaultBlock != nil {
		defaultLabel = g.newLabel("default")
	}

	// Dispatch: compare against each label value in turn.
	for i, arm := range switchStmt.Cases {
		g.emitOperand(OpPush, caseLabelValue(arm.Label))
		g.emit(OpEq)
		g.emitOperand(OpJnz, caseLabels[i])
	}

	// Nothing matched: discard the scrutinee and take the default.
	g.emit(OpPop)
	g.emitOperand(OpJmp, defaultLabel)

	for i, arm := range switchStmt.Cases {
		g.emitOperand(OpLabel, caseLabels[i])
		g.emit(OpPop)

		for _, stmt := range arm.Body {
			g.genStmt(stmt)
		}

		g.emitOperand(OpJmp, endLabel)
	}

	if switchStmt.DefaultBlock != nil {
		g.emitOperand(OpLabel, defaultLabel)
		for _, stmt := range switchStmt.DefaultBlock {
			g.genStmt(stmt)
		}
	}

	g.emitOperand(OpLabel, endLabel)
}

// caseLabelValue converts a case label lexeme into the value pushed for the
// dispatch comparison.  Integer labels compare as integers; any other label
// compares as its raw lexeme.
func caseLabelValue(label string) interface{} {
	if n, err := strconv.Atoi(label); err == nil {
		return n
	}

	return label
}
