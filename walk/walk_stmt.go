package walk

import (
	"github.com/lumenlang/lumenc/ast"
	"github.com/lumenlang/lumenc/report"
	"github.com/lumenlang/lumenc/sem"
	"github.com/lumenlang/lumenc/types"
)

// walkStmt walks a single statement.
func (w *Walker) walkStmt(stmt ast.Stmt) {
	switch v := stmt.(type) {
	case *ast.VarDecl:
		w.walkVarDecl(v)
	case *ast.ExprStmt:
		w.resolve(v.Expr)
	case *ast.PrintStmt:
		for _, arg := range v.Args {
			w.resolve(arg)
		}
	case *ast.ReadStmt:
		w.lookupVariable(v.Name, v.NamePos)
	case *ast.IfStmt:
		w.walkIfStmt(v)
	case *ast.WhileStmt:
		w.checkCondition(v.Cond)
		w.walkBlock(v.Body)
	case *ast.DoWhileStmt:
		w.walkBlock(v.Body)
		w.checkCondition(v.Cond)
	case *ast.ForStmt:
		w.walkForStmt(v)
	case *ast.SwitchStmt:
		w.walkSwitchStmt(v)
	case *ast.ReturnStmt:
		w.walkReturnStmt(v)
	case *ast.BlockStmt:
		w.walkBlock(v.Stmts)
	}
}

// walkVarDecl walks a variable declaration: every name takes the declared
// type, initializers must match it exactly.
func (w *Walker) walkVarDecl(decl *ast.VarDecl) {
	for _, name := range decl.Names {
		if name.Init != nil {
			initType := w.resolve(name.Init)

			if !types.IsAssignable(decl.DeclType, initType) {
				w.error(report.ErrTypeMismatchAssignment, name.Init.Span(),
					"cannot initialize `%s` of type %s with a value of type %s",
					name.Name, types.Repr(decl.DeclType), types.Repr(initType))
			}
		}

		if !w.table.Define(sem.NewVariable(name.Name, decl.DeclType, name.NamePos)) {
			w.error(report.ErrDuplicateVariable, name.NamePos,
				"variable `%s` is already declared in this scope", name.Name)
		}
	}
}

// walkIfStmt walks an if/else-if/else chain.
func (w *Walker) walkIfStmt(ifStmt *ast.IfStmt) {
	for _, arm := range ifStmt.Arms {
		w.checkCondition(arm.Cond)
		w.walkBlock(arm.Body)
	}

	if ifStmt.ElseBlock != nil {
		w.walkBlock(ifStmt.ElseBlock)
	}
}

// walkForStmt walks a for loop.  The loop header and body share one scope so
// that a variable declared in the header is visible to the body.
func (w *Walker) walkForStmt(forStmt *ast.ForStmt) {
	w.table.EnterScope()
	defer w.table.ExitScope()

	if forStmt.Init != nil {
		w.walkStmt(forStmt.Init)
	}

	if forStmt.Cond != nil {
		w.checkCondition(forStmt.Cond)
	}

	for _, update := range forStmt.Updates {
		w.resolve(update)
	}

	for _, stmt := range forStmt.Body {
		w.walkStmt(stmt)
	}
}

// walkSwitchStmt walks a switch statement.  Case labels are raw lexemes and
// are never checked against the scrutinee's type.
func (w *Walker) walkSwitchStmt(switchStmt *ast.SwitchStmt) {
	w.resolve(switchStmt.Scrutinee)

	for _, arm := range switchStmt.Cases {
		w.walkBlock(arm.Body)
	}

	if switchStmt.DefaultBlock != nil {
		w.walkBlock(switchStmt.DefaultBlock)
	}
}

// walkReturnStmt walks a return statement.  A return outside of any function
// is ignored.
func (w *Walker) walkReturnStmt(retStmt *ast.ReturnStmt) {
	if w.enclosingReturnType == nil {
		return
	}

	if retStmt.Value == nil {
		if !types.IsVoid(w.enclosingReturnType) {
			w.error(report.ErrReturnTypeMismatch, nil,
				"expected a return value of type %s", types.Repr(w.enclosingReturnType))
		}

		return
	}

	valueType := w.resolve(retStmt.Value)
	if !types.IsAssignable(w.enclosingReturnType, valueType) {
		w.error(report.ErrReturnTypeMismatch, nil,
			"cannot return a value of type %s from a function returning %s",
			types.Repr(valueType), types.Repr(w.enclosingReturnType))
	}
}

// checkCondition resolves a condition expression and requires it to be
// Boolean.
func (w *Walker) checkCondition(cond ast.Expr) {
	condType := w.resolve(cond)

	if !types.IsBoolean(condType) {
		w.error(report.ErrTypeMismatchCondition, cond.Span(),
			"condition has type %s, expected Boolean", types.Repr(condType))
	}
}
