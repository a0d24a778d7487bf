package walk

import (
	"github.com/lumenlang/lumenc/ast"
	"github.com/lumenlang/lumenc/report"
	"github.com/lumenlang/lumenc/sem"
	"github.com/lumenlang/lumenc/types"
)

// Walker is responsible for walking a program AST and performing semantic
// analysis on its definitions.  Analysis is fail-fast: the first rule
// violation aborts the whole walk.
type Walker struct {
	// The symbol table holding all visible bindings.
	table *sem.SymbolTable

	// The resolved type of every expression visited so far, keyed by node
	// identity.
	exprTypes map[ast.Expr]types.Type

	// The return type of the enclosing function.  If this is nil, then there
	// is no enclosing function and return statements are ignored.
	enclosingReturnType types.Type

	// Whether an entry point has been collected.
	hasEntry bool
}

// Analysis is the product of a successful semantic analysis: the program
// together with the resolved type of every expression in it.
type Analysis struct {
	Program *ast.Program

	// Types maps every expression node of the program to its resolved type.
	Types map[ast.Expr]types.Type

	// Globals is the global symbol table built during analysis: all function
	// signatures plus the entry point.
	Globals *sem.SymbolTable
}

// Analyze semantically analyzes the given program.  The returned error, if
// non-nil, is always a *report.SemanticError describing the first rule
// violation encountered.
func Analyze(prog *ast.Program) (analysis *Analysis, err error) {
	defer func() {
		if x := recover(); x != nil {
			if serr, ok := x.(*report.SemanticError); ok {
				analysis = nil
				err = serr
				return
			}

			panic(x)
		}
	}()

	w := &Walker{
		table:     sem.NewSymbolTable(),
		exprTypes: make(map[ast.Expr]types.Type),
	}

	// First pass: collect all global signatures so that calls may refer to
	// functions defined later in the file.
	for _, item := range prog.Items {
		w.collectDef(item)
	}

	if !w.hasEntry {
		w.error(report.ErrMissingEntry, nil, "program declares no entry point")
	}

	// Second pass: walk every definition body.
	for _, item := range prog.Items {
		w.walkDef(item)
	}

	return &Analysis{Program: prog, Types: w.exprTypes, Globals: w.table}, nil
}

// collectDef registers the global signature of a definition.
func (w *Walker) collectDef(item ast.Node) {
	switch v := item.(type) {
	case *ast.FuncDef:
		var params []sem.Param
		for _, p := range v.Params {
			params = append(params, sem.Param{Name: p.Name, Type: p.Type})
		}

		sym := sem.NewFunction(v.Name, v.ReturnType, params, v.NamePos)
		if !w.table.DefineGlobal(sym) {
			w.error(report.ErrDuplicateFunction, v.NamePos, "function `%s` is already declared", v.Name)
		}
	case *ast.EntryDef:
		if w.hasEntry {
			w.error(report.ErrDuplicateEntry, nil, "program declares more than one entry point")
		}

		w.hasEntry = true
		w.table.DefineGlobal(sem.NewFunction("entry", types.VoidType{}, nil, v.Span()))
	}
}

// walkDef walks the body of a definition.
func (w *Walker) walkDef(item ast.Node) {
	switch v := item.(type) {
	case *ast.FuncDef:
		w.table.EnterScope()
		defer w.table.ExitScope()

		for _, p := range v.Params {
			if !w.table.Define(sem.NewVariable(p.Name, p.Type, p.NamePos)) {
				w.error(report.ErrDuplicateVariable, p.NamePos, "parameter `%s` is already declared", p.Name)
			}
		}

		w.enclosingReturnType = v.ReturnType
		defer func() { w.enclosingReturnType = nil }()

		for _, stmt := range v.Body {
			w.walkStmt(stmt)
		}
	case *ast.EntryDef:
		w.table.EnterScope()
		defer w.table.ExitScope()

		w.enclosingReturnType = types.VoidType{}
		defer func() { w.enclosingReturnType = nil }()

		for _, stmt := range v.Body {
			w.walkStmt(stmt)
		}
	}
}

// -----------------------------------------------------------------------------

// lookupSymbol looks up a name, aborting if it resolves to nothing.  A plain
// identifier may name a function: it then takes the function's return type.
func (w *Walker) lookupSymbol(name string, span *report.TextSpan) *sem.Symbol {
	sym, ok := w.table.Lookup(name)
	if !ok {
		w.error(report.ErrUndeclaredVariable, span, "variable `%s` is not declared", name)
	}

	return sym
}

// lookupVariable looks up a name that must resolve to a variable slot, as in
// `read` or an indexing target.
func (w *Walker) lookupVariable(name string, span *report.TextSpan) *sem.Symbol {
	sym := w.lookupSymbol(name, span)
	if sym.IsFunction() {
		w.error(report.ErrUndeclaredVariable, span, "`%s` names a function, not a variable", name)
	}

	return sym
}

// walkBlock walks a statement list inside a fresh scope.
func (w *Walker) walkBlock(stmts []ast.Stmt) {
	w.table.EnterScope()
	defer w.table.ExitScope()

	for _, stmt := range stmts {
		w.walkStmt(stmt)
	}
}

// error aborts the walk with a semantic error of the given kind.
func (w *Walker) error(kind report.ErrorKind, span *report.TextSpan, msg string, args ...interface{}) {
	panic(report.RaiseSemantic(kind, span, msg, args...))
}
