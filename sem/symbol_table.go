package sem

// scope is a single name-binding context.  Scopes form a chain from the
// current innermost scope up to the global scope; a scope and its bindings are
// released when it is exited.
type scope struct {
	symbols map[string]*Symbol
	parent  *scope
}

// SymbolTable is a chain of lexical scopes holding name-to-symbol bindings.
// The global scope lives for the whole analysis; block and function scopes are
// pushed and popped around it.  Shadowing across nested scopes is permitted;
// duplicates within a single scope are not.
type SymbolTable struct {
	current *scope
	global  *scope
}

// NewSymbolTable creates a new symbol table containing only the global scope.
func NewSymbolTable() *SymbolTable {
	g := &scope{symbols: make(map[string]*Symbol)}
	return &SymbolTable{current: g, global: g}
}

// EnterScope pushes a new scope whose parent is the current scope.
func (st *SymbolTable) EnterScope() {
	st.current = &scope{symbols: make(map[string]*Symbol), parent: st.current}
}

// ExitScope pops back to the parent scope, releasing the current scope's
// bindings.  Exiting the global scope is a no-op.
func (st *SymbolTable) ExitScope() {
	if st.current.parent != nil {
		st.current = st.current.parent
	}
}

// Define inserts the symbol into the current scope.  It returns false if a
// symbol with the same name already exists in that scope: duplicates are only
// conflicts within a single scope, so a name bound in an enclosing scope may
// be shadowed freely.
func (st *SymbolTable) Define(sym *Symbol) bool {
	if _, ok := st.current.symbols[sym.Name]; ok {
		return false
	}

	st.current.symbols[sym.Name] = sym
	return true
}

// DefineGlobal inserts the symbol into the global scope, returning false on a
// global duplicate.
func (st *SymbolTable) DefineGlobal(sym *Symbol) bool {
	if _, ok := st.global.symbols[sym.Name]; ok {
		return false
	}

	st.global.symbols[sym.Name] = sym
	return true
}

// Lookup walks the scope chain from the current scope to the global scope and
// returns the nearest binding for the name.  The walk is proportional to the
// nesting depth, which stays shallow: only blocks, loops, and function bodies
// introduce scopes.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	for s := st.current; s != nil; s = s.parent {
		if sym, ok := s.symbols[name]; ok {
			return sym, true
		}
	}

	return nil, false
}

// LookupLocal checks only the current scope.
func (st *SymbolTable) LookupLocal(name string) (*Symbol, bool) {
	sym, ok := st.current.symbols[name]
	return sym, ok
}

// LookupGlobal checks only the global scope.
func (st *SymbolTable) LookupGlobal(name string) (*Symbol, bool) {
	sym, ok := st.global.symbols[name]
	return sym, ok
}

// InGlobalScope returns whether the current scope is the global scope.
func (st *SymbolTable) InGlobalScope() bool {
	return st.current == st.global
}
