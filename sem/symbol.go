package sem

import (
	"github.com/lumenlang/lumenc/report"
	"github.com/lumenlang/lumenc/types"
)

// SymbolKind distinguishes the kinds of things a symbol can name.
type SymbolKind int

const (
	SymVariable = SymbolKind(iota)
	SymFunction
)

// Symbol represents a declared name's compile-time identity.  Symbols are
// created once, at declaration, and never mutated afterwards.
type Symbol struct {
	// The name of the symbol.
	Name string

	// The type of the symbol.  For a function symbol, this is the return
	// type.
	Type types.Type

	// The symbol's kind.
	Kind SymbolKind

	// The function's parameters, in declaration order.  Always empty for
	// variables.
	Params []Param

	// Where the symbol was declared.
	DefSpan *report.TextSpan
}

// Param is a single parameter of a function symbol.
type Param struct {
	Name string
	Type types.Type
}

// NewVariable creates a new variable symbol.
func NewVariable(name string, typ types.Type, span *report.TextSpan) *Symbol {
	return &Symbol{Name: name, Type: typ, Kind: SymVariable, DefSpan: span}
}

// NewFunction creates a new function symbol.  The type is the return type.
func NewFunction(name string, returnType types.Type, params []Param, span *report.TextSpan) *Symbol {
	return &Symbol{Name: name, Type: returnType, Kind: SymFunction, Params: params, DefSpan: span}
}

// IsFunction returns whether the symbol names a function.
func (sym *Symbol) IsFunction() bool {
	return sym.Kind == SymFunction
}
