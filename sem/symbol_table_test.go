package sem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlang/lumenc/types"
)

func TestDefineAndLookup(t *testing.T) {
	table := NewSymbolTable()

	require.True(t, table.Define(NewVariable("x", types.PrimInteger, nil)))

	sym, ok := table.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "x", sym.Name)
	assert.Equal(t, types.Type(types.PrimInteger), sym.Type)
	assert.False(t, sym.IsFunction())

	_, ok = table.Lookup("y")
	assert.False(t, ok)
}

func TestDuplicateInSameScope(t *testing.T) {
	table := NewSymbolTable()

	require.True(t, table.Define(NewVariable("x", types.PrimInteger, nil)))
	assert.False(t, table.Define(NewVariable("x", types.PrimReal, nil)))
}

func TestShadowingAcrossScopes(t *testing.T) {
	table := NewSymbolTable()

	require.True(t, table.Define(NewVariable("x", types.PrimInteger, nil)))

	table.EnterScope()
	require.True(t, table.Define(NewVariable("x", types.PrimReal, nil)))

	sym, ok := table.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, types.Type(types.PrimReal), sym.Type)

	table.ExitScope()

	sym, ok = table.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, types.Type(types.PrimInteger), sym.Type)
}

func TestScopeBindingsAreReleased(t *testing.T) {
	table := NewSymbolTable()

	table.EnterScope()
	require.True(t, table.Define(NewVariable("local", types.PrimBoolean, nil)))
	table.ExitScope()

	_, ok := table.Lookup("local")
	assert.False(t, ok)
}

func TestOuterScopesStayVisible(t *testing.T) {
	table := NewSymbolTable()

	require.True(t, table.Define(NewVariable("outer", types.PrimString, nil)))

	table.EnterScope()
	table.EnterScope()

	_, ok := table.Lookup("outer")
	assert.True(t, ok)

	// a duplicate is only a duplicate within one scope
	assert.True(t, table.Define(NewVariable("outer", types.PrimChar, nil)))
}

func TestDefineGlobalFromInnerScope(t *testing.T) {
	table := NewSymbolTable()

	table.EnterScope()
	require.True(t, table.DefineGlobal(NewFunction("f", types.VoidType{}, nil, nil)))
	table.ExitScope()

	sym, ok := table.Lookup("f")
	require.True(t, ok)
	assert.True(t, sym.IsFunction())
}

func TestExitGlobalScopeIsNoOp(t *testing.T) {
	table := NewSymbolTable()

	require.True(t, table.Define(NewVariable("x", types.PrimInteger, nil)))

	table.ExitScope()
	table.ExitScope()

	_, ok := table.Lookup("x")
	assert.True(t, ok)
	assert.True(t, table.InGlobalScope())
}
