package ast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlang/lumenc/types"
)

func TestJSONPrinter(t *testing.T) {
	lit := &Literal{Kind: LitInt, Value: "42"}

	prog := &Program{
		Items: []Node{
			&EntryDef{
				Body: []Stmt{
					&VarDecl{
						DeclType: types.PrimInteger,
						Names:    []VarName{{Name: "x", Init: lit}},
					},
					&PrintStmt{Args: []Expr{&Identifier{Name: "x"}}},
				},
			},
		},
	}

	printer := NewJSONPrinter(map[Expr]types.Type{lit: types.PrimInteger})

	out, err := printer.Print(prog)
	require.NoError(t, err)

	var tree map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &tree))

	assert.Equal(t, "program", tree["kind"])

	items := tree["items"].([]interface{})
	require.Len(t, items, 1)

	entry := items[0].(map[string]interface{})
	assert.Equal(t, "entryDef", entry["kind"])

	body := entry["body"].([]interface{})
	require.Len(t, body, 2)

	decl := body[0].(map[string]interface{})
	assert.Equal(t, "varDecl", decl["kind"])
	assert.Equal(t, "Integer", decl["type"])

	names := decl["names"].([]interface{})
	init := names[0].(map[string]interface{})["init"].(map[string]interface{})
	assert.Equal(t, "literal", init["kind"])
	assert.Equal(t, "42", init["value"])

	// the decorated type travels with the expression node
	assert.Equal(t, "Integer", init["resolvedType"])

	// an undecorated expression carries no annotation
	printArg := body[1].(map[string]interface{})["args"].([]interface{})[0].(map[string]interface{})
	_, annotated := printArg["resolvedType"]
	assert.False(t, annotated)
}

func TestJSONPrinterWithoutTypeTable(t *testing.T) {
	prog := &Program{
		Items: []Node{
			&FuncDef{
				Name:       "f",
				ReturnType: types.VoidType{},
				Params:     []Param{{Name: "a", Type: types.PrimReal}},
			},
		},
	}

	out, err := NewJSONPrinter(nil).Print(prog)
	require.NoError(t, err)

	var tree map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &tree))

	fn := tree["items"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "funcDef", fn["kind"])
	assert.Equal(t, "Void", fn["returnType"])

	param := fn["params"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "a", param["name"])
	assert.Equal(t, "Real", param["type"])
}
