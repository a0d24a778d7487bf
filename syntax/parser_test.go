package syntax

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlang/lumenc/ast"
	"github.com/lumenlang/lumenc/report"
	"github.com/lumenlang/lumenc/types"
)

// lexAll collects every token of the source, including the trailing EOF.
func lexAll(t *testing.T, src string) []*Token {
	t.Helper()

	l := NewLexer(bufio.NewReader(strings.NewReader(src)))

	var toks []*Token
	for {
		tok, err := l.NextToken()
		require.NoError(t, err)

		toks = append(toks, tok)
		if tok.Kind == TOK_EOF {
			return toks
		}
	}
}

// mustParse parses the source and fails the test on a syntax error.
func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()

	prog, err := NewParser(bufio.NewReader(strings.NewReader(src))).Parse()
	require.NoError(t, err)

	return prog
}

// parseErr parses the source and requires a syntax error.
func parseErr(t *testing.T, src string) *report.SyntaxError {
	t.Helper()

	_, err := NewParser(bufio.NewReader(strings.NewReader(src))).Parse()
	require.Error(t, err)

	serr, ok := err.(*report.SyntaxError)
	require.True(t, ok, "expected a syntax error, got %T", err)

	return serr
}

// -----------------------------------------------------------------------------

func TestLexTokenKinds(t *testing.T) {
	toks := lexAll(t, `func entry declare ab_c 42 3.14 "hi" 'x' true false -> <= != ;`)

	kinds := make([]int, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}

	assert.Equal(t, []int{
		TOK_FUNC, TOK_ENTRY, TOK_DECLARE, TOK_IDENT,
		TOK_INTLIT, TOK_REALLIT, TOK_STRINGLIT, TOK_CHARLIT,
		TOK_BOOLLIT, TOK_BOOLLIT,
		TOK_ARROW, TOK_LTEQ, TOK_NEQ, TOK_SEMI,
		TOK_EOF,
	}, kinds)
}

func TestLexLiteralValues(t *testing.T) {
	toks := lexAll(t, `42 3.14 "hello" 'x'`)

	assert.Equal(t, "42", toks[0].Value)
	assert.Equal(t, "3.14", toks[1].Value)

	// quotes are trimmed from string and char values
	assert.Equal(t, "hello", toks[2].Value)
	assert.Equal(t, "x", toks[3].Value)
}

func TestLexComments(t *testing.T) {
	toks := lexAll(t, "a // line comment\nb /* block\ncomment */ c / d")

	var values []string
	for _, tok := range toks[:len(toks)-1] {
		values = append(values, tok.Value)
	}

	assert.Equal(t, []string{"a", "b", "c", "/", "d"}, values)
}

func TestLexPositions(t *testing.T) {
	toks := lexAll(t, "ab\n  cd")

	assert.Equal(t, 1, toks[0].Span.StartLine)
	assert.Equal(t, 1, toks[0].Span.StartCol)

	assert.Equal(t, 2, toks[1].Span.StartLine)
	assert.Equal(t, 3, toks[1].Span.StartCol)
}

func TestLexUnclosedString(t *testing.T) {
	l := NewLexer(bufio.NewReader(strings.NewReader(`"oops`)))

	_, err := l.NextToken()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unclosed string literal")
}

// -----------------------------------------------------------------------------

func TestParseEntryOnly(t *testing.T) {
	prog := mustParse(t, `entry() {}`)

	require.Len(t, prog.Items, 1)

	entry, ok := prog.Items[0].(*ast.EntryDef)
	require.True(t, ok)
	assert.Empty(t, entry.Body)
}

func TestParseFuncDef(t *testing.T) {
	prog := mustParse(t, `
		func add(Integer a, Integer b) -> Integer {
			return a + b;
		}

		entry() {}
	`)

	require.Len(t, prog.Items, 2)

	fn, ok := prog.Items[0].(*ast.FuncDef)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	assert.Equal(t, types.Type(types.PrimInteger), fn.Params[0].Type)
	assert.Equal(t, types.Type(types.PrimInteger), fn.ReturnType)

	require.Len(t, fn.Body, 1)

	ret, ok := fn.Body[0].(*ast.ReturnStmt)
	require.True(t, ok)

	binop, ok := ret.Value.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, binop.Op)
}

func TestParseVoidFunc(t *testing.T) {
	prog := mustParse(t, `func f() {} entry() {}`)

	fn := prog.Items[0].(*ast.FuncDef)
	assert.True(t, types.IsVoid(fn.ReturnType))
}

func TestParseArrayTypeLabel(t *testing.T) {
	prog := mustParse(t, `
		func first(Real[][] m) -> Real[] {
			return m[0];
		}

		entry() {}
	`)

	fn := prog.Items[0].(*ast.FuncDef)
	assert.Equal(t, types.Type(&types.ArrayType{Elem: types.PrimReal, Rank: 2}), fn.Params[0].Type)
	assert.Equal(t, types.Type(&types.ArrayType{Elem: types.PrimReal, Rank: 1}), fn.ReturnType)
}

func TestParseVarDecl(t *testing.T) {
	prog := mustParse(t, `
		entry() {
			declare x: Integer = 5, y;
		}
	`)

	entry := prog.Items[0].(*ast.EntryDef)
	decl, ok := entry.Body[0].(*ast.VarDecl)
	require.True(t, ok)

	assert.Equal(t, types.Type(types.PrimInteger), decl.DeclType)
	require.Len(t, decl.Names, 2)
	assert.Equal(t, "x", decl.Names[0].Name)
	assert.NotNil(t, decl.Names[0].Init)
	assert.Equal(t, "y", decl.Names[1].Name)
	assert.Nil(t, decl.Names[1].Init)
}

func TestParsePrecedence(t *testing.T) {
	prog := mustParse(t, `
		entry() {
			declare b: Boolean = 1 + 2 * 3 < 10 && !false;
		}
	`)

	entry := prog.Items[0].(*ast.EntryDef)
	decl := entry.Body[0].(*ast.VarDecl)

	// && at the root
	and, ok := decl.Names[0].Init.(*ast.BinaryOp)
	require.True(t, ok)
	require.Equal(t, ast.OpAnd, and.Op)

	// `<` on the left of &&
	lt, ok := and.Lhs.(*ast.BinaryOp)
	require.True(t, ok)
	require.Equal(t, ast.OpLt, lt.Op)

	// `+` under `<`, with `*` nested on its right
	add, ok := lt.Lhs.(*ast.BinaryOp)
	require.True(t, ok)
	require.Equal(t, ast.OpAdd, add.Op)

	mul, ok := add.Rhs.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpMul, mul.Op)

	// `!` on the right of &&
	not, ok := and.Rhs.(*ast.UnaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpNot, not.Op)
}

func TestParseCastVersusGrouping(t *testing.T) {
	prog := mustParse(t, `
		entry() {
			declare r: Real = (Real) 2;
			declare g: Integer = (2);
		}
	`)

	entry := prog.Items[0].(*ast.EntryDef)

	cast, ok := entry.Body[0].(*ast.VarDecl).Names[0].Init.(*ast.CastExpr)
	require.True(t, ok)
	assert.Equal(t, types.Type(types.PrimReal), cast.TargetType)

	_, ok = entry.Body[1].(*ast.VarDecl).Names[0].Init.(*ast.Grouping)
	assert.True(t, ok)
}

func TestParseControlFlow(t *testing.T) {
	prog := mustParse(t, `
		entry() {
			if (true) {} else if (false) {} else {}
			while (true) {}
			do {} while (false);
			for (declare i: Integer = 0; i < 10; i = i + 1) {}
			switch (1) {
				case 1:
				case 2:
				default:
			}
		}
	`)

	entry := prog.Items[0].(*ast.EntryDef)
	require.Len(t, entry.Body, 5)

	ifStmt := entry.Body[0].(*ast.IfStmt)
	assert.Len(t, ifStmt.Arms, 2)
	assert.NotNil(t, ifStmt.ElseBlock)

	_, ok := entry.Body[1].(*ast.WhileStmt)
	assert.True(t, ok)

	_, ok = entry.Body[2].(*ast.DoWhileStmt)
	assert.True(t, ok)

	forStmt := entry.Body[3].(*ast.ForStmt)
	require.NotNil(t, forStmt.Init)
	require.NotNil(t, forStmt.Cond)
	assert.Len(t, forStmt.Updates, 1)

	switchStmt := entry.Body[4].(*ast.SwitchStmt)
	require.Len(t, switchStmt.Cases, 2)
	assert.Equal(t, "1", switchStmt.Cases[0].Label)
	assert.NotNil(t, switchStmt.DefaultBlock)
}

func TestParseCallAndIndex(t *testing.T) {
	prog := mustParse(t, `
		entry() {
			f(1, 2);
			m[0][1] = 3;
		}
	`)

	entry := prog.Items[0].(*ast.EntryDef)

	call, ok := entry.Body[0].(*ast.ExprStmt).Expr.(*ast.CallExpr)
	require.True(t, ok)
	assert.Equal(t, "f", call.Callee)
	assert.Len(t, call.Args, 2)

	assign, ok := entry.Body[1].(*ast.ExprStmt).Expr.(*ast.Assign)
	require.True(t, ok)

	index, ok := assign.Target.(*ast.IndexExpr)
	require.True(t, ok)
	assert.Equal(t, "m", index.Name)
	assert.Len(t, index.Indices, 2)
}

func TestParsePrintAndRead(t *testing.T) {
	prog := mustParse(t, `
		entry() {
			print("x =", 1);
			read(x);
		}
	`)

	entry := prog.Items[0].(*ast.EntryDef)

	printStmt := entry.Body[0].(*ast.PrintStmt)
	assert.Len(t, printStmt.Args, 2)

	readStmt := entry.Body[1].(*ast.ReadStmt)
	assert.Equal(t, "x", readStmt.Name)
}

func TestParseErrorPosition(t *testing.T) {
	serr := parseErr(t, "entry() {\n  declare x Integer;\n}")

	// the unexpected token is `Integer` where `:` was wanted
	assert.Equal(t, 2, serr.Span.StartLine)
	assert.Equal(t, 13, serr.Span.StartCol)
}

func TestParseInvalidAssignTarget(t *testing.T) {
	serr := parseErr(t, `entry() { 1 = 2; }`)

	assert.Contains(t, serr.Message, "invalid assignment target")
}

func TestParseUnexpectedEOF(t *testing.T) {
	serr := parseErr(t, `entry() {`)

	assert.Contains(t, serr.Message, "unexpected end of file")
}
