package ast

import (
	"encoding/json"

	"github.com/lumenlang/lumenc/types"
)

// JSONPrinter renders a program AST as pretty-printed JSON.  When built with
// an expression type table, every expression node is annotated with its
// resolved type.
type JSONPrinter struct {
	exprTypes map[Expr]types.Type
}

// NewJSONPrinter creates a new JSON printer.  The type table may be nil, in
// which case the printed tree carries no type annotations.
func NewJSONPrinter(exprTypes map[Expr]types.Type) *JSONPrinter {
	return &JSONPrinter{exprTypes: exprTypes}
}

// Print renders the program as indented JSON.
func (p *JSONPrinter) Print(prog *Program) (string, error) {
	items := make([]interface{}, 0, len(prog.Items))
	for _, item := range prog.Items {
		items = append(items, p.printItem(item))
	}

	data, err := json.MarshalIndent(map[string]interface{}{
		"kind":  "program",
		"items": items,
	}, "", "  ")
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func (p *JSONPrinter) printItem(item Node) map[string]interface{} {
	switch v := item.(type) {
	case *FuncDef:
		params := make([]interface{}, 0, len(v.Params))
		for _, param := range v.Params {
			params = append(params, map[string]interface{}{
				"name": param.Name,
				"type": types.Repr(param.Type),
			})
		}

		return map[string]interface{}{
			"kind":       "funcDef",
			"name":       v.Name,
			"returnType": types.Repr(v.ReturnType),
			"params":     params,
			"body":       p.printStmts(v.Body),
		}
	case *EntryDef:
		return map[string]interface{}{
			"kind": "entryDef",
			"body": p.printStmts(v.Body),
		}
	default:
		return map[string]interface{}{"kind": "unknown"}
	}
}

func (p *JSONPrinter) printStmts(stmts []Stmt) []interface{} {
	out := make([]interface{}, 0, len(stmts))
	for _, stmt := range stmts {
		out = append(out, p.printStmt(stmt))
	}

	return out
}

func (p *JSONPrinter) printStmt(stmt Stmt) map[string]interface{} {
	switch v := stmt.(type) {
	case *VarDecl:
		names := make([]interface{}, 0, len(v.Names))
		for _, name := range v.Names {
			entry := map[string]interface{}{"name": name.Name}
			if name.Init != nil {
				entry["init"] = p.printExpr(name.Init)
			}

			names = append(names, entry)
		}

		return map[string]interface{}{
			"kind":  "varDecl",
			"type":  types.Repr(v.DeclType),
			"names": names,
		}
	case *ExprStmt:
		return map[string]interface{}{
			"kind": "exprStmt",
			"expr": p.printExpr(v.Expr),
		}
	case *PrintStmt:
		return map[string]interface{}{
			"kind": "print",
			"args": p.printExprs(v.Args),
		}
	case *ReadStmt:
		return map[string]interface{}{
			"kind": "read",
			"name": v.Name,
		}
	case *IfStmt:
		arms := make([]interface{}, 0, len(v.Arms))
		for _, arm := range v.Arms {
			arms = append(arms, map[string]interface{}{
				"cond": p.printExpr(arm.Cond),
				"body": p.printStmts(arm.Body),
			})
		}

		node := map[string]interface{}{
			"kind": "if",
			"arms": arms,
		}
		if v.ElseBlock != nil {
			node["else"] = p.printStmts(v.ElseBlock)
		}

		return node
	case *WhileStmt:
		return map[string]interface{}{
			"kind": "while",
			"cond": p.printExpr(v.Cond),
			"body": p.printStmts(v.Body),
		}
	case *DoWhileStmt:
		return map[string]interface{}{
			"kind": "doWhile",
			"body": p.printStmts(v.Body),
			"cond": p.printExpr(v.Cond),
		}
	case *ForStmt:
		node := map[string]interface{}{
			"kind": "for",
			"body": p.printStmts(v.Body),
		}
		if v.Init != nil {
			node["init"] = p.printStmt(v.Init)
		}
		if v.Cond != nil {
			node["cond"] = p.printExpr(v.Cond)
		}
		if len(v.Updates) > 0 {
			node["updates"] = p.printExprs(v.Updates)
		}

		return node
	case *SwitchStmt:
		cases := make([]interface{}, 0, len(v.Cases))
		for _, arm := range v.Cases {
			cases = append(cases, map[string]interface{}{
				"label": arm.Label,
				"body":  p.printStmts(arm.Body),
			})
		}

		node := map[string]interface{}{
			"kind":      "switch",
			"scrutinee": p.printExpr(v.Scrutinee),
			"cases":     cases,
		}
		if v.DefaultBlock != nil {
			node["default"] = p.printStmts(v.DefaultBlock)
		}

		return node
	case *ReturnStmt:
		node := map[string]interface{}{"kind": "return"}
		if v.Value != nil {
			node["value"] = p.printExpr(v.Value)
		}

		return node
	case *BlockStmt:
		return map[string]interface{}{
			"kind":  "block",
			"stmts": p.printStmts(v.Stmts),
		}
	default:
		return map[string]interface{}{"kind": "unknown"}
	}
}

func (p *JSONPrinter) printExprs(exprs []Expr) []interface{} {
	out := make([]interface{}, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, p.printExpr(expr))
	}

	return out
}

// litKindNames maps literal kinds to their JSON names.
var litKindNames = map[LitKind]string{
	LitInt:    "int",
	LitReal:   "real",
	LitString: "string",
	LitChar:   "char",
	LitBool:   "bool",
}

func (p *JSONPrinter) printExpr(expr Expr) map[string]interface{} {
	var node map[string]interface{}

	switch v := expr.(type) {
	case *Literal:
		node = map[string]interface{}{
			"kind":    "literal",
			"litKind": litKindNames[v.Kind],
			"value":   v.Value,
		}
	case *Identifier:
		node = map[string]interface{}{
			"kind": "ident",
			"name": v.Name,
		}
	case *IndexExpr:
		node = map[string]interface{}{
			"kind":    "index",
			"name":    v.Name,
			"indices": p.printExprs(v.Indices),
		}
	case *Grouping:
		node = map[string]interface{}{
			"kind":  "group",
			"inner": p.printExpr(v.Inner),
		}
	case *CallExpr:
		node = map[string]interface{}{
			"kind":   "call",
			"callee": v.Callee,
			"args":   p.printExprs(v.Args),
		}
	case *BinaryOp:
		node = map[string]interface{}{
			"kind": "binary",
			"op":   v.Op.Repr(),
			"lhs":  p.printExpr(v.Lhs),
			"rhs":  p.printExpr(v.Rhs),
		}
	case *UnaryOp:
		node = map[string]interface{}{
			"kind":    "unary",
			"op":      v.Op.Repr(),
			"operand": p.printExpr(v.Operand),
		}
	case *Assign:
		node = map[string]interface{}{
			"kind":   "assign",
			"target": p.printExpr(v.Target),
			"value":  p.printExpr(v.Value),
		}
	case *CastExpr:
		node = map[string]interface{}{
			"kind":   "cast",
			"target": types.Repr(v.TargetType),
			"inner":  p.printExpr(v.Inner),
		}
	default:
		node = map[string]interface{}{"kind": "unknown"}
	}

	if p.exprTypes != nil {
		if t, ok := p.exprTypes[expr]; ok {
			node["resolvedType"] = types.Repr(t)
		}
	}

	return node
}
