package syntax

import (
	"github.com/lumenlang/lumenc/ast"
	"github.com/lumenlang/lumenc/report"
)

// parseExprList parses a comma-separated list of one or more expressions.
//
// expr_list := expr {',' expr}
func (p *Parser) parseExprList() []ast.Expr {
	exprs := []ast.Expr{p.parseExpr()}

	for p.got(TOK_COMMA) {
		p.next()
		exprs = append(exprs, p.parseExpr())
	}

	return exprs
}

// parseExpr parses an expression.  Assignment is the lowest-precedence
// expression form and associates to the right.
//
// expr := or_expr ['=' expr]
func (p *Parser) parseExpr() ast.Expr {
	lhs := p.parseOrExpr()

	if p.got(TOK_ASSIGN) {
		switch lhs.(type) {
		case *ast.Identifier, *ast.IndexExpr:
			// ok
		default:
			panic(report.Raise(lhs.Span(), "invalid assignment target"))
		}

		p.next()
		value := p.parseExpr()

		return &ast.Assign{
			ExprBase: ast.NewExprBaseOn(report.NewSpanOver(lhs.Span(), value.Span())),
			Target:   lhs,
			Value:    value,
		}
	}

	return lhs
}

// binOpKinds maps operator token kinds to their AST operator kind.
var binOpKinds = map[int]ast.OpKind{
	TOK_PLUS:  ast.OpAdd,
	TOK_MINUS: ast.OpSub,
	TOK_STAR:  ast.OpMul,
	TOK_DIV:   ast.OpDiv,
	TOK_MOD:   ast.OpMod,
	TOK_EQ:    ast.OpEq,
	TOK_NEQ:   ast.OpNeq,
	TOK_LT:    ast.OpLt,
	TOK_LTEQ:  ast.OpLe,
	TOK_GT:    ast.OpGt,
	TOK_GTEQ:  ast.OpGe,
	TOK_LAND:  ast.OpAnd,
	TOK_LOR:   ast.OpOr,
}

// parseBinOpLevel parses one left-associative binary operator precedence
// level whose operators are the given token kinds and whose operands are
// parsed by operand.
func (p *Parser) parseBinOpLevel(operand func() ast.Expr, opToks ...int) ast.Expr {
	lhs := operand()

	for {
		matched := false
		for _, kind := range opToks {
			if p.got(kind) {
				matched = true
				break
			}
		}

		if !matched {
			return lhs
		}

		op := binOpKinds[p.tok.Kind]
		opPos := p.tok.Span
		p.next()

		rhs := operand()

		lhs = &ast.BinaryOp{
			ExprBase: ast.NewExprBaseOn(report.NewSpanOver(lhs.Span(), rhs.Span())),
			Op:       op,
			OpPos:    opPos,
			Lhs:      lhs,
			Rhs:      rhs,
		}
	}
}

// or_expr := and_expr {'||' and_expr}
func (p *Parser) parseOrExpr() ast.Expr {
	return p.parseBinOpLevel(p.parseAndExpr, TOK_LOR)
}

// and_expr := eq_expr {'&&' eq_expr}
func (p *Parser) parseAndExpr() ast.Expr {
	return p.parseBinOpLevel(p.parseEqExpr, TOK_LAND)
}

// eq_expr := rel_expr {('==' | '!=') rel_expr}
func (p *Parser) parseEqExpr() ast.Expr {
	return p.parseBinOpLevel(p.parseRelExpr, TOK_EQ, TOK_NEQ)
}

// rel_expr := add_expr {('<' | '<=' | '>' | '>=') add_expr}
func (p *Parser) parseRelExpr() ast.Expr {
	return p.parseBinOpLevel(p.parseAddExpr, TOK_LT, TOK_LTEQ, TOK_GT, TOK_GTEQ)
}

// add_expr := mul_expr {('+' | '-') mul_expr}
func (p *Parser) parseAddExpr() ast.Expr {
	return p.parseBinOpLevel(p.parseMulExpr, TOK_PLUS, TOK_MINUS)
}

// mul_expr := unary_expr {('*' | '/' | '%') unary_expr}
func (p *Parser) parseMulExpr() ast.Expr {
	return p.parseBinOpLevel(p.parseUnaryExpr, TOK_STAR, TOK_DIV, TOK_MOD)
}

// parseUnaryExpr parses a unary expression.  A parenthesized type label is a
// cast: `(` followed by a type keyword always begins one.
//
// unary_expr := ('!' | '-') unary_expr
//            | '(' type_label ')' unary_expr
//            | atom_expr
func (p *Parser) parseUnaryExpr() ast.Expr {
	switch p.tok.Kind {
	case TOK_NOT, TOK_MINUS:
		op := ast.OpNot
		if p.got(TOK_MINUS) {
			op = ast.OpNeg
		}

		opPos := p.tok.Span
		p.next()

		operand := p.parseUnaryExpr()

		return &ast.UnaryOp{
			ExprBase: ast.NewExprBaseOn(report.NewSpanOver(opPos, operand.Span())),
			Op:       op,
			OpPos:    opPos,
			Operand:  operand,
		}
	case TOK_LPAREN:
		if IsTypeKeyword(p.peekTok().Kind) {
			startSpan := p.tok.Span
			p.next()

			targetType := p.parseTypeLabel()
			p.assertAndNext(TOK_RPAREN)

			inner := p.parseUnaryExpr()

			return &ast.CastExpr{
				ExprBase:   ast.NewExprBaseOn(report.NewSpanOver(startSpan, inner.Span())),
				TargetType: targetType,
				Inner:      inner,
			}
		}
	}

	return p.parseAtomExpr()
}

// parseAtomExpr parses an atom with an optional call or index suffix.  Only
// bare identifiers may be called or indexed.
//
// atom_expr := 'IDENT' '(' [expr_list] ')'
//           | 'IDENT' ('[' expr ']')+
//           | atom
func (p *Parser) parseAtomExpr() ast.Expr {
	atom := p.parseAtom()

	ident, ok := atom.(*ast.Identifier)
	if !ok {
		return atom
	}

	switch p.tok.Kind {
	case TOK_LPAREN:
		p.next()

		var args []ast.Expr
		if !p.got(TOK_RPAREN) {
			args = p.parseExprList()
		}

		endSpan := p.tok.Span
		p.assertAndNext(TOK_RPAREN)

		return &ast.CallExpr{
			ExprBase:  ast.NewExprBaseOn(report.NewSpanOver(ident.Span(), endSpan)),
			Callee:    ident.Name,
			CalleePos: ident.Span(),
			Args:      args,
		}
	case TOK_LBRACKET:
		var indices []ast.Expr
		endSpan := p.tok.Span

		for p.got(TOK_LBRACKET) {
			p.next()
			indices = append(indices, p.parseExpr())

			endSpan = p.tok.Span
			p.assertAndNext(TOK_RBRACKET)
		}

		return &ast.IndexExpr{
			ExprBase: ast.NewExprBaseOn(report.NewSpanOver(ident.Span(), endSpan)),
			Name:     ident.Name,
			NamePos:  ident.Span(),
			Indices:  indices,
		}
	}

	return atom
}

// litKinds maps literal token kinds to their AST literal kind.
var litKinds = map[int]ast.LitKind{
	TOK_INTLIT:    ast.LitInt,
	TOK_REALLIT:   ast.LitReal,
	TOK_STRINGLIT: ast.LitString,
	TOK_CHARLIT:   ast.LitChar,
	TOK_BOOLLIT:   ast.LitBool,
}

// parseAtom parses an atomic expression.
//
// atom := 'LITERAL' | 'IDENT' | '(' expr ')'
func (p *Parser) parseAtom() ast.Expr {
	switch p.tok.Kind {
	case TOK_INTLIT, TOK_REALLIT, TOK_STRINGLIT, TOK_CHARLIT, TOK_BOOLLIT:
		lit := &ast.Literal{
			ExprBase: ast.NewExprBaseOn(p.tok.Span),
			Kind:     litKinds[p.tok.Kind],
			Value:    p.tok.Value,
		}
		p.next()

		return lit
	case TOK_IDENT:
		ident := &ast.Identifier{
			ExprBase: ast.NewExprBaseOn(p.tok.Span),
			Name:     p.tok.Value,
		}
		p.next()

		return ident
	case TOK_LPAREN:
		startSpan := p.tok.Span
		p.next()

		inner := p.parseExpr()

		endSpan := p.tok.Span
		p.assertAndNext(TOK_RPAREN)

		return &ast.Grouping{
			ExprBase: ast.NewExprBaseOn(report.NewSpanOver(startSpan, endSpan)),
			Inner:    inner,
		}
	default:
		p.reject()
		return nil
	}
}
