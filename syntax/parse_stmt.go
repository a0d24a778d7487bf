package syntax

import (
	"github.com/lumenlang/lumenc/ast"
	"github.com/lumenlang/lumenc/report"
)

// parseStmt parses a single statement.
//
// stmt := var_decl | print_stmt | read_stmt | if_stmt | while_stmt
//      | do_while_stmt | for_stmt | switch_stmt | return_stmt
//      | block_stmt | expr_stmt
func (p *Parser) parseStmt() ast.Stmt {
	switch p.tok.Kind {
	case TOK_DECLARE:
		return p.parseVarDecl()
	case TOK_PRINT:
		return p.parsePrintStmt()
	case TOK_READ:
		return p.parseReadStmt()
	case TOK_IF:
		return p.parseIfStmt()
	case TOK_WHILE:
		return p.parseWhileStmt()
	case TOK_DO:
		return p.parseDoWhileStmt()
	case TOK_FOR:
		return p.parseForStmt()
	case TOK_SWITCH:
		return p.parseSwitchStmt()
	case TOK_RETURN:
		return p.parseReturnStmt()
	case TOK_LBRACE:
		startSpan := p.tok.Span
		body := p.parseBlock()
		return &ast.BlockStmt{
			StmtBase: ast.NewStmtBaseOn(report.NewSpanOver(startSpan, p.lookbehind.Span)),
			Stmts:    body,
		}
	default:
		return p.parseExprStmt()
	}
}

// parseVarDecl parses a variable declaration.  The declared type is shared by
// every name in the declaration.
//
// var_decl := 'declare' 'IDENT' ':' type_label ['=' expr]
//          {',' 'IDENT' ['=' expr]} ';'
func (p *Parser) parseVarDecl() *ast.VarDecl {
	startSpan := p.tok.Span

	p.want(TOK_IDENT)
	names := []ast.VarName{{Name: p.tok.Value, NamePos: p.tok.Span}}

	p.wantAndNext(TOK_COLON)
	declType := p.parseTypeLabel()

	if p.got(TOK_ASSIGN) {
		p.next()
		names[0].Init = p.parseExpr()
	}

	for p.got(TOK_COMMA) {
		p.want(TOK_IDENT)
		name := ast.VarName{Name: p.tok.Value, NamePos: p.tok.Span}
		p.next()

		if p.got(TOK_ASSIGN) {
			p.next()
			name.Init = p.parseExpr()
		}

		names = append(names, name)
	}

	p.assertAndNext(TOK_SEMI)

	return &ast.VarDecl{
		StmtBase: ast.NewStmtBaseOn(report.NewSpanOver(startSpan, p.lookbehind.Span)),
		DeclType: declType,
		Names:    names,
	}
}

// parsePrintStmt parses a print statement.
//
// print_stmt := 'print' '(' expr_list ')' ';'
func (p *Parser) parsePrintStmt() *ast.PrintStmt {
	startSpan := p.tok.Span

	p.wantAndNext(TOK_LPAREN)
	args := p.parseExprList()
	p.assertAndNext(TOK_RPAREN)
	p.assertAndNext(TOK_SEMI)

	return &ast.PrintStmt{
		StmtBase: ast.NewStmtBaseOn(report.NewSpanOver(startSpan, p.lookbehind.Span)),
		Args:     args,
	}
}

// parseReadStmt parses a read statement.
//
// read_stmt := 'read' '(' 'IDENT' ')' ';'
func (p *Parser) parseReadStmt() *ast.ReadStmt {
	startSpan := p.tok.Span

	p.wantAndNext(TOK_LPAREN)

	p.assert(TOK_IDENT)
	name := p.tok.Value
	namePos := p.tok.Span
	p.next()

	p.assertAndNext(TOK_RPAREN)
	p.assertAndNext(TOK_SEMI)

	return &ast.ReadStmt{
		StmtBase: ast.NewStmtBaseOn(report.NewSpanOver(startSpan, p.lookbehind.Span)),
		Name:     name,
		NamePos:  namePos,
	}
}

// parseIfStmt parses an if/else-if/else chain.
//
// if_stmt := 'if' '(' expr ')' block
//         {'else' 'if' '(' expr ')' block} ['else' block]
func (p *Parser) parseIfStmt() *ast.IfStmt {
	startSpan := p.tok.Span

	ifStmt := &ast.IfStmt{}
	ifStmt.Arms = append(ifStmt.Arms, p.parseCondArm())

	for p.got(TOK_ELSE) {
		p.next()

		if p.got(TOK_IF) {
			ifStmt.Arms = append(ifStmt.Arms, p.parseCondArm())
		} else {
			ifStmt.ElseBlock = p.parseBlock()
			break
		}
	}

	ifStmt.StmtBase = ast.NewStmtBaseOn(report.NewSpanOver(startSpan, p.lookbehind.Span))

	return ifStmt
}

// parseCondArm parses one conditional arm of an if chain, starting on the
// `if` token.
func (p *Parser) parseCondArm() ast.CondArm {
	p.wantAndNext(TOK_LPAREN)
	cond := p.parseExpr()
	p.assertAndNext(TOK_RPAREN)

	return ast.CondArm{Cond: cond, Body: p.parseBlock()}
}

// parseWhileStmt parses a while loop.
//
// while_stmt := 'while' '(' expr ')' block
func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	startSpan := p.tok.Span

	p.wantAndNext(TOK_LPAREN)
	cond := p.parseExpr()
	p.assertAndNext(TOK_RPAREN)

	body := p.parseBlock()

	return &ast.WhileStmt{
		StmtBase: ast.NewStmtBaseOn(report.NewSpanOver(startSpan, p.lookbehind.Span)),
		Cond:     cond,
		Body:     body,
	}
}

// parseDoWhileStmt parses a do-while loop.
//
// do_while_stmt := 'do' block 'while' '(' expr ')' ';'
func (p *Parser) parseDoWhileStmt() *ast.DoWhileStmt {
	startSpan := p.tok.Span

	p.next()
	body := p.parseBlock()

	p.assertAndNext(TOK_WHILE)
	p.assertAndNext(TOK_LPAREN)
	cond := p.parseExpr()
	p.assertAndNext(TOK_RPAREN)
	p.assertAndNext(TOK_SEMI)

	return &ast.DoWhileStmt{
		StmtBase: ast.NewStmtBaseOn(report.NewSpanOver(startSpan, p.lookbehind.Span)),
		Body:     body,
		Cond:     cond,
	}
}

// parseForStmt parses a C-style for loop.  All three header slots are
// optional.
//
// for_stmt := 'for' '(' [for_init] ';' [expr] ';' [expr_list] ')' block
// for_init := var_decl_no_semi | expr
func (p *Parser) parseForStmt() *ast.ForStmt {
	startSpan := p.tok.Span

	p.wantAndNext(TOK_LPAREN)

	forStmt := &ast.ForStmt{}

	// The declaration form consumes its own trailing semicolon.
	switch {
	case p.got(TOK_DECLARE):
		forStmt.Init = p.parseVarDecl()
	case p.got(TOK_SEMI):
		p.next()
	default:
		initExpr := p.parseExpr()
		forStmt.Init = &ast.ExprStmt{
			StmtBase: ast.NewStmtBaseOn(initExpr.Span()),
			Expr:     initExpr,
		}
		p.assertAndNext(TOK_SEMI)
	}

	if !p.got(TOK_SEMI) {
		forStmt.Cond = p.parseExpr()
	}
	p.assertAndNext(TOK_SEMI)

	if !p.got(TOK_RPAREN) {
		forStmt.Updates = p.parseExprList()
	}
	p.assertAndNext(TOK_RPAREN)

	forStmt.Body = p.parseBlock()
	forStmt.StmtBase = ast.NewStmtBaseOn(report.NewSpanOver(startSpan, p.lookbehind.Span))

	return forStmt
}

// parseSwitchStmt parses a switch statement.  Case labels are raw literal
// lexemes: they are stored as written and never evaluated as expressions.
//
// switch_stmt := 'switch' '(' expr ')' '{' {case_arm} [default_arm] '}'
// case_arm := 'case' 'LITERAL' ':' {stmt}
// default_arm := 'default' ':' {stmt}
func (p *Parser) parseSwitchStmt() *ast.SwitchStmt {
	startSpan := p.tok.Span

	p.wantAndNext(TOK_LPAREN)
	scrutinee := p.parseExpr()
	p.assertAndNext(TOK_RPAREN)

	p.assertAndNext(TOK_LBRACE)

	switchStmt := &ast.SwitchStmt{Scrutinee: scrutinee}

	for {
		if p.got(TOK_CASE) {
			p.next()

			if !p.gotLiteral() {
				p.reject()
			}

			arm := ast.CaseArm{Label: p.tok.Value, LabelPos: p.tok.Span}
			p.next()

			p.assertAndNext(TOK_COLON)
			arm.Body = p.parseCaseBody()

			switchStmt.Cases = append(switchStmt.Cases, arm)
		} else if p.got(TOK_DEFAULT) {
			p.wantAndNext(TOK_COLON)
			switchStmt.DefaultBlock = p.parseCaseBody()
		} else {
			break
		}
	}

	p.assertAndNext(TOK_RBRACE)

	switchStmt.StmtBase = ast.NewStmtBaseOn(report.NewSpanOver(startSpan, p.lookbehind.Span))

	return switchStmt
}

// parseCaseBody parses the statements of a case or default arm, stopping at
// the next arm or the closing brace.
func (p *Parser) parseCaseBody() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.got(TOK_CASE) && !p.got(TOK_DEFAULT) && !p.got(TOK_RBRACE) {
		stmts = append(stmts, p.parseStmt())
	}

	return stmts
}

// gotLiteral returns whether the parser is on a literal token.
func (p *Parser) gotLiteral() bool {
	switch p.tok.Kind {
	case TOK_INTLIT, TOK_REALLIT, TOK_STRINGLIT, TOK_CHARLIT, TOK_BOOLLIT:
		return true
	default:
		return false
	}
}

// parseReturnStmt parses a return statement.
//
// return_stmt := 'return' [expr] ';'
func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	startSpan := p.tok.Span

	p.next()

	retStmt := &ast.ReturnStmt{}
	if !p.got(TOK_SEMI) {
		retStmt.Value = p.parseExpr()
	}

	p.assertAndNext(TOK_SEMI)

	retStmt.StmtBase = ast.NewStmtBaseOn(report.NewSpanOver(startSpan, p.lookbehind.Span))

	return retStmt
}

// parseExprStmt parses an expression evaluated as a statement.
//
// expr_stmt := expr ';'
func (p *Parser) parseExprStmt() *ast.ExprStmt {
	expr := p.parseExpr()
	p.assertAndNext(TOK_SEMI)

	return &ast.ExprStmt{
		StmtBase: ast.NewStmtBaseOn(expr.Span()),
		Expr:     expr,
	}
}
