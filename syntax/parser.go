package syntax

import (
	"bufio"

	"github.com/lumenlang/lumenc/ast"
	"github.com/lumenlang/lumenc/report"
	"github.com/lumenlang/lumenc/types"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// Parser is the parser for a Lumen source file.  It performs syntax analysis
// and AST generation but no symbol lookups.  The parser acts as a state
// machine that moves over the file token by token, deciding what to parse
// based on the token it is currently positioned on and its context (implicit
// from the callstack of parsing functions): it is a recursive descent parser.
// All parsing functions assume they begin with the parser centered on the
// first token of their production and must consume all tokens (including the
// last) of their production, leaving the parser on the next token.
type Parser struct {
	// lexer is the Lexer this parser is using to lex the source file.
	lexer *Lexer

	// tok is the current token the parser is positioned on.
	tok *Token

	// lookbehind is the token before the current token.
	lookbehind *Token

	// ahead buffers a token pulled from the lexer by peekTok.
	ahead *Token
}

// NewParser creates a new parser for the given file reader.
func NewParser(r *bufio.Reader) *Parser {
	return &Parser{lexer: NewLexer(r)}
}

// Parse parses a whole source file into a program AST.  The returned error,
// if non-nil, is always a *report.SyntaxError describing the first syntax
// error encountered.
func (p *Parser) Parse() (prog *ast.Program, err error) {
	defer func() {
		if x := recover(); x != nil {
			if serr, ok := x.(*report.SyntaxError); ok {
				err = serr
				return
			}

			panic(x)
		}
	}()

	p.next()

	return p.parseProgram(), nil
}

// parseProgram parses a full program.
//
// program := {func_def | entry_def}
func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{}

	for !p.got(TOK_EOF) {
		switch p.tok.Kind {
		case TOK_FUNC:
			prog.Items = append(prog.Items, p.parseFuncDef())
		case TOK_ENTRY:
			prog.Items = append(prog.Items, p.parseEntryDef())
		default:
			p.reject()
		}
	}

	return prog
}

// parseFuncDef parses a function definition.
//
// func_def := 'func' 'IDENT' '(' [param_list] ')' ['->' type_label] block
// param_list := param {',' param}
// param := type_label 'IDENT'
func (p *Parser) parseFuncDef() *ast.FuncDef {
	startSpan := p.tok.Span

	p.want(TOK_IDENT)
	name := p.tok.Value
	namePos := p.tok.Span

	p.wantAndNext(TOK_LPAREN)

	var params []ast.Param
	if !p.got(TOK_RPAREN) {
		for {
			paramType := p.parseTypeLabel()

			p.assert(TOK_IDENT)
			params = append(params, ast.Param{
				Name:    p.tok.Value,
				NamePos: p.tok.Span,
				Type:    paramType,
			})
			p.next()

			if !p.got(TOK_COMMA) {
				break
			}

			p.next()
		}
	}

	p.assertAndNext(TOK_RPAREN)

	var returnType types.Type = types.VoidType{}
	if p.got(TOK_ARROW) {
		p.next()
		returnType = p.parseTypeLabel()
	}

	body := p.parseBlock()

	return &ast.FuncDef{
		ASTBase:    ast.NewASTBaseOn(report.NewSpanOver(startSpan, p.lookbehind.Span)),
		Name:       name,
		NamePos:    namePos,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
	}
}

// parseEntryDef parses the program entry point.
//
// entry_def := 'entry' '(' ')' block
func (p *Parser) parseEntryDef() *ast.EntryDef {
	startSpan := p.tok.Span

	p.wantAndNext(TOK_LPAREN)
	p.assertAndNext(TOK_RPAREN)

	body := p.parseBlock()

	return &ast.EntryDef{
		ASTBase: ast.NewASTBaseOn(report.NewSpanOver(startSpan, p.lookbehind.Span)),
		Body:    body,
	}
}

// parseTypeLabel parses a type label.
//
// type_label := prim_type {'[' ']'}
// prim_type := 'Integer' | 'Real' | 'String' | 'Char' | 'Boolean'
func (p *Parser) parseTypeLabel() types.Type {
	if !IsTypeKeyword(p.tok.Kind) {
		p.reject()
	}

	var prim types.PrimitiveType
	switch p.tok.Kind {
	case TOK_INTEGER:
		prim = types.PrimInteger
	case TOK_REAL:
		prim = types.PrimReal
	case TOK_STRING:
		prim = types.PrimString
	case TOK_CHAR:
		prim = types.PrimChar
	case TOK_BOOLEAN:
		prim = types.PrimBoolean
	}

	p.next()

	rank := 0
	for p.got(TOK_LBRACKET) {
		p.wantAndNext(TOK_RBRACKET)
		rank++
	}

	if rank > 0 {
		return &types.ArrayType{Elem: prim, Rank: rank}
	}

	return prim
}

// parseBlock parses a braced statement block.
//
// block := '{' {stmt} '}'
func (p *Parser) parseBlock() []ast.Stmt {
	p.assertAndNext(TOK_LBRACE)

	var stmts []ast.Stmt
	for !p.got(TOK_RBRACE) {
		stmts = append(stmts, p.parseStmt())
	}

	p.next()

	return stmts
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() {
	p.lookbehind = p.tok

	if p.ahead != nil {
		p.tok = p.ahead
		p.ahead = nil
		return
	}

	tok, err := p.lexer.NextToken()
	if err != nil {
		panic(err)
	}

	p.tok = tok
}

// peekTok returns the token after the current token without moving the parser
// forward.
func (p *Parser) peekTok() *Token {
	if p.ahead == nil {
		tok, err := p.lexer.NextToken()
		if err != nil {
			panic(err)
		}

		p.ahead = tok
	}

	return p.ahead
}

// got returns true if the parser is on a token of a given kind.
func (p *Parser) got(kind int) bool {
	return p.tok.Kind == kind
}

// assert checks that the parser is on a token of a given kind and rejects the
// token if not.
func (p *Parser) assert(kind int) {
	if !p.got(kind) {
		p.reject()
	}
}

// assertAndNext performs an assert operation and moves the parser forward.
func (p *Parser) assertAndNext(kind int) {
	p.assert(kind)
	p.next()
}

// want moves the parser forward one token and then asserts that the token the
// parser has moved to is of a given kind.
func (p *Parser) want(kind int) {
	p.next()
	p.assert(kind)
}

// wantAndNext performs a want operation and moves the parser forward.
func (p *Parser) wantAndNext(kind int) {
	p.want(kind)
	p.next()
}

// reject raises a syntax error on the current token.
func (p *Parser) reject() {
	if p.got(TOK_EOF) {
		panic(report.Raise(p.tok.Span, "unexpected end of file"))
	}

	panic(report.Raise(p.tok.Span, "unexpected token: `%s`", p.tok.Value))
}
