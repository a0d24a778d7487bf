package syntax

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/lumenlang/lumenc/report"
)

// Lexer is responsible for tokenizing a source file.
type Lexer struct {
	file    *bufio.Reader
	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int
}

// NewLexer creates a new lexer for the given source file.
func NewLexer(file *bufio.Reader) *Lexer {
	return &Lexer{
		file:    file,
		tokBuff: &strings.Builder{},
		line:    1,
		col:     0,
	}
}

// NextToken retrieves the next token from the input file. If the file has
// ended, this will be an EOF token.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 {
			break
		}

		switch c {
		case '\n', '\t', ' ', '\r', '\v', '\f':
			l.skip()
		case '/':
			if tok, err := l.lexCommentOrDiv(); tok != nil || err != nil {
				return tok, err
			}
		case '\'':
			return l.lexCharLit()
		case '"':
			return l.lexStringLit()
		default:
			if isDecimalDigit(c) {
				return l.lexNumericLit()
			} else if isFirstIdentChar(c) {
				return l.lexIdentOrKeyword()
			} else {
				return l.lexPunctOrOper()
			}
		}
	}

	l.mark()
	return l.makeToken(TOK_EOF), nil
}

// -----------------------------------------------------------------------------

// symbolPatterns maps symbol strings (patterns) to their punctuation/operator
// token kind.
var symbolPatterns = map[string]int{
	"+": TOK_PLUS,
	"-": TOK_MINUS,
	"*": TOK_STAR,
	// Division operator is handled with comment logic.
	"%": TOK_MOD,

	"==": TOK_EQ,
	"!=": TOK_NEQ,
	"<":  TOK_LT,
	"<=": TOK_LTEQ,
	">":  TOK_GT,
	">=": TOK_GTEQ,

	"&&": TOK_LAND,
	"||": TOK_LOR,
	"!":  TOK_NOT,

	"=": TOK_ASSIGN,

	"(":  TOK_LPAREN,
	")":  TOK_RPAREN,
	"{":  TOK_LBRACE,
	"}":  TOK_RBRACE,
	"[":  TOK_LBRACKET,
	"]":  TOK_RBRACKET,
	",":  TOK_COMMA,
	";":  TOK_SEMI,
	":":  TOK_COLON,
	"->": TOK_ARROW,
}

// lexPunctOrOper lexes a punctuation or operator symbol.
func (l *Lexer) lexPunctOrOper() (*Token, error) {
	l.mark()
	l.eat()

	kind, ok := symbolPatterns[l.tokBuff.String()]
	if !ok && l.tokBuff.String() != "&" && l.tokBuff.String() != "|" {
		return nil, report.Raise(l.getSpan(), "unknown rune")
	}

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		if c == -1 {
			break
		}

		if _kind, ok := symbolPatterns[l.tokBuff.String()+string(c)]; ok {
			l.eat()
			kind = _kind
		} else {
			break
		}
	}

	// A lone `&` or `|` matched no pattern.
	if _, ok := symbolPatterns[l.tokBuff.String()]; !ok {
		return nil, report.Raise(l.getSpan(), "unknown operator: `%s`", l.tokBuff.String())
	}

	return l.makeToken(kind), nil
}

// lexIdentOrKeyword lexes an identifier or a keyword.
func (l *Lexer) lexIdentOrKeyword() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if !isFirstIdentChar(c) && !isDecimalDigit(c) {
			break
		}

		l.eat()
	}

	var kind int
	if _kind, ok := keywordPatterns[l.tokBuff.String()]; ok {
		kind = _kind
	} else {
		kind = TOK_IDENT
	}

	return l.makeToken(kind), nil
}

// lexNumericLit lexes an integer or real literal.
func (l *Lexer) lexNumericLit() (*Token, error) {
	l.mark()
	l.eat()

	isReal := false
	mustHaveDigit := false

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 {
			break
		}

		if c == '.' {
			if isReal {
				break
			}

			l.eat()

			isReal = true
			mustHaveDigit = true
			continue
		}

		if !isDecimalDigit(c) {
			break
		}

		l.eat()
		mustHaveDigit = false
	}

	if mustHaveDigit {
		return nil, report.Raise(l.getSpan(), "incomplete numeric literal")
	}

	kind := TOK_INTLIT
	if isReal {
		kind = TOK_REALLIT
	}

	return l.makeToken(kind), nil
}

// lexStringLit lexes a string literal.  The quotes are not included in the
// token value.
func (l *Lexer) lexStringLit() (*Token, error) {
	l.mark()
	l.skip()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		switch c {
		case -1:
			return nil, report.Raise(l.getSpan(), "unclosed string literal")
		case '"':
			l.skip()
			return l.makeToken(TOK_STRINGLIT), nil
		case '\\':
			l.eat()
			if err = l.eatEscapeSequence(); err != nil {
				return nil, err
			}
		case '\n':
			return nil, report.Raise(l.getSpan(), "string literal cannot contain a newline")
		default:
			l.eat()
		}
	}
}

// lexCharLit lexes a character literal.  The quotes are not included in the
// token value.
func (l *Lexer) lexCharLit() (*Token, error) {
	l.mark()
	l.skip()

	c, err := l.eat()
	if err != nil {
		return nil, err
	}

	switch c {
	case -1:
		return nil, report.Raise(l.getSpan(), "unclosed character literal")
	case '\'':
		return nil, report.Raise(l.getSpan(), "empty character literal")
	case '\n':
		return nil, report.Raise(l.getSpan(), "character literal cannot contain a newline")
	case '\\':
		if err = l.eatEscapeSequence(); err != nil {
			return nil, err
		}
	}

	c, err = l.skip()
	if err != nil {
		return nil, err
	} else if c == -1 {
		return nil, report.Raise(l.getSpan(), "unclosed character literal")
	} else if c != '\'' {
		return nil, report.Raise(l.getSpan(), "character literal cannot contain multiple characters")
	}

	return l.makeToken(TOK_CHARLIT), nil
}

// eatEscapeSequence attempts to consume an escape sequence.  This assumes the
// leading `\` has already been consumed.
func (l *Lexer) eatEscapeSequence() error {
	c, err := l.eat()
	if err != nil {
		return err
	}

	switch c {
	case -1:
		return report.Raise(l.getSpan(), "expected escape sequence not end of file")
	case 'n', 'r', 't', '0', '\'', '\\', '"':
		return nil
	default:
		return report.Raise(l.getSpan(), "unknown escape sequence: `\\%c`", c)
	}
}

// -----------------------------------------------------------------------------

// lexCommentOrDiv lexes a comment or a division token.
func (l *Lexer) lexCommentOrDiv() (*Token, error) {
	l.mark()
	l.skip()

	c, err := l.peek()
	if err != nil {
		return nil, err
	}

	switch c {
	case '/':
		for ; err == nil && c != '\n' && c != -1; c, err = l.skip() {
		}
	case '*':
		for {
			c, err = l.skip()
			if err != nil || c == -1 {
				break
			}

			if c == '*' {
				c, err = l.skip()
				if err != nil || c == -1 || c == '/' {
					break
				}
			}
		}
	default:
		{
			tok := l.makeToken(TOK_DIV)
			tok.Value = "/"
			return tok, nil
		}
	}

	return nil, err
}

// -----------------------------------------------------------------------------

// mark sets the lexer's stored start line and column to its current position.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col + 1
}

// makeToken produces a new token of the given kind from the lexer's state and
// resets the lexer to begin building the next token.
func (l *Lexer) makeToken(kind int) *Token {
	value := l.tokBuff.String()
	l.tokBuff.Reset()

	return &Token{
		Kind:  kind,
		Value: value,
		Span:  l.getSpan(),
	}
}

// getSpan calculates a text span based on the lexer's current state.
func (l *Lexer) getSpan() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.line,
		EndCol:    l.col,
	}
}

// -----------------------------------------------------------------------------

// eat moves the lexer forward one rune and writes the rune to the token buffer.
// If the lexer encounters an EOF, -1 is returned as the rune value.
func (l *Lexer) eat() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	l.updatePos(c)
	l.tokBuff.WriteRune(c)

	return c, nil
}

// skip moves the lexer forward one rune but does not write the rune to the
// token buffer.  If the lexer encounters an EOF, -1 is returned as the rune
// value.
func (l *Lexer) skip() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	l.updatePos(c)

	return c, nil
}

// peek returns the next rune in the file without moving the lexer forward or
// writing the rune to the token buffer.  If the lexer encounters an EOF, -1 is
// returned as the rune value.
func (l *Lexer) peek() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	if err = l.file.UnreadRune(); err != nil {
		return 0, err
	}

	return c, nil
}

// updatePos updates the lexer's position based on the input character.
func (l *Lexer) updatePos(c rune) {
	switch c {
	case '\n':
		l.line++
		l.col = 0
	case '\t':
		l.col += 4
	default:
		l.col++
	}
}

// -----------------------------------------------------------------------------

// isDecimalDigit returns whether c is a decimal digit.
func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// isFirstIdentChar returns whether c could be the first rune of an identifier.
func isFirstIdentChar(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}
