package syntax

import "github.com/lumenlang/lumenc/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.  This may not directly correspond to the
	// matched source text: eg. the value of a string token has the leading
	// quotes trimmed off for convenience.
	Value string

	// The text span over which the token exists.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_FUNC = iota
	TOK_ENTRY
	TOK_DECLARE

	TOK_PRINT
	TOK_READ

	TOK_IF
	TOK_ELSE
	TOK_WHILE
	TOK_DO
	TOK_FOR
	TOK_SWITCH
	TOK_CASE
	TOK_DEFAULT
	TOK_RETURN

	TOK_INTEGER
	TOK_REAL
	TOK_STRING
	TOK_CHAR
	TOK_BOOLEAN

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_DIV
	TOK_MOD

	TOK_EQ
	TOK_NEQ
	TOK_LT
	TOK_LTEQ
	TOK_GT
	TOK_GTEQ

	TOK_LAND
	TOK_LOR
	TOK_NOT

	TOK_ASSIGN

	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACE
	TOK_RBRACE
	TOK_LBRACKET
	TOK_RBRACKET
	TOK_COMMA
	TOK_SEMI
	TOK_COLON
	TOK_ARROW

	TOK_INTLIT
	TOK_REALLIT
	TOK_STRINGLIT
	TOK_CHARLIT
	TOK_BOOLLIT

	TOK_IDENT
	TOK_EOF
)

// keywordPatterns maps keyword strings to their token kind.
var keywordPatterns = map[string]int{
	"func":    TOK_FUNC,
	"entry":   TOK_ENTRY,
	"declare": TOK_DECLARE,
	"print":   TOK_PRINT,
	"read":    TOK_READ,
	"if":      TOK_IF,
	"else":    TOK_ELSE,
	"while":   TOK_WHILE,
	"do":      TOK_DO,
	"for":     TOK_FOR,
	"switch":  TOK_SWITCH,
	"case":    TOK_CASE,
	"default": TOK_DEFAULT,
	"return":  TOK_RETURN,
	"Integer": TOK_INTEGER,
	"Real":    TOK_REAL,
	"String":  TOK_STRING,
	"Char":    TOK_CHAR,
	"Boolean": TOK_BOOLEAN,
	"true":    TOK_BOOLLIT,
	"false":   TOK_BOOLLIT,
}

// IsTypeKeyword returns whether the token kind names a primitive type.
func IsTypeKeyword(kind int) bool {
	return TOK_INTEGER <= kind && kind <= TOK_BOOLEAN
}
