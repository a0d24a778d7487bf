package report

import "fmt"

// ErrorKind identifies the category of a semantic error.  The set of kinds is
// fixed: every rule violation the analyzer can detect maps onto exactly one of
// these.
type ErrorKind int

const (
	// Entry-point errors.
	ErrMissingEntry ErrorKind = iota
	ErrDuplicateEntry

	// Declaration errors.
	ErrUndeclaredVariable
	ErrUndeclaredFunction
	ErrDuplicateVariable
	ErrDuplicateFunction

	// Type errors.
	ErrInvalidCast
	ErrTypeMismatchArithmetic
	ErrTypeMismatchRelational
	ErrTypeMismatchLogical
	ErrTypeMismatchCondition
	ErrTypeMismatchAssignment

	// Function errors.
	ErrReturnTypeMismatch
	ErrArgumentCountMismatch
	ErrArgumentTypeMismatch

	// Indexing and call errors.
	ErrInvalidIndexTarget
	ErrInvalidCallTarget
	ErrInvalidIndexType
)

// errorKindDescs maps error kinds to their user-facing descriptions.
var errorKindDescs = map[ErrorKind]string{
	ErrMissingEntry:           "missing entry point",
	ErrDuplicateEntry:         "more than one entry point",
	ErrUndeclaredVariable:     "use of an undeclared variable",
	ErrUndeclaredFunction:     "use of an undeclared function",
	ErrDuplicateVariable:      "variable already declared in this scope",
	ErrDuplicateFunction:      "function already declared",
	ErrInvalidCast:            "invalid cast",
	ErrTypeMismatchArithmetic: "type mismatch in arithmetic expression",
	ErrTypeMismatchRelational: "type mismatch in relational expression",
	ErrTypeMismatchLogical:    "type mismatch in logical expression",
	ErrTypeMismatchCondition:  "condition is not a boolean value",
	ErrTypeMismatchAssignment: "type mismatch in assignment",
	ErrReturnTypeMismatch:     "return value does not match function return type",
	ErrArgumentCountMismatch:  "wrong number of arguments in call",
	ErrArgumentTypeMismatch:   "argument type does not match parameter type",
	ErrInvalidIndexTarget:     "type does not support indexing",
	ErrInvalidCallTarget:      "called object is not a function",
	ErrInvalidIndexType:       "array index is not an integer",
}

// Desc returns the short user-facing description for the error kind.
func (ek ErrorKind) Desc() string {
	return errorKindDescs[ek]
}

// SemanticError is the single error value produced by a failed analysis.  The
// analyzer is fail-fast: the first rule violation anywhere in the walk aborts
// the whole analysis carrying exactly one of these.
type SemanticError struct {
	// The category of the violation.
	Kind ErrorKind

	// The human-readable detail string.
	Message string

	// The source position of the violation.  Both are zero when no position
	// is available (eg. a missing entry point).
	Line, Col int
}

func (se *SemanticError) Error() string {
	if se.Line > 0 {
		return fmt.Sprintf("semantic error [line %d, col %d]: %s: %s",
			se.Line, se.Col, se.Kind.Desc(), se.Message)
	}

	return fmt.Sprintf("semantic error: %s: %s", se.Kind.Desc(), se.Message)
}

// RaiseSemantic creates a new semantic error at the start of the given span.
// A nil or unknown span yields the zero position.
func RaiseSemantic(kind ErrorKind, span *TextSpan, msg string, args ...interface{}) *SemanticError {
	se := &SemanticError{Kind: kind, Message: fmt.Sprintf(msg, args...)}
	if span.Known() {
		se.Line = span.StartLine
		se.Col = span.StartCol
	}

	return se
}

// -----------------------------------------------------------------------------

// SyntaxError is an error produced while lexing or parsing source text.
type SyntaxError struct {
	// The error message.
	Message string

	// The span over which the error occurs.
	Span *TextSpan
}

func (se *SyntaxError) Error() string {
	if se.Span.Known() {
		return fmt.Sprintf("syntax error [line %d, col %d]: %s",
			se.Span.StartLine, se.Span.StartCol, se.Message)
	}

	return fmt.Sprintf("syntax error: %s", se.Message)
}

// Raise creates a new syntax error over the given span.
func Raise(span *TextSpan, msg string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Message: fmt.Sprintf(msg, args...), Span: span}
}
