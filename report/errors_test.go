package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSemanticErrorMessage(t *testing.T) {
	err := RaiseSemantic(ErrUndeclaredVariable, NewSpanAt(3, 7), "variable `%s` is not declared", "x")

	assert.Equal(t, 3, err.Line)
	assert.Equal(t, 7, err.Col)
	assert.Equal(t,
		"semantic error [line 3, col 7]: use of an undeclared variable: variable `x` is not declared",
		err.Error())
}

func TestSemanticErrorWithoutPosition(t *testing.T) {
	err := RaiseSemantic(ErrMissingEntry, nil, "program declares no entry point")

	assert.Zero(t, err.Line)
	assert.Zero(t, err.Col)
	assert.Equal(t,
		"semantic error: missing entry point: program declares no entry point",
		err.Error())
}

func TestSyntaxErrorMessage(t *testing.T) {
	err := Raise(NewSpanAt(2, 5), "unexpected token: `%s`", ";")

	assert.Equal(t, "syntax error [line 2, col 5]: unexpected token: `;`", err.Error())
}

func TestEveryErrorKindHasDescription(t *testing.T) {
	for kind := ErrMissingEntry; kind <= ErrInvalidIndexType; kind++ {
		assert.NotEmpty(t, kind.Desc(), "kind %d has no description", kind)
	}
}

func TestSpanOver(t *testing.T) {
	over := NewSpanOver(NewSpanAt(1, 2), NewSpanAt(3, 4))

	assert.Equal(t, &TextSpan{StartLine: 1, StartCol: 2, EndLine: 3, EndCol: 4}, over)
	assert.True(t, over.Known())
	assert.False(t, (*TextSpan)(nil).Known())
	assert.False(t, (&TextSpan{}).Known())
}
