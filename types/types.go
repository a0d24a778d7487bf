package types

import "strings"

// Type represents a Lumen data type.  Types are immutable values: they are
// created during parsing and checking and never mutated.
type Type interface {
	// Returns whether this type is equal to the other type.  This should only
	// be called from within methods of type instances: external code uses the
	// package-level Equals.
	equals(other Type) bool

	// Returns the representative string for this type.
	Repr() string
}

// Equals returns whether two types are exactly equal.  There is no implicit
// widening anywhere in the language: equality is the only notion of type
// compatibility.  A nil operand is never equal to anything.
func Equals(a, b Type) bool {
	if a == nil || b == nil {
		return false
	}

	return a.equals(b)
}

// -----------------------------------------------------------------------------

// PrimitiveType represents one of the five primitive types.  This must be one
// of the enumerated primitive type values below.
type PrimitiveType int

// Enumeration of the different primitive types.
const (
	PrimInteger = PrimitiveType(iota)
	PrimReal
	PrimString
	PrimChar
	PrimBoolean
)

func (pt PrimitiveType) equals(other Type) bool {
	if opt, ok := other.(PrimitiveType); ok {
		return pt == opt
	}

	return false
}

func (pt PrimitiveType) Repr() string {
	switch pt {
	case PrimInteger:
		return "Integer"
	case PrimReal:
		return "Real"
	case PrimString:
		return "String"
	case PrimChar:
		return "Char"
	default:
		return "Boolean"
	}
}

// -----------------------------------------------------------------------------

// ArrayType represents a fixed-rank array type.  The rank is a dimensionality
// counter used for equality and indexing arithmetic, never a memory bound.
type ArrayType struct {
	// The primitive element type of the array.
	Elem PrimitiveType

	// The number of dimensions.  Always at least one.
	Rank int
}

func (at *ArrayType) equals(other Type) bool {
	if oat, ok := other.(*ArrayType); ok {
		return at.Elem == oat.Elem && at.Rank == oat.Rank
	}

	return false
}

func (at *ArrayType) Repr() string {
	return at.Elem.Repr() + strings.Repeat("[]", at.Rank)
}

// -----------------------------------------------------------------------------

// VoidType represents the absence of a value: the return type of functions
// which return nothing.
type VoidType struct{}

func (vt VoidType) equals(other Type) bool {
	_, ok := other.(VoidType)
	return ok
}

func (vt VoidType) Repr() string {
	return "Void"
}

// Repr returns the representative string for a type, tolerating nil.
func Repr(t Type) string {
	if t == nil {
		return "Void"
	}

	return t.Repr()
}
