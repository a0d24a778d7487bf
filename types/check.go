package types

// This file contains the type rules applied by the semantic analyzer.  All of
// the rule functions are pure: they inspect type values and either produce a
// result type or nil when the rule is undefined for the given operands.  A nil
// result is what the analyzer turns into the class-specific type error.

// IsNumeric returns whether the type is Integer or Real.
func IsNumeric(t Type) bool {
	return IsInteger(t) || IsReal(t)
}

// IsInteger returns whether the type is the Integer primitive.
func IsInteger(t Type) bool {
	pt, ok := t.(PrimitiveType)
	return ok && pt == PrimInteger
}

// IsReal returns whether the type is the Real primitive.
func IsReal(t Type) bool {
	pt, ok := t.(PrimitiveType)
	return ok && pt == PrimReal
}

// IsBoolean returns whether the type is the Boolean primitive.
func IsBoolean(t Type) bool {
	pt, ok := t.(PrimitiveType)
	return ok && pt == PrimBoolean
}

// IsString returns whether the type is the String primitive.
func IsString(t Type) bool {
	pt, ok := t.(PrimitiveType)
	return ok && pt == PrimString
}

// IsChar returns whether the type is the Char primitive.
func IsChar(t Type) bool {
	pt, ok := t.(PrimitiveType)
	return ok && pt == PrimChar
}

// IsArray returns whether the type is an array type.
func IsArray(t Type) bool {
	_, ok := t.(*ArrayType)
	return ok
}

// IsVoid returns whether the type is the void type.  A nil type is treated as
// void for convenience.
func IsVoid(t Type) bool {
	if t == nil {
		return true
	}

	_, ok := t.(VoidType)
	return ok
}

// -----------------------------------------------------------------------------

// ArithmeticResult returns the result type of an arithmetic operation over the
// two operand types.  Both operands must be numeric and of the same type:
// there is no implicit numeric promotion, so mixed Integer/Real arithmetic is
// undefined.  Returns nil when the rule is undefined.
func ArithmeticResult(lhs, rhs Type) Type {
	if !IsNumeric(lhs) || !IsNumeric(rhs) {
		return nil
	}

	if !Equals(lhs, rhs) {
		return nil
	}

	return lhs
}

// RelationalResult returns the result type of a relational comparison.  Both
// operands must be numeric and of the same type; the result is Boolean.
func RelationalResult(lhs, rhs Type) Type {
	if !IsNumeric(lhs) || !IsNumeric(rhs) {
		return nil
	}

	if !Equals(lhs, rhs) {
		return nil
	}

	return PrimBoolean
}

// EqualityResult returns the result type of an equality comparison.  Any two
// equal types may be compared; the result is Boolean.
func EqualityResult(lhs, rhs Type) Type {
	if !Equals(lhs, rhs) {
		return nil
	}

	return PrimBoolean
}

// LogicalResult returns the result type of a logical operation.  Both operands
// must be Boolean; the result is Boolean.
func LogicalResult(lhs, rhs Type) Type {
	if !IsBoolean(lhs) || !IsBoolean(rhs) {
		return nil
	}

	return PrimBoolean
}

// UnaryNotResult returns the result type of logical negation.
func UnaryNotResult(operand Type) Type {
	if !IsBoolean(operand) {
		return nil
	}

	return PrimBoolean
}

// UnaryMinusResult returns the result type of arithmetic negation: the same
// numeric type as the operand.
func UnaryMinusResult(operand Type) Type {
	if !IsNumeric(operand) {
		return nil
	}

	return operand
}

// -----------------------------------------------------------------------------

// ArrayElementType returns the type produced by indexing an array with the
// given number of indices.  Indexing all of the dimensions yields the scalar
// element type; indexing fewer yields an array of reduced rank; indexing more
// is undefined and yields nil.  A non-array operand also yields nil.
func ArrayElementType(arrType Type, indexCount int) Type {
	at, ok := arrType.(*ArrayType)
	if !ok {
		return nil
	}

	newRank := at.Rank - indexCount
	switch {
	case newRank < 0:
		return nil
	case newRank == 0:
		return at.Elem
	default:
		return &ArrayType{Elem: at.Elem, Rank: newRank}
	}
}

// IsAssignable returns whether a value of the given type may be assigned to a
// target of the given type.  Assignment, parameter passing, and return all use
// this rule: strict equality only, no coercion.
func IsAssignable(target, value Type) bool {
	return Equals(target, value)
}

// CastAllowed returns whether an explicit cast from one type to the other is
// legal.  Casting a type to itself is always allowed; otherwise both types
// must be numeric (Integer and Real cast to each other in either direction).
// A Real to Integer cast is permitted here even though it may be numerically
// invalid at run time: that value-level check belongs to a later stage.
func CastAllowed(from, to Type) bool {
	if Equals(from, to) {
		return true
	}

	return IsNumeric(from) && IsNumeric(to)
}

// CastResult returns the result type of a cast, or nil when the cast is not
// allowed.
func CastResult(from, to Type) Type {
	if CastAllowed(from, to) {
		return to
	}

	return nil
}
