// Package calc is the arithmetic core of a small expression calculator.
// It applies unary and binary operators to numbers that are either integers
// or floats, and keeps track of the kind of the result.
//
//	result, err := calc.Evaluate(calc.Divide, calc.NewNumber(calc.KindInteger, 7), calc.NewNumber(calc.KindInteger, 2))
//	// result is the float 3.5
//
// All functions in this package are pure and safe for concurrent use.
package calc

import (
	"io"

	"github.com/tsatke/calc/internal/engine"
	"github.com/tsatke/calc/internal/engine/value"
	"github.com/tsatke/calc/internal/operator"
)

type (
	// Number is a value that can be passed to and is returned by Evaluate.
	// Its concrete type determines its kind.
	Number = value.Value
	// Kind is the kind of a Number.
	Kind = value.Kind
	// Operator identifies an operation that Evaluate can perform.
	Operator = operator.Operator
)

// Kinds of numbers.
const (
	KindInteger = value.KindInteger
	KindFloat   = value.KindFloat
	KindNone    = value.KindNone
)

// None is the number that holds no meaningful value.
const None = value.None

// Operators.
const (
	Negate        = operator.Negate
	AbsoluteValue = operator.AbsoluteValue
	Exponential   = operator.Exponential
	NaturalLog    = operator.NaturalLog
	SquareRoot    = operator.SquareRoot
	Add           = operator.Add
	Subtract      = operator.Subtract
	Multiply      = operator.Multiply
	Divide        = operator.Divide
	Remainder     = operator.Remainder
	Other         = operator.Other
)

// NewNumber creates a number of the given kind. It never fails; unknown kinds
// yield None.
func NewNumber(kind Kind, magnitude float64) Number {
	return value.NewNumber(kind, magnitude)
}

// Magnitude returns the magnitude of the given number. If the number has
// no magnitude, i.e. it is None or nil, false is returned.
func Magnitude(n Number) (float64, bool) {
	num, ok := n.(value.Numeric)
	if !ok {
		return 0, false
	}
	return num.Magnitude(), true
}

// Lookup returns the operator with the given name, e.g. "add" or "+".
// Unknown names yield Other.
func Lookup(name string) Operator {
	return operator.Lookup(name)
}

// Evaluate applies op to the operands. Unary operators only look at the first
// operand. If the evaluation fails, the error is of type *Error.
func Evaluate(op Operator, operands ...Number) (Number, error) {
	result, err := engine.Evaluate(op, operands...)
	if err != nil {
		return nil, convertError(err)
	}
	return result, nil
}

// EvaluateNamed is like Evaluate, but looks up the operator by name first.
func EvaluateNamed(name string, operands ...Number) (Number, error) {
	result, err := engine.EvaluateNamed(name, operands...)
	if err != nil {
		return nil, convertError(err)
	}
	return result, nil
}

// PrintNumber writes the textual form of n to w. Integers are written without
// a decimal point, floats always with one, and None as "<no value>".
func PrintNumber(w io.Writer, n Number) error {
	return value.Print(w, n)
}
