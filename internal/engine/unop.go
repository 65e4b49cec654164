package engine

import (
	"math"

	"github.com/tsatke/calc/internal/operator"

	. "github.com/tsatke/calc/internal/engine/value"
)

func negate(val Numeric) (Value, error) {
	return withKindOf(val, -val.Magnitude()), nil
}

func absolute(val Numeric) (Value, error) {
	return withKindOf(val, math.Abs(val.Magnitude())), nil
}

func exponential(val Numeric) (Value, error) {
	return NewFloat(math.Exp(val.Magnitude())), nil
}

func naturalLog(val Numeric) (Value, error) {
	x := val.Magnitude()
	if x <= 0 {
		return nil, newError(operator.NaturalLog, ErrDomain, "logarithm of non-positive number %v", x)
	}
	return NewFloat(math.Log(x)), nil
}

func squareRoot(val Numeric) (Value, error) {
	x := val.Magnitude()
	if x < 0 {
		return nil, newError(operator.SquareRoot, ErrDomain, "square root of negative number %v", x)
	}
	return NewFloat(math.Sqrt(x)), nil
}

// withKindOf creates a number of the same kind as val.
func withKindOf(val Numeric, magnitude float64) Value {
	if val.Kind() == KindFloat {
		return NewFloat(magnitude)
	}
	return NewInteger(magnitude)
}
