package engine

import (
	"math"

	"github.com/tsatke/calc/internal/operator"

	. "github.com/tsatke/calc/internal/engine/value"
)

func add(left, right Numeric) (Value, error) {
	return promote(left, right, left.Magnitude()+right.Magnitude()), nil
}

func subtract(left, right Numeric) (Value, error) {
	return promote(left, right, left.Magnitude()-right.Magnitude()), nil
}

func multiply(left, right Numeric) (Value, error) {
	return promote(left, right, left.Magnitude()*right.Magnitude()), nil
}

// divide always performs true division, so the result is a float even if
// both operands are integers.
func divide(left, right Numeric) (Value, error) {
	if right.Magnitude() == 0 {
		return nil, newError(operator.Divide, ErrDomain, "division by zero")
	}
	return NewFloat(left.Magnitude() / right.Magnitude()), nil
}

// modulo has the semantics of C's fmod, the sign of the result is the sign
// of left.
func modulo(left, right Numeric) (Value, error) {
	if right.Magnitude() == 0 {
		return nil, newError(operator.Remainder, ErrDomain, "remainder by zero")
	}
	return promote(left, right, math.Mod(left.Magnitude(), right.Magnitude())), nil
}

// promote creates a float if any of the operands is a float, and an integer
// otherwise.
func promote(left, right Numeric, magnitude float64) Value {
	if left.Kind() == KindFloat || right.Kind() == KindFloat {
		return NewFloat(magnitude)
	}
	return NewInteger(magnitude)
}
