package value

import "io"

// Value is a number as seen by the evaluator. The set of implementations is
// closed, it consists of Integer, Float and None.
type Value interface {
	Kind() Kind
	String() string

	_value()
}

// Numeric is a Value that carries a magnitude. None does not implement it.
type Numeric interface {
	Value
	Magnitude() float64
}

var (
	_ Numeric = Integer(0)
	_ Numeric = Float(0)
	_ Value   = None
)

// NewNumber creates a value of the given kind. The magnitude is ignored for
// KindNone, and every unknown kind yields None. Integer magnitudes are not
// checked for a fractional part.
func NewNumber(kind Kind, magnitude float64) Value {
	switch kind {
	case KindInteger:
		return NewInteger(magnitude)
	case KindFloat:
		return NewFloat(magnitude)
	}
	return None
}

// Print writes the textual representation of the given value to w.
func Print(w io.Writer, v Value) error {
	if v == nil {
		v = None
	}
	_, err := io.WriteString(w, v.String())
	return err
}
