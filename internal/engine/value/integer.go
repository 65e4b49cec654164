package value

import (
	"math"
	"strconv"
)

// Integer is a number of kind KindInteger. It is stored as float64, and its
// magnitude should not have a fractional part.
type Integer float64

func (Integer) _value()              {}
func (Integer) Kind() Kind           { return KindInteger }
func (i Integer) Magnitude() float64 { return float64(i) }

// String renders the integer without a decimal point. A fractional part, if
// the creator put one there, is truncated.
func (i Integer) String() string {
	f := math.Trunc(float64(i))
	if f == 0 {
		// avoid "-0"
		f = 0
	}
	return strconv.FormatFloat(f, 'f', 0, 64)
}

func NewInteger(magnitude float64) Integer {
	return Integer(magnitude)
}
