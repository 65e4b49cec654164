package value

import (
	"math"
	"strconv"
	"strings"
)

// Float is a number of kind KindFloat.
type Float float64

func (Float) _value()              {}
func (Float) Kind() Kind           { return KindFloat }
func (f Float) Magnitude() float64 { return float64(f) }

// String renders the shortest representation that parses back to the same
// float. If that representation would be indistinguishable from an integer,
// ".0" is appended.
func (f Float) String() string {
	val := float64(f)
	s := strconv.FormatFloat(val, 'g', -1, 64)
	if math.IsInf(val, 0) || math.IsNaN(val) || strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}

func NewFloat(magnitude float64) Float {
	return Float(magnitude)
}
