package value

//go:generate stringer -type=Kind

// Kind tells how the magnitude of a number has to be interpreted.
type Kind uint8

// Known kinds.
const (
	KindInvalid Kind = iota
	// KindInteger is the kind of a number without fractional part.
	KindInteger
	// KindFloat is the kind of a floating point number.
	KindFloat
	// KindNone is the kind of a value that holds no meaningful number.
	KindNone
)
