package value

const (
	// None is the value that holds no meaningful number.
	None = noneValue(0)
)

type noneValue uint8

func (noneValue) _value()        {}
func (noneValue) Kind() Kind     { return KindNone }
func (noneValue) String() string { return "<no value>" }
