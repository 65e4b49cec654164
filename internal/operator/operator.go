package operator

//go:generate stringer -type=Operator

// Operator identifies one of the operations the evaluator knows. The set of
// operators is closed; anything the evaluator does not recognize is Other.
type Operator uint8

// Known operators.
const (
	// Other is the operator for any unrecognized operator name.
	Other Operator = iota

	// Negate is the unary arithmetic negation.
	Negate
	// AbsoluteValue is the unary absolute value.
	AbsoluteValue
	// Exponential raises e to the operand.
	Exponential
	// NaturalLog is the logarithm to base e.
	NaturalLog
	// SquareRoot is the unary square root.
	SquareRoot

	// Add is the binary addition.
	Add
	// Subtract is the binary subtraction.
	Subtract
	// Multiply is the binary multiplication.
	Multiply
	// Divide is the binary true division.
	Divide
	// Remainder is the binary floating remainder, as computed by fmod.
	Remainder
)

var names = map[Operator]string{
	Negate:        "neg",
	AbsoluteValue: "abs",
	Exponential:   "exp",
	NaturalLog:    "log",
	SquareRoot:    "sqrt",
	Add:           "add",
	Subtract:      "sub",
	Multiply:      "mult",
	Divide:        "div",
	Remainder:     "rem",
}

var byName = func() map[string]Operator {
	m := map[string]Operator{
		"+": Add,
		"-": Subtract,
		"*": Multiply,
		"/": Divide,
		"%": Remainder,
	}
	for op, name := range names {
		m[name] = op
	}
	return m
}()

// Lookup returns the operator with the given name. Both the canonical names
// (see Name) and the symbols of the binary operators are recognized.
// Any other name yields Other.
func Lookup(name string) Operator {
	if op, ok := byName[name]; ok {
		return op
	}
	return Other
}

// Name returns the canonical name of the operator, as accepted by Lookup.
// Operators without a name, such as Other, are named by String.
func (o Operator) Name() string {
	if name, ok := names[o]; ok {
		return name
	}
	return o.String()
}

// Arity returns the amount of operands the operator takes, or 0 if the
// operator is not known.
func (o Operator) Arity() int {
	switch o {
	case Negate, AbsoluteValue, Exponential, NaturalLog, SquareRoot:
		return 1
	case Add, Subtract, Multiply, Divide, Remainder:
		return 2
	}
	return 0
}

// IsUnary determines whether the operator takes exactly one operand.
func (o Operator) IsUnary() bool { return o.Arity() == 1 }

// IsBinary determines whether the operator takes exactly two operands.
func (o Operator) IsBinary() bool { return o.Arity() == 2 }
