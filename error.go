package calc

import "github.com/tsatke/calc/internal/engine"

// Error categories, usable with errors.Is.
var (
	ErrDomain   = engine.ErrDomain
	ErrOperator = engine.ErrOperator
	ErrArity    = engine.ErrArity
)

// Error is returned by Evaluate if the evaluation fails.
type Error struct {
	Operator Operator
	Reason   string

	err engine.Error
}

func convertError(err error) error {
	internal, ok := err.(engine.Error)
	if !ok {
		return err
	}
	return &Error{
		Operator: internal.Operator,
		Reason:   internal.Reason,
		err:      internal,
	}
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err.Cause
}
