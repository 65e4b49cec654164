package engine

import (
	"errors"
	"fmt"

	"github.com/tsatke/calc/internal/operator"
)

// Error categories. Every Error returned by the evaluator wraps exactly one
// of them, so they can be checked with errors.Is.
var (
	// ErrDomain indicates that an operand violates the mathematical precondition
	// of the operator, or that the result is not a finite number.
	ErrDomain = errors.New("domain error")
	// ErrOperator indicates that the operator is not known.
	ErrOperator = errors.New("operator error")
	// ErrArity indicates that the operator was given the wrong amount of operands.
	ErrArity = errors.New("arity error")
)

// Error is the error returned by Evaluate.
type Error struct {
	Operator operator.Operator
	Reason   string
	Cause    error
}

func newError(op operator.Operator, cause error, format string, args ...interface{}) Error {
	return Error{
		Operator: op,
		Reason:   fmt.Sprintf(format, args...),
		Cause:    cause,
	}
}

func (e Error) Error() string {
	if e.Cause == nil {
		return e.Operator.Name() + ": " + e.Reason
	}
	return e.Operator.Name() + ": " + e.Cause.Error() + ": " + e.Reason
}

func (e Error) Unwrap() error {
	return e.Cause
}
