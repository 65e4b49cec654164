package engine

import (
	"math"

	"github.com/tsatke/calc/internal/engine/value"
	"github.com/tsatke/calc/internal/operator"
)

type (
	unaryOperation  func(operand value.Numeric) (value.Value, error)
	binaryOperation func(left, right value.Numeric) (value.Value, error)
)

var (
	unaryOperations = map[operator.Operator]unaryOperation{
		operator.Negate:        negate,
		operator.AbsoluteValue: absolute,
		operator.Exponential:   exponential,
		operator.NaturalLog:    naturalLog,
		operator.SquareRoot:    squareRoot,
	}
	binaryOperations = map[operator.Operator]binaryOperation{
		operator.Add:       add,
		operator.Subtract:  subtract,
		operator.Multiply:  multiply,
		operator.Divide:    divide,
		operator.Remainder: modulo,
	}
)

// Evaluate applies the given operator to the operands and returns the result
// as a new value. Unary operators use the first operand and ignore all others,
// binary operators need exactly two operands.
//
//	Evaluate(operator.Add, value.Integer(3), value.Integer(4))    // 7
//	Evaluate(operator.Divide, value.Integer(7), value.Integer(2)) // 3.5
//
// If the evaluation fails, the returned error is of type Error and wraps
// one of ErrDomain, ErrOperator or ErrArity. Evaluate holds no state and may
// be called concurrently.
func Evaluate(op operator.Operator, operands ...value.Value) (value.Value, error) {
	var (
		result value.Value
		err    error
	)

	switch op.Arity() {
	case 1:
		result, err = evaluateUnary(op, operands)
	case 2:
		result, err = evaluateBinary(op, operands)
	default:
		return nil, newError(op, ErrOperator, "unknown operator")
	}
	if err != nil {
		return nil, err
	}

	if num, ok := result.(value.Numeric); ok {
		if mag := num.Magnitude(); math.IsInf(mag, 0) || math.IsNaN(mag) {
			return nil, newError(op, ErrDomain, "result out of range (%v)", mag)
		}
	}
	return result, nil
}

// EvaluateNamed looks up the operator with the given name and evaluates it.
// Unknown names result in an error wrapping ErrOperator.
func EvaluateNamed(name string, operands ...value.Value) (value.Value, error) {
	op := operator.Lookup(name)
	if op == operator.Other {
		return nil, newError(op, ErrOperator, "unknown operator %q", name)
	}
	return Evaluate(op, operands...)
}

func evaluateUnary(op operator.Operator, operands []value.Value) (value.Value, error) {
	if len(operands) < 1 {
		return nil, newError(op, ErrArity, "missing operand")
	}

	operand, err := numeric(op, operands[0])
	if err != nil {
		return nil, err
	}
	return unaryOperations[op](operand)
}

func evaluateBinary(op operator.Operator, operands []value.Value) (value.Value, error) {
	if len(operands) != 2 {
		return nil, newError(op, ErrArity, "expected 2 operands, got %d", len(operands))
	}

	left, err := numeric(op, operands[0])
	if err != nil {
		return nil, err
	}
	right, err := numeric(op, operands[1])
	if err != nil {
		return nil, err
	}
	return binaryOperations[op](left, right)
}

func numeric(op operator.Operator, val value.Value) (value.Numeric, error) {
	if val == nil {
		return nil, newError(op, ErrArity, "missing operand")
	}
	num, ok := val.(value.Numeric)
	if !ok {
		return nil, newError(op, ErrDomain, "operand has no value")
	}
	return num, nil
}
