package engine

import (
	"errors"
	"math"

	"github.com/averycrespi/calc-mcp/pkg/types"
)

// ErrDivisionByZero is returned when the right operand of a division is zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrInvalidUnaryOperation is returned for reciprocal of zero and square root
// of a negative number.
var ErrInvalidUnaryOperation = errors.New("invalid unary operation")

// apply evaluates a binary operation over the closed operator set.
func apply(op types.Operator, a, b float64) (float64, error) {
	switch op {
	case types.Add:
		return a + b, nil
	case types.Subtract:
		return a - b, nil
	case types.Multiply:
		return a * b, nil
	case types.Divide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, errors.New("unknown operator")
	}
}

// reciprocal evaluates 1/v.
func reciprocal(v float64) (float64, error) {
	if v == 0 {
		return 0, ErrInvalidUnaryOperation
	}
	return 1 / v, nil
}

// squareRoot evaluates √v.
func squareRoot(v float64) (float64, error) {
	if v < 0 {
		return 0, ErrInvalidUnaryOperation
	}
	return math.Sqrt(v), nil
}
