package types

import "fmt"

// Operator identifies a binary arithmetic operator.
type Operator int

// The closed set of binary operators.
const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
)

// Symbol returns the display symbol for the operator.
func (op Operator) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	default:
		return "?"
	}
}

// String returns the word form of the operator.
func (op Operator) String() string {
	switch op {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	default:
		return "unknown"
	}
}

// ParseOperator parses an operator from its ASCII form, display symbol, or word form.
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "+", "add":
		return Add, nil
	case "-", "−", "subtract":
		return Subtract, nil
	case "*", "×", "x", "multiply":
		return Multiply, nil
	case "/", "÷", "divide":
		return Divide, nil
	default:
		return 0, fmt.Errorf("invalid operator %q, expected one of: + - * /", s)
	}
}
