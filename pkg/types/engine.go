package types

// State represents the visible calculator state after an operation.
type State struct {
	Display    string `json:"display"`
	Expression string `json:"expression"`
	ErrorState bool   `json:"error_state"`
}

// Engine defines the calculator engine interface.
//
// Every operation returns the new State for rendering. Arithmetic failures
// (divide by zero, invalid unary input) surface as a sticky error state that
// only Clear resets; no operation returns a Go error.
type Engine interface {
	InputDigit(d rune) State
	InputDecimal() State
	InputOperator(op Operator) State
	Compute() State
	Clear() State
	ClearEntry() State
	Backspace() State
	ToggleSign() State
	Percent() State
	Reciprocal() State
	Square() State
	SquareRoot() State
	Snapshot() State
}
