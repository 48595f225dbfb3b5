package results

import "github.com/averycrespi/calc-mcp/pkg/types"

// CalculatorStateResult represents the JSON structure of the calculator
// state returned by every calculator tool.
type CalculatorStateResult struct {
	Display    string `json:"display"`
	Expression string `json:"expression"`
	ErrorState bool   `json:"error_state"`
}

// NewCalculatorStateResult creates a CalculatorStateResult from an engine state.
func NewCalculatorStateResult(state types.State) CalculatorStateResult {
	return CalculatorStateResult{
		Display:    state.Display,
		Expression: state.Expression,
		ErrorState: state.ErrorState,
	}
}
