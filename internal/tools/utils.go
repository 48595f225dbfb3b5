package tools

import (
	"encoding/json"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// newStateResult marshals the calculator state into a tool result
func newStateResult(state types.State) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(results.NewCalculatorStateResult(state), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// parseDigit extracts the digit parameter from an MCP request
func parseDigit(req mcp.CallToolRequest) (rune, error) {
	digit := mcp.ParseString(req, "digit", "")
	if digit == "" {
		return 0, fmt.Errorf("digit parameter is required")
	}
	if len(digit) != 1 || digit[0] < '0' || digit[0] > '9' {
		return 0, fmt.Errorf("invalid digit %q, expected a single digit 0-9", digit)
	}
	return rune(digit[0]), nil
}

// parseOperator extracts the operator parameter from an MCP request
func parseOperator(req mcp.CallToolRequest) (types.Operator, error) {
	operator := mcp.ParseString(req, "operator", "")
	if operator == "" {
		return 0, fmt.Errorf("operator parameter is required")
	}
	return types.ParseOperator(operator)
}
