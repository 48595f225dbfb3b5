package tools

// Tool name prefix for all MCP tools
const ToolPrefix = "calculator."

// Tool names
const (
	ToolInputDigit    = ToolPrefix + "input_digit"
	ToolInputDecimal  = ToolPrefix + "input_decimal"
	ToolInputOperator = ToolPrefix + "input_operator"
	ToolCompute       = ToolPrefix + "compute"
	ToolClear         = ToolPrefix + "clear"
	ToolClearEntry    = ToolPrefix + "clear_entry"
	ToolBackspace     = ToolPrefix + "backspace"
	ToolToggleSign    = ToolPrefix + "toggle_sign"
	ToolPercent       = ToolPrefix + "percent"
	ToolReciprocal    = ToolPrefix + "reciprocal"
	ToolSquare        = ToolPrefix + "square"
	ToolSquareRoot    = ToolPrefix + "square_root"
	ToolHistory       = ToolPrefix + "history"
	ToolClearHistory  = ToolPrefix + "clear_history"
)
