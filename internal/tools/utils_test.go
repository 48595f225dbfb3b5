package tools

import (
	"testing"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
)

func newRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestParseDigit(t *testing.T) {
	tests := []struct {
		name        string
		args        map[string]any
		expected    rune
		expectError bool
	}{
		{
			name:     "valid digit",
			args:     map[string]any{"digit": "7"},
			expected: '7',
		},
		{
			name:     "zero",
			args:     map[string]any{"digit": "0"},
			expected: '0',
		},
		{
			name:        "missing parameter",
			args:        map[string]any{},
			expectError: true,
		},
		{
			name:        "multiple characters",
			args:        map[string]any{"digit": "12"},
			expectError: true,
		},
		{
			name:        "non-digit",
			args:        map[string]any{"digit": "a"},
			expectError: true,
		},
		{
			name:        "decimal point is not a digit",
			args:        map[string]any{"digit": "."},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digit, err := parseDigit(newRequest(tt.args))
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, digit)
			}
		})
	}
}

func TestParseOperator(t *testing.T) {
	op, err := parseOperator(newRequest(map[string]any{"operator": "+"}))
	assert.NoError(t, err)
	assert.Equal(t, types.Add, op)

	op, err = parseOperator(newRequest(map[string]any{"operator": "÷"}))
	assert.NoError(t, err)
	assert.Equal(t, types.Divide, op)

	_, err = parseOperator(newRequest(map[string]any{}))
	assert.Error(t, err)

	_, err = parseOperator(newRequest(map[string]any{"operator": "bogus"}))
	assert.Error(t, err)
}
