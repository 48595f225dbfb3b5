package engine

import (
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/averycrespi/calc-mcp/pkg/types"
)

const (
	initialDisplay = "0"
	errorDisplay   = "Error"

	msgDivideByZero = "Cannot divide by zero"
	msgInvalidInput = "Invalid input"
	msgOutOfRange   = "Result is out of range"
)

// Engine implements the calculator state machine.
//
// The engine owns the display text, the expression trail, the pending
// operator with its stored operand, and the sticky error state. It appends a
// history entry to its store on every successful binary computation.
type Engine struct {
	display    string
	expression string
	operand    float64
	operator   types.Operator
	hasPending bool
	waiting    bool // an operator was just pressed; the next digit starts the right operand
	computed   bool // the last action completed a computation; the next digit starts fresh
	errored    bool
	store      types.HistoryStore
}

var _ types.Engine = &Engine{}

// New creates a new calculator engine backed by the given history store.
// The store may be nil, in which case completed operations are not recorded.
func New(store types.HistoryStore) *Engine {
	return &Engine{
		display: initialDisplay,
		store:   store,
	}
}

// Snapshot returns the current visible state.
func (e *Engine) Snapshot() types.State {
	return types.State{
		Display:    e.display,
		Expression: e.expression,
		ErrorState: e.errored,
	}
}

// InputDigit appends a digit to the display.
func (e *Engine) InputDigit(d rune) types.State {
	if e.errored || d < '0' || d > '9' {
		return e.Snapshot()
	}
	if e.computed {
		e.reset()
	}
	switch {
	case e.waiting:
		e.display = string(d)
		e.waiting = false
	case e.display == initialDisplay:
		e.display = string(d)
	default:
		e.display += string(d)
	}
	return e.Snapshot()
}

// InputDecimal appends a decimal point to the display. At most one decimal
// point is accepted per operand.
func (e *Engine) InputDecimal() types.State {
	if e.errored {
		return e.Snapshot()
	}
	if e.computed {
		e.reset()
	}
	if e.waiting {
		e.display = "0."
		e.waiting = false
	} else if !strings.Contains(e.display, ".") {
		e.display += "."
	}
	return e.Snapshot()
}

// InputOperator stores the current value as the left operand and sets the
// pending operator. If an operator is already pending and the right operand
// has begun, the pending computation is performed first (chained entry).
func (e *Engine) InputOperator(op types.Operator) types.State {
	if e.errored {
		return e.Snapshot()
	}
	val, err := strconv.ParseFloat(e.display, 64)
	if err != nil {
		return e.Snapshot()
	}
	if e.hasPending && !e.waiting {
		e.Compute()
		if e.errored {
			return e.Snapshot()
		}
		val, err = strconv.ParseFloat(e.display, 64)
		if err != nil {
			return e.Snapshot()
		}
	}
	e.expression = FormatNumber(val) + " " + op.Symbol()
	e.operand = val
	e.operator = op
	e.hasPending = true
	e.waiting = true
	e.computed = false
	return e.Snapshot()
}

// Compute applies the pending operator to the stored operand and the current
// display value. On success the result is formatted into the display and a
// history entry is appended; on failure the engine enters the error state and
// the history is left unchanged. The pending operator is cleared either way.
func (e *Engine) Compute() types.State {
	if e.errored || !e.hasPending {
		return e.Snapshot()
	}
	right, err := strconv.ParseFloat(e.display, 64)
	if err != nil {
		return e.Snapshot()
	}
	left := e.operand
	op := e.operator
	e.expression = FormatNumber(left) + " " + op.Symbol() + " " + FormatNumber(right) + " ="
	e.hasPending = false
	e.waiting = false
	e.operand = 0
	e.computed = true

	result, err := apply(op, left, right)
	if err != nil {
		e.fail(msgDivideByZero)
		return e.Snapshot()
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		e.fail(msgOutOfRange)
		return e.Snapshot()
	}

	e.display = FormatNumber(result)
	if e.store != nil {
		entry := types.HistoryEntry{Left: left, Operator: op, Right: right, Result: result}
		if err := e.store.Append(entry); err != nil {
			log.Printf("Failed to persist history entry: %v", err)
		}
	}
	return e.Snapshot()
}

// Clear resets the engine to its initial state, clearing the error state.
func (e *Engine) Clear() types.State {
	e.reset()
	e.errored = false
	return e.Snapshot()
}

// ClearEntry resets only the display, preserving any pending operator.
func (e *Engine) ClearEntry() types.State {
	if e.errored {
		return e.Snapshot()
	}
	e.display = initialDisplay
	return e.Snapshot()
}

// Backspace removes the last character of the display.
func (e *Engine) Backspace() types.State {
	if e.errored || e.computed {
		return e.Snapshot()
	}
	if len(e.display) > 1 {
		e.display = e.display[:len(e.display)-1]
	} else {
		e.display = initialDisplay
	}
	if e.display == "" || e.display == "-" {
		e.display = initialDisplay
	}
	return e.Snapshot()
}

// ToggleSign negates the displayed value.
func (e *Engine) ToggleSign() types.State {
	if e.errored || e.display == initialDisplay {
		return e.Snapshot()
	}
	if strings.HasPrefix(e.display, "-") {
		e.display = e.display[1:]
	} else {
		e.display = "-" + e.display
	}
	return e.Snapshot()
}

// Percent divides the displayed value by 100. With a pending operator it
// instead yields that percentage of the stored operand, so "200 + 10 %"
// turns the display into 20.
func (e *Engine) Percent() types.State {
	if e.errored {
		return e.Snapshot()
	}
	val, err := strconv.ParseFloat(e.display, 64)
	if err != nil {
		return e.Snapshot()
	}
	if e.hasPending {
		val = e.operand * val / 100
	} else {
		val = val / 100
	}
	e.display = FormatNumber(val)
	e.waiting = false
	return e.Snapshot()
}

// Reciprocal replaces the displayed value with its reciprocal.
func (e *Engine) Reciprocal() types.State {
	if e.errored {
		return e.Snapshot()
	}
	val, err := strconv.ParseFloat(e.display, 64)
	if err != nil {
		return e.Snapshot()
	}
	result, err := reciprocal(val)
	if err != nil {
		e.fail(msgDivideByZero)
		return e.Snapshot()
	}
	return e.applyUnary("1/("+FormatNumber(val)+")", result)
}

// Square replaces the displayed value with its square.
func (e *Engine) Square() types.State {
	if e.errored {
		return e.Snapshot()
	}
	val, err := strconv.ParseFloat(e.display, 64)
	if err != nil {
		return e.Snapshot()
	}
	return e.applyUnary("sqr("+FormatNumber(val)+")", val*val)
}

// SquareRoot replaces the displayed value with its square root.
func (e *Engine) SquareRoot() types.State {
	if e.errored {
		return e.Snapshot()
	}
	val, err := strconv.ParseFloat(e.display, 64)
	if err != nil {
		return e.Snapshot()
	}
	result, err := squareRoot(val)
	if err != nil {
		e.fail(msgInvalidInput)
		return e.Snapshot()
	}
	return e.applyUnary("√("+FormatNumber(val)+")", result)
}

// applyUnary commits the result of a unary function to the display.
func (e *Engine) applyUnary(expression string, result float64) types.State {
	if math.IsNaN(result) || math.IsInf(result, 0) {
		e.fail(msgOutOfRange)
		return e.Snapshot()
	}
	e.expression = expression
	e.display = FormatNumber(result)
	e.waiting = false
	e.computed = true
	return e.Snapshot()
}

// reset restores the input fields to their defaults. The error flag is left
// alone; only Clear may drop it.
func (e *Engine) reset() {
	e.display = initialDisplay
	e.expression = ""
	e.operand = 0
	e.operator = types.Add
	e.hasPending = false
	e.waiting = false
	e.computed = false
}

// fail enters the sticky error state with a descriptive message.
func (e *Engine) fail(message string) {
	e.display = errorDisplay
	e.expression = message
	e.errored = true
	e.operand = 0
	e.hasPending = false
	e.waiting = false
	e.computed = false
}
