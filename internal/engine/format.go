package engine

import (
	"math"
	"strconv"
	"strings"
)

// Width thresholds for the display formatting policy.
const (
	maxIntegralMagnitude = 1e15
	minPlainMagnitude    = 1e-9
)

// FormatNumber renders a value for the calculator display.
//
// The policy is deterministic: NaN and infinities render as the error
// sentinel; integral values within the display width render without a
// decimal point; values outside the display width render in exponent
// notation; everything else renders with ten decimals, trailing zeros
// trimmed.
func FormatNumber(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return errorDisplay
	}
	abs := math.Abs(n)
	if n == math.Trunc(n) && abs < maxIntegralMagnitude {
		return strconv.FormatInt(int64(n), 10)
	}
	if abs >= maxIntegralMagnitude || abs < minPlainMagnitude {
		return trimExponent(strconv.FormatFloat(n, 'e', 6, 64))
	}
	s := strconv.FormatFloat(n, 'f', 10, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// trimExponent drops trailing zeros from the mantissa of an 'e'-formatted
// number, so "1.000000e+15" becomes "1e+15".
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return s
	}
	mantissa := strings.TrimRight(s[:i], "0")
	mantissa = strings.TrimSuffix(mantissa, ".")
	return mantissa + s[i:]
}
