package evaluator

import (
	"math"
	"strconv"
)

// formatNumber prints integral values without a fractional part and never
// switches to exponent notation.
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Repr is like Inspect but quotes strings, so the REPL echo can tell
// "1" from 1.
func Repr(obj Object) string {
	if s, ok := obj.(*String); ok {
		return "\"" + s.Value + "\""
	}
	return obj.Inspect()
}
