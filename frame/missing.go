package frame

import "math"

// Missing returns the marker stored in cells that hold no data.
func Missing() float64 {
	return math.NaN()
}

// IsMissing reports whether x is the missing marker. The marker never
// compares equal to anything, itself included, so this is the only valid test.
func IsMissing(x float64) bool {
	return math.IsNaN(x)
}

// Combine returns the relative change cur/prev - 1. A missing operand gives a
// missing result; a zero denominator gives ±Inf (or missing for 0/0) as
// IEEE-754 division does.
func Combine(cur, prev float64) float64 {
	if IsMissing(cur) || IsMissing(prev) {
		return Missing()
	}
	return cur/prev - 1
}

func fillMissing(values []float64) {
	for i := range values {
		values[i] = math.NaN()
	}
}
