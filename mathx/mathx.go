// Package mathx: float32 scalar helpers shared by the svd kernels.

package mathx

import "math"

// Hypot returns sqrt(a²+b²) without intermediate overflow or underflow.
//
// Implementation:
//   - Stage 1: reduce to magnitudes x = max(|a|,|b|), y = min(|a|,|b|).
//   - Stage 2: scale by the larger operand: x·sqrt(1+(y/x)²). The ratio
//     y/x ≤ 1, so squaring it can neither overflow nor flush a
//     representable result to zero.
//
// Special cases: Hypot(0, 0) = 0; NaN operands propagate.
// Complexity: O(1).
func Hypot(a, b float32) float32 {
	x, y := Abs(a), Abs(b)
	// Order so x holds the dominant magnitude.
	if x < y {
		x, y = y, x
	}
	if x == 0 {
		return 0
	}
	r := y / x

	return x * Sqrt(1+r*r)
}

// Pow returns base**exp in float32.
// Results below the float32 subnormal range round to 0, which the svd engine
// relies on for its 2⁻⁹⁶⁶ guard constant.
// Complexity: O(1).
func Pow(base, exp float32) float32 {
	return float32(math.Pow(float64(base), float64(exp)))
}

// Sqrt returns the square root of x in float32.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}

	return x
}
