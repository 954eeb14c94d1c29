package mathx_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numsvd/mathx"
	"github.com/stretchr/testify/assert"
)

// TestHypot_Basic checks the textbook triangle and the zero case.
func TestHypot_Basic(t *testing.T) {
	assert.Equal(t, float32(5), mathx.Hypot(3, 4), "3-4-5 triangle")
	assert.Equal(t, float32(5), mathx.Hypot(-3, 4), "sign of operands is irrelevant")
	assert.Equal(t, float32(0), mathx.Hypot(0, 0), "both zero yields zero")
	assert.Equal(t, float32(7), mathx.Hypot(7, 0), "degenerate leg")
}

// TestHypot_NoOverflow verifies that magnitudes whose squares exceed the
// float32 range still produce a finite result.
func TestHypot_NoOverflow(t *testing.T) {
	const big = float32(1e30) // big² overflows float32
	got := mathx.Hypot(big, big)
	assert.False(t, math.IsInf(float64(got), 0), "hypot must not overflow")
	assert.InDelta(t, float64(big)*math.Sqrt2, float64(got), 1e24)
}

// TestHypot_NoUnderflow verifies that tiny magnitudes whose squares flush to
// zero still produce a nonzero result.
func TestHypot_NoUnderflow(t *testing.T) {
	const small = float32(1e-30) // small² flushes to zero in float32
	got := mathx.Hypot(small, small)
	assert.Greater(t, got, float32(0), "hypot must not flush to zero")
	assert.InDelta(t, float64(small)*math.Sqrt2, float64(got), 1e-36)
}

// TestPow_GuardConstants pins the two negligibility constants the
// decomposition derives from Pow: 2⁻⁵² stays positive, 2⁻⁹⁶⁶ lies far below
// the float32 subnormal range and rounds to exactly zero.
func TestPow_GuardConstants(t *testing.T) {
	eps := mathx.Pow(2, -52)
	assert.Greater(t, eps, float32(0), "2^-52 is representable in float32")
	assert.Equal(t, float32(math.Pow(2, -52)), eps)

	tiny := mathx.Pow(2, -966)
	assert.Equal(t, float32(0), tiny, "2^-966 underflows float32 to zero")
}

func TestSqrtAbs(t *testing.T) {
	assert.Equal(t, float32(3), mathx.Sqrt(9))
	assert.Equal(t, float32(0), mathx.Sqrt(0))
	assert.Equal(t, float32(2.5), mathx.Abs(-2.5))
	assert.Equal(t, float32(2.5), mathx.Abs(2.5))
	assert.Equal(t, float32(0), mathx.Abs(0))
}
