// Package svd: the diagonalization loop — four-case classification and the
// Givens-rotation kernels that drive the bidiagonal form to diagonal.

package svd

import (
	"github.com/katalvlaran/numsvd/matrix"
	"github.com/katalvlaran/numsvd/mathx"
)

// Negligibility thresholds, inherited verbatim from the reference algorithm:
// eps is the double-precision machine epsilon even though the arithmetic here
// is single-precision (the true float32 epsilon is ~2⁻²³), and tiny underflows
// to exactly 0 in float32. Both are kept as-is — convergence behavior depends
// on them and they must not be "fixed" independently of reference output.
const (
	epsExponent  = -52
	tinyExponent = -966
)

// diagonalize iteratively drives (s, e) to diagonal form, applying the
// accompanying rotations to U and V in lockstep. Each pass classifies the
// active band into one of four cases and performs exactly one transformation;
// every transition strictly shrinks either the active size p or the
// negligible-boundary index, so the loop terminates for well-conditioned
// input. There is no built-in iteration ceiling: with the default options a
// pathological input could spin here indefinitely (inherited open risk);
// a positive maxIter converts that into ErrNoConvergence.
func (eng *engine) diagonalize() error {
	pp := eng.p - 1 // fixed: bounds for the case-4 sign flip and ordering pass
	iter := 0       // QR steps spent on the current trailing value
	eps := mathx.Pow(2, epsExponent)
	tiny := mathx.Pow(2, tinyExponent)

	for eng.p > 0 {
		// Iteration guard: disabled by default (faithful behavior), armed
		// only when the caller configured a cap.
		if eng.maxIter > 0 && iter > eng.maxIter {
			return ErrNoConvergence
		}

		k, kase := eng.classify(eps, tiny)

		switch kase {
		case caseDeflate:
			eng.deflate(k)
		case caseSplit:
			eng.split(k)
		case caseQRStep:
			eng.qrStep(k)
			iter++
		case caseConverge:
			eng.converge(k, pp)
			iter = 0
		}
	}

	return nil
}

// classify inspects s and e for negligible entries and selects the next
// transformation. On return k is the first index of the affected region:
//
//	caseDeflate  — s(p) negligible and e[k-1] negligible, k < p
//	caseSplit    — s(k) negligible, k < p
//	caseQRStep   — e[k-1] negligible, k < p, s(k..p) all non-negligible
//	caseConverge — e(p-1) negligible
//
// A superdiagonal or diagonal entry found negligible is zeroed here as a
// side effect, which is what guarantees forward progress.
func (eng *engine) classify(eps, tiny float32) (int, iterCase) {
	var k int
	for k = eng.p - 2; k >= -1; k-- {
		if k == -1 {
			break
		}
		if mathx.Abs(eng.e[k]) <= tiny+eps*(mathx.Abs(eng.s[k])+mathx.Abs(eng.s[k+1])) {
			eng.e[k] = 0

			break
		}
	}

	var kase iterCase
	if k == eng.p-2 {
		kase = caseConverge
	} else {
		var (
			ks int
			t  float32
		)
		for ks = eng.p - 1; ks >= k; ks-- {
			if ks == k {
				break
			}
			t = 0
			if ks != eng.p {
				t += mathx.Abs(eng.e[ks])
			}
			if ks != k+1 {
				t += mathx.Abs(eng.e[ks-1])
			}
			if mathx.Abs(eng.s[ks]) <= tiny+eps*t {
				eng.s[ks] = 0

				break
			}
		}
		switch {
		case ks == k:
			kase = caseQRStep
		case ks == eng.p-1:
			kase = caseDeflate
		default:
			kase = caseSplit
			k = ks
		}
	}
	k++

	return k, kase
}

// deflate handles a negligible trailing singular value s(p): the tail is
// zeroed and rotated away with Givens rotations chasing upward from the
// bottom of the band. Only V absorbs the rotations.
func (eng *engine) deflate(k int) {
	f := eng.e[eng.p-2]
	eng.e[eng.p-2] = 0
	var t, cs, sn float32
	for j := eng.p - 2; j >= k; j-- {
		t = mathx.Hypot(eng.s[j], f)
		cs = eng.s[j] / t
		sn = f / t
		eng.s[j] = t
		if j != k {
			f = -sn * eng.e[j-1]
			eng.e[j-1] = cs * eng.e[j-1]
		}
		rotateCols(eng.v, eng.n, j, eng.p-1, cs, sn)
	}
}

// split handles a negligible diagonal entry s(k): the superdiagonal entry to
// its left is zeroed and the band is repaired with Givens rotations chasing
// downward from the split point. Only U absorbs the rotations.
func (eng *engine) split(k int) {
	f := eng.e[k-1]
	eng.e[k-1] = 0
	var t, cs, sn float32
	for j := k; j < eng.p; j++ {
		t = mathx.Hypot(eng.s[j], f)
		cs = eng.s[j] / t
		sn = f / t
		eng.s[j] = t
		f = -sn * eng.e[j]
		eng.e[j] = cs * eng.e[j]
		rotateCols(eng.u, eng.m, j, k-1, cs, sn)
	}
}

// qrStep performs one implicit-shift QR step on the active band s(k..p):
// a Wilkinson-style shift is computed from the trailing 2×2 submatrix (on
// scaled quantities, so forming the squares cannot overflow), and the
// resulting bulge is chased through the band with alternating Givens
// rotations. Both U and V absorb rotations.
func (eng *engine) qrStep(k int) {
	// Calculate the shift.
	scale := max(
		mathx.Abs(eng.s[eng.p-1]),
		mathx.Abs(eng.s[eng.p-2]),
		mathx.Abs(eng.e[eng.p-2]),
		mathx.Abs(eng.s[k]),
		mathx.Abs(eng.e[k]),
	)
	sp := eng.s[eng.p-1] / scale
	spm1 := eng.s[eng.p-2] / scale
	epm1 := eng.e[eng.p-2] / scale
	sk := eng.s[k] / scale
	ek := eng.e[k] / scale
	b := ((spm1+sp)*(spm1-sp) + epm1*epm1) / 2
	c := (sp * epm1) * (sp * epm1)
	var shift float32
	if b != 0 || c != 0 {
		shift = mathx.Sqrt(b*b + c)
		if b < 0 {
			shift = -shift
		}
		shift = c / (b + shift)
	}
	f := (sk+sp)*(sk-sp) + shift
	g := sk * ek

	// Chase zeros.
	var t, cs, sn float32
	for j := k; j < eng.p-1; j++ {
		t = mathx.Hypot(f, g)
		cs = f / t
		sn = g / t
		if j != k {
			eng.e[j-1] = t
		}
		f = cs*eng.s[j] + sn*eng.e[j]
		eng.e[j] = cs*eng.e[j] - sn*eng.s[j]
		g = sn * eng.s[j+1]
		eng.s[j+1] = cs * eng.s[j+1]
		rotateCols(eng.v, eng.n, j, j+1, cs, sn)

		t = mathx.Hypot(f, g)
		cs = f / t
		sn = g / t
		eng.s[j] = t
		f = cs*eng.e[j] + sn*eng.s[j+1]
		eng.s[j+1] = -sn*eng.e[j] + cs*eng.s[j+1]
		g = sn * eng.e[j+1]
		eng.e[j+1] = cs * eng.e[j+1]
		if j < eng.m-1 {
			rotateCols(eng.u, eng.m, j, j+1, cs, sn)
		}
	}
	eng.e[eng.p-2] = f
}

// converge finalizes the trailing singular value s(k): a negative value is
// flipped positive (negating the matching V column over rows 0..pp), then a
// single bubble pass promotes it past any larger immediate neighbors,
// swapping U and V columns in lockstep. The active size shrinks by one.
func (eng *engine) converge(k, pp int) {
	// Make the singular value non-negative. The column flip also runs for an
	// exact zero; either sign of a null vector is a valid factor.
	if eng.s[k] <= 0 {
		if eng.s[k] < 0 {
			eng.s[k] = -eng.s[k]
		} else {
			eng.s[k] = 0
		}
		for i := 0; i <= pp; i++ {
			set(eng.v, i, k, -at(eng.v, i, k))
		}
	}

	// Order the singular values (one adjacent-swap region only: earlier
	// converged values are already sorted among themselves).
	for k < pp {
		if eng.s[k] >= eng.s[k+1] {
			break
		}
		eng.s[k], eng.s[k+1] = eng.s[k+1], eng.s[k]
		if k < eng.n-1 {
			swapCols(eng.v, eng.n, k, k+1)
		}
		if k < eng.m-1 {
			swapCols(eng.u, eng.m, k, k+1)
		}
		k++
	}
	eng.p--
}

// rotateCols applies the Givens rotation [cs sn; -sn cs] to columns a and b
// of m over rows 0..rows-1: col_a ← cs·col_a + sn·col_b, col_b ← -sn·col_a +
// cs·col_b (old values on the right-hand side).
func rotateCols(m matrix.Matrix, rows, a, b int, cs, sn float32) {
	var t float32
	for i := 0; i < rows; i++ {
		t = cs*at(m, i, a) + sn*at(m, i, b)
		set(m, i, b, -sn*at(m, i, a)+cs*at(m, i, b))
		set(m, i, a, t)
	}
}

// swapCols exchanges columns a and b of m over rows 0..rows-1.
func swapCols(m matrix.Matrix, rows, a, b int) {
	var t float32
	for i := 0; i < rows; i++ {
		t = at(m, i, b)
		set(m, i, b, at(m, i, a))
		set(m, i, a, t)
	}
}
