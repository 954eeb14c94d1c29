// Package svd: the decomposition engine state and the reduction phases —
// bidiagonalization and the back-accumulation of U and V.
//
// The engine owns every buffer for the lifetime of one Decompose call: the
// working copy a (bidiagonal remnants after reduction, discarded), the U and
// V buffers (Householder scratch first, explicit orthogonal factors after
// generation), the diagonal s, the superdiagonal e, and the row-update
// scratch work. Nothing is shared between invocations.

package svd

import (
	"github.com/katalvlaran/numsvd/matrix"
	"github.com/katalvlaran/numsvd/mathx"
)

// engine carries the full per-invocation state of one decomposition.
type engine struct {
	m, n int // input shape
	nu   int // min(m, n): column count of U
	nct  int // min(m-1, n): number of column reflections
	nrt  int // max(0, min(n-2, m)): number of row reflections
	p    int // min(n, m+1): active problem size during diagonalization

	a matrix.Matrix // private working copy of the input; destroyed by phase A
	u matrix.Matrix // m×nu: reflection scratch, then the left orthogonal factor
	v matrix.Matrix // n×n: reflection scratch, then the right orthogonal factor

	s    []float32 // len min(m+1,n): diagonal, then the sorted singular values
	e    []float32 // len n: superdiagonal / row-reflection scratch
	work []float32 // len m: rank-1 row-update accumulator

	maxIter int // 0 ⇒ unbounded (see DefaultMaxIter)
}

// Element helpers over the Matrix collaborator. Every index the engine
// produces is in range by construction (loop bounds derive from the same
// m, n the buffers were allocated with), so the bounds-checked errors carry
// no information here and are dropped.
func at(m matrix.Matrix, i, j int) float32 {
	v, _ := m.At(i, j)

	return v
}

func set(m matrix.Matrix, i, j int, v float32)   { _ = m.Set(i, j, v) }
func add(m matrix.Matrix, i, j int, d float32)   { _ = m.AddAt(i, j, d) }
func divBy(m matrix.Matrix, i, j int, d float32) { _ = m.DivAt(i, j, d) }

// bidiagonalize reduces the working copy to upper-bidiagonal form, storing
// the diagonal in s and the superdiagonal in e (Golub-Kahan, negated-pivot
// storage convention). Column reflection vectors are stashed into U's
// columns and row reflection vectors into V's columns for the later
// back-accumulation passes.
//
// Runs in O(m·n²) over the nested column/row sweeps.
func (eng *engine) bidiagonalize() {
	var (
		i, j, k int
		t       float32
	)
	for k = 0; k < max(eng.nct, eng.nrt); k++ {
		if k < eng.nct {
			// Compute the transformation for the k-th column and place the
			// k-th diagonal in s[k]. The 2-norm of the column is accumulated
			// through hypot — never squared and summed — so intermediate
			// magnitudes cannot overflow or flush to zero.
			eng.s[k] = 0
			for i = k; i < eng.m; i++ {
				eng.s[k] = mathx.Hypot(eng.s[k], at(eng.a, i, k))
			}
			if eng.s[k] != 0 {
				if at(eng.a, k, k) < 0 {
					eng.s[k] = -eng.s[k]
				}
				for i = k; i < eng.m; i++ {
					divBy(eng.a, i, k, eng.s[k])
				}
				add(eng.a, k, k, 1)
			}
			eng.s[k] = -eng.s[k]
		}
		for j = k + 1; j < eng.n; j++ {
			if k < eng.nct && eng.s[k] != 0 {
				// Apply the column reflection to column j: one inner
				// product followed by a rank-1 update.
				t = 0
				for i = k; i < eng.m; i++ {
					t += at(eng.a, i, k) * at(eng.a, i, j)
				}
				t = -t / at(eng.a, k, k)
				for i = k; i < eng.m; i++ {
					add(eng.a, i, j, t*at(eng.a, i, k))
				}
			}
			// Stash the k-th row for the row transformation below.
			eng.e[j] = at(eng.a, k, j)
		}
		if k < eng.nct {
			// Keep the column reflection vector in U's column k for the
			// back multiplication in generateU (scratch use).
			for i = k; i < eng.m; i++ {
				set(eng.u, i, k, at(eng.a, i, k))
			}
		}
		if k < eng.nrt {
			// Compute the k-th row transformation and place the k-th
			// superdiagonal in e[k]; same hypot accumulation over e.
			eng.e[k] = 0
			for i = k + 1; i < eng.n; i++ {
				eng.e[k] = mathx.Hypot(eng.e[k], eng.e[i])
			}
			if eng.e[k] != 0 {
				if eng.e[k+1] < 0 {
					eng.e[k] = -eng.e[k]
				}
				for i = k + 1; i < eng.n; i++ {
					eng.e[i] /= eng.e[k]
				}
				eng.e[k+1] += 1
			}
			eng.e[k] = -eng.e[k]
			if k+1 < eng.m && eng.e[k] != 0 {
				// Apply the row reflection to rows k+1..m-1: the rank-1
				// update is accumulated through the work scratch array.
				for i = k + 1; i < eng.m; i++ {
					eng.work[i] = 0
				}
				for j = k + 1; j < eng.n; j++ {
					for i = k + 1; i < eng.m; i++ {
						eng.work[i] += eng.e[j] * at(eng.a, i, j)
					}
				}
				for j = k + 1; j < eng.n; j++ {
					t = -eng.e[j] / eng.e[k+1]
					for i = k + 1; i < eng.m; i++ {
						add(eng.a, i, j, t*eng.work[i])
					}
				}
			}
			// Keep the row reflection vector in V's column k (scratch use).
			for i = k + 1; i < eng.n; i++ {
				set(eng.v, i, k, eng.e[i])
			}
		}
	}
}

// seedBidiagonal finalizes the bidiagonal boundary entries for the active
// problem of order p. These assignments match the off-by-one conventions of
// the reduction above; the iteration loop's index arithmetic depends on them.
func (eng *engine) seedBidiagonal() {
	eng.p = min(eng.n, eng.m+1)
	if eng.nct < eng.n {
		eng.s[eng.nct] = at(eng.a, eng.nct, eng.nct)
	}
	if eng.m < eng.p {
		eng.s[eng.p-1] = 0
	}
	if eng.nrt+1 < eng.p {
		eng.e[eng.nrt] = at(eng.a, eng.nrt, eng.p-1)
	}
	eng.e[eng.p-1] = 0
}

// generateU expands the stored column reflections into the explicit left
// orthogonal factor: identity on columns ≥ nct, then a back-accumulation
// sweep k = nct-1..0 reapplying each reflection (stored in U's own column k)
// to the partially-built factor. Columns with a zero pivot degenerate to
// identity columns directly.
func (eng *engine) generateU() {
	var (
		i, j, k int
		t       float32
	)
	for j = eng.nct; j < eng.nu; j++ {
		for i = 0; i < eng.m; i++ {
			set(eng.u, i, j, 0)
		}
		set(eng.u, j, j, 1)
	}
	for k = eng.nct - 1; k >= 0; k-- {
		if eng.s[k] != 0 {
			for j = k + 1; j < eng.nu; j++ {
				t = 0
				for i = k; i < eng.m; i++ {
					t += at(eng.u, i, k) * at(eng.u, i, j)
				}
				t = -t / at(eng.u, k, k)
				for i = k; i < eng.m; i++ {
					add(eng.u, i, j, t*at(eng.u, i, k))
				}
			}
			// Flip the sign of column k, then shift the pivot by one: the
			// reflection vector becomes the k-th column of the factor.
			for i = k; i < eng.m; i++ {
				set(eng.u, i, k, -at(eng.u, i, k))
			}
			add(eng.u, k, k, 1)
			for i = 0; i < k-1; i++ {
				set(eng.u, i, k, 0)
			}
		} else {
			for i = 0; i < eng.m; i++ {
				set(eng.u, i, k, 0)
			}
			set(eng.u, k, k, 1)
		}
	}
}

// generateV expands the stored row reflections into the explicit right
// orthogonal factor, sweeping k = n-1..0.
func (eng *engine) generateV() {
	var (
		i, j, k int
		t       float32
	)
	for k = eng.n - 1; k >= 0; k-- {
		if k < eng.nrt && eng.e[k] != 0 {
			for j = k + 1; j < eng.nu; j++ {
				t = 0
				for i = k + 1; i < eng.n; i++ {
					t += at(eng.v, i, k) * at(eng.v, i, j)
				}
				t = -t / at(eng.v, k+1, k)
				for i = k + 1; i < eng.n; i++ {
					add(eng.v, i, j, t*at(eng.v, i, k))
				}
			}
		}
		for i = 0; i < eng.n; i++ {
			set(eng.v, i, k, 0)
		}
		set(eng.v, k, k, 1)
	}
}
