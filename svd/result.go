// Package svd: the Decomposition result type and its derived quantities.

package svd

import (
	"github.com/katalvlaran/numsvd/matrix"
	"github.com/katalvlaran/numsvd/mathx"
)

// Decomposition is the immutable result of a Decompose call. Accessors return
// defensive copies, so the factors held inside can never be corrupted through
// a returned value; repeated calls always observe the same decomposition.
type Decomposition struct {
	m, n int
	u    matrix.Matrix // m×min(m,n), orthonormal columns
	v    matrix.Matrix // n×n, orthogonal
	s    []float32     // min(m+1,n), non-increasing; entries past min(m,n) are padding
}

// U returns a copy of the left singular vectors (m×min(m,n)).
func (d *Decomposition) U() matrix.Matrix {
	return d.u.Clone()
}

// V returns a copy of the right singular vectors (n×n).
func (d *Decomposition) V() matrix.Matrix {
	return d.v.Clone()
}

// SingularValues returns a copy of the singular values, sorted in
// non-increasing order, of length min(m+1, n). Mutating the returned slice
// does not affect the decomposition.
func (d *Decomposition) SingularValues() []float32 {
	out := make([]float32, len(d.s))
	copy(out, d.s)

	return out
}

// S returns the n×n diagonal matrix of singular values, freshly allocated on
// every call.
func (d *Decomposition) S() matrix.Matrix {
	m, err := matrix.NewZeros(d.n, d.n)
	if err != nil {
		// d.n >= 1 is guaranteed by Decompose; allocation cannot fail here.
		panic(err)
	}
	for i := 0; i < d.n; i++ {
		if i < len(d.s) {
			set(m, i, i, d.s[i])
		}
	}

	return m
}

// Norm2 returns the induced 2-norm of the original matrix, i.e. the largest
// singular value.
func (d *Decomposition) Norm2() float32 {
	return d.s[0]
}

// Cond returns the 2-norm condition number σ_max/σ_min. A rank-deficient
// matrix yields +Inf by IEEE-754 division.
func (d *Decomposition) Cond() float32 {
	return d.s[0] / d.s[min(d.m, d.n)-1]
}

// Rank returns the effective numerical rank: the number of singular values
// exceeding tol = max(m,n)·σ_max·eps, with eps the classic 2⁻⁵² threshold
// shared with the convergence tests.
func (d *Decomposition) Rank() int {
	tol := float32(max(d.m, d.n)) * d.s[0] * mathx.Pow(2, epsExponent)
	r := 0
	for _, sv := range d.s {
		if sv > tol {
			r++
		}
	}

	return r
}
