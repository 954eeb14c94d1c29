// Package svd: public entry point. Decompose validates the input, sets up
// the per-call engine and runs the five reduction phases in order.

package svd

import (
	"fmt"

	"github.com/katalvlaran/numsvd/matrix"
)

// Operation tags used in wrapped error messages.
const (
	opDecompose = "Decompose"
)

// svdErrorf wraps a sentinel with the operation tag that produced it, keeping
// errors.Is matching intact.
func svdErrorf(op string, err error) error {
	return fmt.Errorf("svd: %s: %w", op, err)
}

// Decompose computes the thin singular value decomposition A = U·S·Vᵀ of an
// m×n matrix: U is m×min(m,n) with orthonormal columns, V is n×n orthogonal,
// and the singular values are returned sorted in non-increasing order.
//
// Implementation stages:
//   - Stage 1 (Validate): reject nil input and degenerate shapes.
//   - Stage 2 (Reduce): Golub-Kahan bidiagonalization of a private copy,
//     Householder reflections applied from both sides.
//   - Stage 3 (Accumulate): expand the stored reflections into explicit
//     U and V factors.
//   - Stage 4 (Iterate): implicit-shift QR diagonalization with four-case
//     deflation until the active problem is exhausted.
//
// Inputs:
//   - a: the matrix to decompose; it is cloned and never mutated.
//   - opts: optional configuration (WithMaxIter).
//
// Returns:
//   - *Decomposition holding U, V and the singular values.
//
// Errors:
//   - ErrNilMatrix when a is nil.
//   - matrix.ErrBadShape when a reports a non-positive dimension.
//   - ErrNoConvergence when a positive iteration cap was configured and
//     exceeded; never with the default options.
//
// Complexity:
//   - Time O(m·n²) for m ≥ n, Space O(m·n).
//
// Notes:
//   - For m < n only the first m singular values are meaningful; prefer
//     decomposing the transpose in that regime.
func Decompose(a matrix.Matrix, opts ...Option) (*Decomposition, error) {
	if a == nil {
		return nil, svdErrorf(opDecompose, ErrNilMatrix)
	}
	m, n := a.Rows(), a.Cols()
	if m < 1 || n < 1 {
		return nil, svdErrorf(opDecompose, matrix.ErrBadShape)
	}
	o := gatherOptions(opts...)

	nu := min(m, n)
	u, err := matrix.NewZeros(m, nu)
	if err != nil {
		return nil, svdErrorf(opDecompose, err)
	}
	v, err := matrix.NewZeros(n, n)
	if err != nil {
		return nil, svdErrorf(opDecompose, err)
	}

	eng := &engine{
		m:       m,
		n:       n,
		nu:      nu,
		nct:     min(m-1, n),
		nrt:     max(0, min(n-2, m)),
		a:       a.Clone(),
		u:       u,
		v:       v,
		s:       make([]float32, min(m+1, n)),
		e:       make([]float32, n),
		work:    make([]float32, m),
		maxIter: o.maxIter,
	}

	eng.bidiagonalize()
	eng.seedBidiagonal()
	eng.generateU()
	eng.generateV()
	if err = eng.diagonalize(); err != nil {
		return nil, svdErrorf(opDecompose, err)
	}

	return &Decomposition{
		m: m,
		n: n,
		u: eng.u,
		v: eng.v,
		s: eng.s,
	}, nil
}
