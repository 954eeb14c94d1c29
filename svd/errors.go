// Package svd: sentinel error set.
// All entry points return these sentinels (possibly wrapped with an
// operation tag via svdErrorf) and tests check them via errors.Is.

package svd

import "errors"

var (
	// ErrNilMatrix indicates that a nil input matrix was passed to Decompose.
	ErrNilMatrix = errors.New("svd: nil matrix")

	// ErrNoConvergence is returned only when an iteration cap was configured
	// via WithMaxIter and the diagonalization loop exceeded it. With the
	// default (unbounded) configuration this sentinel is never produced.
	ErrNoConvergence = errors.New("svd: iteration limit exceeded without convergence")
)
