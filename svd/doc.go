// Package svd computes the Singular Value Decomposition of a rectangular
// float32 matrix: A ≈ U·diag(s)·Vᵀ with orthogonal U, V and descending
// non-negative singular values s.
//
// 🚀 What is the SVD?
//
//	The decomposition factors any m×n matrix into rotations and a diagonal
//	stretch. It always exists, so Decompose never fails for structurally
//	valid input. It is widely used in:
//	  • least-squares and pseudo-inverse computation
//	  • numerical rank and condition-number estimation
//	  • dimensionality reduction (PCA, low-rank approximation)
//	  • orthogonalization of noisy rotation matrices
//
// ✨ Key features:
//   - Golub-Kahan bidiagonalization followed by implicit-shift QR iteration
//     (LINPACK/JAMA lineage), faithfully single-precision
//   - hypot-accumulated norms: no overflow/underflow in intermediate squares
//   - the caller's matrix is never mutated; the engine works on a private copy
//   - result accessors hand out defensive copies, safe to mutate
//   - optional iteration cap (WithMaxIter) for adversarial inputs
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/numsvd/matrix"
//	  "github.com/katalvlaran/numsvd/svd"
//	)
//
//	a, _ := matrix.NewFromRows([][]float32{
//	  {4, 0},
//	  {3, -5},
//	})
//	dec, err := svd.Decompose(a)
//	if err != nil {
//	  // handle svd.ErrNilMatrix / svd.ErrNoConvergence
//	}
//	s := dec.SingularValues() // descending, non-negative
//	r := dec.Rank()           // effective numerical rank
//
// Performance:
//
//   - Time:   O(m·n²) for the bidiagonalization, plus O(n) QR sweeps of
//     O(n·(m+n)) each until convergence
//   - Memory: O(m·n), allocated once up front; no growth during iteration
//
// The m ≥ n regime is the documented-supported one; m < n inputs are
// accepted without a precondition check and may in rare configurations
// produce a degraded result (inherited LINPACK behavior, intentionally not
// hardened). See examples in example_test.go for full walkthroughs.
package svd
