// Package numsvd computes the Singular Value Decomposition of rectangular
// single-precision matrices — pure Go, no cgo, no hidden dependencies.
//
// 🚀 What is numsvd?
//
//	Given an m×n matrix A, numsvd produces orthogonal factors U and V and a
//	descending sequence of non-negative singular values s so that
//	A ≈ U·diag(s)·Vᵀ. The decomposition always exists, so for structurally
//	valid input the engine never fails. From it you get, essentially for
//	free:
//	  • the 2-norm and condition number of A
//	  • the effective numerical rank
//	  • orthonormal bases for range and null space
//
// ✨ Key features:
//   - Golub-Kahan bidiagonalization + implicit-shift QR iteration
//     (LINPACK/JAMA lineage), float32 throughout
//   - overflow/underflow-safe norms via hypot accumulation
//   - deterministic: fixed loop orders, no randomness, no global state
//   - optional iteration cap for hardened deployments (WithMaxIter)
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/ — dense float32 matrices: bounds-checked accessors, mutation
//	          primitives, and the handful of kernels the result needs
//	mathx/  — numerically-stable scalar helpers (Hypot, Pow, ...)
//	svd/    — the decomposition engine and its result accessors
//
// Quick start:
//
//	a, _ := matrix.NewFromRows([][]float32{{4, 0}, {3, -5}})
//	dec, err := svd.Decompose(a)
//	if err != nil { ... }
//	fmt.Println(dec.SingularValues()) // descending, non-negative
//
// Dive into the package docs and example tests for full walkthroughs.
package numsvd
