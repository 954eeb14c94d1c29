// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix contract consumed by numeric kernels.
// This file intentionally contains ONLY the interface; the Dense
// implementation lives in dense.go, errors in errors.go.
package matrix

// Matrix represents a two-dimensional mutable array of float32 values.
// Beyond plain indexed reads/writes it carries the three arithmetic mutation
// primitives (AddAt, SubAt, DivAt) that in-place numeric kernels — the svd
// bidiagonalization in particular — apply element by element.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float32, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float32) error

	// AddAt adds delta to the element at (i, j) in place.
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	AddAt(i, j int, delta float32) error

	// SubAt subtracts delta from the element at (i, j) in place.
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	SubAt(i, j int, delta float32) error

	// DivAt divides the element at (i, j) by the divisor in place.
	// Division by zero follows IEEE-754 semantics (±Inf or NaN propagate).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	DivAt(i, j int, by float32) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
