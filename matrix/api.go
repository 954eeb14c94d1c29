// SPDX-License-Identifier: MIT
// Package matrix: public constructor facades. These are thin, validated
// entry points over Dense allocation; kernels live in ops.go.

package matrix

// NewZeros creates an r×c Dense matrix filled with zeros.
// Alias of NewDense kept for call-site readability (ZerosLike/IdentityLike
// symmetry). Errors: ErrBadShape. Complexity: O(r*c).
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity creates an n×n Dense identity matrix (1 on the main diagonal).
// Errors: ErrBadShape when n <= 0. Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	// Write the unit diagonal directly into the flat backing slice.
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// NewFromRows builds a Dense matrix from a row-major 2D slice.
// Stage 1 (Validate): non-empty, rectangular (no ragged rows).
// Stage 2 (Execute): copy values into a fresh flat buffer.
// Errors: ErrBadShape on empty or ragged input. Complexity: O(r*c).
func NewFromRows(rows [][]float32) (*Dense, error) {
	// Validate outer shape
	r := len(rows)
	if r == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	c := len(rows[0])

	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < r; i++ {
		// Reject ragged input before copying the row.
		if len(rows[i]) != c {
			return nil, ErrBadShape
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// ZerosLike allocates a zero matrix with the same shape as m.
// Errors: ErrNilMatrix, ErrBadShape. Complexity: O(r*c).
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike allocates an identity matrix with the same (square) shape as m.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square), ErrBadShape.
// Complexity: O(n²).
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if m.Rows() != m.Cols() {
		return nil, ErrDimensionMismatch
	}

	return NewIdentity(m.Rows())
}

// CloneMatrix returns a deep copy of m (nil in, nil out).
// Complexity: O(r*c).
func CloneMatrix(m Matrix) Matrix {
	if m == nil {
		return nil
	}

	return m.Clone()
}
