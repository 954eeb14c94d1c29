// Package matrix provides the dense single-precision matrix container used
// by the svd engine and its callers.
//
// The matrix package provides:
//
//   - The Matrix interface: bounds-checked indexed reads/writes plus the
//     arithmetic mutation primitives (AddAt, SubAt, DivAt) that iterative
//     numeric kernels apply in place.
//   - Dense, a row-major flat-slice implementation of Matrix.
//   - Constructors (NewDense, NewZeros, NewIdentity, NewFromRows) and the
//     small set of algebra kernels (Mul, Transpose, Sub) that result
//     accessors and verification code need.
//   - Tolerant comparison (AllClose) and FrobeniusNorm for residual checks.
//
// All kernels allocate fresh results and never mutate their operands; only
// the explicit *At mutators change a matrix in place. Every operation is
// deterministic: fixed loop orders, no global state.
//
// See the examples in this package and svd for usage patterns.
package matrix
