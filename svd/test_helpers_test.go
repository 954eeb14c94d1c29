// Package svd_test: shared fixtures and property assertions.

package svd_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/numsvd/matrix"
	"github.com/katalvlaran/numsvd/mathx"
	"github.com/katalvlaran/numsvd/svd"
	"github.com/stretchr/testify/require"
)

// hide wraps a Matrix to mask its concrete type, forcing the kernels'
// interface fallback paths end to end through Decompose.
type hide struct{ matrix.Matrix }

// mustFromRows builds a Dense fixture from a 2D literal or aborts the test.
func mustFromRows(t *testing.T, rows [][]float32) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err, "fixture construction must not fail")

	return m
}

// randomDense returns an r×c matrix filled with deterministic U(-1,1) values.
func randomDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, rng.Float32()*2-1))
		}
	}

	return m
}

// reconstruct forms U·S·Vᵀ from a decomposition. Valid for m ≥ n, where the
// factor shapes chain as (m×n)·(n×n)·(n×n).
func reconstruct(t *testing.T, d *svd.Decomposition) matrix.Matrix {
	t.Helper()
	us, err := matrix.Mul(d.U(), d.S())
	require.NoError(t, err, "U·S")
	vt, err := matrix.Transpose(d.V())
	require.NoError(t, err, "Vᵀ")
	a, err := matrix.Mul(us, vt)
	require.NoError(t, err, "U·S·Vᵀ")

	return a
}

// assertReconstruction checks ‖A − U·S·Vᵀ‖_F ≤ tol.
func assertReconstruction(t *testing.T, a matrix.Matrix, d *svd.Decomposition, tol float32) {
	t.Helper()
	diff, err := matrix.Sub(a, reconstruct(t, d))
	require.NoError(t, err)
	res, err := matrix.FrobeniusNorm(diff)
	require.NoError(t, err)
	require.LessOrEqual(t, res, tol, "reconstruction residual too large")
}

// assertOrthonormalColumns checks QᵀQ ≈ I within tol.
func assertOrthonormalColumns(t *testing.T, q matrix.Matrix, tol float32) {
	t.Helper()
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	gram, err := matrix.Mul(qt, q)
	require.NoError(t, err)

	n := gram.Rows()
	var i, j int
	var v, want float32
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err = gram.At(i, j)
			require.NoError(t, err)
			want = 0
			if i == j {
				want = 1
			}
			require.LessOrEqual(t, mathx.Abs(v-want), tol,
				"QᵀQ[%d,%d]=%g deviates from identity", i, j, v)
		}
	}
}

// assertNonIncreasing checks the singular value ordering invariant.
func assertNonIncreasing(t *testing.T, s []float32) {
	t.Helper()
	for i := 1; i < len(s); i++ {
		require.GreaterOrEqual(t, s[i-1], s[i], "singular values out of order at %d", i)
	}
	for i := range s {
		require.GreaterOrEqual(t, s[i], float32(0), "singular values must be non-negative")
	}
}
