// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/regmean/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps a Matrix so type assertions to *Dense fail, forcing the
// generic At/Set fallback paths inside kernels.
type hide struct{ matrix.Matrix }

// mustDense builds an r×c *Dense from row-major data or fails the test.
func mustDense(t testing.TB, r, c int, data []float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return d
}

// mustAt reads (i,j) or fails the test.
func mustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireClose compares two matrices element-wise within tol.
func requireClose(t testing.TB, want, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, g := mustAt(t, want, i, j), mustAt(t, got, i, j)
			require.InDeltaf(t, w, g, tol, "(%d,%d)", i, j)
		}
	}
}

// columnOf extracts column j through the Matrix interface.
func columnOf(t testing.TB, m matrix.Matrix, j int) []float64 {
	t.Helper()
	out := make([]float64, m.Rows())
	for i := range out {
		out[i] = mustAt(t, m, i, j)
	}

	return out
}

func meanOf(xs []float64) float64 {
	s := 0.0
	for _, x := range xs {
		s += x
	}

	return s / float64(len(xs))
}

func popStd(xs []float64) float64 {
	mu := meanOf(xs)
	s := 0.0
	for _, x := range xs {
		s += (x - mu) * (x - mu)
	}

	return math.Sqrt(s / float64(len(xs)))
}
