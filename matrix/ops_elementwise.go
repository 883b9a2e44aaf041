// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, private element-wise and broadcast kernels (ew*) so the
//     tight loops behind centering, z-scoring and clipping live in one place.
//
// Design:
//   - All ew* are unexported micro-kernels; public API wraps them in impl_statistics.go.
//   - Fixed loop orders; Dense fast-path walks the flat buffer directly.

package matrix

import "math"

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colMeans[j].
// Time: O(r*c). Space: O(r*c).
func ewBroadcastSubCols(X Matrix, colMeans []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("broadcastSubCols", err)
	}
	r, c := X.Rows(), X.Cols()
	if len(colMeans) != c {
		return nil, matrixErrorf("broadcastSubCols", ErrDimensionMismatch)
	}
	src, err := denseCopy(X)
	if err != nil {
		return nil, matrixErrorf("broadcastSubCols", err)
	}
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			src.data[base+j] -= colMeans[j]
		}
	}

	return src, nil
}

// ewScaleCols computes out[i,j] = X[i,j] * scale[j].
func ewScaleCols(X Matrix, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("scaleCols", err)
	}
	r, c := X.Rows(), X.Cols()
	if len(scale) != c {
		return nil, matrixErrorf("scaleCols", ErrDimensionMismatch)
	}
	src, err := denseCopy(X)
	if err != nil {
		return nil, matrixErrorf("scaleCols", err)
	}
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			src.data[base+j] *= scale[j]
		}
	}

	return src, nil
}

// ewClipRange copies X clamping each entry into [lo, hi].
//
// Note: Bounds must be finite; if lo > hi, they are swapped.
func ewClipRange(X Matrix, lo, hi float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("Clip", err)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, matrixErrorf("Clip", ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	out, err := denseCopy(X)
	if err != nil {
		return nil, matrixErrorf("Clip", err)
	}
	for idx, v := range out.data {
		if v < lo {
			out.data[idx] = lo
		} else if v > hi {
			out.data[idx] = hi
		}
	}

	return out, nil
}

// ewAbs copies X replacing every entry with its absolute value.
func ewAbs(X Matrix) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("Abs", err)
	}
	out, err := denseCopy(X)
	if err != nil {
		return nil, matrixErrorf("Abs", err)
	}
	for idx, v := range out.data {
		out.data[idx] = math.Abs(v)
	}

	return out, nil
}
