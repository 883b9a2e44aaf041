// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column statistics over a population table stored one variable per column:
//     means, centering, standard deviations, z-scores, clipping, absolute values.
//
// Exposed API:
//   - ColumnMeans(X)            -> means
//   - CenterColumns(X)          -> (Xc, means)
//   - ColumnStds(X, ddof)       -> stds            // sqrt(Σ(x-μ)² / (r-ddof))
//   - ZScoreColumns(X, ddof)    -> (Z, means, stds) // degenerate std=0 → zero column
//   - Clip(X, lo, hi)           -> clamped copy
//   - Abs(X)                    -> |X|
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - ddof=0 gives the population standard deviation (the usual z-score
//     convention); ddof=1 gives the sample standard deviation.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opColumnMeans   = "ColumnMeans"
	opCenterColumns = "CenterColumns"
	opColumnStds    = "ColumnStds"
	opZScoreColumns = "ZScoreColumns"
)

// ColumnMeans returns Σ_i X[i,j] / r for every column j.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	d, err := denseCopy(X)
	if err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	r, c := d.r, d.c
	means := make([]float64, c)
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			means[j] += d.data[base+j]
		}
	}
	for j := range means {
		means[j] /= float64(r)
	}

	return means, nil
}

// CenterColumns subtracts the per-column mean from every element.
// Returns the centered copy and the means used.
func CenterColumns(X Matrix) (Matrix, []float64, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// ColumnStds returns per-column standard deviations with ddof delta degrees
// of freedom: sqrt(Σ_i (X[i,j]-μ_j)² / (r-ddof)).
//
// Errors:
//   - ErrNilMatrix, ErrBadDDOF (ddof < 0 or r-ddof <= 0).
func ColumnStds(X Matrix, ddof int) ([]float64, error) {
	_, _, stds, err := columnMoments(X, ddof)
	if err != nil {
		return nil, matrixErrorf(opColumnStds, err)
	}

	return stds, nil
}

// ZScoreColumns standardizes every column: Z[i,j] = (X[i,j]-μ_j)/σ_j.
//
// Implementation:
//   - Stage 1: center columns and accumulate squared deviations.
//   - Stage 2: build 1/σ per column; a degenerate column (σ == 0) gets scale 0,
//     so its z-scores are all zero instead of NaN.
//   - Stage 3: scale the centered copy column-wise.
//
// Returns:
//   - Z (r×c), means (len c), stds (len c).
//
// Errors:
//   - ErrNilMatrix, ErrBadDDOF.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ZScoreColumns(X Matrix, ddof int) (Matrix, []float64, []float64, error) {
	Xc, means, stds, err := columnMoments(X, ddof)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opZScoreColumns, err)
	}
	invStd := make([]float64, len(stds))
	for j, s := range stds {
		if s > 0 {
			invStd[j] = 1.0 / s
		}
	}
	Z, err := ewScaleCols(Xc, invStd)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opZScoreColumns, err)
	}

	return Z, means, stds, nil
}

// Clip returns a copy of X with every entry clamped into [lo, hi].
// Bounds must be finite; reversed bounds are swapped.
func Clip(X Matrix, lo, hi float64) (Matrix, error) { return ewClipRange(X, lo, hi) }

// Abs returns a copy of X with every entry replaced by its absolute value.
func Abs(X Matrix) (Matrix, error) { return ewAbs(X) }

// columnMoments centers X and returns (Xc, means, stds).
func columnMoments(X Matrix, ddof int) (*Dense, []float64, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, nil, err
	}
	r, c := X.Rows(), X.Cols()
	if ddof < 0 || r-ddof <= 0 {
		return nil, nil, nil, ErrBadDDOF
	}
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, nil, err
	}
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, nil, err
	}

	sumsq := make([]float64, c)
	var v float64
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			v = Xc.data[base+j]
			sumsq[j] += v * v
		}
	}
	stds := make([]float64, c)
	inv := 1.0 / float64(r-ddof)
	for j := 0; j < c; j++ {
		stds[j] = math.Sqrt(sumsq[j] * inv)
	}

	return Xc, means, stds, nil
}
