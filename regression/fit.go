// SPDX-License-Identifier: MIT

package regression

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/regmean/matrix"
	"gonum.org/v1/gonum/floats"
)

// Fit regresses y on a single predictor x.
//
// Errors:
//   - ErrLengthMismatch, ErrTooFewObservations (fewer than 2 points),
//     ErrNonFinite, ErrSingularDesign (x constant).
func Fit(x, y []float64) (*Model, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("%w: %d", ErrTooFewObservations, len(x))
	}
	if !allFinite(x) {
		return nil, ErrNonFinite
	}
	X, err := matrix.NewDenseColumns(x)
	if err != nil {
		return nil, fmt.Errorf("regression: fit: %w", err)
	}

	return FitMatrix(X, y)
}

// FitMatrix regresses y on every column of X plus an intercept.
//
// Algorithm Outline:
//  1. Reject constant columns, then center X and y on their column means.
//  2. Solve (XcᵀXc)β = Xcᵀyc with matrix.Inverse.
//  3. Intercept = ȳ − β·x̄; R² = 1 − SSres/SStot (1 when y is constant).
//
// Errors:
//   - ErrLengthMismatch, ErrTooFewObservations (rows <= cols),
//     ErrNonFinite, ErrSingularDesign, wrapped matrix errors.
//
// Complexity:
//
//	Time O(n·p² + p³), Memory O(n·p).
func FitMatrix(X matrix.Matrix, y []float64) (*Model, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, fmt.Errorf("regression: fit: %w", err)
	}
	n, p := X.Rows(), X.Cols()
	if len(y) != n {
		return nil, fmt.Errorf("%w: %d rows vs %d responses", ErrLengthMismatch, n, len(y))
	}
	if n < 2 || n <= p {
		return nil, fmt.Errorf("%w: %d rows for %d predictors", ErrTooFewObservations, n, p)
	}
	if !allFinite(y) {
		return nil, ErrNonFinite
	}
	if err := rejectConstantColumns(X); err != nil {
		return nil, err
	}

	Xc, means, err := matrix.CenterColumns(X)
	if err != nil {
		return nil, fmt.Errorf("regression: fit: %w", err)
	}
	yMean := floats.Sum(y) / float64(n)
	yc := make([]float64, n)
	copy(yc, y)
	floats.AddConst(-yMean, yc)

	Xt, err := matrix.Transpose(Xc)
	if err != nil {
		return nil, fmt.Errorf("regression: fit: %w", err)
	}
	XtX, err := matrix.Mul(Xt, Xc)
	if err != nil {
		return nil, fmt.Errorf("regression: fit: %w", err)
	}
	inv, err := matrix.Inverse(XtX)
	if errors.Is(err, matrix.ErrSingular) {
		return nil, fmt.Errorf("%w: %w", ErrSingularDesign, err)
	}
	if err != nil {
		return nil, fmt.Errorf("regression: fit: %w", err)
	}
	Xty, err := matrix.MatVec(Xt, yc)
	if err != nil {
		return nil, fmt.Errorf("regression: fit: %w", err)
	}
	beta, err := matrix.MatVec(inv, Xty)
	if err != nil {
		return nil, fmt.Errorf("regression: fit: %w", err)
	}

	m := &Model{
		Intercept: yMean - floats.Dot(beta, means),
		Coef:      beta,
		N:         n,
	}
	fitted, err := matrix.MatVec(Xc, beta)
	if err != nil {
		return nil, fmt.Errorf("regression: fit: %w", err)
	}
	m.R2 = rSquared(yc, fitted)

	return m, nil
}

// rSquared compares centered responses with centered fitted values.
func rSquared(yc, fitted []float64) float64 {
	var ssRes, ssTot float64
	for i, v := range yc {
		d := v - fitted[i]
		ssRes += d * d
		ssTot += v * v
	}
	if ssTot == 0 {
		return 1
	}

	return 1 - ssRes/ssTot
}

func rejectConstantColumns(X matrix.Matrix) error {
	n := X.Rows()
	for j := 0; j < X.Cols(); j++ {
		first, err := X.At(0, j)
		if err != nil {
			return fmt.Errorf("regression: fit: %w", err)
		}
		constant := true
		for i := 1; i < n && constant; i++ {
			v, err := X.At(i, j)
			if err != nil {
				return fmt.Errorf("regression: fit: %w", err)
			}
			constant = v == first
		}
		if constant {
			return fmt.Errorf("%w: predictor %d is constant", ErrSingularDesign, j)
		}
	}

	return nil
}

func allFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
