// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Deterministic algebra kernels: Mul, Transpose, MatVec, LU, Inverse.
//   - Enough surface to solve the ordinary least squares normal equations
//     (XᵀX)β = Xᵀy without pulling in a BLAS.
//
// Determinism & Performance:
//   - Fixed loop orders; *Dense operands take flat-slice fast paths.
//   - No pivoting in LU: identical inputs give bit-identical outputs.

package matrix

import (
	"fmt"
	"math"
)

// Operation tags for error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opLU        = "LU"
	opInverse   = "Inverse"
)

// pivotRelTol is the relative magnitude below which an LU pivot is treated
// as zero. Scaled by the largest absolute entry of the input.
const pivotRelTol = 1e-12

// matrixErrorf wraps err with the canonical operation tag.
// Callers must only pass non-nil errors.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the matrix product C = A×B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (a.Cols != b.Rows).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av, bv  float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue
					}
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum := 0.0
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := m.Rows(), m.Cols()
	res, err := NewDense(c, r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				res.data[j*r+i] = d.data[base+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*r+i] = v
		}
	}

	return res, nil
}

// MatVec computes y = m·x for an r×c matrix and len(x) == c.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	r, c := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, r)
	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			sum := 0.0
			for j = 0; j < c; j++ {
				sum += d.data[base+j] * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		sum := 0.0
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy into a flat buffer.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (|U[i,i]| below the relative pivot tolerance).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Normal-equation matrices XᵀX are symmetric positive (semi)definite, so the
//     missing pivoting only matters for rank-deficient designs, which are rejected.
func LU(m Matrix) (Matrix, Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := m.Rows()
	a, err := denseCopy(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	L, _ := NewDense(n, n)
	U, _ := NewDense(n, n)

	scale := 0.0
	for _, v := range a.data {
		scale = math.Max(scale, math.Abs(v))
	}
	tol := pivotRelTol * scale

	var i, j, k int
	var sum float64
	for i = 0; i < n; i++ {
		// Row i of U.
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * U.data[k*n+j]
			}
			U.data[i*n+j] = a.data[i*n+j] - sum
		}
		pivot := U.data[i*n+i]
		if math.Abs(pivot) <= tol {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}
		// Column i of L.
		L.data[i*n+i] = 1
		for j = i + 1; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += L.data[j*n+k] * U.data[k*n+i]
			}
			L.data[j*n+i] = (a.data[j*n+i] - sum) / pivot
		}
	}

	return L, U, nil
}

// Inverse returns A⁻¹ by solving L·U·x = e_col for each unit column.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (propagated from LU).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix) (Matrix, error) {
	Lm, Um, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	L, U := Lm.(*Dense), Um.(*Dense)
	n := L.r

	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	y := make([]float64, n)
	x := make([]float64, n)

	var col, i, k int
	var sum float64
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = e_col
		for i = 0; i < n; i++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * y[k]
			}
			if i == col {
				y[i] = 1 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U*x = y
		for i = n - 1; i >= 0; i-- {
			sum = 0
			for k = i + 1; k < n; k++ {
				sum += U.data[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / U.data[i*n+i]
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// denseCopy materializes any Matrix into a fresh *Dense.
func denseCopy(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}
