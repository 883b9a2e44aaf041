// SPDX-License-Identifier: MIT

package regression

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Model is a fitted linear model y = Intercept + Σ Coef[j]·x[j].
type Model struct {
	Intercept float64
	Coef      []float64
	R2        float64 // coefficient of determination on the training data
	N         int     // observations used
}

// Slope returns the first coefficient, the slope of a single-predictor fit.
func (m *Model) Slope() float64 {
	if m == nil || len(m.Coef) == 0 {
		return 0
	}

	return m.Coef[0]
}

// Predict evaluates the model at one point; len(x) must equal len(m.Coef).
func (m *Model) Predict(x ...float64) (float64, error) {
	if m == nil {
		return 0, ErrNilModel
	}
	if len(x) != len(m.Coef) {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrPredictorCount, len(x), len(m.Coef))
	}

	return m.Intercept + floats.Dot(m.Coef, x), nil
}

// PredictAll evaluates a single-predictor model at every value of xs.
func (m *Model) PredictAll(xs []float64) ([]float64, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if len(m.Coef) != 1 {
		return nil, fmt.Errorf("%w: model has %d, PredictAll needs 1", ErrPredictorCount, len(m.Coef))
	}
	out := make([]float64, len(xs))
	b := m.Coef[0]
	for i, x := range xs {
		out[i] = m.Intercept + b*x
	}

	return out, nil
}

func (m *Model) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "y = %.4f", m.Intercept)
	for j, c := range m.Coef {
		fmt.Fprintf(&sb, " %+.4f·x%d", c, j)
	}
	fmt.Fprintf(&sb, " (R²=%.4f, n=%d)", m.R2, m.N)

	return sb.String()
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
// n <= 0 gives nil and n == 1 gives {lo}.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}

	return floats.Span(make([]float64, n), lo, hi)
}
