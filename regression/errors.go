// SPDX-License-Identifier: MIT

package regression

import "errors"

var (
	// ErrLengthMismatch indicates predictors and responses of different lengths.
	ErrLengthMismatch = errors.New("regression: x and y lengths differ")

	// ErrTooFewObservations indicates fewer observations than parameters to fit.
	ErrTooFewObservations = errors.New("regression: too few observations")

	// ErrSingularDesign indicates a predictor that never varies, or predictors
	// that are linear combinations of each other.
	ErrSingularDesign = errors.New("regression: singular design")

	// ErrNonFinite indicates a NaN or ±Inf observation.
	ErrNonFinite = errors.New("regression: NaN or Inf observation")

	// ErrPredictorCount indicates a Predict call with the wrong number of values.
	ErrPredictorCount = errors.New("regression: wrong number of predictors")

	// ErrNilModel indicates a nil *Model.
	ErrNilModel = errors.New("regression: nil model")
)
