// SPDX-License-Identifier: MIT

// Package regression fits ordinary least squares lines to paired ratings.
//
// 📚 What is here?
//
//   - Fit: one predictor (y = a + b·x), the "first half predicts second half" line.
//   - FitMatrix: any number of predictors, solved through the normal equations
//     (XcᵀXc)β = Xcᵀyc on mean-centered data using the matrix package.
//   - Model.Predict / PredictAll: evaluate the fitted line.
//   - Linspace: evenly spaced evaluation grid for drawing the line.
//
// ✨ Why center first?
//
//	Centering the predictors removes the intercept column from the system, so
//	the matrix to invert is the (scaled) covariance of X. A predictor that never
//	varies makes it singular and is reported as ErrSingularDesign.
//
// ⚙️ Usage:
//
//	m, err := regression.Fit(ratingFH, ratingSH)
//	if err != nil { … }
//	fmt.Printf("slope=%.2f\n", m.Slope())
//
// For paired ratings with independent noise the slope sits strictly between 0
// and 1: that shrinkage towards the mean is regression to the mean.
package regression
