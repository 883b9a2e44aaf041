// Package trend measures how the regression effect depends on how extreme a
// selection is, and charts it with go-chart.
//
// For each group size n, Curve selects the n best, worst and average players
// of one half and records their mean change in the other half. Small n means
// a more extreme selection and, typically, a stronger pull back to the mean.
package trend
