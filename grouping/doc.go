// Package grouping selects the three player groups every regression-to-the-mean
// figure compares: the best, the worst and the most average performers of one
// half, paired with what the same players did in the other half.
//
// Selection is driven by a Spec naming four roster columns: the base rating
// (the half the groups are chosen from), the compare rating (the other half),
// the z-score used for ranking and its absolute value:
//
//	Best    = n largest  by Z      (descending)
//	Worst   = n smallest by Z      (ascending)
//	Average = n smallest by |Z|    (ascending: closest to the mean first)
//
// Ties keep the earlier row first, so selections are deterministic.
// Each Entry carries Regression = Compare − Base: negative for the best group
// and positive for the worst group is the regression-to-the-mean signature.
package grouping
