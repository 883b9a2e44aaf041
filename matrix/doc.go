// Package matrix provides the small dense linear-algebra and statistics core
// used by the rating pipeline.
//
// The package offers:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set return
//     errors instead of panicking).
//   - Algebra kernels: Mul, Transpose, MatVec, LU and Inverse. These are all
//     ordinary least squares needs to solve the normal equations.
//   - Column statistics: ColumnMeans, CenterColumns, ColumnStds, ZScoreColumns
//     and Clip. Ratings are stored one column per half, so every statistic is
//     computed per column over the full population.
//
// All kernels are deterministic (fixed i→j loop orders, no map iteration) and
// never mutate their inputs. Passing *Dense unlocks flat-slice fast paths;
// any other Matrix implementation goes through At/Set.
//
//	X, _ := matrix.NewDenseFrom(3, 2, []float64{5, 6, 7, 8, 9, 7})
//	Z, means, stds, err := matrix.ZScoreColumns(X, 0)
package matrix
