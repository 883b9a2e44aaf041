// Package regmean is a small, deterministic toolkit for showing regression to
// the mean on synthetic match ratings.
//
// 🚀 What is regmean?
//
//	Every player gets a latent skill and two noisy ratings, one per half.
//	Select the best, worst and average performers of one half and watch them
//	drift back towards the population mean in the other:
//		• roster/    : synthetic players, z-scores, column access
//		• grouping/  : best / worst / average selection, legend labels
//		• regression/: ordinary least squares on the matrix kernels
//		• colorscale/: skill normalizer, ColorBrewer colormaps, dot sizes
//		• figure/    : arrow, dot, group and regression figures (gonum/plot)
//		• trend/     : regression effect against group size (go-chart)
//		• matrix/    : dense matrices, column statistics, LU and inversion
//
// ✨ Guarantees
//
//   - Same seed, same roster: the only randomness is one seeded PCG stream.
//   - Library packages never log and never mutate their inputs.
//   - Every invalid input is an error you can match with errors.Is.
//
// 📦 Quick start:
//
//	tbl, _ := roster.Generate()
//	g, _ := grouping.SelectHalf(tbl, roster.FirstHalf, grouping.DefaultSize)
//	fig, _ := figure.Regression(tbl, g)
//	_ = fig.Save("regression.png")
//
// The regmean command (cmd/regmean) wraps the same calls behind cobra
// subcommands: table, groups and plot.
package regmean
