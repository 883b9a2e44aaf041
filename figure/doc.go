// Package figure renders regression-to-the-mean figures with gonum/plot.
//
// 📚 What is here?
//
//   - Panels: NewPanel plus DrawArrows / DrawDots draw a group of players as
//     jittered points at "First Half" and "Second Half", optionally revealing
//     the other half with an arrow or a cross. The Perspective decides which
//     half is in focus.
//   - GroupPanel: best, average and worst groups on one panel with a legend of
//     their mean regression.
//   - Regression: the full scatter of second-half against first-half ratings,
//     groups highlighted, dot size following latent skill, the least squares
//     line and the y = x reference.
//   - Grid: several panels tiled into one image.
//
// ⚙️ Usage:
//
//	g, _ := grouping.SelectHalf(tbl, roster.FirstHalf, grouping.DefaultSize)
//	fig, err := figure.Regression(tbl, g)
//	if err != nil { … }
//	err = fig.Save("regression.png")
//
// Output format follows the file extension: png, svg, pdf, eps, jpg, tif.
package figure
