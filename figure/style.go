package figure

import (
	"image/color"

	"github.com/katalvlaran/regmean/colorscale"
	"github.com/katalvlaran/regmean/roster"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Named colors of the group legend.
var (
	Green = color.NRGBA{G: 0x80, A: 0xff}
	Blue  = color.NRGBA{B: 0xff, A: 0xff}
	Red   = color.NRGBA{R: 0xff, A: 0xff}
	Gray  = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	Black = color.NRGBA{A: 0xff}
)

// GroupColor returns the legend color of g.
func GroupColor(g roster.Group) color.NRGBA {
	switch g {
	case roster.GroupBest:
		return Green
	case roster.GroupAverage:
		return Blue
	case roster.GroupWorst:
		return Red
	}

	return Gray
}

// Axis limits and styling shared by every figure.
const (
	ratingMin = 3.0
	ratingMax = 10.0

	gridAlpha = 0.4
)

var (
	labelSize  = vg.Points(13)
	legendSize = vg.Points(11)
	titleSize  = vg.Points(16)
	gridDashes = []vg.Length{vg.Points(4), vg.Points(2)}
)

// addGrid draws the dashed background grid.
func addGrid(p *plot.Plot) {
	g := plotter.NewGrid()
	c := colorscale.Fade(Gray, gridAlpha)
	g.Vertical.Color, g.Horizontal.Color = c, c
	g.Vertical.Dashes, g.Horizontal.Dashes = gridDashes, gridDashes
	p.Add(g)
}

// setLimits pins both axes. Must run after every p.Add, which widens them.
func setLimits(p *plot.Plot, xmin, xmax, ymin, ymax float64) {
	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min, p.Y.Max = ymin, ymax
}
