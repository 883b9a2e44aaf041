package figure

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// arrow is one segment in data coordinates.
type arrow struct {
	from, to plotter.XY
	color    color.Color
}

// arrows draws open-headed arrows ("->") between data points.
type arrows struct {
	segs  []arrow
	width vg.Length
	head  vg.Length // head length; the half-width is head/2
}

var (
	_ plot.Plotter    = (*arrows)(nil)
	_ plot.DataRanger = (*arrows)(nil)
)

func newArrows() *arrows {
	return &arrows{width: vg.Points(2), head: vg.Points(8)}
}

func (a *arrows) add(from, to plotter.XY, c color.Color) {
	a.segs = append(a.segs, arrow{from: from, to: to, color: c})
}

// Plot implements plot.Plotter.
func (a *arrows) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, s := range a.segs {
		from := vg.Point{X: trX(s.from.X), Y: trY(s.from.Y)}
		to := vg.Point{X: trX(s.to.X), Y: trY(s.to.Y)}
		sty := draw.LineStyle{Color: s.color, Width: a.width}
		c.StrokeLine2(sty, from.X, from.Y, to.X, to.Y)

		dx, dy := float64(to.X-from.X), float64(to.Y-from.Y)
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		ux, uy := vg.Length(dx/l), vg.Length(dy/l)
		base := vg.Point{X: to.X - ux*a.head, Y: to.Y - uy*a.head}
		half := a.head / 2
		left := vg.Point{X: base.X - uy*half, Y: base.Y + ux*half}
		right := vg.Point{X: base.X + uy*half, Y: base.Y - ux*half}
		c.StrokeLines(sty, []vg.Point{left, to, right})
	}
}

// DataRange implements plot.DataRanger.
func (a *arrows) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, s := range a.segs {
		for _, pt := range []plotter.XY{s.from, s.to} {
			xmin, xmax = math.Min(xmin, pt.X), math.Max(xmax, pt.X)
			ymin, ymax = math.Min(ymin, pt.Y), math.Max(ymax, pt.Y)
		}
	}

	return xmin, xmax, ymin, ymax
}
