package figure

import (
	"fmt"

	"github.com/katalvlaran/regmean/colorscale"
	"github.com/katalvlaran/regmean/grouping"
	"github.com/katalvlaran/regmean/regression"
	"github.com/katalvlaran/regmean/roster"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Panel geometry.
const (
	arrowJitter = 0.2
	dotJitter   = 0.15

	panelXMin      = 0.7
	arrowPanelXMax = 2.5
	dotPanelXMax   = 2.3

	focusAlpha = 0.8
	arrowAlpha = 0.9

	dotArea = 70.0 // marker area of DrawDots glyphs, points²
)

// focusMarker is the radius of DrawArrows focus points.
var focusMarker = vg.Points(3.5)

// halfX is the x position of each half's column.
var halfX = map[roster.Half]float64{roster.FirstHalf: 1, roster.SecondHalf: 2}

// NewPanel returns an empty panel with the two half columns as x ticks, the
// rating range on y and a dashed grid.
func NewPanel() *plot.Plot {
	p := plot.New()
	p.X.Tick.Marker = plot.ConstantTicks([]plot.Tick{
		{Value: halfX[roster.FirstHalf], Label: roster.FirstHalf.Label()},
		{Value: halfX[roster.SecondHalf], Label: roster.SecondHalf.Label()},
	})
	p.X.Tick.Label.Font.Size = labelSize
	p.Y.Label.Text = "Match Rating"
	p.Y.Label.TextStyle.Font.Size = labelSize
	addGrid(p)
	setLimits(p, panelXMin, arrowPanelXMax, ratingMin, ratingMax)

	return p
}

// resolvePerspective validates the perspective.
func resolvePerspective(h Perspective) error {
	if err := h.Validate(); err != nil {
		return fmt.Errorf("%w: got %q", ErrBadPerspective, string(h))
	}

	return nil
}

// DrawArrows plots each entry's Base rating in the perspective column and,
// when revealing, an arrow to its Compare rating in the other column.
// Players are spread over a ±0.2 jitter in entry order and shaded by skill.
//
// Errors:
//   - ErrNilPlot, ErrBadPerspective.
func DrawArrows(p *plot.Plot, entries []grouping.Entry, opts ...PanelOption) error {
	if p == nil {
		return ErrNilPlot
	}
	o := newPanelOptions(opts...)
	if err := resolvePerspective(o.perspective); err != nil {
		return err
	}

	if len(entries) > 0 {
		s, arr, err := arrowLayers(entries, o)
		if err != nil {
			return fmt.Errorf("figure: arrows: %w", err)
		}
		p.Add(s)
		if len(arr.segs) > 0 {
			p.Add(arr)
		}
	}
	setLimits(p, panelXMin, arrowPanelXMax, ratingMin, ratingMax)

	return nil
}

// arrowLayers builds the focus scatter and the arrows of DrawArrows.
func arrowLayers(entries []grouping.Entry, o panelOptions) (*plotter.Scatter, *arrows, error) {
	jitter := regression.Linspace(-arrowJitter, arrowJitter, len(entries))
	other := o.perspective.Other()
	focus := make(plotter.XYs, len(entries))
	styles := make([]draw.GlyphStyle, len(entries))
	arr := newArrows()
	for i, e := range entries {
		c := o.cmap.At(o.tone(e.Player))
		focus[i] = plotter.XY{X: halfX[o.perspective] + jitter[i], Y: e.Base}
		styles[i] = draw.GlyphStyle{Color: colorscale.Fade(c, focusAlpha), Radius: focusMarker, Shape: draw.CircleGlyph{}}
		if o.reveal {
			to := plotter.XY{X: halfX[other] + jitter[i], Y: e.Compare}
			arr.add(focus[i], to, colorscale.Fade(c, arrowAlpha))
		}
	}
	s, err := plotter.NewScatter(focus)
	if err != nil {
		return nil, nil, err
	}
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle { return styles[i] }

	return s, arr, nil
}

// DrawDots plots each entry's Base rating as a circle in the perspective
// column and, when revealing, its Compare rating as a cross in the other
// column. Jitter spans ±0.15.
//
// Errors:
//   - ErrNilPlot, ErrBadPerspective.
func DrawDots(p *plot.Plot, entries []grouping.Entry, opts ...PanelOption) error {
	if p == nil {
		return ErrNilPlot
	}
	o := newPanelOptions(opts...)
	if err := resolvePerspective(o.perspective); err != nil {
		return err
	}

	if len(entries) > 0 {
		circles, crosses, err := dotLayers(entries, o)
		if err != nil {
			return fmt.Errorf("figure: dots: %w", err)
		}
		p.Add(circles)
		if crosses != nil {
			p.Add(crosses)
		}
	}
	setLimits(p, panelXMin, dotPanelXMax, ratingMin, ratingMax)

	return nil
}

// dotLayers builds the circle and cross scatters of DrawDots; crosses is nil
// unless revealing.
func dotLayers(entries []grouping.Entry, o panelOptions) (circles, crosses *plotter.Scatter, err error) {
	jitter := regression.Linspace(-dotJitter, dotJitter, len(entries))
	other := o.perspective.Other()
	focus := make(plotter.XYs, len(entries))
	rest := make(plotter.XYs, len(entries))
	tones := make([]draw.GlyphStyle, len(entries))
	r := colorscale.Radius(dotArea)
	for i, e := range entries {
		focus[i] = plotter.XY{X: halfX[o.perspective] + jitter[i], Y: e.Base}
		rest[i] = plotter.XY{X: halfX[other] + jitter[i], Y: e.Compare}
		tones[i] = draw.GlyphStyle{Color: o.cmap.At(o.tone(e.Player)), Radius: r}
	}

	if circles, err = plotter.NewScatter(focus); err != nil {
		return nil, nil, err
	}
	circles.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		sty := tones[i]
		sty.Shape = draw.CircleGlyph{}

		return sty
	}
	if !o.reveal {
		return circles, nil, nil
	}

	if crosses, err = plotter.NewScatter(rest); err != nil {
		return nil, nil, err
	}
	crosses.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		sty := tones[i]
		sty.Shape = draw.CrossGlyph{}

		return sty
	}

	return circles, crosses, nil
}

// AddLegend adds one color swatch per legend item.
func AddLegend(p *plot.Plot, items []grouping.LegendItem) error {
	if p == nil {
		return ErrNilPlot
	}
	for _, it := range items {
		p.Legend.Add(it.Label, swatch{color: GroupColor(it.Group)})
	}
	p.Legend.TextStyle.Font.Size = legendSize

	return nil
}
