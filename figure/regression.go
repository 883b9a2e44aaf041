package figure

import (
	"fmt"
	"image/color"

	"github.com/katalvlaran/regmean/colorscale"
	"github.com/katalvlaran/regmean/grouping"
	"github.com/katalvlaran/regmean/regression"
	"github.com/katalvlaran/regmean/roster"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Regression figure styling.
const (
	regressionTitle = "Regression: First Half Predicts Second Half"
	lineSamples     = 100
	scatterAlpha    = 0.75
)

var (
	edgeWidth      = vg.Points(0.8)
	legendMarker   = vg.Points(5)
	legendSizeIcon = vg.Points(7)
	referenceDash  = []vg.Length{vg.Points(6), vg.Points(3)}
)

// scatterOrder is the draw order; later groups sit on top.
var scatterOrder = []roster.Group{roster.GroupOther, roster.GroupBest, roster.GroupAverage, roster.GroupWorst}

// Regression draws second-half against first-half ratings for every player
// of t, with the groups of g highlighted, dot area following latent skill and
// the least squares line of rating_sh on rating_fh against the y = x reference.
//
// t is not modified: the returned Figure carries an annotated copy (Group and
// Size set) together with the fitted model.
//
// Errors:
//   - ErrNilTable, ErrNilGroups, wrapped grouping, colorscale and regression errors.
func Regression(t *roster.Table, g *grouping.Groups, opts ...FigureOption) (*Figure, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if g == nil {
		return nil, ErrNilGroups
	}
	o := newFigureOptions(opts...)

	tbl, err := grouping.Annotate(t, g)
	if err != nil {
		return nil, fmt.Errorf("figure: regression: %w", err)
	}
	norm, err := colorscale.SkillNormalizer(tbl)
	if err != nil {
		return nil, fmt.Errorf("figure: regression: %w", err)
	}
	for i, p := range tbl.Rows() {
		if err = tbl.SetSize(i, o.sizes.Size(norm.At(p.TrueSkill))); err != nil {
			return nil, fmt.Errorf("figure: regression: %w", err)
		}
	}

	fh, _ := tbl.Column(roster.RatingFH)
	sh, _ := tbl.Column(roster.RatingSH)
	model, err := regression.Fit(fh, sh)
	if err != nil {
		return nil, fmt.Errorf("figure: regression: %w", err)
	}
	xs := regression.Linspace(floats.Min(fh), floats.Max(fh), lineSamples)
	ys, err := model.PredictAll(xs)
	if err != nil {
		return nil, fmt.Errorf("figure: regression: %w", err)
	}

	p := plot.New()
	p.Title.Text = regressionTitle
	p.Title.TextStyle.Font.Size = titleSize
	p.Title.TextStyle.Font.Weight = xfont.WeightBold
	p.X.Label.Text = "First Half Rating"
	p.Y.Label.Text = "Second Half Rating"
	p.X.Label.TextStyle.Font.Size = labelSize
	p.Y.Label.TextStyle.Font.Size = labelSize
	addGrid(p)

	rows := tbl.Rows()
	for _, grp := range scatterOrder {
		idx := tbl.GroupIndices(grp)
		if len(idx) == 0 {
			continue
		}
		s, err := groupScatter(rows, idx, grp)
		if err != nil {
			return nil, fmt.Errorf("figure: regression: %w", err)
		}
		p.Add(s)
	}

	fit, err := plotter.NewLine(zipXY(xs, ys))
	if err != nil {
		return nil, fmt.Errorf("figure: regression: %w", err)
	}
	fit.LineStyle = draw.LineStyle{Color: Black, Width: vg.Points(2)}
	ref, err := plotter.NewLine(zipXY(xs, xs))
	if err != nil {
		return nil, fmt.Errorf("figure: regression: %w", err)
	}
	ref.LineStyle = draw.LineStyle{Color: Gray, Width: vg.Points(1.5), Dashes: referenceDash}
	p.Add(fit, ref)

	half := grouping.SpecHalf(g.Spec).Label()
	n := len(g.Best)
	marker := func(c color.Color, r vg.Length) glyphThumb {
		return glyphThumb{style: draw.GlyphStyle{Color: c, Radius: r, Shape: draw.CircleGlyph{}}}
	}
	p.Legend.Add(fmt.Sprintf("Best Performers\n(Top %d from %s)", n, half), marker(Green, legendMarker))
	p.Legend.Add(fmt.Sprintf("Average Performers\n(Around Mean in %s)", half), marker(Blue, legendMarker))
	p.Legend.Add(fmt.Sprintf("Worst Performers\n(Bottom %d from %s)", len(g.Worst), half), marker(Red, legendMarker))
	p.Legend.Add("Other Players", marker(Gray, legendMarker))
	p.Legend.Add(fmt.Sprintf("Regression Line (slope=%.2f)", model.Slope()), fit)
	p.Legend.Add("y = x (No Regression)", ref)
	p.Legend.Add("Dot Size ~ True Skill", marker(Gray, legendSizeIcon))
	p.Legend.TextStyle.Font.Size = legendSize
	p.Legend.Top, p.Legend.Left = false, false

	setLimits(p, ratingMin, ratingMax, ratingMin, ratingMax)

	return &Figure{Plot: p, Table: tbl, Model: model, Width: o.width, Height: o.height}, nil
}

// groupScatter plots rows idx of one group, sized by their Size column.
func groupScatter(rows []roster.Player, idx []int, grp roster.Group) (*plotter.Scatter, error) {
	pts := make(plotter.XYs, len(idx))
	radii := make([]vg.Length, len(idx))
	for k, i := range idx {
		pts[k] = plotter.XY{X: rows[i].RatingFH, Y: rows[i].RatingSH}
		radii[k] = colorscale.Radius(rows[i].Size)
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	fill := colorscale.Fade(GroupColor(grp), scatterAlpha)
	var shape draw.GlyphDrawer = draw.CircleGlyph{}
	if grp != roster.GroupOther {
		shape = outlinedCircle{edge: Black, width: edgeWidth}
	}
	s.GlyphStyleFunc = func(k int) draw.GlyphStyle {
		return draw.GlyphStyle{Color: fill, Radius: radii[k], Shape: shape}
	}

	return s, nil
}

func zipXY(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}

	return pts
}
