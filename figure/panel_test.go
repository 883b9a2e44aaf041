package figure_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/regmean/colorscale"
	"github.com/katalvlaran/regmean/figure"
	"github.com/katalvlaran/regmean/grouping"
	"github.com/katalvlaran/regmean/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) (*roster.Table, *grouping.Groups) {
	t.Helper()
	tbl, err := roster.Generate()
	require.NoError(t, err)
	g, err := grouping.SelectHalf(tbl, roster.FirstHalf, grouping.DefaultSize)
	require.NoError(t, err)

	return tbl, g
}

func TestNewPanel_Axes(t *testing.T) {
	p := figure.NewPanel()
	assert.Equal(t, "Match Rating", p.Y.Label.Text)
	assert.Equal(t, 3.0, p.Y.Min)
	assert.Equal(t, 10.0, p.Y.Max)

	ticks := p.X.Tick.Marker.Ticks(p.X.Min, p.X.Max)
	require.Len(t, ticks, 2)
	assert.Equal(t, "First Half", ticks[0].Label)
	assert.Equal(t, 1.0, ticks[0].Value)
	assert.Equal(t, "Second Half", ticks[1].Label)
	assert.Equal(t, 2.0, ticks[1].Value)
}

func TestDrawArrows_Limits(t *testing.T) {
	tbl, g := fixture(t)
	norm, err := colorscale.SkillNormalizer(tbl)
	require.NoError(t, err)

	for _, h := range []roster.Half{roster.FirstHalf, roster.SecondHalf} {
		p := figure.NewPanel()
		require.NoError(t, figure.DrawArrows(p, g.Best, figure.WithPerspective(h), figure.WithNormalizer(norm)))
		assert.Equal(t, 0.7, p.X.Min)
		assert.Equal(t, 2.5, p.X.Max)
		assert.Equal(t, 3.0, p.Y.Min)
		assert.Equal(t, 10.0, p.Y.Max)
	}
}

func TestDrawDots_Limits(t *testing.T) {
	_, g := fixture(t)
	p := figure.NewPanel()
	require.NoError(t, figure.DrawDots(p, g.Worst, figure.WithReveal(false)))
	assert.Equal(t, 0.7, p.X.Min)
	assert.Equal(t, 2.3, p.X.Max)
}

func TestDraw_BadPerspective(t *testing.T) {
	_, g := fixture(t)
	for _, bad := range []figure.Perspective{"", "FH", "both", "first"} {
		err := figure.DrawArrows(figure.NewPanel(), g.Best, figure.WithPerspective(bad))
		assert.ErrorIs(t, err, figure.ErrBadPerspective, "arrows %q", bad)
		err = figure.DrawDots(figure.NewPanel(), g.Best, figure.WithPerspective(bad))
		assert.ErrorIs(t, err, figure.ErrBadPerspective, "dots %q", bad)
	}
	// Validation happens even with nothing to draw.
	err := figure.DrawArrows(figure.NewPanel(), nil, figure.WithPerspective("x"))
	assert.ErrorIs(t, err, figure.ErrBadPerspective)
}

func TestDraw_NilPlot(t *testing.T) {
	assert.ErrorIs(t, figure.DrawArrows(nil, nil), figure.ErrNilPlot)
	assert.ErrorIs(t, figure.DrawDots(nil, nil), figure.ErrNilPlot)
	assert.ErrorIs(t, figure.AddLegend(nil, nil), figure.ErrNilPlot)
}

func TestWithColormap_NilPanics(t *testing.T) {
	assert.Panics(t, func() { figure.WithColormap(nil) })
}

func TestGroupPanel_Renders(t *testing.T) {
	tbl, g := fixture(t)
	norm, err := colorscale.SkillNormalizer(tbl)
	require.NoError(t, err)

	for _, kind := range []figure.PanelKind{figure.ArrowPanel, figure.DotPanel} {
		t.Run(kind.String(), func(t *testing.T) {
			p, err := figure.GroupPanel(kind, g, figure.WithNormalizer(norm))
			require.NoError(t, err)

			var buf bytes.Buffer
			n, err := figure.NewFigure(p).Encode(&buf, "svg")
			require.NoError(t, err)
			assert.Positive(t, n)
			assert.Contains(t, buf.String(), "<svg")
		})
	}
}

func TestGroupPanel_Errors(t *testing.T) {
	_, g := fixture(t)
	_, err := figure.GroupPanel(figure.ArrowPanel, nil)
	assert.ErrorIs(t, err, figure.ErrNilGroups)

	_, err = figure.GroupPanel(figure.PanelKind(9), g)
	assert.ErrorIs(t, err, figure.ErrBadPanelKind)

	_, err = figure.GroupPanel(figure.DotPanel, g, figure.WithPerspective("mid"))
	assert.ErrorIs(t, err, figure.ErrBadPerspective)
}

func TestParsePanelKind(t *testing.T) {
	k, err := figure.ParsePanelKind("dots")
	require.NoError(t, err)
	assert.Equal(t, figure.DotPanel, k)

	_, err = figure.ParsePanelKind("bars")
	assert.ErrorIs(t, err, figure.ErrBadPanelKind)
}

func TestGroupColor(t *testing.T) {
	assert.Equal(t, figure.Green, figure.GroupColor(roster.GroupBest))
	assert.Equal(t, figure.Blue, figure.GroupColor(roster.GroupAverage))
	assert.Equal(t, figure.Red, figure.GroupColor(roster.GroupWorst))
	assert.Equal(t, figure.Gray, figure.GroupColor(roster.GroupOther))
}

func TestDrawDots_RevealGlyphs(t *testing.T) {
	_, g := fixture(t)
	n := len(g.Best)
	for _, h := range []roster.Half{roster.FirstHalf, roster.SecondHalf} {
		for _, reveal := range []bool{true, false} {
			p := figure.NewPanel()
			require.NoError(t, figure.DrawDots(p, g.Best, figure.WithPerspective(h), figure.WithReveal(reveal)))

			boxes := p.GlyphBoxes(p)
			want := n
			if reveal {
				want = 2 * n
			}
			require.Len(t, boxes, want, "%s reveal=%v", h, reveal)

			// Circles come first, centered on the perspective column.
			center := 1.0
			if h == roster.SecondHalf {
				center = 2.0
			}
			for i, e := range g.Best {
				x := p.X.Min + boxes[i].X*(p.X.Max-p.X.Min)
				y := p.Y.Min + boxes[i].Y*(p.Y.Max-p.Y.Min)
				assert.InDelta(t, center, x, 0.15+1e-9)
				assert.InDelta(t, e.Base, y, 1e-9)
			}
		}
	}
}

func TestDrawArrows_FocusGlyphs(t *testing.T) {
	_, g := fixture(t)
	for _, reveal := range []bool{true, false} {
		p := figure.NewPanel()
		require.NoError(t, figure.DrawArrows(p, g.Worst, figure.WithPerspective(roster.SecondHalf), figure.WithReveal(reveal)))

		boxes := p.GlyphBoxes(p)
		require.Len(t, boxes, len(g.Worst), "reveal=%v", reveal)
		for i, e := range g.Worst {
			x := p.X.Min + boxes[i].X*(p.X.Max-p.X.Min)
			y := p.Y.Min + boxes[i].Y*(p.Y.Max-p.Y.Min)
			assert.InDelta(t, 2.0, x, 0.2+1e-9)
			assert.InDelta(t, e.Base, y, 1e-9)
		}
	}
}
