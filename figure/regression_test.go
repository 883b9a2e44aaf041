package figure_test

import (
	"testing"

	"github.com/katalvlaran/regmean/colorscale"
	"github.com/katalvlaran/regmean/figure"
	"github.com/katalvlaran/regmean/grouping"
	"github.com/katalvlaran/regmean/regression"
	"github.com/katalvlaran/regmean/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func TestRegression_Figure(t *testing.T) {
	tbl, g := fixture(t)

	fig, err := figure.Regression(tbl, g)
	require.NoError(t, err)
	assert.Equal(t, "Regression: First Half Predicts Second Half", fig.Plot.Title.Text)
	assert.Equal(t, "First Half Rating", fig.Plot.X.Label.Text)
	assert.Equal(t, "Second Half Rating", fig.Plot.Y.Label.Text)
	assert.Equal(t, 13*vg.Inch, fig.Width)
	assert.Equal(t, 7*vg.Inch, fig.Height)
	for _, lim := range []float64{fig.Plot.X.Min, fig.Plot.Y.Min} {
		assert.Equal(t, 3.0, lim)
	}
	for _, lim := range []float64{fig.Plot.X.Max, fig.Plot.Y.Max} {
		assert.Equal(t, 10.0, lim)
	}

	fh, _ := tbl.Column(roster.RatingFH)
	sh, _ := tbl.Column(roster.RatingSH)
	want, err := regression.Fit(fh, sh)
	require.NoError(t, err)
	assert.InDelta(t, want.Slope(), fig.Model.Slope(), 1e-12)
	assert.InDelta(t, want.Intercept, fig.Model.Intercept, 1e-12)
}

func TestRegression_AnnotatesCopy(t *testing.T) {
	tbl, g := fixture(t)
	before := tbl.Rows()

	fig, err := figure.Regression(tbl, g)
	require.NoError(t, err)
	assert.Equal(t, before, tbl.Rows(), "input table untouched")

	out := fig.Table
	require.Equal(t, tbl.Len(), out.Len())
	assert.Len(t, out.GroupIndices(roster.GroupAverage), len(g.Average))
	for _, e := range g.Average {
		p, _ := out.Row(e.Index)
		assert.Equal(t, roster.GroupAverage, p.Group)
	}
	labeled := len(out.GroupIndices(roster.GroupBest)) + len(out.GroupIndices(roster.GroupWorst)) +
		len(out.GroupIndices(roster.GroupAverage)) + len(out.GroupIndices(roster.GroupOther))
	assert.Equal(t, out.Len(), labeled)

	sizes, _ := out.Column(roster.Size)
	skills, _ := out.Column(roster.TrueSkill)
	lo, hi := 0, 0
	for i, s := range sizes {
		assert.GreaterOrEqual(t, s, 40.0-1e-9)
		assert.LessOrEqual(t, s, 140.0+1e-9)
		if skills[i] < skills[lo] {
			lo = i
		}
		if skills[i] > skills[hi] {
			hi = i
		}
	}
	assert.InDelta(t, 40, sizes[lo], 1e-9)
	assert.InDelta(t, 140, sizes[hi], 1e-9)
}

func TestRegression_Options(t *testing.T) {
	tbl, g := fixture(t)
	fig, err := figure.Regression(tbl, g,
		figure.WithFigureSize(6*vg.Inch, 4*vg.Inch),
		figure.WithSizeScale(colorscale.SizeScale{Min: 10, Max: 20}))
	require.NoError(t, err)
	assert.Equal(t, 6*vg.Inch, fig.Width)
	sizes, _ := fig.Table.Column(roster.Size)
	for _, s := range sizes {
		assert.GreaterOrEqual(t, s, 10.0-1e-9)
		assert.LessOrEqual(t, s, 20.0+1e-9)
	}

	assert.Panics(t, func() { figure.WithFigureSize(0, vg.Inch) })
	assert.Panics(t, func() { figure.WithSizeScale(colorscale.SizeScale{Min: 5, Max: 1}) })
}

func TestRegression_SecondHalfGroups(t *testing.T) {
	tbl, _ := fixture(t)
	g, err := grouping.SelectHalf(tbl, roster.SecondHalf, 5)
	require.NoError(t, err)
	fig, err := figure.Regression(tbl, g)
	require.NoError(t, err)
	assert.Len(t, fig.Table.GroupIndices(roster.GroupAverage), 5)
}

func TestRegression_Errors(t *testing.T) {
	tbl, g := fixture(t)
	_, err := figure.Regression(nil, g)
	assert.ErrorIs(t, err, figure.ErrNilTable)
	_, err = figure.Regression(tbl, nil)
	assert.ErrorIs(t, err, figure.ErrNilGroups)

	// Groups that point past the table end.
	small := roster.NewTable(tbl.Rows()[:5])
	_, err = figure.Regression(small, g)
	assert.ErrorIs(t, err, roster.ErrRowOutOfRange)
}
