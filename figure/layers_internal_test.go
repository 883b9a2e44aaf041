package figure

import (
	"testing"

	"github.com/katalvlaran/regmean/grouping"
	"github.com/katalvlaran/regmean/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// layerEntries has Base and Compare values distinct from each player's own
// first and second half ratings, so a layer reading the wrong field shows.
func layerEntries() []grouping.Entry {
	return []grouping.Entry{
		{Index: 0, Player: roster.Player{RatingFH: 9.9, RatingSH: 9.9}, Base: 8.0, Compare: 6.5},
		{Index: 1, Player: roster.Player{RatingFH: 9.9, RatingSH: 9.9}, Base: 7.5, Compare: 7.0},
		{Index: 2, Player: roster.Player{RatingFH: 9.9, RatingSH: 9.9}, Base: 4.0, Compare: 5.5},
	}
}

func TestArrowLayers(t *testing.T) {
	cases := []struct {
		name    string
		h       roster.Half
		reveal  bool
		focusX  float64
		targetX float64
	}{
		{"fh reveal", roster.FirstHalf, true, 1, 2},
		{"sh reveal", roster.SecondHalf, true, 2, 1},
		{"fh hidden", roster.FirstHalf, false, 1, 2},
		{"sh hidden", roster.SecondHalf, false, 2, 1},
	}
	jitter := []float64{-0.2, 0, 0.2}
	es := layerEntries()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := newPanelOptions(WithPerspective(tc.h), WithReveal(tc.reveal))
			s, arr, err := arrowLayers(es, o)
			require.NoError(t, err)
			require.Len(t, s.XYs, len(es))
			for i, e := range es {
				assert.InDelta(t, tc.focusX+jitter[i], s.XYs[i].X, 1e-12)
				assert.Equal(t, e.Base, s.XYs[i].Y)
			}

			if !tc.reveal {
				assert.Empty(t, arr.segs)
				return
			}
			require.Len(t, arr.segs, len(es))
			for i, e := range es {
				assert.Equal(t, s.XYs[i], arr.segs[i].from)
				assert.Equal(t, e.Compare, arr.segs[i].to.Y)
				assert.InDelta(t, tc.targetX+jitter[i], arr.segs[i].to.X, 1e-12)
			}
		})
	}
}

func TestDotLayers(t *testing.T) {
	cases := []struct {
		name   string
		h      roster.Half
		reveal bool
		dotX   float64
		crossX float64
	}{
		{"fh reveal", roster.FirstHalf, true, 1, 2},
		{"sh reveal", roster.SecondHalf, true, 2, 1},
		{"fh hidden", roster.FirstHalf, false, 1, 2},
		{"sh hidden", roster.SecondHalf, false, 2, 1},
	}
	jitter := []float64{-0.15, 0, 0.15}
	es := layerEntries()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := newPanelOptions(WithPerspective(tc.h), WithReveal(tc.reveal))
			circles, crosses, err := dotLayers(es, o)
			require.NoError(t, err)
			require.Len(t, circles.XYs, len(es))
			for i, e := range es {
				assert.InDelta(t, tc.dotX+jitter[i], circles.XYs[i].X, 1e-12)
				assert.Equal(t, e.Base, circles.XYs[i].Y)
			}

			if !tc.reveal {
				assert.Nil(t, crosses)
				return
			}
			require.NotNil(t, crosses)
			require.Len(t, crosses.XYs, len(es))
			for i, e := range es {
				assert.InDelta(t, tc.crossX+jitter[i], crosses.XYs[i].X, 1e-12)
				assert.Equal(t, e.Compare, crosses.XYs[i].Y)
			}
		})
	}
}

func TestArrowLayers_SingleEntry(t *testing.T) {
	// One entry sits at the low end of the jitter span.
	s, arr, err := arrowLayers(layerEntries()[:1], newPanelOptions(WithPerspective(roster.SecondHalf)))
	require.NoError(t, err)
	require.Len(t, arr.segs, 1)
	assert.InDelta(t, 1.8, s.XYs[0].X, 1e-12)
	assert.Equal(t, 8.0, s.XYs[0].Y)
	assert.InDelta(t, 0.8, arr.segs[0].to.X, 1e-12)
	assert.Equal(t, 6.5, arr.segs[0].to.Y)
}
