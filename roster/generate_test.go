package roster_test

import (
	"testing"

	"github.com/katalvlaran/regmean/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestGenerate_Defaults(t *testing.T) {
	tbl, err := roster.Generate()
	require.NoError(t, err)
	require.Equal(t, roster.DefaultPlayers, tbl.Len())

	first, err := tbl.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "Player 1", first.ID)
	last, err := tbl.Row(tbl.Len() - 1)
	require.NoError(t, err)
	assert.Equal(t, "Player 100", last.ID)
	assert.Equal(t, roster.GroupOther, first.Group, "plot columns start unset")
	assert.Zero(t, first.Size)
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := roster.Generate(roster.WithSeed(42), roster.WithPlayers(50))
	require.NoError(t, err)
	b, err := roster.Generate(roster.WithSeed(42), roster.WithPlayers(50))
	require.NoError(t, err)
	assert.Equal(t, a.Rows(), b.Rows())

	c, err := roster.Generate(roster.WithSeed(43), roster.WithPlayers(50))
	require.NoError(t, err)
	assert.NotEqual(t, a.Rows(), c.Rows())
}

// TestGenerate_RatingsWithinClip checks every rating lands inside the bounds,
// including a tight clip that forces many values onto the edges.
func TestGenerate_RatingsWithinClip(t *testing.T) {
	cases := []struct {
		name   string
		lo, hi float64
	}{
		{"default", roster.DefaultClipLow, roster.DefaultClipHigh},
		{"tight", 6.5, 7.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := roster.Generate(roster.WithPlayers(500), roster.WithClip(tc.lo, tc.hi))
			require.NoError(t, err)
			for _, col := range []roster.Column{roster.RatingFH, roster.RatingSH} {
				vals, err := tbl.Column(col)
				require.NoError(t, err)
				for i, v := range vals {
					assert.GreaterOrEqualf(t, v, tc.lo, "%s row %d", col, i)
					assert.LessOrEqualf(t, v, tc.hi, "%s row %d", col, i)
				}
			}
		})
	}
}

func TestGenerate_ZScoresStandardized(t *testing.T) {
	for _, seed := range []uint64{1, 1903, 2024} {
		tbl, err := roster.Generate(roster.WithSeed(seed))
		require.NoError(t, err)

		for _, pair := range [][3]roster.Column{
			{roster.RatingFH, roster.ZFH, roster.AbsZFH},
			{roster.RatingSH, roster.ZSH, roster.AbsZSH},
		} {
			ratings, _ := tbl.Column(pair[0])
			z, _ := tbl.Column(pair[1])
			absZ, _ := tbl.Column(pair[2])

			mean, std := stat.PopMeanStdDev(z, nil)
			assert.InDelta(t, 0, mean, 1e-9, "seed %d %s mean", seed, pair[1])
			assert.InDelta(t, 1, std, 1e-9, "seed %d %s std", seed, pair[1])

			// Cross-check against an independent standardization.
			mu, sigma := stat.PopMeanStdDev(ratings, nil)
			for i := range z {
				assert.InDelta(t, stat.StdScore(ratings[i], mu, sigma), z[i], 1e-9)
				assert.InDelta(t, absOf(z[i]), absZ[i], 0)
			}
		}
	}
}

func TestGenerate_ZeroNoiseTracksSkill(t *testing.T) {
	tbl, err := roster.Generate(roster.WithNoise(0), roster.WithPlayers(20))
	require.NoError(t, err)
	for _, p := range tbl.Rows() {
		assert.Equal(t, p.RatingFH, p.RatingSH, "no noise: both halves identical")
		assert.Equal(t, p.ZFH, p.ZSH)
	}
}

func TestGenerate_ConstantRatingsGiveZeroZ(t *testing.T) {
	// Every rating is clipped onto the upper bound: std is 0, z must be 0 not NaN.
	tbl, err := roster.Generate(roster.WithSkill(50, 0), roster.WithNoise(0), roster.WithPlayers(5))
	require.NoError(t, err)
	for _, p := range tbl.Rows() {
		assert.Equal(t, roster.DefaultClipHigh, p.RatingFH)
		assert.Zero(t, p.ZFH)
		assert.Zero(t, p.AbsZSH)
	}
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { roster.WithPlayers(0) })
	assert.Panics(t, func() { roster.WithSkill(6.8, -1) })
	assert.Panics(t, func() { roster.WithNoise(-0.1) })
	assert.Panics(t, func() { roster.WithClip(10, 3) })
	assert.NotPanics(t, func() { roster.WithClip(0, 1) })

	o := roster.NewOptions(roster.WithPlayers(7), roster.WithSeed(9), nil)
	assert.Equal(t, 7, o.Players())
	assert.Equal(t, uint64(9), o.Seed())
	lo, hi := o.ClipBounds()
	assert.Equal(t, [2]float64{3, 10}, [2]float64{lo, hi})
}

func absOf(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
