package colorscale_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/regmean/colorscale"
	"github.com/katalvlaran/regmean/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizer(t *testing.T) {
	n, err := colorscale.NewNormalizer([]float64{6.2, 7.4, 5.8, 7.0})
	require.NoError(t, err)
	assert.Equal(t, 5.8, n.Min)
	assert.Equal(t, 7.4, n.Max)

	assert.InDelta(t, 0, n.At(5.8), 1e-15)
	assert.InDelta(t, 1, n.At(7.4), 1e-15)
	assert.InDelta(t, 0.5, n.At(6.6), 1e-12)
	assert.Less(t, n.At(5.0), 0.0, "values below the range are not clipped")
	assert.Greater(t, n.At(8.0), 1.0)
}

func TestNormalizer_Degenerate(t *testing.T) {
	n, err := colorscale.NewNormalizer([]float64{3, 3, 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, n.At(3))
	assert.Equal(t, 0.0, n.At(100))
}

func TestNormalizer_Errors(t *testing.T) {
	_, err := colorscale.NewNormalizer(nil)
	assert.ErrorIs(t, err, colorscale.ErrEmpty)

	_, err = colorscale.NewNormalizer([]float64{1, math.NaN()})
	assert.ErrorIs(t, err, colorscale.ErrNonFinite)

	_, err = colorscale.SkillNormalizer(nil)
	assert.ErrorIs(t, err, roster.ErrNilTable)
}

func TestSkillNormalizer(t *testing.T) {
	tbl, err := roster.Generate()
	require.NoError(t, err)
	n, err := colorscale.SkillNormalizer(tbl)
	require.NoError(t, err)

	for _, p := range tbl.Rows() {
		v := n.At(p.TrueSkill)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}
