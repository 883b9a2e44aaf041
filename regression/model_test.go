package regression_test

import (
	"testing"

	"github.com/katalvlaran/regmean/regression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_Predict(t *testing.T) {
	m := &regression.Model{Intercept: 1, Coef: []float64{0.5}}

	v, err := m.Predict(4)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = m.Predict(1, 2)
	assert.ErrorIs(t, err, regression.ErrPredictorCount)

	all, err := m.PredictAll([]float64{0, 2, 10})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 6}, all)

	two := &regression.Model{Coef: []float64{1, 1}}
	_, err = two.PredictAll([]float64{1})
	assert.ErrorIs(t, err, regression.ErrPredictorCount)
}

func TestModel_Nil(t *testing.T) {
	var m *regression.Model
	assert.Equal(t, 0.0, m.Slope())
	_, err := m.Predict(1)
	assert.ErrorIs(t, err, regression.ErrNilModel)
	_, err = m.PredictAll(nil)
	assert.ErrorIs(t, err, regression.ErrNilModel)
	assert.Equal(t, "<nil>", m.String())
}

func TestModel_String(t *testing.T) {
	m := &regression.Model{Intercept: 5.8, Coef: []float64{0.15}, R2: 0.02, N: 100}
	assert.Equal(t, "y = 5.8000 +0.1500·x0 (R²=0.0200, n=100)", m.String())
}

func TestLinspace(t *testing.T) {
	assert.Nil(t, regression.Linspace(0, 1, 0))
	assert.Equal(t, []float64{3}, regression.Linspace(3, 9, 1))
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, regression.Linspace(0, 1, 5))

	g := regression.Linspace(3.2, 9.7, 100)
	require.Len(t, g, 100)
	assert.Equal(t, 3.2, g[0])
	assert.InDelta(t, 9.7, g[99], 1e-12)
	for i := 1; i < len(g); i++ {
		assert.Greater(t, g[i], g[i-1])
	}
}
