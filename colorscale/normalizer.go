package colorscale

import (
	"fmt"
	"math"

	"github.com/katalvlaran/regmean/roster"
	"gonum.org/v1/gonum/floats"
)

// Normalizer maps [Min, Max] linearly onto [0, 1].
type Normalizer struct {
	Min, Max float64
}

// NewNormalizer fits a Normalizer to the range of values.
func NewNormalizer(values []float64) (*Normalizer, error) {
	if len(values) == 0 {
		return nil, ErrEmpty
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: index %d", ErrNonFinite, i)
		}
	}

	return &Normalizer{Min: floats.Min(values), Max: floats.Max(values)}, nil
}

// SkillNormalizer fits a Normalizer to the latent skills of t.
func SkillNormalizer(t *roster.Table) (*Normalizer, error) {
	skills, err := t.Column(roster.TrueSkill)
	if err != nil {
		return nil, fmt.Errorf("colorscale: skill normalizer: %w", err)
	}

	return NewNormalizer(skills)
}

// At returns (v − Min) / (Max − Min). The result is not clipped; a degenerate
// range maps everything to 0.
func (n *Normalizer) At(v float64) float64 {
	span := n.Max - n.Min
	if span == 0 {
		return 0
	}

	return (v - n.Min) / span
}
