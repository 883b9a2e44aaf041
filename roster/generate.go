package roster

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/regmean/matrix"
	"gonum.org/v1/gonum/stat/distuv"
)

// halves is the number of rating columns (first half, second half).
const halves = 2

// Generate draws a synthetic roster.
//
// Algorithm Outline:
//  1. Draw every latent skill first, then a players×2 block of noise in
//     row-major order, from one PCG stream seeded with the configured seed.
//  2. ratings = skill + noise, clipped into [lo, hi].
//  3. Z-score both rating columns against the full population (ddof = 0)
//     and take absolute values.
//
// Errors:
//   - Wrapped matrix errors only; with valid options none are expected.
//
// Complexity:
//
//	Time O(n), Memory O(n).
func Generate(opts ...Option) (*Table, error) {
	o := NewOptions(opts...)
	n := o.players

	src := rand.NewPCG(o.seed, o.seed)
	skillDist := distuv.Normal{Mu: o.skillMean, Sigma: o.skillStd, Src: src}
	noiseDist := distuv.Normal{Mu: 0, Sigma: o.noiseStd, Src: src}

	skills := make([]float64, n)
	for i := range skills {
		skills[i] = skillDist.Rand()
	}
	raw := make([]float64, n*halves)
	for i := 0; i < n; i++ {
		for h := 0; h < halves; h++ {
			raw[i*halves+h] = skills[i] + noiseDist.Rand()
		}
	}

	R, err := matrix.NewDenseFrom(n, halves, raw)
	if err != nil {
		return nil, fmt.Errorf("roster: generate: %w", err)
	}
	ratings, err := matrix.Clip(R, o.clipLow, o.clipHigh)
	if err != nil {
		return nil, fmt.Errorf("roster: generate: %w", err)
	}
	Z, _, _, err := matrix.ZScoreColumns(ratings, 0)
	if err != nil {
		return nil, fmt.Errorf("roster: generate: %w", err)
	}
	absZ, err := matrix.Abs(Z)
	if err != nil {
		return nil, fmt.Errorf("roster: generate: %w", err)
	}

	rows := make([]Player, n)
	for i := 0; i < n; i++ {
		p := Player{ID: fmt.Sprintf("Player %d", i+1), TrueSkill: skills[i]}
		p.RatingFH, _ = ratings.At(i, 0)
		p.RatingSH, _ = ratings.At(i, 1)
		p.ZFH, _ = Z.At(i, 0)
		p.ZSH, _ = Z.At(i, 1)
		p.AbsZFH, _ = absZ.At(i, 0)
		p.AbsZSH, _ = absZ.At(i, 1)
		rows[i] = p
	}

	return &Table{rows: rows}, nil
}
