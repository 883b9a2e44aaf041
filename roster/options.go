// Package roster: functional configuration for Generate.
//
// Design goals:
//   - Deterministic behavior: the seed is the only source of randomness.
//   - Safe by construction: WithX panics on nonsensical values (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package roster

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPlayers is the population size.
	DefaultPlayers = 100

	// DefaultSeed seeds the PCG source.
	DefaultSeed uint64 = 1903

	// DefaultSkillMean and DefaultSkillStd parameterize the latent skill distribution.
	DefaultSkillMean = 6.8
	DefaultSkillStd  = 0.4

	// DefaultNoiseStd is the per-half performance noise around the latent skill.
	DefaultNoiseStd = 1.0

	// DefaultClipLow and DefaultClipHigh bound every observed rating.
	DefaultClipLow  = 3.0
	DefaultClipHigh = 10.0
)

// ---------- Internal panic messages ----------

const (
	panicPlayersInvalid = "roster: WithPlayers: n must be > 0"
	panicSkillInvalid   = "roster: WithSkill: mean must be finite, std finite and >= 0"
	panicNoiseInvalid   = "roster: WithNoise: std must be finite and >= 0"
	panicClipInvalid    = "roster: WithClip: bounds must be finite with lo < hi"
)

// Option mutates generation options.
type Option func(*Options)

// Options holds the resolved generation parameters.
type Options struct {
	players   int
	seed      uint64
	skillMean float64
	skillStd  float64
	noiseStd  float64
	clipLow   float64
	clipHigh  float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		players:   DefaultPlayers,
		seed:      DefaultSeed,
		skillMean: DefaultSkillMean,
		skillStd:  DefaultSkillStd,
		noiseStd:  DefaultNoiseStd,
		clipLow:   DefaultClipLow,
		clipHigh:  DefaultClipHigh,
	}
}

// Players returns the configured population size.
func (o Options) Players() int { return o.players }

// Seed returns the configured seed.
func (o Options) Seed() uint64 { return o.seed }

// ClipBounds returns the configured rating bounds.
func (o Options) ClipBounds() (lo, hi float64) { return o.clipLow, o.clipHigh }

// String renders the options for logs.
func (o Options) String() string {
	return fmt.Sprintf("players=%d seed=%d skill=N(%g,%g) noise=N(0,%g) clip=[%g,%g]",
		o.players, o.seed, o.skillMean, o.skillStd, o.noiseStd, o.clipLow, o.clipHigh)
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithPlayers sets the population size.
func WithPlayers(n int) Option {
	if n <= 0 {
		panic(panicPlayersInvalid)
	}

	return func(o *Options) { o.players = n }
}

// WithSeed sets the random seed.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithSkill sets the latent skill distribution.
func WithSkill(mean, std float64) Option {
	if !finite(mean) || !finite(std) || std < 0 {
		panic(panicSkillInvalid)
	}

	return func(o *Options) { o.skillMean, o.skillStd = mean, std }
}

// WithNoise sets the per-half performance noise.
func WithNoise(std float64) Option {
	if !finite(std) || std < 0 {
		panic(panicNoiseInvalid)
	}

	return func(o *Options) { o.noiseStd = std }
}

// WithClip sets the rating bounds.
func WithClip(lo, hi float64) Option {
	if !finite(lo) || !finite(hi) || lo >= hi {
		panic(panicClipInvalid)
	}

	return func(o *Options) { o.clipLow, o.clipHigh = lo, hi }
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
