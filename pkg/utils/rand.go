package utils

import (
	"math"
	"math/rand"
	"time"
)

// RandSource is a seeded random number generator. Every simulation run
// owns its own source; runs executing in parallel must never draw from
// the same stream.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a new random source with the given seed.
// A seed of 0 selects a time-based seed.
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a random float64 in [0.0, 1.0)
func (r *RandSource) Float64() float64 {
	return r.rng.Float64()
}

// Intn returns a random int in [0, n)
func (r *RandSource) Intn(n int) int {
	return r.rng.Intn(n)
}

// ExpFloat64 returns an exponentially distributed random number with rate lambda
func (r *RandSource) ExpFloat64(lambda float64) float64 {
	return r.rng.ExpFloat64() / lambda
}

// UniformFloat64 returns a uniformly distributed random number in [min, max)
func (r *RandSource) UniformFloat64(min, max float64) float64 {
	return min + r.rng.Float64()*(max-min)
}

// WeibullFloat64 returns a Weibull-distributed random number with the given
// shape and scale parameters, via the inverse CDF:
//
//	scale * (-ln(1-U))^(1/shape), U uniform in [0, 1)
//
// Shape > 1 models wear-out (increasing hazard), shape == 1 reduces to the
// exponential distribution with mean equal to scale. Parameters are assumed
// positive; callers validate them.
func (r *RandSource) WeibullFloat64(shape, scale float64) float64 {
	u := r.rng.Float64()
	return scale * math.Pow(-math.Log(1.0-u), 1.0/shape)
}
