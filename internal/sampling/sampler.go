package sampling

import (
	"errors"
	"fmt"

	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/config"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/utils"
)

// ErrInvalidParameter marks a sampling call that received a
// non-positive distribution parameter.
var ErrInvalidParameter = errors.New("invalid distribution parameter")

// Sampler draws failure and repair durations for a single replication.
// Each replication gets its own Sampler seeded deterministically from
// the run index, which keeps runs independent of each other and makes
// the whole study reproducible under parallel execution.
type Sampler struct {
	seed int64
	rng  *utils.RandSource
}

// NewSampler creates a sampler with its own random stream.
func NewSampler(seed int64) *Sampler {
	return &Sampler{
		seed: seed,
		rng:  utils.NewRandSource(seed),
	}
}

// Seed returns the seed this sampler was created with.
func (s *Sampler) Seed() int64 {
	return s.seed
}

// Weibull draws a time-to-failure duration in hours from a Weibull
// distribution with the given shape and scale. Shape above 1 models
// wear-out (increasing hazard), shape 1 is the memoryless exponential
// case.
func (s *Sampler) Weibull(shape, scale float64) (float64, error) {
	if shape <= 0 {
		return 0, fmt.Errorf("%w: shape must be positive, got %g", ErrInvalidParameter, shape)
	}
	if scale <= 0 {
		return 0, fmt.Errorf("%w: scale must be positive, got %g", ErrInvalidParameter, scale)
	}
	return s.rng.WeibullFloat64(shape, scale), nil
}

// RepairDuration draws the repair duration in hours for the given
// policy. Without jitter the configured repair_time is returned as a
// fixed value; with jitter j the duration is uniform on
// [repair_time-j, repair_time+j].
func (s *Sampler) RepairDuration(p *config.Policy) (float64, error) {
	if p.RepairTimeHours <= 0 {
		return 0, fmt.Errorf("%w: repair_time must be positive, got %g", ErrInvalidParameter, p.RepairTimeHours)
	}
	if p.RepairTimeJitter < 0 || p.RepairTimeJitter > p.RepairTimeHours {
		return 0, fmt.Errorf("%w: repair_time_jitter must be within [0, repair_time], got %g", ErrInvalidParameter, p.RepairTimeJitter)
	}
	if p.RepairTimeJitter == 0 {
		return p.RepairTimeHours, nil
	}
	return s.rng.UniformFloat64(p.RepairTimeHours-p.RepairTimeJitter, p.RepairTimeHours+p.RepairTimeJitter), nil
}
