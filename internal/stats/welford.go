package stats

import (
	"math"
)

// Welford accumulates mean and variance in a single numerically stable
// pass. Naive sum-of-squares accumulation drifts over long result
// sequences; this form does not, and it yields the same values no
// matter how the observations are ordered, up to floating-point
// rounding.
type Welford struct {
	n    int
	mean float64
	m2   float64
}

// Add folds one observation into the accumulator.
func (w *Welford) Add(x float64) {
	w.n++
	delta := x - w.mean
	w.mean += delta / float64(w.n)
	w.m2 += delta * (x - w.mean)
}

// Count returns the number of observations seen so far.
func (w *Welford) Count() int {
	return w.n
}

// Mean returns the running mean, or 0 before any observation.
func (w *Welford) Mean() float64 {
	return w.mean
}

// SampleVariance returns the unbiased (n-1) variance, or 0 with fewer
// than two observations.
func (w *Welford) SampleVariance() float64 {
	if w.n < 2 {
		return 0
	}
	return w.m2 / float64(w.n-1)
}

// SampleStdDev returns the sample standard deviation.
func (w *Welford) SampleStdDev() float64 {
	return math.Sqrt(w.SampleVariance())
}
