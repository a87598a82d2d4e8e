package workload

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/schedsim/schedsim/sim"
)

// Burst distribution names accepted by GeneratorSpec.BurstDistribution.
const (
	BurstUniform     = "uniform"
	BurstExponential = "exponential"
	BurstGaussian    = "gaussian"
	BurstConstant    = "constant"
)

// BurstSampler draws CPU burst lengths.
type BurstSampler interface {
	// Sample returns a burst length within the sampler's [min, max] bounds.
	Sample(rng *rand.Rand) int64
}

// UniformSampler draws bursts uniformly from [min, max].
type UniformSampler struct {
	min, max int64
}

func (s *UniformSampler) Sample(rng *rand.Rand) int64 {
	return s.min + rng.Int63n(s.max-s.min+1)
}

// ExponentialSampler draws bursts with the given mean, clamped to [min, max].
// Produces many short jobs and a long tail, the workload where SJN shines.
type ExponentialSampler struct {
	mean     float64
	min, max int64
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) int64 {
	return clampBurst(rng.ExpFloat64()*s.mean, s.min, s.max)
}

// GaussianSampler draws bursts around the midpoint of [min, max] with a standard
// deviation of a quarter of the range.
type GaussianSampler struct {
	mean, stdDev float64
	min, max     int64
}

func (s *GaussianSampler) Sample(rng *rand.Rand) int64 {
	if s.min == s.max {
		return s.min
	}
	return clampBurst(rng.NormFloat64()*s.stdDev+s.mean, s.min, s.max)
}

// ConstantSampler always returns the same burst.
type ConstantSampler struct {
	value int64
}

func (s *ConstantSampler) Sample(_ *rand.Rand) int64 {
	return s.value
}

// clampBurst rounds val into [lo, hi]. The bounds are compared before converting,
// since float64(hi) can round above math.MaxInt64.
func clampBurst(val float64, lo, hi int64) int64 {
	if math.IsNaN(val) {
		return lo
	}
	val = math.Round(val)
	if val <= float64(lo) {
		return lo
	}
	if val >= float64(hi) {
		return hi
	}
	return int64(val)
}

// IsValidBurstDistribution returns true for a recognized distribution name. Empty means uniform.
func IsValidBurstDistribution(name string) bool {
	switch name {
	case "", BurstUniform, BurstExponential, BurstGaussian, BurstConstant:
		return true
	}
	return false
}

// NewBurstSampler builds the sampler for dist over [min, max].
// Constant uses min; exponential uses the midpoint of the range as its mean.
func NewBurstSampler(dist string, min, max int64) (BurstSampler, error) {
	if min <= 0 || max < min {
		return nil, fmt.Errorf("%w: burst range [%d, %d] is invalid", sim.ErrInvalidInput, min, max)
	}
	mid := (float64(min) + float64(max)) / 2
	switch dist {
	case "", BurstUniform:
		return &UniformSampler{min: min, max: max}, nil
	case BurstExponential:
		return &ExponentialSampler{mean: mid, min: min, max: max}, nil
	case BurstGaussian:
		return &GaussianSampler{mean: mid, stdDev: float64(max-min) / 4, min: min, max: max}, nil
	case BurstConstant:
		return &ConstantSampler{value: min}, nil
	default:
		return nil, fmt.Errorf("%w: unknown burst distribution %q", sim.ErrInvalidInput, dist)
	}
}
