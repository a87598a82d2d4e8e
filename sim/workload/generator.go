package workload

import (
	"fmt"
	"math"

	"github.com/schedsim/schedsim/sim"
)

// GeneratorSpec parameterizes a synthetic process set.
type GeneratorSpec struct {
	Seed              int64
	Count             int
	MaxArrival        int64  // arrivals drawn uniformly from [0, MaxArrival]
	MinBurst          int64
	MaxBurst          int64  // bursts drawn from [MinBurst, MaxBurst]
	BurstDistribution string // uniform (default), exponential, gaussian or constant
	PriorityLevels    int64  // priorities drawn uniformly from [0, PriorityLevels)
	IDPrefix          string
}

// DefaultGeneratorSpec returns the parameters used by `generate` when no flags are set.
func DefaultGeneratorSpec() GeneratorSpec {
	return GeneratorSpec{
		Seed:              42,
		Count:             10,
		MaxArrival:        20,
		MinBurst:          1,
		MaxBurst:          10,
		BurstDistribution: BurstUniform,
		PriorityLevels:    4,
		IDPrefix:          "P",
	}
}

// Validate checks generator parameters.
func (g GeneratorSpec) Validate() error {
	if g.Count <= 0 {
		return fmt.Errorf("%w: count must be positive, got %d", sim.ErrInvalidInput, g.Count)
	}
	if g.MaxArrival < 0 {
		return fmt.Errorf("%w: max arrival must be non-negative, got %d", sim.ErrInvalidInput, g.MaxArrival)
	}
	if g.MinBurst <= 0 {
		return fmt.Errorf("%w: min burst must be positive, got %d", sim.ErrInvalidInput, g.MinBurst)
	}
	if g.MaxBurst < g.MinBurst {
		return fmt.Errorf("%w: max burst %d is below min burst %d", sim.ErrInvalidInput, g.MaxBurst, g.MinBurst)
	}
	if !IsValidBurstDistribution(g.BurstDistribution) {
		return fmt.Errorf("%w: unknown burst distribution %q", sim.ErrInvalidInput, g.BurstDistribution)
	}
	if g.PriorityLevels <= 0 {
		return fmt.Errorf("%w: priority levels must be positive, got %d", sim.ErrInvalidInput, g.PriorityLevels)
	}
	// every generated set must pass sim.ValidateProcesses, whose clock bound is
	// max arrival + total burst
	if g.MaxBurst > (math.MaxInt64-g.MaxArrival)/int64(g.Count) {
		return fmt.Errorf("%w: max arrival %d plus %d bursts of up to %d overflows the clock",
			sim.ErrInvalidInput, g.MaxArrival, g.Count, g.MaxBurst)
	}
	return nil
}

// Generate creates a process set from g. Deterministic given the same parameters.
// Processes are listed in ID order (P1, P2, ...), not arrival order.
func Generate(g GeneratorSpec) (*ProcessSetSpec, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	sampler, err := NewBurstSampler(g.BurstDistribution, g.MinBurst, g.MaxBurst)
	if err != nil {
		return nil, err
	}
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(g.Seed))
	arrivals := rng.ForSubsystem(sim.SubsystemArrival)
	bursts := rng.ForSubsystem(sim.SubsystemBurst)
	priorities := rng.ForSubsystem(sim.SubsystemPriority)

	spec := &ProcessSetSpec{Version: CurrentVersion, Processes: make([]ProcessSpec, g.Count)}
	for i := range spec.Processes {
		spec.Processes[i] = ProcessSpec{
			ID:       fmt.Sprintf("%s%d", g.IDPrefix, i+1),
			Arrival:  arrivals.Int63n(g.MaxArrival + 1),
			Burst:    sampler.Sample(bursts),
			Priority: priorities.Int63n(g.PriorityLevels),
		}
	}
	return spec, nil
}
