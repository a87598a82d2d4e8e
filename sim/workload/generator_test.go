package workload

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/sim"
)

func TestGenerate_Deterministic(t *testing.T) {
	g := DefaultGeneratorSpec()
	first, err := Generate(g)
	require.NoError(t, err)
	second, err := Generate(g)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerate_DifferentSeeds_Differ(t *testing.T) {
	g := DefaultGeneratorSpec()
	first, err := Generate(g)
	require.NoError(t, err)
	g.Seed++
	second, err := Generate(g)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestGenerate_RespectsBounds(t *testing.T) {
	g := GeneratorSpec{Seed: 3, Count: 200, MaxArrival: 5, MinBurst: 2, MaxBurst: 4, PriorityLevels: 3, IDPrefix: "job-"}
	spec, err := Generate(g)
	require.NoError(t, err)

	require.Len(t, spec.Processes, 200)
	assert.Equal(t, "job-1", spec.Processes[0].ID)
	for _, p := range spec.Processes {
		assert.GreaterOrEqual(t, p.Arrival, int64(0))
		assert.LessOrEqual(t, p.Arrival, int64(5))
		assert.GreaterOrEqual(t, p.Burst, int64(2))
		assert.LessOrEqual(t, p.Burst, int64(4))
		assert.GreaterOrEqual(t, p.Priority, int64(0))
		assert.Less(t, p.Priority, int64(3))
	}
	assert.NoError(t, spec.Validate())
}

func TestGenerate_PriorityLevelsDoNotPerturbArrivals(t *testing.T) {
	// Arrival and burst streams are isolated from the priority stream
	g := DefaultGeneratorSpec()
	a, err := Generate(g)
	require.NoError(t, err)
	g.PriorityLevels = 9
	b, err := Generate(g)
	require.NoError(t, err)
	for i := range a.Processes {
		assert.Equal(t, a.Processes[i].Arrival, b.Processes[i].Arrival)
		assert.Equal(t, a.Processes[i].Burst, b.Processes[i].Burst)
	}
}

func TestGeneratorSpec_Validate_Errors(t *testing.T) {
	base := DefaultGeneratorSpec()
	tests := []struct {
		name   string
		mutate func(*GeneratorSpec)
		want   string
	}{
		{"zero count", func(g *GeneratorSpec) { g.Count = 0 }, "count"},
		{"negative arrival", func(g *GeneratorSpec) { g.MaxArrival = -1 }, "arrival"},
		{"zero min burst", func(g *GeneratorSpec) { g.MinBurst = 0 }, "min burst"},
		{"inverted burst range", func(g *GeneratorSpec) { g.MaxBurst = g.MinBurst - 1 }, "max burst"},
		{"zero priority levels", func(g *GeneratorSpec) { g.PriorityLevels = 0 }, "priority"},
		{"max int64 arrival", func(g *GeneratorSpec) { g.MaxArrival = math.MaxInt64 }, "overflows the clock"},
		{"bursts overflow clock", func(g *GeneratorSpec) { g.MaxBurst = math.MaxInt64 / 5 }, "overflows the clock"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := base
			tc.mutate(&g)
			_, err := Generate(g)
			require.Error(t, err)
			assert.True(t, errors.Is(err, sim.ErrInvalidInput))
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestGenerate_BurstDistribution(t *testing.T) {
	g := DefaultGeneratorSpec()
	g.BurstDistribution = BurstConstant
	g.MinBurst = 6
	g.MaxBurst = 12
	spec, err := Generate(g)
	require.NoError(t, err)
	for _, p := range spec.Processes {
		assert.Equal(t, int64(6), p.Burst)
	}

	g.BurstDistribution = "zipf"
	_, err = Generate(g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "burst distribution")
}

func TestGenerate_ExtremeButRepresentableBounds(t *testing.T) {
	// GIVEN the widest burst range a single process allows
	g := GeneratorSpec{Seed: 1, Count: 1, MaxArrival: 0, MinBurst: 1, MaxBurst: math.MaxInt64, PriorityLevels: 1, IDPrefix: "P"}

	for _, dist := range []string{BurstUniform, BurstExponential, BurstGaussian} {
		g.BurstDistribution = dist
		spec, err := Generate(g)
		require.NoError(t, err, dist)
		assert.GreaterOrEqual(t, spec.Processes[0].Burst, int64(1), dist)
		assert.NoError(t, spec.Validate(), dist)
	}
}
