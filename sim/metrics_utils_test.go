package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePercentile(t *testing.T) {
	data := []int64{0, 7, 10, 18}

	assert.Equal(t, 0.0, CalculatePercentile(data, 0))
	assert.Equal(t, 8.5, CalculatePercentile(data, 50))
	assert.Equal(t, 18.0, CalculatePercentile(data, 100))
	assert.InDelta(t, 16.8, CalculatePercentile(data, 95), 1e-9)
}

func TestCalculatePercentile_SingleValue(t *testing.T) {
	assert.Equal(t, 4.0, CalculatePercentile([]int{4}, 99))
}

func TestCalculateMean(t *testing.T) {
	assert.Equal(t, 0.0, CalculateMean([]float64{}))
	assert.Equal(t, 8.75, CalculateMean([]int64{0, 7, 10, 18}))
}

func TestSortedInt64s_DoesNotMutateInput(t *testing.T) {
	in := []int64{3, 1, 2}
	assert.Equal(t, []int64{1, 2, 3}, sortedInt64s(in))
	assert.Equal(t, []int64{3, 1, 2}, in)
}
