package sim

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is wrapped by every validation failure. Callers test with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ValidateProcesses checks the static inputs of a process set.
// Returns the first failure, naming the offending index, id, and field.
// The clock never passes max(arrival_time) + sum(burst_time), so sets where that
// bound overflows int64 are rejected.
func ValidateProcesses(processes []Process) error {
	seen := make(map[string]int, len(processes))
	var maxArrival, totalBurst int64
	for i, p := range processes {
		prefix := fmt.Sprintf("process[%d]", i)
		if p.ID == "" {
			return fmt.Errorf("%w: %s: process_id must not be empty", ErrInvalidInput, prefix)
		}
		prefix = fmt.Sprintf("%s (id %q)", prefix, p.ID)
		if first, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: %s: process_id duplicates process[%d]", ErrInvalidInput, prefix, first)
		}
		seen[p.ID] = i
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: %s: arrival_time must be non-negative, got %d", ErrInvalidInput, prefix, p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: %s: burst_time must be positive, got %d", ErrInvalidInput, prefix, p.BurstTime)
		}
		if totalBurst > math.MaxInt64-p.BurstTime {
			return fmt.Errorf("%w: %s: burst_time %d overflows the total burst of the set", ErrInvalidInput, prefix, p.BurstTime)
		}
		totalBurst += p.BurstTime
		maxArrival = max(maxArrival, p.ArrivalTime)
	}
	if maxArrival > math.MaxInt64-totalBurst {
		return fmt.Errorf("%w: latest arrival_time %d plus total burst_time %d overflows the clock",
			ErrInvalidInput, maxArrival, totalBurst)
	}
	return nil
}

// ValidateQuantum checks a Round Robin time quantum.
func ValidateQuantum(quantum int64) error {
	if quantum <= 0 {
		return fmt.Errorf("%w: quantum must be positive, got %d", ErrInvalidInput, quantum)
	}
	return nil
}
