package sim

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Algorithm is the closed set of scheduling policies a run can replay.
// The unexported method seals the set: FCFS, SJN, Priority and RoundRobin are the
// only implementations, and Run dispatches on them with an exhaustive type switch.
type Algorithm interface {
	Name() string
	isAlgorithm()
}

// FCFS runs processes to completion in arrival order (non-preemptive).
type FCFS struct{}

// SJN runs the ready process with the smallest burst time to completion (non-preemptive).
// Warning: SJN can starve long processes under a sustained stream of short ones.
type SJN struct{}

// Priority runs the ready process with the lowest priority value to completion
// (non-preemptive).
type Priority struct{}

// RoundRobin grants each ready process at most Quantum time units per dispatch,
// re-enqueueing it at the tail of the ready queue if it has not finished.
type RoundRobin struct {
	Quantum int64
}

func (FCFS) Name() string       { return AlgorithmFCFS }
func (SJN) Name() string        { return AlgorithmSJN }
func (Priority) Name() string   { return AlgorithmPriority }
func (RoundRobin) Name() string { return AlgorithmRoundRobin }

func (FCFS) isAlgorithm()       {}
func (SJN) isAlgorithm()        {}
func (Priority) isAlgorithm()   {}
func (RoundRobin) isAlgorithm() {}

// Canonical algorithm names accepted by NewAlgorithm.
const (
	AlgorithmFCFS       = "fcfs"
	AlgorithmSJN        = "sjn"
	AlgorithmPriority   = "priority"
	AlgorithmRoundRobin = "rr"
)

// algorithmAliases maps every accepted name (canonical or alias) to its canonical form.
var algorithmAliases = map[string]string{
	AlgorithmFCFS:       AlgorithmFCFS,
	AlgorithmSJN:        AlgorithmSJN,
	"sjf":               AlgorithmSJN,
	AlgorithmPriority:   AlgorithmPriority,
	AlgorithmRoundRobin: AlgorithmRoundRobin,
	"round-robin":       AlgorithmRoundRobin,
}

// IsValidAlgorithm returns true if name is a recognized algorithm name or alias.
func IsValidAlgorithm(name string) bool {
	_, ok := algorithmAliases[strings.ToLower(name)]
	return ok
}

// AlgorithmNames returns the canonical algorithm names in presentation order.
func AlgorithmNames() []string {
	return []string{AlgorithmFCFS, AlgorithmSJN, AlgorithmPriority, AlgorithmRoundRobin}
}

// ValidAlgorithmNames returns every accepted name, sorted, for help and error text.
func ValidAlgorithmNames() []string {
	return slices.Sorted(maps.Keys(algorithmAliases))
}

// NewAlgorithm maps a user-facing choice to an Algorithm.
// quantum is only read for Round Robin, where it must be positive.
func NewAlgorithm(name string, quantum int64) (Algorithm, error) {
	canonical, ok := algorithmAliases[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown algorithm %q; valid: %s",
			ErrInvalidInput, name, strings.Join(ValidAlgorithmNames(), ", "))
	}
	switch canonical {
	case AlgorithmFCFS:
		return FCFS{}, nil
	case AlgorithmSJN:
		return SJN{}, nil
	case AlgorithmPriority:
		return Priority{}, nil
	case AlgorithmRoundRobin:
		if err := ValidateQuantum(quantum); err != nil {
			return nil, err
		}
		return RoundRobin{Quantum: quantum}, nil
	default:
		panic(fmt.Sprintf("unhandled algorithm %q", canonical))
	}
}

// AllAlgorithms returns one instance of every policy, Round Robin using quantum.
func AllAlgorithms(quantum int64) ([]Algorithm, error) {
	algs := make([]Algorithm, 0, 4)
	for _, name := range AlgorithmNames() {
		alg, err := NewAlgorithm(name, quantum)
		if err != nil {
			return nil, err
		}
		algs = append(algs, alg)
	}
	return algs, nil
}

// validateAlgorithm rejects nil, foreign, and misconfigured algorithms before a run
// touches any record.
func validateAlgorithm(alg Algorithm) error {
	switch a := alg.(type) {
	case FCFS, SJN, Priority:
		return nil
	case RoundRobin:
		return ValidateQuantum(a.Quantum)
	case nil:
		return fmt.Errorf("%w: algorithm must not be nil", ErrInvalidInput)
	default:
		return fmt.Errorf("%w: unsupported algorithm type %T", ErrInvalidInput, alg)
	}
}
