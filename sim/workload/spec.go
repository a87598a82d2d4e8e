package workload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/sim"
)

// ProcessSetSpec is the top-level process-set file.
// Loaded from YAML via LoadProcessSetSpec(path).
type ProcessSetSpec struct {
	Version   string        `yaml:"version"`
	Algorithm string        `yaml:"algorithm,omitempty"` // optional default policy for `run`
	Quantum   int64         `yaml:"quantum,omitempty"`   // optional default Round Robin quantum
	Processes []ProcessSpec `yaml:"processes"`
}

// ProcessSpec holds the static inputs of one process.
type ProcessSpec struct {
	ID       string `json:"id" yaml:"id"`
	Arrival  int64  `json:"arrival" yaml:"arrival"`
	Burst    int64  `json:"burst" yaml:"burst"`
	Priority int64  `json:"priority" yaml:"priority,omitempty"`
}

// CurrentVersion is written by WriteProcessSetSpec.
const CurrentVersion = "1"

var validVersions = map[string]bool{
	"":             true, // empty defaults to current
	CurrentVersion: true,
}

// ParseProcessSetSpec decodes YAML data.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func ParseProcessSetSpec(data []byte) (*ProcessSetSpec, error) {
	var spec ProcessSetSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing process set: %w", err)
	}
	if spec.Version == "" {
		spec.Version = CurrentVersion
	}
	return &spec, nil
}

// LoadProcessSetSpec reads and parses a YAML process-set file.
func LoadProcessSetSpec(path string) (*ProcessSetSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading process set: %w", err)
	}
	return ParseProcessSetSpec(data)
}

// Validate checks that all fields in the spec are valid.
func (s *ProcessSetSpec) Validate() error {
	if !validVersions[s.Version] {
		return fmt.Errorf("%w: unknown version %q; valid: %s", sim.ErrInvalidInput, s.Version, CurrentVersion)
	}
	if s.Algorithm != "" && !sim.IsValidAlgorithm(s.Algorithm) {
		return fmt.Errorf("%w: unknown algorithm %q; valid: %s",
			sim.ErrInvalidInput, s.Algorithm, strings.Join(sim.ValidAlgorithmNames(), ", "))
	}
	if s.Quantum < 0 {
		return fmt.Errorf("%w: quantum must be non-negative, got %d", sim.ErrInvalidInput, s.Quantum)
	}
	return sim.ValidateProcesses(s.ToProcesses())
}

// ToProcesses converts the spec into fresh Process records, in file order.
func (s *ProcessSetSpec) ToProcesses() []sim.Process {
	procs := make([]sim.Process, len(s.Processes))
	for i, p := range s.Processes {
		procs[i] = sim.NewProcess(p.ID, p.Arrival, p.Burst, p.Priority)
	}
	return procs
}

// FromProcesses builds a spec holding the static inputs of procs.
func FromProcesses(procs []sim.Process) *ProcessSetSpec {
	spec := &ProcessSetSpec{Version: CurrentVersion, Processes: make([]ProcessSpec, len(procs))}
	for i, p := range procs {
		spec.Processes[i] = ProcessSpec{ID: p.ID, Arrival: p.ArrivalTime, Burst: p.BurstTime, Priority: p.Priority}
	}
	return spec
}

// WriteProcessSetSpec encodes spec as YAML.
func WriteProcessSetSpec(w io.Writer, spec *ProcessSetSpec) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(spec); err != nil {
		return fmt.Errorf("encoding process set: %w", err)
	}
	return encoder.Close()
}

// LoadProcesses reads a process set from a .yaml/.yml or .csv file and validates it.
// The returned spec carries any algorithm/quantum defaults found in a YAML file.
func LoadProcesses(path string) ([]sim.Process, *ProcessSetSpec, error) {
	var (
		spec *ProcessSetSpec
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		spec, err = LoadProcessSetSpec(path)
	case ".csv":
		spec, err = LoadCSVFile(path)
	default:
		return nil, nil, fmt.Errorf("unsupported process set extension %q; valid: .yaml, .yml, .csv", ext)
	}
	if err != nil {
		return nil, nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	logrus.Debugf("loaded %d processes from %s", len(spec.Processes), path)
	return spec.ToProcesses(), spec, nil
}

// Classic returns the four-process reference set: P1..P4 with arrivals 0..3,
// bursts 8, 4, 9, 5 and priorities 2, 1, 3, 2.
func Classic() *ProcessSetSpec {
	return &ProcessSetSpec{
		Version: CurrentVersion,
		Processes: []ProcessSpec{
			{ID: "P1", Arrival: 0, Burst: 8, Priority: 2},
			{ID: "P2", Arrival: 1, Burst: 4, Priority: 1},
			{ID: "P3", Arrival: 2, Burst: 9, Priority: 3},
			{ID: "P4", Arrival: 3, Burst: 5, Priority: 2},
		},
	}
}
