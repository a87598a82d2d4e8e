// Package testutil provides shared test infrastructure for the scheduling simulator.
// It holds golden dataset types and assertion helpers used across sim/ test packages,
// and deliberately does not import sim so that sim's own tests can use it.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one process set replayed under one algorithm.
type GoldenTestCase struct {
	Name      string          `json:"name"`
	Algorithm string          `json:"algorithm"`
	Quantum   int64           `json:"quantum"`
	Processes []GoldenProcess `json:"processes"`
	Expected  GoldenSchedule  `json:"expected"`
}

// GoldenProcess holds the static inputs of a process.
type GoldenProcess struct {
	ID       string `json:"id"`
	Arrival  int64  `json:"arrival"`
	Burst    int64  `json:"burst"`
	Priority int64  `json:"priority"`
}

// GoldenSchedule holds the expected outputs of a run.
type GoldenSchedule struct {
	Start         map[string]int64 `json:"start"`
	End           map[string]int64 `json:"end"`
	Segments      int              `json:"segments"`
	AvgWaiting    float64          `json:"avg_waiting"`
	AvgTurnaround float64          `json:"avg_turnaround"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
