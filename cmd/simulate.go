package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/report"
	"github.com/schedsim/schedsim/sim/trace"
)

// Result is the machine-readable outcome of one run, shared by `run --output json`
// and the HTTP API.
type Result struct {
	Schedule *sim.Schedule       `json:"schedule"`
	Metrics  *sim.Metrics        `json:"metrics"`
	Trace    *trace.TraceSummary `json:"trace,omitempty"`
}

// Output formats accepted by --output.
const (
	outputTable = "table"
	outputJSON  = "json"
)

var validOutputFormats = map[string]bool{
	outputTable: true,
	outputJSON:  true,
}

// simulate runs alg over procs and derives metrics, recording a trace summary when
// level asks for one.
func simulate(alg sim.Algorithm, procs []sim.Process, level trace.TraceLevel) (*Result, error) {
	st := trace.NewSimulationTrace(trace.TraceConfig{Level: level})
	sched, err := sim.RunTraced(alg, procs, st)
	if err != nil {
		return nil, err
	}
	m, err := sim.NewMetrics(sched)
	if err != nil {
		return nil, err
	}
	res := &Result{Schedule: sched, Metrics: m}
	if st.Enabled() {
		res.Trace = trace.Summarize(st)
	}
	return res, nil
}

// compareAlgorithms runs every policy over the same input concurrently. Run never
// writes to procs, so the goroutines share it safely.
func compareAlgorithms(procs []sim.Process, quantum int64) ([]*sim.Metrics, error) {
	algs, err := sim.AllAlgorithms(quantum)
	if err != nil {
		return nil, err
	}

	metrics := make([]*sim.Metrics, len(algs))
	errs := make([]error, len(algs))
	var wg sync.WaitGroup
	for i, alg := range algs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := simulate(alg, procs, trace.TraceLevelNone)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", alg.Name(), err)
				return
			}
			metrics[i] = res.Metrics
		}()
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return metrics, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeResult(w io.Writer, format string, res *Result) error {
	switch format {
	case outputJSON:
		return writeJSON(w, res)
	case outputTable:
		report.Write(w, res.Schedule.Algorithm, res.Schedule, res.Metrics)
		if res.Trace != nil {
			_, _ = fmt.Fprintf(w, "Trace: %d dispatches, %d preemptions, %d idle periods (%d units), max ready depth %d\n",
				res.Trace.TotalDispatches, res.Trace.Preemptions, res.Trace.IdlePeriods, res.Trace.IdleTime, res.Trace.MaxReadyDepth)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q; valid: %s, %s", format, outputTable, outputJSON)
	}
}
