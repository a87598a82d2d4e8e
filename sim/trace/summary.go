package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDispatches      int            `json:"total_dispatches"`
	Preemptions          int            `json:"preemptions"`
	IdlePeriods          int            `json:"idle_periods"`
	IdleTime             int64          `json:"idle_time"`
	MaxReadyDepth        int            `json:"max_ready_depth"`
	DispatchesPerProcess map[string]int `json:"dispatches_per_process"` // process ID → number of times it was given the CPU
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		DispatchesPerProcess: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalDispatches = len(st.Dispatches)
	for _, d := range st.Dispatches {
		summary.DispatchesPerProcess[d.ProcessID]++
		if d.ReadyDepth > summary.MaxReadyDepth {
			summary.MaxReadyDepth = d.ReadyDepth
		}
	}

	summary.Preemptions = len(st.Preemptions)
	summary.IdlePeriods = len(st.Idles)
	for _, idle := range st.Idles {
		summary.IdleTime += idle.Duration()
	}

	return summary
}
