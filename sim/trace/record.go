// Package trace provides decision-trace recording for scheduling runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// DispatchRecord captures a single decision to give a process the CPU.
type DispatchRecord struct {
	ProcessID  string
	Clock      int64
	ReadyDepth int    // processes still waiting after this one was picked
	Slice      int64  // time granted for this dispatch
	Reason     string // policy rule that selected the process
}

// PreemptRecord captures a process losing the CPU before completion.
type PreemptRecord struct {
	ProcessID string
	Clock     int64
	Remaining int64
}

// IdleRecord captures an interval during which the ready queue was empty.
type IdleRecord struct {
	From int64
	To   int64
}

// Duration returns the idle interval length.
func (r IdleRecord) Duration() int64 {
	return r.To - r.From
}
