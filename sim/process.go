// Defines the Process record that a single simulation run schedules.
// Static inputs are set by the caller; output fields are written by exactly one run.

package sim

import "fmt"

// ProcessState represents the lifecycle state of a process within one run.
type ProcessState string

const (
	StatePending   ProcessState = "pending"   // not yet arrived
	StateReady     ProcessState = "ready"     // arrived, waiting for the CPU
	StateRunning   ProcessState = "running"   // holds the CPU
	StateCompleted ProcessState = "completed" // all burst time consumed
)

// Process models one schedulable unit of work.
type Process struct {
	ID          string `json:"process_id" yaml:"id"`        // Caller-assigned, opaque, unique within a set
	ArrivalTime int64  `json:"arrival_time" yaml:"arrival"` // Logical time the process becomes eligible
	BurstTime   int64  `json:"burst_time" yaml:"burst"`     // Total CPU time required
	Priority    int64  `json:"priority" yaml:"priority"`    // Lower value = higher priority

	State          ProcessState `json:"state" yaml:"-"`
	Started        bool         `json:"-" yaml:"-"` // Tracks whether StartTime has been set
	StartTime      int64        `json:"start_time" yaml:"-"`
	EndTime        int64        `json:"end_time" yaml:"-"`
	RemainingTime  int64        `json:"remaining_time" yaml:"-"`
	WaitingTime    int64        `json:"waiting_time" yaml:"-"`
	TurnaroundTime int64        `json:"turnaround_time" yaml:"-"`

	order int // position in the caller's input, the final tie-breaker
}

// NewProcess returns a Process with static inputs set and outputs zeroed.
func NewProcess(id string, arrival, burst, priority int64) Process {
	return Process{
		ID:            id,
		ArrivalTime:   arrival,
		BurstTime:     burst,
		Priority:      priority,
		State:         StatePending,
		RemainingTime: burst,
	}
}

// reset clears every computed field so a copied record starts a run from scratch.
func (p *Process) reset(order int) {
	p.State = StatePending
	p.Started = false
	p.StartTime = 0
	p.EndTime = 0
	p.RemainingTime = p.BurstTime
	p.WaitingTime = 0
	p.TurnaroundTime = 0
	p.order = order
}

// ResponseTime is the delay between arrival and first dispatch.
func (p Process) ResponseTime() int64 {
	return p.StartTime - p.ArrivalTime
}

func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %s, State: %s, ArrivalTime: %d, BurstTime: %d, RemainingTime: %d)",
		p.ID, p.State, p.ArrivalTime, p.BurstTime, p.RemainingTime)
}

// Segment is one contiguous interval during which a process held the CPU.
// Non-preemptive policies produce exactly one segment per process.
type Segment struct {
	ProcessID string `json:"process_id"`
	Start     int64  `json:"start"`
	End       int64  `json:"end"`
}

// Duration returns the length of the segment in time units.
func (s Segment) Duration() int64 {
	return s.End - s.Start
}
