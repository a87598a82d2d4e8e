// Aggregates per-process results of a finished run into averages and CPU-level
// statistics for reporting.

package sim

import (
	"fmt"
)

// CalculateAverages returns the arithmetic mean of waiting_time and turnaround_time.
// An empty process set is rejected with ErrInvalidInput. Every process must have
// completed a run; passing an unscheduled record is a programming error and panics.
func CalculateAverages(processes []Process) (waiting, turnaround float64, err error) {
	if len(processes) == 0 {
		return 0, 0, fmt.Errorf("%w: cannot average an empty process set", ErrInvalidInput)
	}
	waits := make([]int64, len(processes))
	turnarounds := make([]int64, len(processes))
	for i, p := range processes {
		mustBeCompleted(p)
		waits[i] = p.WaitingTime
		turnarounds[i] = p.TurnaroundTime
	}
	return CalculateMean(waits), CalculateMean(turnarounds), nil
}

func mustBeCompleted(p Process) {
	if p.State != StateCompleted {
		panic(fmt.Sprintf("process %q has not been scheduled (state %q)", p.ID, p.State))
	}
}

// Metrics aggregates statistics about a finished run for final reporting.
type Metrics struct {
	Algorithm          string  `json:"algorithm"`
	CompletedProcesses int     `json:"completed_processes"`
	AvgWaitingTime     float64 `json:"avg_waiting_time"`
	AvgTurnaroundTime  float64 `json:"avg_turnaround_time"`
	P50WaitingTime     float64 `json:"p50_waiting_time"`
	P95WaitingTime     float64 `json:"p95_waiting_time"`
	MaxWaitingTime     int64   `json:"max_waiting_time"`
	AvgResponseTime    float64 `json:"avg_response_time"` // first dispatch - arrival
	Makespan           int64   `json:"makespan"`          // completion time of the last process
	BusyTime           int64   `json:"busy_time"`         // sum of segment durations
	IdleTime           int64   `json:"idle_time"`         // makespan - busy time
	CPUUtilization     float64 `json:"cpu_utilization"`   // busy / makespan
	Throughput         float64 `json:"throughput"`        // processes per time unit
	ContextSwitches    int     `json:"context_switches"`  // CPU hand-overs between different processes
}

// NewMetrics computes Metrics for a finished Schedule.
func NewMetrics(s *Schedule) (*Metrics, error) {
	avgWaiting, avgTurnaround, err := s.Averages()
	if err != nil {
		return nil, err
	}

	m := &Metrics{
		Algorithm:          s.Algorithm,
		CompletedProcesses: len(s.Processes),
		AvgWaitingTime:     avgWaiting,
		AvgTurnaroundTime:  avgTurnaround,
		Makespan:           s.Makespan(),
	}

	responses := make([]int64, len(s.Processes))
	waits := make([]int64, len(s.Processes))
	for i, p := range s.Processes {
		responses[i] = p.ResponseTime()
		waits[i] = p.WaitingTime
	}
	m.AvgResponseTime = CalculateMean(responses)
	waits = sortedInt64s(waits)
	m.P50WaitingTime = CalculatePercentile(waits, 50)
	m.P95WaitingTime = CalculatePercentile(waits, 95)
	m.MaxWaitingTime = waits[len(waits)-1]

	for i, seg := range s.Segments {
		m.BusyTime += seg.Duration()
		if i > 0 && s.Segments[i-1].ProcessID != seg.ProcessID {
			m.ContextSwitches++
		}
	}
	m.IdleTime = m.Makespan - m.BusyTime
	if m.Makespan > 0 {
		m.CPUUtilization = float64(m.BusyTime) / float64(m.Makespan)
		m.Throughput = float64(m.CompletedProcesses) / float64(m.Makespan)
	}
	return m, nil
}

func (m *Metrics) String() string {
	return fmt.Sprintf("%s: avg waiting %.2f, avg turnaround %.2f", m.Algorithm, m.AvgWaitingTime, m.AvgTurnaroundTime)
}
