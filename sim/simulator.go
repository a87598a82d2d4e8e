// Implements Run, the entry point of a scheduling replay, and the clock and
// bookkeeping shared by every policy.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim/trace"
)

// Schedule is the result of one run: every process with its output fields populated,
// in the caller's input order, plus the execution segments in time order.
type Schedule struct {
	Algorithm string    `json:"algorithm"`
	Quantum   int64     `json:"quantum,omitempty"`
	Processes []Process `json:"processes"`
	Segments  []Segment `json:"segments"`
}

// Makespan returns the completion time of the last process.
func (s *Schedule) Makespan() int64 {
	var end int64
	for _, p := range s.Processes {
		end = max(end, p.EndTime)
	}
	return end
}

// SegmentsFor returns the segments of one process, in time order.
func (s *Schedule) SegmentsFor(id string) []Segment {
	var out []Segment
	for _, seg := range s.Segments {
		if seg.ProcessID == id {
			out = append(out, seg)
		}
	}
	return out
}

// Averages returns the mean waiting and turnaround times of the scheduled processes.
func (s *Schedule) Averages() (waiting, turnaround float64, err error) {
	return CalculateAverages(s.Processes)
}

// Run replays processes under alg and returns the resulting Schedule.
// Input is validated before anything is copied; on error no Schedule is produced.
// The processes slice is never modified.
func Run(alg Algorithm, processes []Process) (*Schedule, error) {
	return RunTraced(alg, processes, nil)
}

// RunTraced is Run with decision recording into st. st may be nil.
func RunTraced(alg Algorithm, processes []Process, st *trace.SimulationTrace) (*Schedule, error) {
	if err := validateAlgorithm(alg); err != nil {
		return nil, err
	}
	if err := ValidateProcesses(processes); err != nil {
		return nil, err
	}

	s := newSimulation(processes, st)
	sched := &Schedule{Algorithm: alg.Name()}

	switch a := alg.(type) {
	case FCFS:
		s.firstComeFirstServe()
	case SJN:
		s.nonPreemptive(shortestBurstFirst, "shortest burst")
	case Priority:
		s.nonPreemptive(highestPriorityFirst, "highest priority")
	case RoundRobin:
		sched.Quantum = a.Quantum
		s.roundRobin(a.Quantum)
	default:
		panic(fmt.Sprintf("unhandled algorithm %T", alg))
	}

	sched.Processes = s.procs
	sched.Segments = s.segments
	logrus.Infof("%s: scheduled %d processes in %d segments, makespan=%d",
		sched.Algorithm, len(sched.Processes), len(sched.Segments), sched.Makespan())
	return sched, nil
}

// simulation holds the state of one run. It owns procs exclusively.
type simulation struct {
	clock    int64
	procs    []Process
	segments []Segment
	trace    *trace.SimulationTrace
}

func newSimulation(processes []Process, st *trace.SimulationTrace) *simulation {
	procs := make([]Process, len(processes))
	copy(procs, processes)
	for i := range procs {
		procs[i].reset(i)
	}
	return &simulation{
		procs:    procs,
		segments: make([]Segment, 0, len(procs)),
		trace:    st,
	}
}

// pendingPool returns every process ordered by arrival, ready to be admitted.
func (s *simulation) pendingPool() *processHeap {
	pending := newProcessHeap(arrivalOrder)
	for i := range s.procs {
		pending.push(&s.procs[i])
	}
	return pending
}

// admit moves every pending process with arrival_time <= clock into the ready pool,
// in arrival order.
func (s *simulation) admit(pending *processHeap, enqueue func(*Process)) {
	for pending.Len() > 0 && pending.peek().ArrivalTime <= s.clock {
		p := pending.pop()
		p.State = StateReady
		logrus.Debugf("[t=%d] %s arrived (arrival=%d)", s.clock, p.ID, p.ArrivalTime)
		enqueue(p)
	}
}

// idleUntil advances the clock to t with the CPU idle. The clock never moves backwards.
func (s *simulation) idleUntil(t int64) {
	if t <= s.clock {
		return
	}
	logrus.Debugf("[t=%d] CPU idle until %d", s.clock, t)
	if s.trace.Enabled() {
		s.trace.RecordIdle(trace.IdleRecord{From: s.clock, To: t})
	}
	s.clock = t
}

// dispatch gives p the CPU for slice time units. start_time is set on first dispatch only.
func (s *simulation) dispatch(p *Process, slice int64, readyDepth int, reason string) {
	if !p.Started {
		p.Started = true
		p.StartTime = s.clock
	}
	p.State = StateRunning
	logrus.Debugf("[t=%d] dispatch %s for %d (%s, %d ready)", s.clock, p.ID, slice, reason, readyDepth)
	if s.trace.Enabled() {
		s.trace.RecordDispatch(trace.DispatchRecord{
			ProcessID:  p.ID,
			Clock:      s.clock,
			ReadyDepth: readyDepth,
			Slice:      slice,
			Reason:     reason,
		})
	}
	s.segments = append(s.segments, Segment{ProcessID: p.ID, Start: s.clock, End: s.clock + slice})
	s.clock += slice
	p.RemainingTime -= slice
}

// complete finalizes p at the current clock.
func (s *simulation) complete(p *Process) {
	if p.RemainingTime != 0 {
		panic(fmt.Sprintf("complete: %s has %d time units remaining", p.ID, p.RemainingTime))
	}
	p.State = StateCompleted
	p.EndTime = s.clock
	p.TurnaroundTime = p.EndTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
	logrus.Debugf("[t=%d] %s completed (turnaround=%d, waiting=%d)", s.clock, p.ID, p.TurnaroundTime, p.WaitingTime)
}

// preempt returns p to the ready state after its slice expired.
func (s *simulation) preempt(p *Process) {
	p.State = StateReady
	logrus.Debugf("[t=%d] preempt %s (remaining=%d)", s.clock, p.ID, p.RemainingTime)
	if s.trace.Enabled() {
		s.trace.RecordPreemption(trace.PreemptRecord{ProcessID: p.ID, Clock: s.clock, Remaining: p.RemainingTime})
	}
}
