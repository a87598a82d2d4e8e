package sim

import (
	"cmp"
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/schedsim/schedsim/sim/internal/testutil"
)

// classicProcesses is the four-process reference set: P1(0,8,2) P2(1,4,1) P3(2,9,3) P4(3,5,2).
func classicProcesses() []Process {
	return []Process{
		NewProcess("P1", 0, 8, 2),
		NewProcess("P2", 1, 4, 1),
		NewProcess("P3", 2, 9, 3),
		NewProcess("P4", 3, 5, 2),
	}
}

func fromGolden(gps []testutil.GoldenProcess) []Process {
	procs := make([]Process, len(gps))
	for i, gp := range gps {
		procs[i] = NewProcess(gp.ID, gp.Arrival, gp.Burst, gp.Priority)
	}
	return procs
}

// randomProcesses builds a deterministic pseudo-random process set.
func randomProcesses(seed int64, n int) []Process {
	rng := rand.New(rand.NewSource(seed))
	procs := make([]Process, n)
	for i := range procs {
		procs[i] = NewProcess(fmt.Sprintf("p%d", i), rng.Int63n(40), 1+rng.Int63n(12), rng.Int63n(4))
	}
	return procs
}

func processByID(t *testing.T, s *Schedule, id string) Process {
	t.Helper()
	for _, p := range s.Processes {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("process %q not in schedule", id)
	return Process{}
}

// assertScheduleInvariants checks the per-process and single-CPU invariants every
// completed run must satisfy.
func assertScheduleInvariants(t *testing.T, input []Process, s *Schedule, quantum int64) {
	t.Helper()

	if len(s.Processes) != len(input) {
		t.Fatalf("schedule has %d processes, input has %d", len(s.Processes), len(input))
	}

	executed := make(map[string]int64)
	for _, seg := range s.Segments {
		if seg.Duration() <= 0 {
			t.Errorf("segment %+v has non-positive length", seg)
		}
		if quantum > 0 && seg.Duration() > quantum {
			t.Errorf("segment %+v exceeds quantum %d", seg, quantum)
		}
		executed[seg.ProcessID] += seg.Duration()
	}

	for i, p := range s.Processes {
		if p.ID != input[i].ID {
			t.Errorf("process[%d]: got %s, want input order %s", i, p.ID, input[i].ID)
		}
		if p.State != StateCompleted {
			t.Errorf("%s: state %q, want completed", p.ID, p.State)
		}
		if p.StartTime < p.ArrivalTime {
			t.Errorf("%s: start %d before arrival %d", p.ID, p.StartTime, p.ArrivalTime)
		}
		if p.EndTime < p.StartTime {
			t.Errorf("%s: end %d before start %d", p.ID, p.EndTime, p.StartTime)
		}
		if p.TurnaroundTime != p.EndTime-p.ArrivalTime {
			t.Errorf("%s: turnaround %d != end-arrival %d", p.ID, p.TurnaroundTime, p.EndTime-p.ArrivalTime)
		}
		if p.WaitingTime != p.TurnaroundTime-p.BurstTime {
			t.Errorf("%s: waiting %d != turnaround-burst %d", p.ID, p.WaitingTime, p.TurnaroundTime-p.BurstTime)
		}
		if p.WaitingTime < 0 {
			t.Errorf("%s: negative waiting time %d", p.ID, p.WaitingTime)
		}
		if p.RemainingTime != 0 {
			t.Errorf("%s: remaining %d after completion", p.ID, p.RemainingTime)
		}
		if executed[p.ID] != p.BurstTime {
			t.Errorf("%s: executed %d, burst %d", p.ID, executed[p.ID], p.BurstTime)
		}
		segs := s.SegmentsFor(p.ID)
		if len(segs) == 0 {
			t.Errorf("%s: no segments", p.ID)
			continue
		}
		if segs[0].Start != p.StartTime {
			t.Errorf("%s: first segment starts at %d, start_time %d", p.ID, segs[0].Start, p.StartTime)
		}
		if segs[len(segs)-1].End != p.EndTime {
			t.Errorf("%s: last segment ends at %d, end_time %d", p.ID, segs[len(segs)-1].End, p.EndTime)
		}
	}

	sorted := slices.SortedFunc(slices.Values(s.Segments), func(a, b Segment) int { return cmp.Compare(a.Start, b.Start) })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start < sorted[i-1].End {
			t.Errorf("segments overlap: %+v and %+v", sorted[i-1], sorted[i])
		}
	}
}
