package sim

import (
	"cmp"
	"slices"
)

// firstComeFirstServe runs processes to completion in arrival order.
// Ties keep input order (stable sort).
func (s *simulation) firstComeFirstServe() {
	order := make([]*Process, len(s.procs))
	for i := range s.procs {
		order[i] = &s.procs[i]
	}
	slices.SortStableFunc(order, func(a, b *Process) int {
		return cmp.Compare(a.ArrivalTime, b.ArrivalTime)
	})

	for i, p := range order {
		s.idleUntil(p.ArrivalTime)
		waiting := 0
		for _, q := range order[i+1:] {
			if q.ArrivalTime > s.clock {
				break
			}
			waiting++
		}
		s.dispatch(p, p.RemainingTime, waiting, "earliest arrival")
		s.complete(p)
	}
}
