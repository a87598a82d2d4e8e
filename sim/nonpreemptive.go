package sim

// nonPreemptive is the shared control loop of SJN and Priority scheduling.
// Each iteration admits arrivals, then either runs the best ready process (under less)
// to completion or, with nothing ready, jumps the clock to the next arrival.
func (s *simulation) nonPreemptive(less func(a, b *Process) bool, reason string) {
	pending := s.pendingPool()
	ready := newProcessHeap(less)

	for pending.Len() > 0 || ready.Len() > 0 {
		s.admit(pending, ready.push)
		if ready.Len() == 0 {
			s.idleUntil(pending.peek().ArrivalTime)
			continue
		}
		p := ready.pop()
		s.dispatch(p, p.RemainingTime, ready.Len(), reason)
		s.complete(p)
	}
}
