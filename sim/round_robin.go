package sim

// roundRobin replays preemptive Round Robin with a fixed quantum.
//
// When a slice expires, processes that arrived by the end of that slice are enqueued
// before the preempted process, so a new arrival wins a tie with the process it
// interrupted.
func (s *simulation) roundRobin(quantum int64) {
	pending := s.pendingPool()
	ready := &ReadyQueue{}
	s.admit(pending, ready.Enqueue)

	for ready.Len() > 0 || pending.Len() > 0 {
		if ready.Len() == 0 {
			s.idleUntil(pending.peek().ArrivalTime)
			s.admit(pending, ready.Enqueue)
		}

		p := ready.Dequeue()
		slice := min(p.RemainingTime, quantum)
		s.dispatch(p, slice, ready.Len(), "head of ready queue")

		if p.RemainingTime == 0 {
			s.complete(p)
			continue
		}
		s.admit(pending, ready.Enqueue)
		s.preempt(p)
		ready.Enqueue(p)
	}
}
