// Implements the queues a run moves processes through: the FIFO ReadyQueue used by
// Round Robin, and the ordered processHeap used for the pending pool and for the
// non-preemptive ready pools.

package sim

import (
	"container/heap"
	"fmt"
	"strings"
)

// ReadyQueue is a FIFO queue of processes that have arrived and await the CPU.
type ReadyQueue struct {
	queue []*Process
}

// Enqueue adds a process to the back of the ready queue.
func (rq *ReadyQueue) Enqueue(p *Process) {
	if p == nil {
		panic("Enqueue: process must not be nil")
	}
	p.State = StateReady
	rq.queue = append(rq.queue, p)
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	p := rq.queue[0]
	rq.queue[0] = nil
	rq.queue = rq.queue[1:]
	return p
}

// Peek returns the process at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Len returns the number of processes in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// IDs returns the process IDs in queue order.
func (rq *ReadyQueue) IDs() []string {
	ids := make([]string, len(rq.queue))
	for i, p := range rq.queue {
		ids[i] = p.ID
	}
	return ids
}

func (rq *ReadyQueue) String() string {
	return "[" + strings.Join(rq.IDs(), " ") + "]"
}

// processHeap is a priority queue of processes under a caller-supplied ordering.
// The ordering must be total (end in the input-order tie-breaker) so that pops are
// deterministic regardless of heap layout.
type processHeap struct {
	items []*Process
	less  func(a, b *Process) bool
}

func newProcessHeap(less func(a, b *Process) bool) *processHeap {
	if less == nil {
		panic("newProcessHeap: less must not be nil")
	}
	h := &processHeap{items: make([]*Process, 0), less: less}
	heap.Init(h)
	return h
}

// Len implements heap.Interface
func (h *processHeap) Len() int { return len(h.items) }

// Less implements heap.Interface
func (h *processHeap) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }

// Swap implements heap.Interface
func (h *processHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push implements heap.Interface
func (h *processHeap) Push(x interface{}) {
	h.items = append(h.items, x.(*Process))
}

// Pop implements heap.Interface
func (h *processHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	h.items = old[0 : n-1]
	return item
}

func (h *processHeap) push(p *Process) {
	heap.Push(h, p)
}

func (h *processHeap) pop() *Process {
	if h.Len() == 0 {
		return nil
	}
	return heap.Pop(h).(*Process)
}

func (h *processHeap) peek() *Process {
	if h.Len() == 0 {
		return nil
	}
	return h.items[0]
}

func (h *processHeap) String() string {
	return fmt.Sprintf("processHeap(len=%d)", h.Len())
}

// arrivalOrder sorts by arrival time, then by input position.
func arrivalOrder(a, b *Process) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.order < b.order
}

// shortestBurstFirst sorts by burst time, then arrival time, then input position.
func shortestBurstFirst(a, b *Process) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	return arrivalOrder(a, b)
}

// highestPriorityFirst sorts by priority value (lower first), then arrival time,
// then input position.
func highestPriorityFirst(a, b *Process) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return arrivalOrder(a, b)
}
