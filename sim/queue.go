// Implements the ReadyQueue, which holds arrived processes waiting for the CPU.
// Processes are enqueued on admission and dequeued from the head on dispatch.

package sim

import (
	"fmt"
	"sort"
	"strings"
)

// ReadyQueue represents a FIFO queue of processes waiting to be dispatched.
// Algorithms that order by priority or burst reorder it in place with stable
// sorts, so insertion order is the tie-break.
type ReadyQueue struct {
	queue []*Process
}

// Enqueue adds a process to the back of the ready queue.
func (rq *ReadyQueue) Enqueue(p *Process) {
	if p == nil {
		panic("Enqueue: p must not be nil")
	}
	rq.queue = append(rq.queue, p)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range rq.queue {
		sb.WriteString(p.PID)
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of processes in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Contains reports whether p is currently queued.
func (rq *ReadyQueue) Contains(p *Process) bool {
	for _, q := range rq.queue {
		if q == p {
			return true
		}
	}
	return false
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers may iterate
// over it and mutate the processes, but MUST NOT append to or reslice it.
func (rq *ReadyQueue) Items() []*Process {
	return rq.queue
}

// Reorder applies fn to the queue contents, allowing in-place reordering.
// fn MUST NOT change the slice length (no append/delete).
func (rq *ReadyQueue) Reorder(fn func([]*Process)) {
	if fn == nil {
		panic("Reorder: fn must not be nil")
	}
	n := len(rq.queue)
	fn(rq.queue)
	if len(rq.queue) != n {
		panic(fmt.Sprintf("Reorder: fn changed queue length from %d to %d", n, len(rq.queue)))
	}
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	p := rq.queue[0]
	rq.queue = rq.queue[1:]
	return p
}

// byBurstTime orders shortest static burst first.
func byBurstTime(ps []*Process) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].BurstTime < ps[j].BurstTime
	})
}

// byEffectiveTime orders shortest aged burst first.
func byEffectiveTime(ps []*Process) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].EffectiveTime < ps[j].EffectiveTime
	})
}

// byOriginalPriority orders highest static priority first.
func byOriginalPriority(ps []*Process) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].OriginalPriority > ps[j].OriginalPriority
	})
}

// byEffectivePriority orders highest aged priority first.
func byEffectivePriority(ps []*Process) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].EffectivePriority > ps[j].EffectivePriority
	})
}
