package sim

import "fmt"

// RoundRobin dispatches the ready queue head for at most Quantum ticks, then
// re-enqueues it at the tail if unfinished.
//
// Processes that arrive during a slice are admitted before the preempted
// process is re-enqueued, so they run ahead of it. With Aging set, every
// dispatch first recomputes effective priorities
// (OriginalPriority + (wait/Interval)*Step) and stable-sorts the queue by
// them, descending: dispatch becomes priority-ordered, FIFO among equals.
type RoundRobin struct {
	Quantum int64
	Aging   *AgingConfig
}

func (a RoundRobin) Name() string { return AlgorithmRoundRobin }

func (a RoundRobin) AgingConfig() *AgingConfig { return a.Aging }

func (a RoundRobin) schedule(s *Scheduler) {
	if a.Quantum < 1 {
		panic(fmt.Sprintf("RoundRobin: quantum must be >= 1, got %d", a.Quantum))
	}
	arrivals := byArrivalTime(s.Processes)
	next := 0
	rq := &ReadyQueue{}
	admitUntil := func(clock int64) {
		for next < len(arrivals) && arrivals[next].ArrivalTime <= clock {
			rq.Enqueue(arrivals[next])
			next++
		}
	}

	admitUntil(s.Clock)
	for !s.done() {
		if rq.Len() == 0 {
			if next < len(arrivals) {
				s.Clock = arrivals[next].ArrivalTime
				admitUntil(s.Clock)
			} else {
				s.Clock++
			}
			continue
		}

		if a.Aging != nil {
			for _, p := range rq.Items() {
				s.agePriority(a.Aging, p, p.Executed())
			}
			rq.Reorder(byEffectivePriority)
		}

		p := rq.Dequeue()
		s.runFor(p, min(a.Quantum, p.RemainingTime))
		admitUntil(s.Clock)
		if p.RemainingTime > 0 {
			rq.Enqueue(p)
		} else {
			s.complete(p)
		}
	}
}
