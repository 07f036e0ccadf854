package sim

// PriorityPreemptive runs, every tick, the arrived process with the highest
// effective priority (higher value = more important). Ties go to the earliest
// arrival, then to insertion order.
//
// With Aging set, each candidate's effective priority is recomputed every tick
// as OriginalPriority + (wait/Interval)*Step, where wait excludes the ticks the
// process has already executed. A nil Aging keeps static priorities.
type PriorityPreemptive struct {
	Aging *AgingConfig
}

func (a PriorityPreemptive) Name() string { return AlgorithmPriorityPreemptive }

func (a PriorityPreemptive) AgingConfig() *AgingConfig { return a.Aging }

func (a PriorityPreemptive) schedule(s *Scheduler) {
	s.runPreemptive(func(candidates []*Process) *Process {
		if a.Aging != nil {
			for _, p := range candidates {
				s.agePriority(a.Aging, p, p.Executed())
			}
		}
		best := candidates[0]
		for _, p := range candidates[1:] {
			if p.EffectivePriority > best.EffectivePriority ||
				(p.EffectivePriority == best.EffectivePriority && p.ArrivalTime < best.ArrivalTime) {
				best = p
			}
		}
		return best
	})
}

// PriorityNonPreemptive dispatches the highest-priority ready process and runs
// it to completion. The ready queue is stable-sorted descending, so equal
// priorities keep queue order.
//
// With Aging set, queued processes' effective priorities are recomputed at each
// decision point as OriginalPriority + ((clock-arrival)/Interval)*Step; a
// low-priority process stuck behind a stream of high-priority arrivals
// eventually overtakes them.
type PriorityNonPreemptive struct {
	Aging *AgingConfig
}

func (a PriorityNonPreemptive) Name() string { return AlgorithmPriorityNonPreemptive }

func (a PriorityNonPreemptive) AgingConfig() *AgingConfig { return a.Aging }

func (a PriorityNonPreemptive) schedule(s *Scheduler) {
	s.runNonPreemptive(func(rq *ReadyQueue) {
		if a.Aging == nil {
			rq.Reorder(byOriginalPriority)
			return
		}
		for _, p := range rq.Items() {
			s.agePriority(a.Aging, p, 0)
		}
		rq.Reorder(byEffectivePriority)
	})
}
