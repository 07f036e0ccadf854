package sim

// SJF is non-preemptive Shortest Job First.
//
// At each decision point the ready queue is sorted ascending by burst time and
// the head runs to completion. With Aging set, the sort key is the effective
// burst time max(0, BurstTime - (wait/Interval)*Step), so long jobs eventually
// look short enough to be picked.
// Warning: without aging SJF can starve long jobs under a steady stream of short ones.
type SJF struct {
	Aging *AgingConfig
}

func (a SJF) Name() string { return AlgorithmSJF }

func (a SJF) AgingConfig() *AgingConfig { return a.Aging }

func (a SJF) schedule(s *Scheduler) {
	s.runNonPreemptive(func(rq *ReadyQueue) {
		if a.Aging == nil {
			rq.Reorder(byBurstTime)
			return
		}
		for _, p := range rq.Items() {
			s.ageTime(a.Aging, p, p.BurstTime, 0)
		}
		rq.Reorder(byEffectiveTime)
	})
}
