package sim

import "sort"

// FCFS runs processes to completion in arrival order.
// Non-preemptive, no priority, no aging. Ties keep insertion order.
type FCFS struct{}

func (FCFS) Name() string { return AlgorithmFCFS }

func (FCFS) AgingConfig() *AgingConfig { return nil }

func (FCFS) schedule(s *Scheduler) {
	for _, p := range byArrivalTime(s.Processes) {
		if s.Clock < p.ArrivalTime {
			s.Clock = p.ArrivalTime
		}
		s.runToCompletion(p)
	}
}

// byArrivalTime returns a copy of ps sorted by arrival, stable on ties.
func byArrivalTime(ps []*Process) []*Process {
	sorted := make([]*Process, len(ps))
	copy(sorted, ps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ArrivalTime < sorted[j].ArrivalTime
	})
	return sorted
}
