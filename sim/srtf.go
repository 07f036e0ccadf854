package sim

// SRTF is Shortest Remaining Time First, the preemptive form of SJF.
//
// Every tick the arrived process with the least remaining time runs for one
// tick; ties go to the earliest in insertion order. With Aging set, the key is
// the effective remaining time max(0, RemainingTime - (wait/Interval)*Step),
// where wait excludes ticks already executed. The aging trace compares against
// the previous tick's effective value, which starts at the unaged burst time.
type SRTF struct {
	Aging *AgingConfig
}

func (a SRTF) Name() string { return AlgorithmSRTF }

func (a SRTF) AgingConfig() *AgingConfig { return a.Aging }

func (a SRTF) schedule(s *Scheduler) {
	s.runPreemptive(func(candidates []*Process) *Process {
		if a.Aging == nil {
			return firstMin(candidates, func(p *Process) int64 { return p.RemainingTime })
		}
		for _, p := range candidates {
			s.ageTime(a.Aging, p, p.RemainingTime, p.Executed())
		}
		return firstMin(candidates, func(p *Process) int64 { return p.EffectiveTime })
	})
}

// firstMin returns the first process with the smallest key. ps must be non-empty.
func firstMin(ps []*Process, key func(*Process) int64) *Process {
	best := ps[0]
	bestKey := key(best)
	for _, p := range ps[1:] {
		if k := key(p); k < bestKey {
			best, bestKey = p, k
		}
	}
	return best
}
