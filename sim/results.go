package sim

// Result is the flat, per-process row handed to tabular display and export.
type Result struct {
	PID              string `json:"pid"`
	PPID             string `json:"ppid"`
	BurstTime        int64  `json:"burst_time"`
	ArrivalTime      int64  `json:"arrival_time"`
	OriginalPriority int64  `json:"original_priority"`
	// FinalPriority is the effective priority at the end of the run; equal to
	// OriginalPriority unless a priority-family aging variant raised it.
	FinalPriority  int64 `json:"final_priority"`
	WaitingTime    int64 `json:"waiting_time"`
	TurnaroundTime int64 `json:"turnaround_time"`
	CompletionTime int64 `json:"completion_time"`
}

// ResultOf projects one process into a Result.
func ResultOf(p *Process) Result {
	return Result{
		PID:              p.PID,
		PPID:             p.PPID,
		BurstTime:        p.BurstTime,
		ArrivalTime:      p.ArrivalTime,
		OriginalPriority: p.OriginalPriority,
		FinalPriority:    p.EffectivePriority,
		WaitingTime:      p.WaitingTime,
		TurnaroundTime:   p.TurnaroundTime,
		CompletionTime:   p.CompletionTime,
	}
}

// Results projects every process, in insertion order.
func (s *Scheduler) Results() []Result {
	results := make([]Result, len(s.Processes))
	for i, p := range s.Processes {
		results[i] = ResultOf(p)
	}
	return results
}
