package trace

// TraceSummary aggregates statistics from an AgingTrace.
type TraceSummary struct {
	TotalEvents      int
	AgedProcesses    int
	MaxWaited        int64
	MaxDelta         int64
	EventsPerProcess map[string]int // pid → number of aging changes
}

// Summarize computes aggregate statistics from an AgingTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(at *AgingTrace) *TraceSummary {
	summary := &TraceSummary{
		EventsPerProcess: make(map[string]int),
	}
	if at == nil {
		return summary
	}

	summary.TotalEvents = len(at.Records)
	for _, r := range at.Records {
		summary.EventsPerProcess[r.PID]++
		if r.Waited > summary.MaxWaited {
			summary.MaxWaited = r.Waited
		}
		if d := r.Delta(); d > summary.MaxDelta {
			summary.MaxDelta = d
		}
	}
	summary.AgedProcesses = len(summary.EventsPerProcess)

	return summary
}
