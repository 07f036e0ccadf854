// Aggregates per-run performance metrics: waiting/turnaround/response averages,
// throughput, CPU utilization and context switches.

package sim

import "fmt"

// Summary aggregates statistics about a finished run for final reporting.
type Summary struct {
	Algorithm       string  `json:"algorithm"`
	RunID           string  `json:"run_id"`
	Aging           bool    `json:"aging"`
	Processes       int     `json:"processes"`
	Makespan        int64   `json:"makespan"`
	BusyTime        int64   `json:"busy_time"`
	IdleTime        int64   `json:"idle_time"`
	AvgWaiting      float64 `json:"avg_waiting"`
	P90Waiting      float64 `json:"p90_waiting"`
	MaxWaiting      int64   `json:"max_waiting"`
	AvgTurnaround   float64 `json:"avg_turnaround"`
	AvgResponse     float64 `json:"avg_response"` // first dispatch - arrival
	Throughput      float64 `json:"throughput"`   // processes per tick
	Utilization     float64 `json:"utilization"`  // busy / makespan
	ContextSwitches int     `json:"context_switches"`
	AgingEvents     int     `json:"aging_events"`
}

// Summary computes the run summary. Only meaningful after Run returns.
func (s *Scheduler) Summary() Summary {
	sum := Summary{
		Algorithm:       s.Algorithm,
		RunID:           s.RunID,
		Aging:           s.AgingEnabled,
		Processes:       len(s.Processes),
		Makespan:        s.Log.Makespan(),
		BusyTime:        s.Log.BusyTime(),
		ContextSwitches: s.Log.ContextSwitches(),
		AgingEvents:     s.Trace.Len(),
	}
	sum.IdleTime = sum.Makespan - sum.BusyTime
	if len(s.Processes) == 0 {
		return sum
	}

	waits := make([]int64, len(s.Processes))
	turnarounds := make([]int64, len(s.Processes))
	responses := make([]int64, 0, len(s.Processes))
	for i, p := range s.Processes {
		waits[i] = p.WaitingTime
		turnarounds[i] = p.TurnaroundTime
		if p.WaitingTime > sum.MaxWaiting {
			sum.MaxWaiting = p.WaitingTime
		}
		if p.StartTime >= 0 {
			responses = append(responses, p.StartTime-p.ArrivalTime)
		}
	}
	sum.AvgWaiting = CalculateMean(waits)
	sum.P90Waiting = CalculatePercentile(waits, 90)
	sum.AvgTurnaround = CalculateMean(turnarounds)
	sum.AvgResponse = CalculateMean(responses)
	if sum.Makespan > 0 {
		sum.Throughput = float64(len(s.Processes)) / float64(sum.Makespan)
		sum.Utilization = float64(sum.BusyTime) / float64(sum.Makespan)
	}
	return sum
}

// String renders the summary in the same aligned style as the CLI output.
func (sum Summary) String() string {
	return fmt.Sprintf(
		"=== %s (%s) ===\n"+
			"Processes            : %d\n"+
			"Makespan             : %d ticks\n"+
			"CPU Utilization      : %.2f%%\n"+
			"Average Waiting      : %.2f ticks\n"+
			"P90 Waiting          : %.2f ticks\n"+
			"Max Waiting          : %d ticks\n"+
			"Average Turnaround   : %.2f ticks\n"+
			"Average Response     : %.2f ticks\n"+
			"Throughput           : %.3f processes/tick\n"+
			"Context Switches     : %d\n"+
			"Aging Events         : %d\n",
		DisplayName(sum.Algorithm), sum.RunID, sum.Processes, sum.Makespan, sum.Utilization*100,
		sum.AvgWaiting, sum.P90Waiting, sum.MaxWaiting, sum.AvgTurnaround, sum.AvgResponse,
		sum.Throughput, sum.ContextSwitches, sum.AgingEvents)
}
