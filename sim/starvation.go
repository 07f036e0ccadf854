package sim

import "fmt"

// StarvationRecord describes one process whose waiting time exceeded the threshold.
type StarvationRecord struct {
	PID         string `json:"pid"`
	WaitingTime int64  `json:"waiting_time"`
	Threshold   int64  `json:"threshold"`
	// BlockedBy counts processes in the whole set with a strictly greater
	// original priority. An estimate of who was preferred, not a causal proof.
	BlockedBy int    `json:"blocked_by"`
	Reason    string `json:"reason"`
}

// DetectStarvation flags every process whose finalized WaitingTime strictly
// exceeds threshold. Records follow the order of processes. Returns an empty,
// non-nil slice when nothing is starved.
// Only meaningful after a run has completed.
func DetectStarvation(processes []*Process, threshold int64) []StarvationRecord {
	records := make([]StarvationRecord, 0)
	for _, p := range processes {
		if p.WaitingTime <= threshold {
			continue
		}
		blockedBy := 0
		for _, other := range processes {
			if other.OriginalPriority > p.OriginalPriority {
				blockedBy++
			}
		}
		reason := fmt.Sprintf("Waited %d units, exceeding threshold %d.", p.WaitingTime, threshold)
		if blockedBy > 0 {
			reason += fmt.Sprintf(" Likely starved by %d higher priority processes.", blockedBy)
		}
		records = append(records, StarvationRecord{
			PID:         p.PID,
			WaitingTime: p.WaitingTime,
			Threshold:   threshold,
			BlockedBy:   blockedBy,
			Reason:      reason,
		})
	}
	return records
}

// DetectStarvation runs the starvation detector over the scheduler's processes.
func (s *Scheduler) DetectStarvation(threshold int64) []StarvationRecord {
	return DetectStarvation(s.Processes, threshold)
}
