package sim

// Slice is one contiguous period of CPU occupancy by a single process,
// covering ticks [Start, End).
type Slice struct {
	PID   string `json:"pid"`
	Start int64  `json:"start"`
	End   int64  `json:"end"`
}

// Duration returns End - Start.
func (sl Slice) Duration() int64 {
	return sl.End - sl.Start
}

// ExecutionLog is the chronological, non-overlapping sequence of slices
// produced by one simulation run.
type ExecutionLog []Slice

// Append adds a slice without merging.
func (l *ExecutionLog) Append(pid string, start, end int64) {
	*l = append(*l, Slice{PID: pid, Start: start, End: end})
}

// Extend adds a slice, merging it into the last one when that slice belongs
// to the same process and ends exactly at start.
// Used by the per-tick algorithms so a process running uninterrupted shows as one slice.
func (l *ExecutionLog) Extend(pid string, start, end int64) {
	if n := len(*l); n > 0 {
		last := &(*l)[n-1]
		if last.PID == pid && last.End == start {
			last.End = end
			return
		}
	}
	l.Append(pid, start, end)
}

// BusyTime returns the total number of ticks the CPU was occupied.
func (l ExecutionLog) BusyTime() int64 {
	var busy int64
	for _, sl := range l {
		busy += sl.Duration()
	}
	return busy
}

// Makespan returns the end tick of the last slice, or 0 for an empty log.
func (l ExecutionLog) Makespan() int64 {
	if len(l) == 0 {
		return 0
	}
	return l[len(l)-1].End
}

// ContextSwitches counts adjacent slices that belong to different processes.
func (l ExecutionLog) ContextSwitches() int {
	switches := 0
	for i := 1; i < len(l); i++ {
		if l[i].PID != l[i-1].PID {
			switches++
		}
	}
	return switches
}

// PIDs returns the pid of every slice in log order.
func (l ExecutionLog) PIDs() []string {
	ids := make([]string, len(l))
	for i, sl := range l {
		ids[i] = sl.PID
	}
	return ids
}
