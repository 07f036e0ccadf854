package trace

// AgingTrace collects aging records during a single scheduling run.
// The log is diagnostic only: nothing in the simulator reads it back.
type AgingTrace struct {
	Records []AgingRecord
}

// NewAgingTrace creates an AgingTrace ready for recording.
func NewAgingTrace() *AgingTrace {
	return &AgingTrace{
		Records: make([]AgingRecord, 0),
	}
}

// Record appends an aging record.
func (at *AgingTrace) Record(record AgingRecord) {
	at.Records = append(at.Records, record)
}

// Len returns the number of recorded events.
func (at *AgingTrace) Len() int {
	return len(at.Records)
}

// Reset drops all records.
func (at *AgingTrace) Reset() {
	at.Records = make([]AgingRecord, 0)
}

// ForPID returns the records of one process in recording order.
func (at *AgingTrace) ForPID(pid string) []AgingRecord {
	var out []AgingRecord
	for _, r := range at.Records {
		if r.PID == pid {
			out = append(out, r)
		}
	}
	return out
}
