// Package trace provides aging-event recording for scheduling runs.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// ValueFamily names what an aging record's Old/New values measure.
type ValueFamily string

const (
	// FamilyPriority records carry effective priorities (higher = more important).
	FamilyPriority ValueFamily = "priority"
	// FamilyTime records carry effective burst or remaining times (lower = preferred).
	FamilyTime ValueFamily = "time"
)

// AgingRecord captures a single change of a process's effective scheduling value.
type AgingRecord struct {
	Time   int64       `json:"time"`
	PID    string      `json:"pid"`
	Family ValueFamily `json:"family"`
	Old    int64       `json:"old"`
	New    int64       `json:"new"`
	Waited int64       `json:"waited"` // wait duration at Time, excluding executed ticks
}

// Delta returns how far the effective value moved in the process's favour.
// Always non-negative for records produced by the simulator.
func (r AgingRecord) Delta() int64 {
	if r.Family == FamilyTime {
		return r.Old - r.New
	}
	return r.New - r.Old
}
