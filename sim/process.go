// Defines the Process struct that models a single schedulable job in the simulation.
// Static inputs come from a ProcessSpec; run-state is owned by the Scheduler executing it.

package sim

import (
	"fmt"
	"math"
)

// ProcessSpec is the immutable input record for one process.
// Higher Priority values are more important throughout the simulator.
type ProcessSpec struct {
	PID         string `yaml:"pid" json:"pid"`
	PPID        string `yaml:"ppid" json:"ppid"`
	BurstTime   int64  `yaml:"burst_time" json:"burst_time"`
	ArrivalTime int64  `yaml:"arrival_time" json:"arrival_time"`
	Priority    int64  `yaml:"priority" json:"priority"`
}

// Validate checks the static input ranges of a single spec.
func (ps ProcessSpec) Validate() error {
	if ps.PID == "" {
		return fmt.Errorf("pid must not be empty")
	}
	if ps.BurstTime < 1 {
		return fmt.Errorf("process %s: burst_time must be >= 1, got %d", ps.PID, ps.BurstTime)
	}
	if ps.ArrivalTime < 0 {
		return fmt.Errorf("process %s: arrival_time must be >= 0, got %d", ps.PID, ps.ArrivalTime)
	}
	if ps.Priority < 1 {
		return fmt.Errorf("process %s: priority must be >= 1, got %d", ps.PID, ps.Priority)
	}
	return nil
}

// ValidateSet validates every spec and rejects duplicate PIDs.
func ValidateSet(specs []ProcessSpec) error {
	seen := make(map[string]bool, len(specs))
	for i, ps := range specs {
		if err := ps.Validate(); err != nil {
			return fmt.Errorf("processes[%d]: %w", i, err)
		}
		if seen[ps.PID] {
			return fmt.Errorf("processes[%d]: duplicate pid %q", i, ps.PID)
		}
		seen[ps.PID] = true
	}
	return nil
}

// Horizon bounds the clock at which a run over specs finishes: the latest
// arrival plus the total burst. Saturates at math.MaxInt64. Specs must be valid.
func Horizon(specs []ProcessSpec) int64 {
	var total, latest int64
	for _, ps := range specs {
		total = addSaturating(total, ps.BurstTime)
		latest = max(latest, ps.ArrivalTime)
	}
	return addSaturating(total, latest)
}

func addSaturating(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

// NewProcess creates a fresh, independently owned Process in its arrival state.
// Each simulation run needs its own instances; never copy a Process that has been run.
func (ps ProcessSpec) NewProcess() *Process {
	p := &Process{
		PID:              ps.PID,
		PPID:             ps.PPID,
		BurstTime:        ps.BurstTime,
		ArrivalTime:      ps.ArrivalTime,
		OriginalPriority: ps.Priority,
	}
	p.reset()
	return p
}

// Process models one process's lifecycle in a single simulation run.
type Process struct {
	PID              string // Unique within a run
	PPID             string // Informational only
	BurstTime        int64  // Total CPU time required
	ArrivalTime      int64  // Tick at which the process becomes ready
	OriginalPriority int64  // Static priority; higher = more important

	// EffectivePriority is the aging-adjusted priority used by priority-family
	// orderings. Starts at OriginalPriority.
	EffectivePriority int64
	// EffectiveTime is the aging-adjusted burst (SJF) or remaining time (SRTF)
	// used by shortest-time orderings. Starts at BurstTime.
	EffectiveTime int64

	RemainingTime  int64 // Work left, in [0, BurstTime]
	StartTime      int64 // Tick of first dispatch, -1 until dispatched
	CompletionTime int64
	WaitingTime    int64 // TurnaroundTime - BurstTime
	TurnaroundTime int64 // CompletionTime - ArrivalTime
	Completed      bool
}

// reset restores the arrival state.
func (p *Process) reset() {
	p.EffectivePriority = p.OriginalPriority
	p.EffectiveTime = p.BurstTime
	p.RemainingTime = p.BurstTime
	p.StartTime = -1
	p.CompletionTime = 0
	p.WaitingTime = 0
	p.TurnaroundTime = 0
	p.Completed = false
}

// Executed returns the CPU time consumed so far.
func (p *Process) Executed() int64 {
	return p.BurstTime - p.RemainingTime
}

// arrived reports whether the process is ready at clock and still has work.
func (p *Process) arrived(clock int64) bool {
	return p.ArrivalTime <= clock && !p.Completed
}

// dispatch marks the first dispatch time.
func (p *Process) dispatch(clock int64) {
	if p.StartTime < 0 {
		p.StartTime = clock
	}
}

// finalize records completion at clock and derives turnaround and waiting times.
func (p *Process) finalize(clock int64) {
	p.RemainingTime = 0
	p.CompletionTime = clock
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
	p.Completed = true
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (PID: %s, Arrival: %d, Burst: %d, Remaining: %d, Priority: %d)",
		p.PID, p.ArrivalTime, p.BurstTime, p.RemainingTime, p.EffectivePriority)
}
