package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_Results_InsertionOrder(t *testing.T) {
	// GIVEN processes inserted in an order different from completion order
	s := NewScheduler([]ProcessSpec{
		{PID: "P3", PPID: "1", BurstTime: 4, ArrivalTime: 2, Priority: 2},
		{PID: "P1", PPID: "1", BurstTime: 2, ArrivalTime: 0, Priority: 5},
	})

	// WHEN the run completes
	s.Run(PriorityNonPreemptive{})
	results := s.Results()

	// THEN results keep insertion order and carry every field
	assert.Equal(t, []Result{
		{PID: "P3", PPID: "1", BurstTime: 4, ArrivalTime: 2, OriginalPriority: 2, FinalPriority: 2, WaitingTime: 0, TurnaroundTime: 4, CompletionTime: 6},
		{PID: "P1", PPID: "1", BurstTime: 2, ArrivalTime: 0, OriginalPriority: 5, FinalPriority: 5, WaitingTime: 0, TurnaroundTime: 2, CompletionTime: 2},
	}, results)
}

func TestResultOf_FinalPriorityReflectsAging(t *testing.T) {
	s := NewScheduler(starvationSpecs())
	s.Run(PriorityNonPreemptive{Aging: &AgingConfig{Interval: 2, Step: 3}})

	r := ResultOf(s.Process("L"))

	assert.Equal(t, int64(1), r.OriginalPriority)
	assert.Equal(t, int64(10), r.FinalPriority)
}
