package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inference-sim/schedsim/sim/trace"
)

func TestSRTF_PreemptsForShorterArrival(t *testing.T) {
	// GIVEN P1(burst 8, arrival 0) and P2(burst 4, arrival 1)
	s := NewScheduler([]ProcessSpec{
		{PID: "P1", BurstTime: 8, ArrivalTime: 0, Priority: 1},
		{PID: "P2", BurstTime: 4, ArrivalTime: 1, Priority: 1},
	})

	// WHEN SRTF runs
	log, _ := s.Run(SRTF{})

	// THEN P2 preempts P1 at tick 1 and consecutive ticks merge into slices
	assert.Equal(t, ExecutionLog{{"P1", 0, 1}, {"P2", 1, 5}, {"P1", 5, 12}}, log)
	assert.Equal(t, int64(4), s.Process("P1").WaitingTime)
	assert.Zero(t, s.Process("P2").WaitingTime)
	assert.Equal(t, int64(0), s.Process("P1").StartTime)
}

func TestSRTF_TiesGoToInsertionOrder(t *testing.T) {
	s := NewScheduler([]ProcessSpec{
		{PID: "A", BurstTime: 3, ArrivalTime: 0, Priority: 1},
		{PID: "B", BurstTime: 3, ArrivalTime: 0, Priority: 1},
	})

	log, _ := s.Run(SRTF{})

	assert.Equal(t, ExecutionLog{{"A", 0, 3}, {"B", 3, 6}}, log)
}

func TestSRTF_AgingComparesAgainstPreviousTick(t *testing.T) {
	// GIVEN the two-process preemption scenario with aging every 2 ticks
	s := NewScheduler([]ProcessSpec{
		{PID: "P1", BurstTime: 8, ArrivalTime: 0, Priority: 1},
		{PID: "P2", BurstTime: 4, ArrivalTime: 1, Priority: 1},
	})

	// WHEN SRTF with aging runs
	log, events := s.Run(SRTF{Aging: DefaultAgingConfig()})

	// THEN the schedule is unchanged and every record is a time-family change
	// against the value of the previous tick
	assert.Equal(t, ExecutionLog{{"P1", 0, 1}, {"P2", 1, 5}, {"P1", 5, 12}}, log)
	assert.Len(t, events, 11)
	assert.Equal(t, trace.AgingRecord{Time: 1, PID: "P1", Family: trace.FamilyTime, Old: 8, New: 7, Waited: 0}, events[0])
	assert.Equal(t, trace.AgingRecord{Time: 3, PID: "P1", Family: trace.FamilyTime, Old: 7, New: 6, Waited: 2}, events[2])
	for _, r := range events {
		assert.Greater(t, r.Delta(), int64(0))
	}
}

func TestFirstMin_ReturnsEarliestOfEqualKeys(t *testing.T) {
	ps := []*Process{
		ProcessSpec{PID: "A", BurstTime: 4, Priority: 1}.NewProcess(),
		ProcessSpec{PID: "B", BurstTime: 2, Priority: 1}.NewProcess(),
		ProcessSpec{PID: "C", BurstTime: 2, Priority: 1}.NewProcess(),
	}
	got := firstMin(ps, func(p *Process) int64 { return p.BurstTime })
	assert.Equal(t, "B", got.PID)
}
