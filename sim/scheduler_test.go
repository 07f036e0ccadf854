package sim

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/schedsim/sim/internal/testutil"
)

func goldenSpecs(tc testutil.GoldenTestCase) []ProcessSpec {
	specs := make([]ProcessSpec, len(tc.Processes))
	for i, p := range tc.Processes {
		specs[i] = ProcessSpec{
			PID:         p.PID,
			PPID:        p.PPID,
			BurstTime:   p.BurstTime,
			ArrivalTime: p.ArrivalTime,
			Priority:    p.Priority,
		}
	}
	return specs
}

func goldenAlgorithm(tc testutil.GoldenTestCase) Algorithm {
	var aging *AgingConfig
	if tc.Aging != nil {
		aging = &AgingConfig{Interval: tc.Aging.Interval, Step: tc.Aging.Step}
	}
	return NewAlgorithm(tc.Algorithm, tc.TimeQuantum, aging)
}

// TestScheduler_GoldenDataset verifies every algorithm against hand-checked
// execution logs and per-process waiting and completion times.
func TestScheduler_GoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)
	require.NotEmpty(t, dataset.Tests)

	for _, tc := range dataset.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			// GIVEN the golden process set
			s := NewScheduler(goldenSpecs(tc))

			// WHEN the configured algorithm runs
			log, events := s.Run(goldenAlgorithm(tc))

			// THEN the execution log matches slice for slice
			require.Len(t, log, len(tc.ExecutionLog), "log: %v", log)
			for i, want := range tc.ExecutionLog {
				assert.Equal(t, Slice{PID: want.PID, Start: want.Start, End: want.End}, log[i], "slice %d", i)
			}

			// THEN every process finalizes with the golden times
			for _, p := range s.Processes {
				assert.Equal(t, tc.WaitingTimes[p.PID], p.WaitingTime, "waiting time of %s", p.PID)
				assert.Equal(t, tc.CompletionTimes[p.PID], p.CompletionTime, "completion time of %s", p.PID)
				assert.Equal(t, tc.FinalPriorities[p.PID], p.EffectivePriority, "final priority of %s", p.PID)
			}
			assert.Len(t, events, tc.AgingEvents, "aging events")
		})
	}
}

// assertRunInvariants checks the properties every finished run must satisfy.
func assertRunInvariants(t *testing.T, s *Scheduler) {
	t.Helper()

	// Work conservation: each process occupies the CPU for exactly its burst.
	busy := make(map[string]int64)
	for _, sl := range s.Log {
		busy[sl.PID] += sl.Duration()
	}
	var totalBurst int64
	for _, p := range s.Processes {
		totalBurst += p.BurstTime
		assert.Equal(t, p.BurstTime, busy[p.PID], "busy time of %s", p.PID)
		assert.True(t, p.Completed, "%s not completed", p.PID)
		assert.Zero(t, p.RemainingTime, "remaining time of %s", p.PID)
		assert.GreaterOrEqual(t, p.WaitingTime, int64(0), "waiting time of %s", p.PID)
		assert.Equal(t, p.WaitingTime+p.BurstTime, p.TurnaroundTime, "turnaround of %s", p.PID)
		assert.Equal(t, p.CompletionTime-p.ArrivalTime, p.TurnaroundTime, "turnaround of %s", p.PID)
		assert.GreaterOrEqual(t, p.StartTime, p.ArrivalTime, "start time of %s", p.PID)
	}
	assert.Equal(t, totalBurst, s.Log.BusyTime())

	// Slices are positive, sorted and non-overlapping, and never start before arrival.
	for i, sl := range s.Log {
		assert.Greater(t, sl.End, sl.Start, "slice %d is empty", i)
		assert.GreaterOrEqual(t, sl.Start, s.Process(sl.PID).ArrivalTime, "slice %d before arrival", i)
		if i > 0 {
			assert.GreaterOrEqual(t, sl.Start, s.Log[i-1].End, "slice %d overlaps its predecessor", i)
		}
	}
}

func randomSpecs(rng *rand.Rand, n int) []ProcessSpec {
	specs := make([]ProcessSpec, n)
	for i := range specs {
		specs[i] = ProcessSpec{
			PID:         fmt.Sprintf("P%d", i+1),
			PPID:        "1",
			BurstTime:   1 + rng.Int63n(9),
			ArrivalTime: rng.Int63n(20),
			Priority:    1 + rng.Int63n(10),
		}
	}
	return specs
}

func TestScheduler_Run_InvariantsHoldForEveryAlgorithm(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	workloads := make([][]ProcessSpec, 0, 20)
	for i := 0; i < 20; i++ {
		workloads = append(workloads, randomSpecs(rng, 1+rng.Intn(8)))
	}

	for _, name := range AlgorithmNames() {
		for _, aging := range []*AgingConfig{nil, {Interval: 1, Step: 1}, {Interval: 3, Step: 2}} {
			label := name
			if aging != nil {
				label = fmt.Sprintf("%s/aging-%d-%d", name, aging.Interval, aging.Step)
			}
			t.Run(label, func(t *testing.T) {
				for i, specs := range workloads {
					s := NewScheduler(specs)
					s.Run(NewAlgorithm(name, 3, aging))
					t.Run(fmt.Sprintf("workload-%d", i), func(t *testing.T) {
						assertRunInvariants(t, s)
					})
				}
			})
		}
	}
}

func TestScheduler_Run_EmptyProcessSet(t *testing.T) {
	for _, name := range AlgorithmNames() {
		t.Run(name, func(t *testing.T) {
			// GIVEN no processes
			s := NewScheduler(nil)

			// WHEN any algorithm runs
			log, events := s.Run(NewAlgorithm(name, 2, DefaultAgingConfig()))

			// THEN both logs are empty and the clock never moved
			assert.Empty(t, log)
			assert.Empty(t, events)
			assert.Zero(t, s.Clock)
		})
	}
}

func TestScheduler_Run_ResetsBetweenRuns(t *testing.T) {
	// GIVEN a scheduler that already ran SRTF with aging
	specs := []ProcessSpec{
		{PID: "P1", BurstTime: 8, ArrivalTime: 0, Priority: 3},
		{PID: "P2", BurstTime: 4, ArrivalTime: 1, Priority: 1},
	}
	s := NewScheduler(specs)
	s.Run(SRTF{Aging: DefaultAgingConfig()})
	firstRun := s.RunID

	// WHEN FCFS runs on the same scheduler
	log, events := s.Run(FCFS{})

	// THEN the second run starts from a clean arrival state
	assert.Equal(t, ExecutionLog{{"P1", 0, 8}, {"P2", 8, 12}}, log)
	assert.Empty(t, events)
	assert.NotEqual(t, firstRun, s.RunID)
	assert.False(t, s.AgingEnabled)
	assert.Equal(t, int64(3), s.Process("P1").EffectivePriority)
	assert.Equal(t, int64(8), s.Process("P1").EffectiveTime)
}

func TestScheduler_Run_IsDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	specs := randomSpecs(rng, 12)

	for _, name := range AlgorithmNames() {
		t.Run(name, func(t *testing.T) {
			a := NewScheduler(specs)
			b := NewScheduler(specs)
			logA, eventsA := a.Run(NewAlgorithm(name, 2, DefaultAgingConfig()))
			logB, eventsB := b.Run(NewAlgorithm(name, 2, DefaultAgingConfig()))
			assert.Equal(t, logA, logB)
			assert.Equal(t, eventsA, eventsB)
			assert.Equal(t, a.Results(), b.Results())
		})
	}
}

func TestScheduler_Run_NilAlgorithmPanics(t *testing.T) {
	s := NewScheduler(nil)
	assert.Panics(t, func() { s.Run(nil) })
}

func TestScheduler_Run_RecordsAlgorithmAndAging(t *testing.T) {
	s := NewScheduler([]ProcessSpec{{PID: "P1", BurstTime: 1, Priority: 1}})

	s.Run(PriorityNonPreemptive{Aging: DefaultAgingConfig()})
	assert.Equal(t, AlgorithmPriorityNonPreemptive, s.Algorithm)
	assert.True(t, s.AgingEnabled)
	assert.Regexp(t, `^run_[0-9a-f]{8}$`, s.RunID)
}

func TestScheduler_Process_UnknownPIDReturnsNil(t *testing.T) {
	s := NewScheduler([]ProcessSpec{{PID: "P1", BurstTime: 1, Priority: 1}})
	assert.NotNil(t, s.Process("P1"))
	assert.Nil(t, s.Process("P9"))
}

func TestNewScheduler_OwnsIndependentProcesses(t *testing.T) {
	// GIVEN two schedulers built from the same specs
	specs := []ProcessSpec{{PID: "P1", BurstTime: 3, Priority: 1}}
	a := NewScheduler(specs)
	b := NewScheduler(specs)

	// WHEN one runs
	a.Run(FCFS{})

	// THEN the other is untouched
	assert.True(t, a.Processes[0].Completed)
	assert.False(t, b.Processes[0].Completed)
	assert.Equal(t, int64(3), b.Processes[0].RemainingTime)
}
