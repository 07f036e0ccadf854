package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareAging_PairsEveryProcess(t *testing.T) {
	// GIVEN the starvation workload
	specs := starvationSpecs()

	// WHEN PNP is compared without and with aging
	c := CompareAging(specs, PriorityNonPreemptive{}, &AgingConfig{Interval: 2, Step: 3})

	// THEN deltas follow process order and only L improved
	require.Len(t, c.Deltas, len(specs))
	for i, d := range c.Deltas {
		assert.Equal(t, specs[i].PID, d.PID)
		assert.Equal(t, d.WaitingNoAging-d.WaitingAging, d.TimeSaved)
	}
	assert.Equal(t, ProcessDelta{PID: "L", WaitingNoAging: 12, WaitingAging: 6, TimeSaved: 6}, c.Deltas[0])
	assert.Equal(t, 1, c.Improved())
	assert.Equal(t, []ProcessDelta{c.Deltas[0]}, c.ImprovedDeltas())
	assert.False(t, c.Baseline.AgingEnabled)
	assert.True(t, c.Aged.AgingEnabled)
}

func TestCompare_RunsAreIndependent(t *testing.T) {
	specs := starvationSpecs()

	c := Compare(specs, PriorityPreemptive{}, PriorityPreemptive{Aging: DefaultAgingConfig()})

	assert.NotSame(t, c.Baseline.Processes[0], c.Aged.Processes[0])
	assert.NotEqual(t, c.Baseline.RunID, c.Aged.RunID)
	assertRunInvariants(t, c.Baseline)
	assertRunInvariants(t, c.Aged)
}

func TestCompare_MatchesSequentialRuns(t *testing.T) {
	// GIVEN a comparison and the same two runs done one after another
	specs := longJobSpecs()
	aging := &AgingConfig{Interval: 1, Step: 1}
	c := CompareAging(specs, SRTF{}, aging)

	seq := NewScheduler(specs)
	seqLog, seqEvents := seq.Run(SRTF{Aging: aging})

	// THEN concurrency changes nothing
	assert.Equal(t, seqLog, c.Aged.Log)
	assert.Equal(t, seqEvents, c.Aged.Trace.Records)
	assert.Equal(t, seq.Results(), c.Aged.Results())
}

func TestComparison_NoImprovement(t *testing.T) {
	c := CompareAging([]ProcessSpec{{PID: "P1", BurstTime: 2, Priority: 1}}, SJF{}, DefaultAgingConfig())
	assert.Zero(t, c.Improved())
	assert.NotNil(t, c.ImprovedDeltas())
	assert.Empty(t, c.ImprovedDeltas())
}
