package sim

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// ProcessDelta compares one process's waiting time across a baseline run and
// an aging run.
type ProcessDelta struct {
	PID            string `json:"pid"`
	WaitingNoAging int64  `json:"waiting_no_aging"`
	WaitingAging   int64  `json:"waiting_aging"`
	TimeSaved      int64  `json:"time_saved"` // WaitingNoAging - WaitingAging; negative if aging hurt
}

// Comparison holds two independently simulated runs over the same process
// specs: one without aging and one with it.
type Comparison struct {
	Baseline *Scheduler
	Aged     *Scheduler
	Deltas   []ProcessDelta
}

// Compare simulates baseline and aged concurrently, each on its own Scheduler
// built from specs, and pairs their waiting times per process.
// No Process is shared between the two runs.
func Compare(specs []ProcessSpec, baseline, aged Algorithm) *Comparison {
	c := &Comparison{
		Baseline: NewScheduler(specs),
		Aged:     NewScheduler(specs),
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		c.Baseline.Run(baseline)
	}()
	go func() {
		defer wg.Done()
		c.Aged.Run(aged)
	}()
	wg.Wait()

	c.Deltas = make([]ProcessDelta, len(c.Baseline.Processes))
	for i, p := range c.Baseline.Processes {
		q := c.Aged.Processes[i]
		c.Deltas[i] = ProcessDelta{
			PID:            p.PID,
			WaitingNoAging: p.WaitingTime,
			WaitingAging:   q.WaitingTime,
			TimeSaved:      p.WaitingTime - q.WaitingTime,
		}
	}
	logrus.Infof("Compared %s runs %s vs %s: %d processes improved",
		baseline.Name(), c.Baseline.RunID, c.Aged.RunID, c.Improved())
	return c
}

// CompareAging runs alg without aging against alg with cfg.
func CompareAging(specs []ProcessSpec, alg Algorithm, cfg *AgingConfig) *Comparison {
	return Compare(specs, WithAging(alg, nil), WithAging(alg, cfg))
}

// Improved counts processes whose waiting time dropped with aging
// ("processes saved from starvation").
func (c *Comparison) Improved() int {
	n := 0
	for _, d := range c.Deltas {
		if d.TimeSaved > 0 {
			n++
		}
	}
	return n
}

// ImprovedDeltas returns only the processes that waited less with aging.
func (c *Comparison) ImprovedDeltas() []ProcessDelta {
	out := make([]ProcessDelta, 0)
	for _, d := range c.Deltas {
		if d.TimeSaved > 0 {
			out = append(out, d)
		}
	}
	return out
}
