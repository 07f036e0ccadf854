package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/inference-sim/schedsim/sim"
	"github.com/inference-sim/schedsim/sim/trace"
)

// RunReport is the JSON document describing one finished run.
type RunReport struct {
	RunID               string                 `json:"run_id"`
	Algorithm           string                 `json:"algorithm"`
	TimeQuantum         int64                  `json:"time_quantum,omitempty"`
	Aging               *sim.AgingConfig       `json:"aging,omitempty"`
	StarvationThreshold int64                  `json:"starvation_threshold"`
	ExecutionLog        sim.ExecutionLog       `json:"execution_log"`
	Results             []sim.Result           `json:"results"`
	Starvation          []sim.StarvationRecord `json:"starvation"`
	AgingEvents         []trace.AgingRecord    `json:"aging_events"`
	Summary             sim.Summary            `json:"summary"`
}

// NewRunReport collects the outputs of a scheduler that has finished running alg.
func NewRunReport(s *sim.Scheduler, alg sim.Algorithm, threshold int64) *RunReport {
	r := &RunReport{
		RunID:               s.RunID,
		Algorithm:           s.Algorithm,
		Aging:               alg.AgingConfig(),
		StarvationThreshold: threshold,
		ExecutionLog:        s.Log,
		Results:             s.Results(),
		Starvation:          s.DetectStarvation(threshold),
		AgingEvents:         s.Trace.Records,
		Summary:             s.Summary(),
	}
	if rr, ok := alg.(sim.RoundRobin); ok {
		r.TimeQuantum = rr.Quantum
	}
	if r.ExecutionLog == nil {
		r.ExecutionLog = sim.ExecutionLog{}
	}
	if r.AgingEvents == nil {
		r.AgingEvents = []trace.AgingRecord{}
	}
	return r
}

// ComparisonReport is the JSON document describing a baseline vs aging comparison.
type ComparisonReport struct {
	Algorithm string             `json:"algorithm"`
	Baseline  *RunReport         `json:"baseline"`
	Aged      *RunReport         `json:"aged"`
	Deltas    []sim.ProcessDelta `json:"deltas"`
	Improved  int                `json:"improved"`
}

// NewComparisonReport builds the report for a comparison produced from
// baseline and aged.
func NewComparisonReport(c *sim.Comparison, baseline, aged sim.Algorithm, threshold int64) *ComparisonReport {
	return &ComparisonReport{
		Algorithm: c.Baseline.Algorithm,
		Baseline:  NewRunReport(c.Baseline, baseline, threshold),
		Aged:      NewRunReport(c.Aged, aged, threshold),
		Deltas:    c.Deltas,
		Improved:  c.Improved(),
	}
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// WriteFile creates path and fills it with write.
func WriteFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
