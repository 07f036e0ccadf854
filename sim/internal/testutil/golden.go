// Package testutil provides shared test infrastructure for the scheduling
// simulator. It holds the golden dataset types and assertion helpers used
// across the sim/ and sim/report/ test packages.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenProcess is one input process of a golden case.
type GoldenProcess struct {
	PID         string `json:"pid"`
	PPID        string `json:"ppid"`
	BurstTime   int64  `json:"burst_time"`
	ArrivalTime int64  `json:"arrival_time"`
	Priority    int64  `json:"priority"`
}

// GoldenSlice is one expected execution-log entry.
type GoldenSlice struct {
	PID   string `json:"pid"`
	Start int64  `json:"start"`
	End   int64  `json:"end"`
}

// GoldenAging carries the aging parameters of a case; nil disables aging.
type GoldenAging struct {
	Interval int64 `json:"interval"`
	Step     int64 `json:"step"`
}

// GoldenTestCase represents a single test case from the golden dataset.
type GoldenTestCase struct {
	Name        string          `json:"name"`
	Algorithm   string          `json:"algorithm"`
	TimeQuantum int64           `json:"time_quantum"`
	Aging       *GoldenAging    `json:"aging"`
	Processes   []GoldenProcess `json:"processes"`

	// Expected outputs
	ExecutionLog    []GoldenSlice    `json:"execution_log"`
	WaitingTimes    map[string]int64 `json:"waiting_times"`
	CompletionTimes map[string]int64 `json:"completion_times"`
	FinalPriorities map[string]int64 `json:"final_priorities"`
	AgingEvents     int              `json:"aging_events"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// FindCase returns the named case or fails the test.
func (d *GoldenDataset) FindCase(t *testing.T, name string) GoldenTestCase {
	t.Helper()
	for _, tc := range d.Tests {
		if tc.Name == name {
			return tc
		}
	}
	t.Fatalf("golden case %q not found", name)
	return GoldenTestCase{}
}
