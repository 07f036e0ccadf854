package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/inference-sim/schedsim/sim"
)

// resultColumns is the header shared by the results table and CSV export.
var resultColumns = []string{
	"PID",
	"PPID",
	"Burst Time",
	"Arrival Time",
	"Original Priority",
	"Final Priority",
	"Waiting Time",
	"Turnaround Time",
	"Completion Time",
}

func resultRow(r sim.Result) []string {
	return []string{
		r.PID,
		r.PPID,
		itoa(r.BurstTime),
		itoa(r.ArrivalTime),
		itoa(r.OriginalPriority),
		itoa(r.FinalPriority),
		itoa(r.WaitingTime),
		itoa(r.TurnaroundTime),
		itoa(r.CompletionTime),
	}
}

// WriteResultsCSV writes a header row followed by one row per result, in the
// order given.
func WriteResultsCSV(w io.Writer, results []sim.Result) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(resultColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range results {
		if err := writer.Write(resultRow(r)); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", r.PID, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}
