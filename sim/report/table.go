// Package report renders finished simulation runs for people and tools:
// aligned tables on a terminal, CSV results export and a JSON run document.
// It only reads from sim types; nothing here feeds back into a run.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/inference-sim/schedsim/sim"
	"github.com/inference-sim/schedsim/sim/trace"
)

// WriteTitle prints title framed by dashed rules.
func WriteTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// WriteExecutionLog prints one row per slice of the execution log.
func WriteExecutionLog(w io.Writer, log sim.ExecutionLog) {
	_, _ = fmt.Fprintln(w, "Execution log")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Start", "End", "Duration"})
	for _, sl := range log {
		table.Append([]string{sl.PID, itoa(sl.Start), itoa(sl.End), itoa(sl.Duration())})
	}
	table.SetFooter([]string{"", "", "Busy", itoa(log.BusyTime())})
	table.Render()
	if len(log) > 0 {
		_, _ = fmt.Fprintf(w, "Dispatch order: %s\n", strings.Join(log.PIDs(), " "))
	}
}

// WriteResultsTable prints the per-process results with an averages footer.
func WriteResultsTable(w io.Writer, results []sim.Result) {
	_, _ = fmt.Fprintln(w, "Results table")
	rows := make([][]string, len(results))
	waits := make([]int64, len(results))
	turnarounds := make([]int64, len(results))
	for i, r := range results {
		rows[i] = resultRow(r)
		waits[i] = r.WaitingTime
		turnarounds[i] = r.TurnaroundTime
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader(resultColumns)
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", sim.CalculateMean(waits)),
		fmt.Sprintf("Average\n%.2f", sim.CalculateMean(turnarounds)),
		""})
	table.Render()
}

// WriteStarvationTable prints the starvation report, or a single line when
// no process starved.
func WriteStarvationTable(w io.Writer, records []sim.StarvationRecord) {
	if len(records) == 0 {
		_, _ = fmt.Fprintln(w, "No starvation detected.")
		return
	}
	_, _ = fmt.Fprintf(w, "Starvation detected in %d processes\n", len(records))
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Waiting Time", "Threshold", "Reason"})
	table.SetColWidth(60)
	for _, r := range records {
		table.Append([]string{r.PID, itoa(r.WaitingTime), itoa(r.Threshold), r.Reason})
	}
	table.Render()
}

// WriteAgingTable prints every recorded change of an effective value.
func WriteAgingTable(w io.Writer, records []trace.AgingRecord) {
	summary := trace.Summarize(&trace.AgingTrace{Records: records})
	_, _ = fmt.Fprintf(w, "Aging log: %d events over %d processes\n", summary.TotalEvents, summary.AgedProcesses)
	if len(records) == 0 {
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Time", "PID", "Family", "Old", "New", "Waited"})
	for _, r := range records {
		table.Append([]string{itoa(r.Time), r.PID, string(r.Family), itoa(r.Old), itoa(r.New), itoa(r.Waited)})
	}
	table.Render()
}

// WriteComparisonTable prints per-process waiting times with and without aging.
func WriteComparisonTable(w io.Writer, c *sim.Comparison) {
	_, _ = fmt.Fprintf(w, "Aging comparison: %s\n", sim.DisplayName(c.Baseline.Algorithm))
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Waiting (No Aging)", "Waiting (Aging)", "Time Saved"})
	for _, d := range c.Deltas {
		table.Append([]string{d.PID, itoa(d.WaitingNoAging), itoa(d.WaitingAging), itoa(d.TimeSaved)})
	}
	base, aged := c.Baseline.Summary(), c.Aged.Summary()
	table.SetFooter([]string{"Average",
		fmt.Sprintf("%.2f", base.AvgWaiting),
		fmt.Sprintf("%.2f", aged.AvgWaiting),
		fmt.Sprintf("%.2f", base.AvgWaiting-aged.AvgWaiting)})
	table.Render()

	saved := c.ImprovedDeltas()
	_, _ = fmt.Fprintf(w, "Processes saved from starvation: %d\n", len(saved))
	for _, d := range saved {
		_, _ = fmt.Fprintf(w, "  %s waited %d ticks less\n", d.PID, d.TimeSaved)
	}
}

// WriteProcessDetail prints one process's result followed by its aging history.
func WriteProcessDetail(w io.Writer, r sim.Result, events []trace.AgingRecord) {
	_, _ = fmt.Fprintf(w, "Process %s (parent %s)\n", r.PID, r.PPID)
	_, _ = fmt.Fprintf(w, "  arrival %d, burst %d, completion %d\n", r.ArrivalTime, r.BurstTime, r.CompletionTime)
	_, _ = fmt.Fprintf(w, "  waiting %d, turnaround %d\n", r.WaitingTime, r.TurnaroundTime)
	_, _ = fmt.Fprintf(w, "  priority %d -> %d\n", r.OriginalPriority, r.FinalPriority)
	WriteAgingTable(w, events)
}

// WriteSummary prints the run summary block.
func WriteSummary(w io.Writer, sum sim.Summary) {
	_, _ = fmt.Fprint(w, sum.String())
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
