// Package sim provides the discrete-event CPU scheduling engine.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - process.go: ProcessSpec (immutable input) and Process (per-run state)
//   - scheduler.go: the Scheduler that owns a run, its clock and its logs
//   - algorithm.go: the closed Algorithm variant and NewAlgorithm dispatch
//   - aging.go: the aging formulas shared by every algorithm that ages
//
// # Algorithms
//
// Each discipline lives in its own file and plugs into one of two drivers in
// scheduler.go:
//   - fcfs.go: First-Come-First-Served (no driver; sorted by arrival)
//   - sjf.go, priority.go (non-preemptive): ready-queue driver, dispatch to completion
//   - srtf.go, priority.go (preemptive): per-tick driver
//   - round_robin.go: quantum-sliced FIFO with its own arrival cursor
//
// # Outputs
//
// After Run returns, a Scheduler exposes:
//   - Log: the execution log, (pid, start, end) slices
//   - Trace: the aging event log (sim/trace)
//   - Results(): the flat per-process results table
//   - DetectStarvation(threshold): processes whose waiting time exceeded threshold
//   - Summary(): averages, throughput and utilization
//
// Compare runs a baseline and an aging variant concurrently on independent
// Schedulers. Input acquisition lives in sim/workload; rendering and export in
// sim/report.
package sim
