package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/inference-sim/schedsim/sim"
)

// csvColumns is the required header of a process CSV file.
var csvColumns = []string{"pid", "ppid", "burst_time", "arrival_time", "priority"}

// LoadCSV reads processes from CSV with a header row matching csvColumns.
// Rows are returned in file order; validation is left to the caller.
func LoadCSV(r io.Reader) ([]sim.ProcessSpec, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	if len(header) != len(csvColumns) {
		return nil, fmt.Errorf("CSV header has %d columns, expected %d (%s)",
			len(header), len(csvColumns), strings.Join(csvColumns, ","))
	}
	for i, name := range header {
		if strings.ToLower(strings.TrimSpace(name)) != csvColumns[i] {
			return nil, fmt.Errorf("CSV column %d is %q, expected %q", i+1, name, csvColumns[i])
		}
	}

	specs := make([]sim.ProcessSpec, 0)
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}
		spec, err := parseCSVRow(row)
		if err != nil {
			return nil, fmt.Errorf("CSV line %d: %w", line, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func parseCSVRow(row []string) (sim.ProcessSpec, error) {
	ints := make([]int64, 3)
	for i, col := range []int{2, 3, 4} {
		v, err := strconv.ParseInt(strings.TrimSpace(row[col]), 10, 64)
		if err != nil {
			return sim.ProcessSpec{}, fmt.Errorf("%s: %w", csvColumns[col], err)
		}
		ints[i] = v
	}
	return sim.ProcessSpec{
		PID:         strings.TrimSpace(row[0]),
		PPID:        strings.TrimSpace(row[1]),
		BurstTime:   ints[0],
		ArrivalTime: ints[1],
		Priority:    ints[2],
	}, nil
}
