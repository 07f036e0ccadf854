package workload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/schedsim/sim"
)

func TestLoadCSV_ParsesRowsInOrder(t *testing.T) {
	input := "pid,ppid,burst_time,arrival_time,priority\n" +
		"P2, 1, 4, 1, 1\n" +
		"P1, 1, 8, 0, 3\n"

	specs, err := LoadCSV(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []sim.ProcessSpec{
		{PID: "P2", PPID: "1", BurstTime: 4, ArrivalTime: 1, Priority: 1},
		{PID: "P1", PPID: "1", BurstTime: 8, ArrivalTime: 0, Priority: 3},
	}, specs)
}

func TestLoadCSV_HeaderOnlyIsEmpty(t *testing.T) {
	specs, err := LoadCSV(strings.NewReader("pid,ppid,burst_time,arrival_time,priority\n"))
	require.NoError(t, err)
	assert.NotNil(t, specs)
	assert.Empty(t, specs)
}

func TestLoadCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty input", "", "reading CSV header"},
		{"wrong header", "pid,parent,burst_time,arrival_time,priority\n", `CSV column 2 is "parent"`},
		{"short header", "pid,ppid\n", "expected 5"},
		{"non-numeric burst", "pid,ppid,burst_time,arrival_time,priority\nP1,0,x,0,1\n", "CSV line 2: burst_time"},
		{"ragged row", "pid,ppid,burst_time,arrival_time,priority\nP1,0,1\n", "reading CSV row"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSV(strings.NewReader(tt.input))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
