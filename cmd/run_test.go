package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/core"
)

func testConfig() *config.SchedulerConfig {
	return &config.SchedulerConfig{
		Port:                                     9095,
		LogLevel:                                 "error",
		RoundRobinTimeQuantum:                    3,
		MultilevelFeedbackQueueLevelsTimeQuantum: []int{2},
	}
}

func TestSimulate_All_ReturnsEveryAlgorithm(t *testing.T) {
	algorithmName = "all"
	processes := []core.Process{{ID: "P1", Burst: 4}, {ID: "P2", ArrivalTime: 1, Burst: 2}}

	results, err := simulate(testConfig(), processes)

	require.NoError(t, err)
	require.Len(t, results, 6)
	assert.Equal(t, "Round Robin (q = 3)", results[4].Label)
	assert.Equal(t, "Multilevel Feedback Queue (q = 2, FCFS)", results[5].Label)
}

func TestSimulate_UnknownAlgorithm_ReturnsError(t *testing.T) {
	algorithmName = "lottery"
	t.Cleanup(func() { algorithmName = "all" })

	_, err := simulate(testConfig(), []core.Process{{ID: "P1", Burst: 1}})

	var configErr *core.ConfigurationError
	assert.ErrorAs(t, err, &configErr)
}

func TestReport_WritesTablesAndCSV(t *testing.T) {
	// GIVEN an FCFS result and a CSV destination
	algorithmName = "fcfs"
	csvPath = filepath.Join(t.TempDir(), "timeline.csv")
	t.Cleanup(func() { algorithmName, csvPath = "all", "" })
	results, err := simulate(testConfig(), []core.Process{{ID: "P1", Burst: 2}})
	require.NoError(t, err)

	// WHEN the report is written
	var buf bytes.Buffer
	require.NoError(t, report(&buf, results))

	// THEN stdout has the table and the CSV has the timeline
	assert.Contains(t, buf.String(), "First Come First Served (FCFS)")
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fcfs,P1,0,2,2,")
}
