package render

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/schedulers"
	"cpu-scheduler-sim/internal/util"
)

func sampleResult(t *testing.T) *core.SimulationResult {
	t.Helper()
	result, err := schedulers.ScheduleFirstComeFirstServe([]core.Process{
		{ID: "P1", ArrivalTime: 0, Burst: 5},
		{ID: "P2", ArrivalTime: 1, Burst: 3},
		{ID: "P3", ArrivalTime: 12, Burst: 1},
	})
	require.NoError(t, err)
	return result
}

func TestWriteResult_PrintsTitleGanttAndAverages(t *testing.T) {
	var buf bytes.Buffer

	WriteResult(&buf, sampleResult(t))

	out := buf.String()
	assert.Contains(t, out, "First Come First Served (FCFS)")
	assert.Contains(t, out, "Gantt schedule")
	assert.Contains(t, out, "idle", "the gap before P3 must show")
	assert.Contains(t, out, "Turnaround")
	assert.Contains(t, out, "1.33") // average waiting (0+4+0)/3
	assert.Contains(t, out, "4.33") // average turnaround (5+7+1)/3
	assert.Contains(t, out, "context switches")
}

func TestOutputGantt_TicksLineUpWithBlocks(t *testing.T) {
	var buf bytes.Buffer

	outputGantt(&buf, []core.Segment{{ProcessID: "A", StartTime: 0, Duration: 3}, {ProcessID: "B", StartTime: 3, Duration: 2}})

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	bars, ticks := string(lines[1]), string(lines[2])
	assert.Equal(t, len(bars), len(ticks))
	assert.Equal(t, byte('|'), bars[len(bars)-1])
	assert.Equal(t, byte('5'), ticks[len(ticks)-1])
}

func TestWriteTimelineCSV(t *testing.T) {
	var buf bytes.Buffer
	result := sampleResult(t)

	require.NoError(t, WriteTimelineCSV(&buf, []*core.SimulationResult{result}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+len(result.Timeline))
	assert.Equal(t, []string{"algorithm", "process_id", "start_time", "duration", "end_time", "color"}, rows[0])
	assert.Equal(t, []string{"fcfs", "P3", "12", "1", "13", util.ColorFor("P3")}, rows[3])
}
