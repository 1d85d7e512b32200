package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRun(t *testing.T, id string, arrival, burst int) *ProcessRun {
	t.Helper()
	runs, err := NewRuns([]Process{{ID: id, ArrivalTime: arrival, Burst: burst}})
	require.NoError(t, err)
	return runs[0]
}

func TestCPU_Execute_RecordsFirstExecutionOnce(t *testing.T) {
	// GIVEN a process arriving at 1
	cpu := NewCPU()
	p := newRun(t, "A", 1, 4)

	// WHEN it runs twice with an idle stretch before
	cpu.IdleUntil(2)
	finished := cpu.Execute(p, 3)
	require.False(t, finished)
	assert.True(t, cpu.Execute(p, 1))

	// THEN the first dispatch instant is kept and completion recorded
	assert.Equal(t, 2, p.StartTime)
	assert.Equal(t, 6, p.CompletionTime)
	assert.Equal(t, 0, p.Remaining)
	assert.Equal(t, []Segment{{"A", 2, 3}, {"A", 5, 1}}, cpu.Timeline())
	assert.Equal(t, CpuMetric{TotalTime: 6, UtilizationTime: 4, IdleTime: 2}, cpu.Metric())
}

func TestCPU_Continue_ExtendsContiguousSegmentOfSameProcess(t *testing.T) {
	cpu := NewCPU()
	a := newRun(t, "A", 0, 5)
	b := newRun(t, "B", 0, 1)

	cpu.Continue(a, 2)
	cpu.Continue(a, 1)
	cpu.Continue(b, 1)
	cpu.Continue(a, 2)

	assert.Equal(t, []Segment{{"A", 0, 3}, {"B", 3, 1}, {"A", 4, 2}}, cpu.Timeline())
	assert.Equal(t, 6, a.CompletionTime)
}

func TestCPU_Continue_AfterIdle_StartsNewSegment(t *testing.T) {
	cpu := NewCPU()
	a := newRun(t, "A", 0, 3)

	cpu.Continue(a, 1)
	cpu.IdleUntil(4)
	cpu.Continue(a, 2)

	assert.Equal(t, []Segment{{"A", 0, 1}, {"A", 4, 2}}, cpu.Timeline())
}

func TestCPU_IdleUntil_PastTimeIsNoop(t *testing.T) {
	cpu := NewCPU()
	cpu.IdleUntil(3)
	cpu.IdleUntil(1)

	assert.Equal(t, 3, cpu.Now())
	assert.Equal(t, 3, cpu.Metric().IdleTime)
}

func TestCPU_Execute_SliceLongerThanRemaining_Panics(t *testing.T) {
	cpu := NewCPU()
	p := newRun(t, "A", 0, 2)

	assert.Panics(t, func() { cpu.Execute(p, 3) })
	assert.Panics(t, func() { cpu.Execute(p, 0) })
}

func TestSimulationResult_Process(t *testing.T) {
	r := &SimulationResult{Processes: []ProcessRun{{Process: Process{ID: "A"}}}}

	_, ok := r.Process("A")
	assert.True(t, ok)
	_, ok = r.Process("B")
	assert.False(t, ok)
}
