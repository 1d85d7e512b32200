package schedulers

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler-sim/internal/core"
)

func proc(id string, arrival, burst, priority int) core.Process {
	return core.Process{ID: id, ArrivalTime: arrival, Burst: burst, Priority: priority}
}

func seg(id string, start, duration int) core.Segment {
	return core.Segment{ProcessID: id, StartTime: start, Duration: duration}
}

// scenarioProcesses is P1(0,5), P2(1,3), P3(2,1).
func scenarioProcesses() []core.Process {
	return []core.Process{
		proc("P1", 0, 5, 1),
		proc("P2", 1, 3, 1),
		proc("P3", 2, 1, 1),
	}
}

func randomWorkload(seed int64, n int) []core.Process {
	rng := rand.New(rand.NewSource(seed))
	out := make([]core.Process, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, proc(fmt.Sprintf("P%d", i+1), rng.Intn(20), 1+rng.Intn(9), rng.Intn(5)))
	}
	return out
}

func mustProcess(t *testing.T, r *core.SimulationResult, id string) core.ProcessRun {
	t.Helper()
	p, ok := r.Process(id)
	require.True(t, ok, "process %s missing from result", id)
	return p
}

// assertScheduleInvariants checks the properties every correct schedule has,
// whatever the algorithm.
func assertScheduleInvariants(t *testing.T, processes []core.Process, r *core.SimulationResult) {
	t.Helper()
	require.Len(t, r.Processes, len(processes))

	covered := make(map[string]int)
	firstStart := make(map[string]int)
	for i, s := range r.Timeline {
		assert.Positive(t, s.Duration, "segment %d has no duration", i)
		if _, ok := firstStart[s.ProcessID]; !ok {
			firstStart[s.ProcessID] = s.StartTime
		}
		covered[s.ProcessID] += s.Duration
		if i > 0 {
			assert.LessOrEqual(t, r.Timeline[i-1].End(), s.StartTime, "segments %d and %d overlap", i-1, i)
		}
	}

	for i, p := range r.Processes {
		assert.Equal(t, processes[i].ID, p.ID, "results must keep registration order")
		assert.Equal(t, p.Burst, covered[p.ID], "%s: timeline covers %d of burst %d", p.ID, covered[p.ID], p.Burst)
		assert.GreaterOrEqual(t, p.CompletionTime, p.ArrivalTime+p.Burst, p.ID)
		assert.GreaterOrEqual(t, p.WaitingTime, 0, p.ID)
		assert.Equal(t, p.WaitingTime+p.Burst, p.TurnaroundTime, p.ID)
		assert.Equal(t, firstStart[p.ID]-p.ArrivalTime, p.ResponseTime, "%s: response time must come from the first segment", p.ID)
		assert.LessOrEqual(t, p.ResponseTime, p.WaitingTime, p.ID)
		assert.Equal(t, 0, p.Remaining, p.ID)
	}

	// the cpu may only idle while nothing that has arrived is unfinished
	clock := 0
	for _, s := range r.Timeline {
		if s.StartTime > clock {
			for _, p := range r.Processes {
				if p.ArrivalTime <= clock {
					assert.LessOrEqual(t, p.CompletionTime, clock, "cpu idle at %d while %s was ready", clock, p.ID)
				}
			}
		}
		clock = s.End()
	}

	last := r.Timeline[len(r.Timeline)-1]
	assert.Equal(t, last.End(), r.TotalTime)
	busy := 0
	for _, p := range processes {
		busy += p.Burst
	}
	assert.Equal(t, r.TotalTime-busy, r.IdleTime)
}
