package schedulers

import (
	"cpu-scheduler-sim/internal/core"
)

const firstComeFirstServeLabel = "First Come First Served (FCFS)"

// ScheduleFirstComeFirstServe runs processes in arrival order, ties in
// registration order, each to completion.
func ScheduleFirstComeFirstServe(processes []core.Process) (*core.SimulationResult, error) {
	runs, err := prepare(FirstComeFirstServe, processes)
	if err != nil {
		return nil, err
	}

	// sort jobs by arrival time
	jobs := make([]*core.ProcessRun, len(runs))
	copy(jobs, runs)
	sortByArrival(jobs)

	cpu := core.NewCPU()
	for _, p := range jobs {
		cpu.IdleUntil(p.ArrivalTime)
		cpu.Execute(p, p.Burst)
	}

	return generateResult(FirstComeFirstServe, firstComeFirstServeLabel, runs, cpu), nil
}
