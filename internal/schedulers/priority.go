package schedulers

import (
	"cpu-scheduler-sim/internal/core"
)

const priorityLabel = "Priority Scheduling (non-preemptive)"

// SchedulePriority is non-preemptive priority scheduling; the lower the
// numeric priority, the sooner a process runs.
func SchedulePriority(processes []core.Process) (*core.SimulationResult, error) {
	runs, err := prepare(Priority, processes)
	if err != nil {
		return nil, err
	}

	cpu := core.NewCPU()
	scheduleNonPreemptive(runs, cpu, byPriority)
	return generateResult(Priority, priorityLabel, runs, cpu), nil
}
