package schedulers

import (
	"cpu-scheduler-sim/internal/core"
)

const shortestJobFirstLabel = "Shortest Job First (non-preemptive)"

// ScheduleShortestJobFirst picks the arrived process with the smallest burst
// whenever the CPU frees up and runs it to completion. Ties go to the earliest
// arrival, then registration order.
func ScheduleShortestJobFirst(processes []core.Process) (*core.SimulationResult, error) {
	runs, err := prepare(ShortestJobFirst, processes)
	if err != nil {
		return nil, err
	}

	cpu := core.NewCPU()
	scheduleNonPreemptive(runs, cpu, byRemaining)
	return generateResult(ShortestJobFirst, shortestJobFirstLabel, runs, cpu), nil
}

// scheduleNonPreemptive drives SJF and Priority: at every decision point the
// ready process with the lowest key runs in a single segment.
func scheduleNonPreemptive(runs []*core.ProcessRun, cpu *core.CPU, keyFn func(*core.ProcessRun) int) {
	arrivals := newArrivalFeed(runs)
	ready := newReadyQueue(keyFn)

	for done := 0; done < len(runs); {
		arrivals.AdmitUntil(cpu.Now(), ready.Push)
		if ready.Empty() {
			next, _ := arrivals.NextArrival()
			cpu.IdleUntil(next)
			continue
		}

		p := ready.Pop()
		cpu.Execute(p, p.Remaining)
		done++
	}
}
