package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler-sim/internal/core"
)

const shortestRemainingTimeFirstLabel = "Shortest Remaining Time First (SRTF)"

// ScheduleShortestRemainingTimeFirst is the preemptive form of SJF. The
// process with the least remaining work holds the CPU until it finishes or a
// new arrival has strictly less left.
//
// Between two arrivals the running process only gets shorter, so the choice
// can only change when something arrives. The clock therefore jumps from one
// arrival or completion to the next instead of stepping one unit at a time.
func ScheduleShortestRemainingTimeFirst(processes []core.Process) (*core.SimulationResult, error) {
	runs, err := prepare(ShortestRemainingTimeFirst, processes)
	if err != nil {
		return nil, err
	}

	cpu := core.NewCPU()
	arrivals := newArrivalFeed(runs)
	ready := newReadyQueue(byRemaining)
	var running *core.ProcessRun

	for done := 0; done < len(runs); {
		arrivals.AdmitUntil(cpu.Now(), ready.Push)
		if ready.Empty() {
			next, _ := arrivals.NextArrival()
			cpu.IdleUntil(next)
			running = nil
			continue
		}

		p := ready.Pop()
		if running != nil && running != p {
			logrus.WithFields(logrus.Fields{
				"pid":       running.ID,
				"time":      cpu.Now(),
				"remaining": running.Remaining,
				"by":        p.ID,
			}).Debug("preempt")
		}

		slice := p.Remaining
		if next, ok := arrivals.NextArrival(); ok && next-cpu.Now() < slice {
			slice = next - cpu.Now()
		}

		if cpu.Continue(p, slice) {
			done++
			running = nil
			continue
		}
		ready.Push(p)
		running = p
	}

	return generateResult(ShortestRemainingTimeFirst, shortestRemainingTimeFirstLabel, runs, cpu), nil
}
