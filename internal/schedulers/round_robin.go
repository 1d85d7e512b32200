package schedulers

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/sirupsen/logrus"

	"cpu-scheduler-sim/internal/core"
)

// ScheduleRoundRobin gives each ready process at most timeQuantum units in
// FIFO order. Processes that arrive while a slice runs (or exactly when it
// ends) join the queue ahead of the process coming off the CPU.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) (*core.SimulationResult, error) {
	if timeQuantum <= 0 {
		return nil, &core.ConfigurationError{Parameter: "time quantum", Reason: fmt.Sprintf("must be positive, got %d", timeQuantum)}
	}
	runs, err := prepare(RoundRobin, processes)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("running roundRobin algorithm with timeQuantum = %d", timeQuantum)

	cpu := core.NewCPU()
	arrivals := newArrivalFeed(runs)
	roundRobinQueue := linkedlistqueue.New()
	enqueue := func(p *core.ProcessRun) { roundRobinQueue.Enqueue(p) }

	for done := 0; done < len(runs); {
		arrivals.AdmitUntil(cpu.Now(), enqueue)
		if roundRobinQueue.Empty() {
			next, _ := arrivals.NextArrival()
			cpu.IdleUntil(next)
			continue
		}

		head, _ := roundRobinQueue.Dequeue()
		p := head.(*core.ProcessRun)
		finished := cpu.Execute(p, min(timeQuantum, p.Remaining))

		// new arrivals go ahead of the process returning from the cpu
		arrivals.AdmitUntil(cpu.Now(), enqueue)
		if finished {
			done++
			continue
		}
		logrus.WithFields(logrus.Fields{"pid": p.ID, "time": cpu.Now(), "remaining": p.Remaining}).Debug("context switch")
		roundRobinQueue.Enqueue(p)
	}

	return generateResult(RoundRobin, fmt.Sprintf("Round Robin (q = %d)", timeQuantum), runs, cpu), nil
}
