package schedulers

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/sirupsen/logrus"

	"cpu-scheduler-sim/internal/core"
)

// ScheduleMultilevelFeedbackQueue runs one round-robin level per entry of
// timeQuantumList followed by a final FCFS level. Every process enters the
// first level and drops one level each time it uses up a full slice. The
// highest non-empty level always runs next; a slice in progress is never cut
// short by an arrival on a higher level.
func ScheduleMultilevelFeedbackQueue(processes []core.Process, timeQuantumList []int) (*core.SimulationResult, error) {
	if len(timeQuantumList) == 0 {
		return nil, &core.ConfigurationError{Parameter: "levels time quantum", Reason: "at least one level is required"}
	}
	for i, q := range timeQuantumList {
		if q <= 0 {
			return nil, &core.ConfigurationError{Parameter: "levels time quantum", Reason: fmt.Sprintf("level %d: must be positive, got %d", i, q)}
		}
	}
	runs, err := prepare(MultilevelFeedbackQueue, processes)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("mlfq algorithm with timeQuantum = %v", timeQuantumList)

	levels := make([]*linkedlistqueue.Queue, len(timeQuantumList)+1)
	for i := range levels {
		levels[i] = linkedlistqueue.New()
	}
	fcfsLevel := len(levels) - 1

	cpu := core.NewCPU()
	arrivals := newArrivalFeed(runs)
	admit := func(p *core.ProcessRun) {
		levels[0].Enqueue(p)
	}

	for done := 0; done < len(runs); {
		arrivals.AdmitUntil(cpu.Now(), admit)

		current := -1
		for i, q := range levels {
			if !q.Empty() {
				current = i
				break
			}
		}
		if current < 0 {
			next, _ := arrivals.NextArrival()
			cpu.IdleUntil(next)
			continue
		}

		head, _ := levels[current].Dequeue()
		p := head.(*core.ProcessRun)
		slice := p.Remaining
		if current < fcfsLevel {
			slice = min(timeQuantumList[current], p.Remaining)
		}
		finished := cpu.Execute(p, slice)

		arrivals.AdmitUntil(cpu.Now(), admit)
		if finished {
			done++
			continue
		}
		next := min(current+1, fcfsLevel)
		logrus.WithFields(logrus.Fields{"pid": p.ID, "time": cpu.Now(), "level": next}).Debug("demote")
		levels[next].Enqueue(p)
	}

	return generateResult(MultilevelFeedbackQueue, multilevelFeedbackQueueLabel(timeQuantumList), runs, cpu), nil
}

func multilevelFeedbackQueueLabel(timeQuantumList []int) string {
	parts := make([]string, 0, len(timeQuantumList)+1)
	for _, q := range timeQuantumList {
		parts = append(parts, fmt.Sprint(q))
	}
	parts = append(parts, "FCFS")
	return fmt.Sprintf("Multilevel Feedback Queue (q = %s)", strings.Join(parts, ", "))
}
