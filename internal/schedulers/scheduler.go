package schedulers

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"cpu-scheduler-sim/internal/core"
)

type Algorithm string

const (
	FirstComeFirstServe        Algorithm = "fcfs"
	ShortestJobFirst           Algorithm = "sjf"
	ShortestRemainingTimeFirst Algorithm = "srtf"
	Priority                   Algorithm = "priority"
	RoundRobin                 Algorithm = "rr"
	MultilevelFeedbackQueue    Algorithm = "mlfq"
)

// Algorithms lists every supported discipline in presentation order.
var Algorithms = []Algorithm{
	FirstComeFirstServe,
	ShortestJobFirst,
	ShortestRemainingTimeFirst,
	Priority,
	RoundRobin,
	MultilevelFeedbackQueue,
}

func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Algorithms {
		if a == known {
			return a, nil
		}
	}
	return "", &core.ConfigurationError{Parameter: "algorithm", Reason: fmt.Sprintf("unknown algorithm %q", s)}
}

// Preemptive reports whether the discipline may suspend a running process.
func (a Algorithm) Preemptive() bool {
	switch a {
	case ShortestRemainingTimeFirst, RoundRobin, MultilevelFeedbackQueue:
		return true
	default:
		return false
	}
}

// Options carries the per-algorithm parameters.
type Options struct {
	Quantum     int   // Round-Robin time quantum
	LevelQuanta []int // MLFQ round-robin levels; a final FCFS level is implied
}

// Run simulates algorithm over processes. processes is only read.
func Run(algorithm Algorithm, processes []core.Process, opts Options) (*core.SimulationResult, error) {
	switch algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes)
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes)
	case ShortestRemainingTimeFirst:
		return ScheduleShortestRemainingTimeFirst(processes)
	case Priority:
		return SchedulePriority(processes)
	case RoundRobin:
		return ScheduleRoundRobin(processes, opts.Quantum)
	case MultilevelFeedbackQueue:
		return ScheduleMultilevelFeedbackQueue(processes, opts.LevelQuanta)
	default:
		return nil, &core.ConfigurationError{Parameter: "algorithm", Reason: fmt.Sprintf("unknown algorithm %q", algorithm)}
	}
}

// RunAll simulates each algorithm concurrently over the same snapshot. Results
// come back in the order of algorithms; the first error wins.
func RunAll(algorithms []Algorithm, processes []core.Process, opts Options) ([]*core.SimulationResult, error) {
	results := make([]*core.SimulationResult, len(algorithms))
	errs := make([]error, len(algorithms))

	var wg sync.WaitGroup
	wg.Add(len(algorithms))
	for i, algorithm := range algorithms {
		go func(i int, algorithm Algorithm) {
			defer wg.Done()
			results[i], errs[i] = Run(algorithm, processes, opts)
		}(i, algorithm)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algorithms[i], err)
		}
	}
	return results, nil
}

// prepare rejects empty input and returns fresh run state.
func prepare(algorithm Algorithm, processes []core.Process) ([]*core.ProcessRun, error) {
	if len(processes) == 0 {
		return nil, &core.EmptyInputError{Algorithm: string(algorithm)}
	}
	runs, err := core.NewRuns(processes)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"algorithm": algorithm, "processes": len(runs)}).Info("running simulation")
	return runs, nil
}
