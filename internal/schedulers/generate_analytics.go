package schedulers

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/util"
)

func generateResult(algorithm Algorithm, label string, runs []*core.ProcessRun, cpu *core.CPU) *core.SimulationResult {
	processDetails := make([]core.ProcessRun, 0, len(runs))
	for _, p := range runs {
		processDetails = append(processDetails, generateProcessDetails(p))
	}
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(processDetails)

	timeline := cpu.Timeline()
	metric := cpu.Metric()
	result := &core.SimulationResult{
		Algorithm:         string(algorithm),
		Label:             label,
		Timeline:          timeline,
		Processes:         processDetails,
		AverageTurnaround: averageTurnAroundTime,
		AverageWaiting:    averageWaitingTime,
		AverageResponse:   averageResponseTime,
		TotalTime:         metric.TotalTime,
		IdleTime:          metric.IdleTime,
		ContextSwitches:   countContextSwitches(timeline),
	}
	if metric.TotalTime > 0 {
		result.CpuUtilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
		result.Throughput = float64(len(runs)) / float64(metric.TotalTime)
	}

	logrus.WithFields(logrus.Fields{
		"algorithm":       algorithm,
		"segments":        len(timeline),
		"avg_turnaround":  fmt.Sprintf("%.2f", averageTurnAroundTime),
		"avg_waiting":     fmt.Sprintf("%.2f", averageWaitingTime),
		"avg_response":    fmt.Sprintf("%.2f", averageResponseTime),
		"cpu_utilization": fmt.Sprintf("%.2f", result.CpuUtilization),
	}).Info("simulation complete")
	return result
}

// generateProcessDetails derives the timing metrics of a finished process.
// Response time always comes from the first-execution instant the CPU
// recorded, so it differs from waiting time once a process is preempted.
func generateProcessDetails(p *core.ProcessRun) core.ProcessRun {
	if !p.Finished() || !p.Started() {
		panic(fmt.Sprintf("schedulers: process %s left unfinished", p.ID))
	}
	details := *p
	details.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	details.WaitingTime = details.TurnaroundTime - p.Burst
	details.ResponseTime = p.StartTime - p.ArrivalTime
	logrus.WithFields(logrus.Fields{
		"pid":        p.ID,
		"completion": p.CompletionTime,
		"turnaround": details.TurnaroundTime,
		"waiting":    details.WaitingTime,
		"response":   details.ResponseTime,
	}).Debug("process completed")
	return details
}

// countContextSwitches counts adjacent segments that belong to different
// processes.
func countContextSwitches(timeline []core.Segment) int {
	switches := 0
	for i := 1; i < len(timeline); i++ {
		if timeline[i].ProcessID != timeline[i-1].ProcessID {
			switches++
		}
	}
	return switches
}
