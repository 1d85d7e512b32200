package requests

import (
	"fmt"

	"cpu-scheduler-sim/internal/core"
)

type Job struct {
	ProcessId   string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
}

type ScheduleRequests struct {
	Quantum           int   `json:"quantum"`
	LevelsTimeQuantum []int `json:"levels_time_quantum"`
	Jobs              []Job `json:"jobs"`
}

// Processes registers the jobs in order, filling in blank process ids.
func (r *ScheduleRequests) Processes() ([]core.Process, error) {
	registry := core.NewRegistry()
	for i, job := range r.Jobs {
		if _, err := registry.Add(job.ProcessId, job.ArrivalTime, job.BurstTime, job.Priority); err != nil {
			return nil, fmt.Errorf("job %d: %w", i, err)
		}
	}
	return registry.List(), nil
}

type AddProcessRequest struct {
	ProcessId   string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
}
