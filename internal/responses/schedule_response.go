package responses

import (
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/util"
)

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	CompletionTime int    `json:"completion_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}

type SegmentResponse struct {
	ProcessId string `json:"process_id"`
	StartTime int    `json:"start_time"`
	Duration  int    `json:"duration"`
	Color     string `json:"color"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	Label                 string            `json:"label"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	ContextSwitches       int               `json:"context_switches"`
	Timeline              []SegmentResponse `json:"timeline"`
	Details               []ProcessResponse `json:"details"`
}

type ProcessListResponse struct {
	Processes []core.Process `json:"processes"`
}

func NewScheduleResponse(result *core.SimulationResult) ScheduleResponse {
	timeline := make([]SegmentResponse, 0, len(result.Timeline))
	for _, s := range result.Timeline {
		timeline = append(timeline, SegmentResponse{
			ProcessId: s.ProcessID,
			StartTime: s.StartTime,
			Duration:  s.Duration,
			Color:     util.ColorFor(s.ProcessID),
		})
	}

	details := make([]ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		details = append(details, ProcessResponse{
			ProcessId:      p.ID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.Burst,
			Priority:       p.Priority,
			CompletionTime: p.CompletionTime,
			ResponseTime:   p.ResponseTime,
			TurnAroundTime: p.TurnaroundTime,
			WaitingTime:    p.WaitingTime,
		})
	}

	return ScheduleResponse{
		Algorithm:             result.Algorithm,
		Label:                 result.Label,
		TotalTime:             result.TotalTime,
		IdleTime:              result.IdleTime,
		AverageWaitingTime:    result.AverageWaiting,
		AverageResponseTime:   result.AverageResponse,
		AverageTurnAroundTime: result.AverageTurnaround,
		CpuUtilization:        result.CpuUtilization,
		CpuThroughput:         result.Throughput,
		ContextSwitches:       result.ContextSwitches,
		Timeline:              timeline,
		Details:               details,
	}
}
