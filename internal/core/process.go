package core

// Process is the immutable description of one schedulable process.
type Process struct {
	ID          string `json:"id" yaml:"id"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival"`
	Burst       int    `json:"burst" yaml:"burst"`
	Priority    int    `json:"priority" yaml:"priority"` // lower value = higher priority
}

// Validate checks the attributes every scheduler relies on.
func (p Process) Validate() error {
	if p.Burst <= 0 {
		return &ValidationError{ProcessID: p.ID, Field: "burst", Reason: "must be positive"}
	}
	if p.ArrivalTime < 0 {
		return &ValidationError{ProcessID: p.ID, Field: "arrival time", Reason: "must not be negative"}
	}
	return nil
}

// ProcessRun carries the state one simulation run derives for a process.
// Runs never share a ProcessRun; the originating Process is left untouched.
type ProcessRun struct {
	Process

	Seq            int // registration order, the final tie-breaker
	Remaining      int
	StartTime      int // first instant on the CPU, -1 until dispatched
	CompletionTime int // -1 until finished
	TurnaroundTime int
	WaitingTime    int
	ResponseTime   int
}

// Started reports whether the process has occupied the CPU at least once.
func (p *ProcessRun) Started() bool {
	return p.StartTime >= 0
}

// Finished reports whether the process has no work left.
func (p *ProcessRun) Finished() bool {
	return p.CompletionTime >= 0
}

// NewRuns validates the snapshot and returns a fresh working copy per process,
// in the order given.
func NewRuns(processes []Process) ([]*ProcessRun, error) {
	runs := make([]*ProcessRun, 0, len(processes))
	seen := make(map[string]struct{}, len(processes))
	for i, p := range processes {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[p.ID]; dup {
			return nil, &ValidationError{ProcessID: p.ID, Field: "id", Reason: "already in use"}
		}
		seen[p.ID] = struct{}{}

		runs = append(runs, &ProcessRun{
			Process:        p,
			Seq:            i,
			Remaining:      p.Burst,
			StartTime:      -1,
			CompletionTime: -1,
		})
	}
	return runs, nil
}
