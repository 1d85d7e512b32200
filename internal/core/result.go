package core

// SimulationResult is everything one run hands back to its caller.
type SimulationResult struct {
	Algorithm string
	Label     string
	Timeline  []Segment
	Processes []ProcessRun // registration order

	AverageTurnaround float64
	AverageWaiting    float64
	AverageResponse   float64

	TotalTime       int
	IdleTime        int
	CpuUtilization  float64
	Throughput      float64
	ContextSwitches int
}

// Process returns the run data for id.
func (r *SimulationResult) Process(id string) (ProcessRun, bool) {
	for _, p := range r.Processes {
		if p.ID == id {
			return p, true
		}
	}
	return ProcessRun{}, false
}
