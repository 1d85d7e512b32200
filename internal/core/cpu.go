package core

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Segment is one uninterrupted stretch of a single process on the CPU.
type Segment struct {
	ProcessID string `json:"process_id"`
	StartTime int    `json:"start_time"`
	Duration  int    `json:"duration"`
}

// End returns the instant the segment stops occupying the CPU.
func (s Segment) End() int {
	return s.StartTime + s.Duration
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// CPU is the simulated single core. It owns the clock and the timeline, and is
// the only place a ProcessRun's remaining work, first execution and completion
// are updated.
type CPU struct {
	clock    int
	timeline []Segment
	metric   CpuMetric
}

func NewCPU() *CPU {
	return &CPU{timeline: make([]Segment, 0)}
}

// Now returns the current simulated time.
func (c *CPU) Now() int {
	return c.clock
}

// IdleUntil advances the clock to t without running anything.
func (c *CPU) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	logrus.WithFields(logrus.Fields{"from": c.clock, "to": t}).Debug("cpu idle")
	c.metric.IdleTime += t - c.clock
	c.clock = t
}

// Execute runs p for duration units as a new timeline segment and reports
// whether p finished.
func (c *CPU) Execute(p *ProcessRun, duration int) bool {
	c.checkSlice(p, duration)
	c.timeline = append(c.timeline, Segment{ProcessID: p.ID, StartTime: c.clock, Duration: duration})
	return c.run(p, duration)
}

// Continue runs p for duration units, extending the last segment when p is
// the process that occupied the CPU up to now.
func (c *CPU) Continue(p *ProcessRun, duration int) bool {
	c.checkSlice(p, duration)
	if n := len(c.timeline); n > 0 {
		last := &c.timeline[n-1]
		if last.ProcessID == p.ID && last.End() == c.clock {
			last.Duration += duration
			return c.run(p, duration)
		}
	}
	c.timeline = append(c.timeline, Segment{ProcessID: p.ID, StartTime: c.clock, Duration: duration})
	return c.run(p, duration)
}

func (c *CPU) run(p *ProcessRun, duration int) bool {
	if !p.Started() {
		p.StartTime = c.clock
	}
	logrus.WithFields(logrus.Fields{
		"pid":       p.ID,
		"time":      c.clock,
		"duration":  duration,
		"remaining": p.Remaining - duration,
	}).Debug("dispatch")

	c.clock += duration
	c.metric.UtilizationTime += duration
	p.Remaining -= duration
	if p.Remaining > 0 {
		return false
	}
	p.CompletionTime = c.clock
	logrus.WithFields(logrus.Fields{"pid": p.ID, "time": c.clock}).Debug("finish")
	return true
}

// a bad slice is a scheduler bug, never user input
func (c *CPU) checkSlice(p *ProcessRun, duration int) {
	if duration <= 0 || duration > p.Remaining {
		panic(fmt.Sprintf("cpu: slice of %d for %s with %d remaining", duration, p.ID, p.Remaining))
	}
}

// Timeline returns the segments recorded so far.
func (c *CPU) Timeline() []Segment {
	out := make([]Segment, len(c.timeline))
	copy(out, c.timeline)
	return out
}

// Metric returns busy and idle totals measured from time 0 to now.
func (c *CPU) Metric() CpuMetric {
	m := c.metric
	m.TotalTime = c.clock
	return m
}
