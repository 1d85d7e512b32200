// Package render prints simulation results for a terminal.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/util"
)

// WriteResult prints the title, Gantt chart and results table of one run.
func WriteResult(w io.Writer, result *core.SimulationResult) {
	outputTitle(w, result.Label)
	outputGantt(w, result.Timeline)
	outputSchedule(w, result)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// outputGantt draws one block per segment, its width proportional to the
// segment's duration. Idle gaps show as "idle" blocks.
func outputGantt(w io.Writer, timeline []core.Segment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")

	var bars, ticks strings.Builder
	bars.WriteString("|")
	ticks.WriteString("0")
	clock := 0
	block := func(label string, duration int) {
		width := max(duration*2, len(label)+2)
		padding := width - len(label)
		bars.WriteString(strings.Repeat(" ", padding/2) + label + strings.Repeat(" ", padding-padding/2) + "|")
		clock += duration
		mark := strconv.Itoa(clock)
		ticks.WriteString(strings.Repeat(" ", max(width+1-len(mark), 1)) + mark)
	}
	for _, s := range timeline {
		if s.StartTime > clock {
			block("idle", s.StartTime-clock)
		}
		block(s.ProcessID, s.Duration)
	}

	_, _ = fmt.Fprintln(w, bars.String())
	_, _ = fmt.Fprintln(w, ticks.String())
	_, _ = fmt.Fprintln(w)
}

func outputSchedule(w io.Writer, result *core.SimulationResult) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, 0, len(result.Processes))
	for _, p := range result.Processes {
		rows = append(rows, []string{
			p.ID,
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.Burst),
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.CompletionTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.ResponseTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Priority", "Completion", "Turnaround", "Waiting", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "Average",
		fmt.Sprintf("%.2f", result.AverageTurnaround),
		fmt.Sprintf("%.2f", result.AverageWaiting),
		fmt.Sprintf("%.2f", result.AverageResponse)})
	table.Render()

	_, _ = fmt.Fprintf(w, "CPU utilization %.2f%%, throughput %.2f/t, %d context switches\n\n",
		result.CpuUtilization*100, result.Throughput, result.ContextSwitches)
}

// WriteTimelineCSV writes every segment of results as one CSV row.
func WriteTimelineCSV(w io.Writer, results []*core.SimulationResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"algorithm", "process_id", "start_time", "duration", "end_time", "color"}); err != nil {
		return err
	}
	for _, result := range results {
		for _, s := range result.Timeline {
			rec := []string{
				result.Algorithm,
				s.ProcessID,
				strconv.Itoa(s.StartTime),
				strconv.Itoa(s.Duration),
				strconv.Itoa(s.End()),
				util.ColorFor(s.ProcessID),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
