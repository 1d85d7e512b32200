package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/render"
	"cpu-scheduler-sim/internal/schedulers"
	"cpu-scheduler-sim/internal/workload"
)

var (
	algorithmName string // fcfs, sjf, srtf, priority, rr, mlfq or all
	workloadPath  string // YAML or CSV process set
	quantum       int    // Round-Robin quantum; 0 uses the config's
	levelQuanta   []int  // MLFQ level quanta; empty uses the config's
	csvPath       string // Optional timeline CSV output
)

// runCmd simulates one algorithm, or all of them, over a workload file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scheduling simulation over a workload file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if workloadPath == "" {
			return fmt.Errorf("--processes is required")
		}
		processes, err := workload.Load(workloadPath)
		if err != nil {
			return err
		}
		logrus.Infof("loaded %d processes from %s", len(processes), workloadPath)

		results, err := simulate(cfg, processes)
		if err != nil {
			return err
		}
		return report(cmd.OutOrStdout(), results)
	},
}

func simulate(cfg *config.SchedulerConfig, processes []core.Process) ([]*core.SimulationResult, error) {
	opts := schedulers.Options{Quantum: quantum, LevelQuanta: levelQuanta}
	if opts.Quantum == 0 {
		opts.Quantum = cfg.RoundRobinTimeQuantum
	}
	if len(opts.LevelQuanta) == 0 {
		opts.LevelQuanta = cfg.MultilevelFeedbackQueueLevelsTimeQuantum
	}

	if algorithmName == "all" {
		return schedulers.RunAll(schedulers.Algorithms, processes, opts)
	}
	algorithm, err := schedulers.ParseAlgorithm(algorithmName)
	if err != nil {
		return nil, err
	}
	result, err := schedulers.Run(algorithm, processes, opts)
	if err != nil {
		return nil, err
	}
	return []*core.SimulationResult{result}, nil
}

func report(w io.Writer, results []*core.SimulationResult) error {
	for _, result := range results {
		render.WriteResult(w, result)
	}
	if csvPath == "" {
		return nil
	}

	f, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := render.WriteTimelineCSV(f, results); err != nil {
		return err
	}
	logrus.Infof("timeline written to %s", csvPath)
	return nil
}

func init() {
	runCmd.Flags().StringVarP(&algorithmName, "algorithm", "a", "all", "Scheduling algorithm (fcfs, sjf, srtf, priority, rr, mlfq, all)")
	runCmd.Flags().StringVarP(&workloadPath, "processes", "p", "", "Workload file (.yaml, .yml or .csv)")
	runCmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round-Robin time quantum (default from config)")
	runCmd.Flags().IntSliceVar(&levelQuanta, "levels", nil, "Comma-separated MLFQ level quanta (default from config)")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "Write the timeline as CSV to this path")
}
