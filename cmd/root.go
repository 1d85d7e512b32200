package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler-sim/config"
)

var (
	configPath string // Path to config.yaml; empty searches the working directory
	logLevel   string // Log verbosity level; empty uses the config file's
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cpu-scheduler",
	Short: "Simulate classic CPU scheduling algorithms",
}

// loadConfig reads the config and applies the log level, the flag winning
// over the file.
func loadConfig() (*config.SchedulerConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	levelName := cfg.LogLevel
	if logLevel != "" {
		levelName = logLevel
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	logrus.SetLevel(level)
	return cfg, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the YAML config file (default ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
}
