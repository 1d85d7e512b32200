package config

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"cpu-scheduler-sim/internal/core"
)

type SchedulerConfig struct {
	Port                                     int
	LogLevel                                 string
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
}

// Load reads the YAML config at path, or config.yaml in the working directory
// when path is empty. A missing default file yields the defaults.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("scheduler.round_robin.time_quantum", 4)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []int{5, 8})

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		logrus.Debug("no config.yaml found, using defaults")
	}

	cfg := &SchedulerConfig{
		Port:                                     v.GetInt("port"),
		LogLevel:                                 v.GetString("log_level"),
		RoundRobinTimeQuantum:                    v.GetInt("scheduler.round_robin.time_quantum"),
		MultilevelFeedbackQueueLevelsTimeQuantum: v.GetIntSlice("scheduler.multilevel_feedback_queue.levels_time_quantum"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SchedulerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return &core.ConfigurationError{Parameter: "port", Reason: fmt.Sprintf("out of range: %d", c.Port)}
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return &core.ConfigurationError{Parameter: "scheduler.round_robin.time_quantum", Reason: fmt.Sprintf("must be positive, got %d", c.RoundRobinTimeQuantum)}
	}
	if len(c.MultilevelFeedbackQueueLevelsTimeQuantum) == 0 {
		return &core.ConfigurationError{Parameter: "scheduler.multilevel_feedback_queue.levels_time_quantum", Reason: "at least one level is required"}
	}
	for _, q := range c.MultilevelFeedbackQueueLevelsTimeQuantum {
		if q <= 0 {
			return &core.ConfigurationError{Parameter: "scheduler.multilevel_feedback_queue.levels_time_quantum", Reason: fmt.Sprintf("must be positive, got %d", q)}
		}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return &core.ConfigurationError{Parameter: "log_level", Reason: err.Error()}
	}
	return nil
}
