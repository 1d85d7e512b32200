package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler-sim/internal/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_NoConfigFile_UsesDefaults(t *testing.T) {
	// GIVEN a working directory without config.yaml
	// WHEN Load is called with no path
	cfg, err := Load("")

	// THEN the defaults apply
	require.NoError(t, err)
	assert.Equal(t, &SchedulerConfig{
		Port:                                     9095,
		LogLevel:                                 "info",
		RoundRobinTimeQuantum:                    4,
		MultilevelFeedbackQueueLevelsTimeQuantum: []int{5, 8},
	}, cfg)
}

func TestLoad_File_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
port: 8080
log_level: debug
scheduler:
  round_robin:
    time_quantum: 3
  multilevel_feedback_queue:
    levels_time_quantum: [2, 4, 6]
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3, cfg.RoundRobinTimeQuantum)
	assert.Equal(t, []int{2, 4, 6}, cfg.MultilevelFeedbackQueueLevelsTimeQuantum)
}

func TestLoad_PartialFile_KeepsOtherDefaults(t *testing.T) {
	path := writeConfig(t, "port: 7000\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, 4, cfg.RoundRobinTimeQuantum)
}

func TestLoad_NonPositiveQuantum_ReturnsConfigurationError(t *testing.T) {
	path := writeConfig(t, `
scheduler:
  round_robin:
    time_quantum: 0
`)

	_, err := Load(path)

	var configErr *core.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "scheduler.round_robin.time_quantum", configErr.Parameter)
}

func TestLoad_BadLevelQuantum_ReturnsConfigurationError(t *testing.T) {
	path := writeConfig(t, `
scheduler:
  multilevel_feedback_queue:
    levels_time_quantum: [3, -1]
`)

	_, err := Load(path)

	var configErr *core.ConfigurationError
	assert.ErrorAs(t, err, &configErr)
}

func TestLoad_BadLogLevel_ReturnsConfigurationError(t *testing.T) {
	_, err := Load(writeConfig(t, "log_level: loud\n"))

	var configErr *core.ConfigurationError
	assert.ErrorAs(t, err, &configErr)
}

func TestLoad_MissingExplicitFile_ReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}
