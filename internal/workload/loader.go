// Package workload reads process sets from YAML or CSV files.
package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	yaml "github.com/goccy/go-yaml"

	"cpu-scheduler-sim/internal/core"
)

// File mirrors a YAML workload:
//
//	processes:
//	  - id: P1
//	    arrival: 0
//	    burst: 5
//	    priority: 2
type File struct {
	Processes []core.Process `yaml:"processes"`
}

// Load reads the workload at path; the extension picks the format.
func Load(path string) ([]core.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening workload: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReadYAML(f)
	case ".csv":
		return ReadCSV(f)
	default:
		return nil, fmt.Errorf("unsupported workload format %q (want .yaml, .yml or .csv)", filepath.Ext(path))
	}
}

func ReadYAML(r io.Reader) ([]core.Process, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing workload: %w", err)
	}

	registry := core.NewRegistry()
	for i, p := range file.Processes {
		if _, err := registry.Add(p.ID, p.ArrivalTime, p.Burst, p.Priority); err != nil {
			return nil, fmt.Errorf("process %d: %w", i, err)
		}
	}
	return registry.List(), nil
}

// ReadCSV reads rows of id,arrival,burst[,priority]. A leading header row is
// skipped.
func ReadCSV(r io.Reader) ([]core.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	registry := core.NewRegistry()
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("line %d: want 3 or 4 fields, got %d", i+1, len(row))
		}
		values := make([]int, 3)
		for j, field := range row[1:] {
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("line %d: field %d: %w", i+1, j+2, err)
			}
			values[j] = n
		}
		if _, err := registry.Add(row[0], values[0], values[1], values[2]); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return registry.List(), nil
}

func isHeader(row []string) bool {
	if len(row) < 2 {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(row[1]))
	return err != nil
}
