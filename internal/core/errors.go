package core

import "fmt"

// ValidationError reports an invalid process attribute.
type ValidationError struct {
	ProcessID string
	Field     string
	Reason    string
}

func (e *ValidationError) Error() string {
	if e.ProcessID == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("process %s: invalid %s: %s", e.ProcessID, e.Field, e.Reason)
}

// ConfigurationError reports a missing or invalid algorithm parameter.
type ConfigurationError struct {
	Parameter string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Parameter, e.Reason)
}

// EmptyInputError is returned when a simulation is requested with no processes.
type EmptyInputError struct {
	Algorithm string
}

func (e *EmptyInputError) Error() string {
	if e.Algorithm == "" {
		return "no processes to schedule"
	}
	return fmt.Sprintf("%s: no processes to schedule", e.Algorithm)
}
