package planner

import "fmt"

// ConfigError marks malformed planning definitions: bad requirement
// groups, bad constraints, duplicate catalog entries. Fatal before any
// simulation starts.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return "configuration: " + e.Message
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}

// IntegrityError marks broken references in the planning data: a rule or
// group naming an unknown course, or a cycle in the prerequisite graph.
// Fatal at engine construction.
type IntegrityError struct {
	Message string
}

func (e *IntegrityError) Error() string {
	return "referential integrity: " + e.Message
}

func integrityErrorf(format string, args ...any) *IntegrityError {
	return &IntegrityError{Message: fmt.Sprintf(format, args...)}
}
