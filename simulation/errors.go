// Package simulation - Error Taxonomy
// Two failure classes: configuration errors surface at build time and are
// fixed by changing inputs; simulation errors surface during a step and
// move the engine to its failed phase. The engine never auto-retries; a
// new run starts from a new builder.
package simulation

import (
	"errors"
	"fmt"
)

var (
	// ErrTerminated is returned when stepping an engine whose termination
	// condition has already been satisfied.
	ErrTerminated = errors.New("simulation: run already terminated")

	// ErrFailed is returned when stepping an engine that previously hit an
	// unrecoverable error.
	ErrFailed = errors.New("simulation: run previously failed")

	// ErrPopulationCollapsed signals the population became empty after
	// replacement.
	ErrPopulationCollapsed = errors.New("simulation: population collapsed to zero individuals")

	// ErrGenomeShapeViolation signals an operator produced offspring whose
	// shape differs from the run's fixed genome shape.
	ErrGenomeShapeViolation = errors.New("simulation: operator violated genome shape")
)

// ConfigError reports an invalid engine configuration detected at build
// time. Stepping never produces one.
type ConfigError struct {
	// Field names the offending builder input.
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("simulation: invalid configuration: %s: %s", e.Field, e.Reason)
}

// IsConfigError reports whether err is a configuration error.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// SimError reports a runtime condition detected during a step. It records
// the generation the step was producing when the failure occurred.
type SimError struct {
	Generation uint64
	Err        error
}

func (e *SimError) Error() string {
	return fmt.Sprintf("simulation: step toward generation %d failed: %v", e.Generation, e.Err)
}

func (e *SimError) Unwrap() error { return e.Err }

// IsSimError reports whether err is a runtime simulation error.
func IsSimError(err error) bool {
	var se *SimError
	return errors.As(err, &se)
}
