// Package simulation - Termination Conditions
// A termination condition is a predicate over the statistics of the step
// that just completed. The engine evaluates it after every step; a
// predicate error is unrecoverable and fails the run.
package simulation

import "fmt"

// Termination decides whether a run should stop. It receives the result of
// the step that just completed and returns true to terminate. A non-nil
// error moves the engine to the failed phase.
type Termination[A any] func(result *StepResult[A]) (bool, error)

// GenerationLimit terminates once the generation counter reaches limit.
// A limit below 1 is a configuration mistake and errors on first use.
func GenerationLimit[A any](limit uint64) Termination[A] {
	return func(result *StepResult[A]) (bool, error) {
		if limit < 1 {
			return false, fmt.Errorf("generation limit must be at least 1, got %d", limit)
		}
		return result.Generation >= limit, nil
	}
}

// FitnessLimit terminates once the best fitness reaches target.
func FitnessLimit[A any](target float64) Termination[A] {
	return func(result *StepResult[A]) (bool, error) {
		return result.Best.Fitness >= target, nil
	}
}

// Or terminates when any of the conditions holds.
func Or[A any](conditions ...Termination[A]) Termination[A] {
	return func(result *StepResult[A]) (bool, error) {
		for _, cond := range conditions {
			stop, err := cond(result)
			if err != nil {
				return false, err
			}
			if stop {
				return true, nil
			}
		}
		return false, nil
	}
}

// And terminates only when every condition holds.
func And[A any](conditions ...Termination[A]) Termination[A] {
	return func(result *StepResult[A]) (bool, error) {
		for _, cond := range conditions {
			stop, err := cond(result)
			if err != nil {
				return false, err
			}
			if !stop {
				return false, nil
			}
		}
		return len(conditions) > 0, nil
	}
}
