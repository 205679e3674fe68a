package deltablue

import (
	"errors"
	"fmt"
)

var (
	// ErrConstraintViolation is returned when a [Required] constraint cannot
	// be satisfied. It signals a graph that is over-constrained at required
	// strength.
	ErrConstraintViolation = errors.New("could not satisfy a required constraint")

	// ErrCycleDetected is returned when satisfying a constraint would close a
	// cycle in the dataflow graph. The offending constraint has already been
	// removed from the graph when this error is returned.
	ErrCycleDetected = errors.New("cycle encountered")

	// ErrNilVariable is returned by constraint constructors given a nil variable.
	ErrNilVariable = errors.New("constraint variable must not be nil")

	// ErrScenarioFailed is wrapped by every [ScenarioError].
	ErrScenarioFailed = errors.New("scenario check failed")
)

// ScenarioError reports a failed value check in [ChainTest] or [ProjectionTest].
type ScenarioError struct {
	Scenario string  // "chain" or "projection"
	Check    string  // which check failed
	Variable string  // variable whose value was wrong
	Want     float64 // expected value
	Got      float64 // actual value
}

// Error implements the error interface.
func (e *ScenarioError) Error() string {
	return fmt.Sprintf("%s: %s: %s = %g, want %g", e.Scenario, e.Check, e.Variable, e.Got, e.Want)
}

// Unwrap lets errors.Is match [ErrScenarioFailed].
func (e *ScenarioError) Unwrap() error { return ErrScenarioFailed }
