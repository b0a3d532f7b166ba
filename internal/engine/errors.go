package engine

import (
	"errors"
	"fmt"
)

// Domain errors for body and engine construction.
var (
	// ErrInvalidMass indicates a non-positive or non-finite body mass.
	ErrInvalidMass = errors.New("engine: body mass must be positive and finite")

	// ErrInvalidVector indicates a NaN or Inf component in position or velocity.
	ErrInvalidVector = errors.New("engine: position and velocity must be finite")

	// ErrNoBodies indicates an attempt to build an engine with an empty body set.
	ErrNoBodies = errors.New("engine: at least one body required")

	// ErrInvalidTimeStep indicates a non-positive or non-finite time step.
	ErrInvalidTimeStep = errors.New("engine: time step must be positive and finite")
)

// BodyError wraps a validation error with the offending body's identity.
type BodyError struct {
	Name    string
	Wrapped error
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("body %q: %s", e.Name, e.Wrapped)
}

func (e *BodyError) Unwrap() error {
	return e.Wrapped
}
