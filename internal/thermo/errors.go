package thermo

import (
	"errors"
	"fmt"
)

// Domain errors for scheduler operations.
var (
	// ErrInvalidTimestep indicates a non-positive dt in a run config.
	ErrInvalidTimestep = errors.New("thermo: timestep must be positive")

	// ErrInvalidDuration indicates a non-positive run duration.
	ErrInvalidDuration = errors.New("thermo: duration must be positive")

	// ErrInvalidWorkers indicates a negative worker count.
	ErrInvalidWorkers = errors.New("thermo: workers must be non-negative")

	// ErrPairBounds indicates a contact pair referencing a body index
	// outside the body slice.
	ErrPairBounds = errors.New("thermo: contact pair index out of range")

	// ErrEmptyMesh indicates a run over zero bodies.
	ErrEmptyMesh = errors.New("thermo: no bodies to simulate")
)

// TickError records a recoverable anomaly observed during one tick.
type TickError struct {
	Step    int
	Time    float64
	Message string
}

func (e TickError) Error() string {
	return fmt.Sprintf("tick %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}
