package lutgo

import (
	"errors"
	"fmt"
)

var (
	// ErrNilBlend is returned when a table is constructed without a blend
	// kernel.
	ErrNilBlend = errors.New("blend func must not be nil")

	// ErrNotConcurrentSafe is returned by parallel helpers when the table's
	// search strategy keeps per-call cache state. Clone the table per
	// goroutine instead.
	ErrNotConcurrentSafe = errors.New("table is not safe for concurrent lookups")
)

// ErrLengthMismatch indicates dependent data whose shape does not match the
// axis (or axes) it is paired with.
type ErrLengthMismatch struct {
	What     string // which dimension mismatched, e.g. "dependent values"
	Expected int
	Actual   int
}

// Error returns the error message for a shape mismatch.
func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: %s: expected %d, got %d", e.What, e.Expected, e.Actual)
}
