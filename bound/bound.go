// Package bound provides boundary policies deciding how lookups behave
// beyond the ends of an axis.
//
// A policy sees only the raw bracket fraction produced by a search
// strategy: Below is consulted when the fraction is negative (query under
// the lowest sample), Above when it exceeds one (query over the highest
// sample). In-range fractions never reach a policy. Each axis end is
// configured independently, since physical bounds are frequently
// asymmetric (e.g. clamp below, extrapolate above).
package bound

import (
	"fmt"

	"github.com/hupe1980/lutgo/blend"
)

// Kind identifies a boundary policy.
type Kind int

// Constants representing the built-in boundary policies.
const (
	KindClamp Kind = iota
	KindInterp
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindClamp:
		return "Clamp"
	case KindInterp:
		return "Interp"
	default:
		return "Unknown"
	}
}

// ErrUnknownKind indicates an unsupported boundary kind.
type ErrUnknownKind struct {
	Kind Kind
}

// Error returns the error message for an unknown boundary kind.
func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("unknown boundary kind: %d", int(e.Kind))
}

// Policy maps an out-of-range bracket fraction onto the bracket.
type Policy[T blend.Float] interface {
	// Below adjusts a fraction smaller than 0.
	Below(frac T) T

	// Above adjusts a fraction greater than 1.
	Above(frac T) T

	// Kind reports which built-in policy this is.
	Kind() Kind
}

// Clamp saturates lookups to the nearest boundary sample value: fractions
// below range become 0, fractions above range become 1. No extrapolation
// occurs.
type Clamp[T blend.Float] struct{}

// Below implements Policy.
func (Clamp[T]) Below(T) T { return 0 }

// Above implements Policy.
func (Clamp[T]) Above(T) T { return 1 }

// Kind implements Policy.
func (Clamp[T]) Kind() Kind { return KindClamp }

// Interp passes the raw fraction through unchanged, so the blend applies
// the slope of the boundary bracket beyond the range: linear
// extrapolation.
type Interp[T blend.Float] struct{}

// Below implements Policy.
func (Interp[T]) Below(frac T) T { return frac }

// Above implements Policy.
func (Interp[T]) Above(frac T) T { return frac }

// Kind implements Policy.
func (Interp[T]) Kind() Kind { return KindInterp }

// New returns the policy of the given kind.
func New[T blend.Float](k Kind) (Policy[T], error) {
	switch k {
	case KindClamp:
		return Clamp[T]{}, nil
	case KindInterp:
		return Interp[T]{}, nil
	default:
		return nil, &ErrUnknownKind{Kind: k}
	}
}
