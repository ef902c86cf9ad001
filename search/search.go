// Package search provides bracketing search strategies over the ordered
// sample set of an axis.
//
// Every strategy returns the same mathematical result for the same query;
// they differ only in cost profile and in whether a shared instance may
// serve concurrent lookups (see Strategy.ConcurrentSafe).
package search

import (
	"fmt"

	"github.com/hupe1980/lutgo/blend"
)

// Kind identifies a search strategy.
type Kind int

// Constants representing the built-in search strategies.
const (
	KindLinear Kind = iota
	KindBinary
	KindCachedLinearCell
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "Linear"
	case KindBinary:
		return "Binary"
	case KindCachedLinearCell:
		return "CachedLinearCell"
	default:
		return "Unknown"
	}
}

// ErrUnknownKind indicates an unsupported search kind.
type ErrUnknownKind struct {
	Kind Kind
}

// Error returns the error message for an unknown search kind.
func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("unknown search kind: %d", int(e.Kind))
}

// Strategy locates the bracket containing a query value.
type Strategy[T blend.Float] interface {
	// Locate returns the lower index of the bracket
	// [samples[lower], samples[lower+1]] nearest to q, with lower in
	// [0, len(samples)-2], and the fractional position of q within that
	// bracket. The fraction is raw: it falls below 0 or above 1 when q lies
	// outside the sample range. Boundary handling is the axis's concern,
	// not the strategy's.
	//
	// Locate assumes samples is strictly increasing with at least two
	// entries; the axis guarantees this at construction.
	Locate(samples []T, q T) (lower int, frac T)

	// Kind reports which built-in strategy this is. Snapshots use it to
	// reconstruct a table's search configuration.
	Kind() Kind

	// ConcurrentSafe reports whether a shared instance may serve Locate
	// calls from multiple goroutines without external synchronization.
	ConcurrentSafe() bool

	// Clone returns a strategy with an independent copy of any mutable
	// cache state. Stateless strategies return themselves.
	Clone() Strategy[T]
}

// New returns a strategy of the given kind with default state.
func New[T blend.Float](k Kind) (Strategy[T], error) {
	switch k {
	case KindLinear:
		return Linear[T]{}, nil
	case KindBinary:
		return Binary[T]{}, nil
	case KindCachedLinearCell:
		return NewCachedLinearCell[T](), nil
	default:
		return nil, &ErrUnknownKind{Kind: k}
	}
}

// fracAt computes the fractional position of q within the bracket starting
// at lower. Exactly 0 when q equals the lower sample and exactly 1 when q
// equals the upper one.
func fracAt[T blend.Float](samples []T, lower int, q T) T {
	return (q - samples[lower]) / (samples[lower+1] - samples[lower])
}

// clampLower caps a candidate lower index to the valid bracket range
// [0, n-2].
func clampLower(i, n int) int {
	if i > n-2 {
		i = n - 2
	}
	if i < 0 {
		i = 0
	}
	return i
}
