// Package axis composes an ordered sample set with a search strategy and
// two boundary policies, forming one independent variable of a lookup
// table.
package axis

import (
	"fmt"
	"slices"

	"github.com/hupe1980/lutgo/blend"
	"github.com/hupe1980/lutgo/bound"
	"github.com/hupe1980/lutgo/search"
)

// ErrInsufficientSamples indicates an axis with fewer than two samples.
type ErrInsufficientSamples struct {
	Count int
}

// Error returns the error message for too few samples.
func (e *ErrInsufficientSamples) Error() string {
	return fmt.Sprintf("axis requires at least 2 samples, got %d", e.Count)
}

// ErrNonMonotonic indicates axis samples that are not strictly increasing.
//
// Malformed input is never repaired: duplicate entries and decreasing or
// unsorted data all fail construction rather than being sorted or reversed.
type ErrNonMonotonic struct {
	// Index is the position of the first sample that is not strictly
	// greater than its predecessor.
	Index int
}

// Error returns the error message for a non-monotonic axis.
func (e *ErrNonMonotonic) Error() string {
	return fmt.Sprintf("axis samples must be strictly increasing, violation at index %d", e.Index)
}

// Axis pairs strictly increasing samples with the search strategy and
// boundary policies used to resolve queries against them.
//
// An Axis is immutable after construction. The only exception is the cache
// hint inside a CachedLinearCell strategy, which affects lookup cost but
// never the result; see ConcurrentSafe.
type Axis[T blend.Float] struct {
	samples  []T
	strategy search.Strategy[T]
	lower    bound.Policy[T]
	upper    bound.Policy[T]
}

// New validates the samples and builds an axis. The slice is copied, so
// later mutation by the caller cannot corrupt the axis.
//
// A nil strategy defaults to Binary; nil policies default to Clamp.
func New[T blend.Float](samples []T, strategy search.Strategy[T], lower, upper bound.Policy[T]) (*Axis[T], error) {
	if len(samples) < 2 {
		return nil, &ErrInsufficientSamples{Count: len(samples)}
	}
	if i := firstDisorder(samples); i >= 0 {
		return nil, &ErrNonMonotonic{Index: i}
	}

	if strategy == nil {
		strategy = search.Binary[T]{}
	}
	if lower == nil {
		lower = bound.Clamp[T]{}
	}
	if upper == nil {
		upper = bound.Clamp[T]{}
	}

	return &Axis[T]{
		samples:  slices.Clone(samples),
		strategy: strategy,
		lower:    lower,
		upper:    upper,
	}, nil
}

// firstDisorder returns the index of the first sample that is not strictly
// greater than its predecessor, or -1 when the samples are strictly
// increasing. NaN samples compare false and are therefore rejected too.
func firstDisorder[T blend.Float](samples []T) int {
	for i := 1; i < len(samples); i++ {
		if !(samples[i] > samples[i-1]) {
			return i
		}
	}
	return -1
}

// Resolve locates the bracket for q and returns its lower index together
// with the boundary-adjusted fraction of q within it.
func (a *Axis[T]) Resolve(q T) (lower int, frac T) {
	lower, frac = a.strategy.Locate(a.samples, q)
	switch {
	case frac < 0:
		frac = a.lower.Below(frac)
	case frac > 1:
		frac = a.upper.Above(frac)
	}
	return lower, frac
}

// Len returns the number of samples.
func (a *Axis[T]) Len() int { return len(a.samples) }

// At returns the sample ordinate at index i.
func (a *Axis[T]) At(i int) T { return a.samples[i] }

// Min returns the lowest sample ordinate.
func (a *Axis[T]) Min() T { return a.samples[0] }

// Max returns the highest sample ordinate.
func (a *Axis[T]) Max() T { return a.samples[len(a.samples)-1] }

// Samples returns a copy of the sample ordinates.
func (a *Axis[T]) Samples() []T { return slices.Clone(a.samples) }

// ConcurrentSafe reports whether the axis may serve concurrent lookups from
// a shared instance. It is false exactly when the search strategy keeps
// mutable cache state.
func (a *Axis[T]) ConcurrentSafe() bool { return a.strategy.ConcurrentSafe() }

// Clone returns an axis sharing the immutable samples and policies but
// owning an independent copy of any strategy cache state.
func (a *Axis[T]) Clone() *Axis[T] {
	return &Axis[T]{
		samples:  a.samples,
		strategy: a.strategy.Clone(),
		lower:    a.lower,
		upper:    a.upper,
	}
}

// SearchKind reports the kind of the axis's search strategy.
func (a *Axis[T]) SearchKind() search.Kind { return a.strategy.Kind() }

// LowerBoundKind reports the kind of the lower boundary policy.
func (a *Axis[T]) LowerBoundKind() bound.Kind { return a.lower.Kind() }

// UpperBoundKind reports the kind of the upper boundary policy.
func (a *Axis[T]) UpperBoundKind() bound.Kind { return a.upper.Kind() }
