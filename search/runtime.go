package search

import "github.com/hupe1980/lutgo/blend"

// Runtime selects one of the fixed strategies when it is constructed,
// letting configuration or data choose the search method instead of the
// type system. Dispatch costs one switch per call.
type Runtime[T blend.Float] struct {
	kind   Kind
	linear Linear[T]
	binary Binary[T]
	cached *CachedLinearCell[T]
}

// NewRuntime creates a Runtime strategy dispatching to the given kind.
func NewRuntime[T blend.Float](k Kind) (*Runtime[T], error) {
	r := &Runtime[T]{kind: k}
	switch k {
	case KindLinear, KindBinary:
	case KindCachedLinearCell:
		r.cached = NewCachedLinearCell[T]()
	default:
		return nil, &ErrUnknownKind{Kind: k}
	}
	return r, nil
}

// Locate implements Strategy.
func (r *Runtime[T]) Locate(samples []T, q T) (int, T) {
	switch r.kind {
	case KindBinary:
		return r.binary.Locate(samples, q)
	case KindCachedLinearCell:
		return r.cached.Locate(samples, q)
	default:
		return r.linear.Locate(samples, q)
	}
}

// Kind reports the kind selected at construction.
func (r *Runtime[T]) Kind() Kind { return r.kind }

// ConcurrentSafe implements Strategy. A Runtime is only as safe as the
// strategy it dispatches to.
func (r *Runtime[T]) ConcurrentSafe() bool {
	return r.kind != KindCachedLinearCell
}

// Clone implements Strategy.
func (r *Runtime[T]) Clone() Strategy[T] {
	c := &Runtime[T]{kind: r.kind}
	if r.cached != nil {
		c.cached = &CachedLinearCell[T]{last: r.cached.last}
	}
	return c
}
