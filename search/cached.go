package search

import "github.com/hupe1980/lutgo/blend"

// CachedLinearCell scans linearly outward from the bracket found by the
// previous call. Amortized O(1) when successive queries land near each
// other (slowly varying time series); O(n) worst case.
//
// The cached index is mutable state owned by this instance. It is a
// performance hint only and never changes the mathematical result, but it
// makes a shared instance unsafe for concurrent lookups: give each
// goroutine its own instance (or Clone the owning table) or serialize
// calls externally.
type CachedLinearCell[T blend.Float] struct {
	last int
}

// NewCachedLinearCell creates a CachedLinearCell starting its first scan
// from the lowest bracket.
func NewCachedLinearCell[T blend.Float]() *CachedLinearCell[T] {
	return &CachedLinearCell[T]{}
}

// NewCachedLinearCellAt creates a CachedLinearCell seeded with a starting
// bracket index. Negative indices are treated as zero; indices beyond the
// axis are capped on first use.
func NewCachedLinearCellAt[T blend.Float](lower int) *CachedLinearCell[T] {
	if lower < 0 {
		lower = 0
	}
	return &CachedLinearCell[T]{last: lower}
}

// Locate implements Strategy.
func (c *CachedLinearCell[T]) Locate(samples []T, q T) (int, T) {
	i := clampLower(c.last, len(samples))
	for i > 0 && q < samples[i] {
		i--
	}
	for i < len(samples)-2 && q >= samples[i+1] {
		i++
	}
	c.last = i
	return i, fracAt(samples, i, q)
}

// Kind implements Strategy.
func (*CachedLinearCell[T]) Kind() Kind { return KindCachedLinearCell }

// ConcurrentSafe implements Strategy. Locate mutates the cached index, so
// shared instances are not safe for concurrent use.
func (*CachedLinearCell[T]) ConcurrentSafe() bool { return false }

// Clone implements Strategy. The clone starts from the same cached bracket
// but evolves independently.
func (c *CachedLinearCell[T]) Clone() Strategy[T] {
	return &CachedLinearCell[T]{last: c.last}
}
