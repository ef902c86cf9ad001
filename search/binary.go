package search

import (
	"sort"

	"github.com/hupe1980/lutgo/blend"
)

// Binary bisects the sample array. Preferred for large axes; O(log n).
type Binary[T blend.Float] struct{}

// NewBinary creates a Binary strategy.
func NewBinary[T blend.Float]() Binary[T] {
	return Binary[T]{}
}

// Locate implements Strategy.
func (Binary[T]) Locate(samples []T, q T) (int, T) {
	// First index whose sample exceeds q; the bracket starts one below it.
	idx := sort.Search(len(samples), func(i int) bool { return samples[i] > q })
	lower := clampLower(idx-1, len(samples))
	return lower, fracAt(samples, lower, q)
}

// Kind implements Strategy.
func (Binary[T]) Kind() Kind { return KindBinary }

// ConcurrentSafe implements Strategy. Binary keeps no state.
func (Binary[T]) ConcurrentSafe() bool { return true }

// Clone implements Strategy.
func (b Binary[T]) Clone() Strategy[T] { return b }
