package search

import "github.com/hupe1980/lutgo/blend"

// Linear scans the samples sequentially from the front. It has the lowest
// constant factor for small axes (roughly under 20 samples) thanks to
// sequential memory access.
type Linear[T blend.Float] struct{}

// NewLinear creates a Linear strategy.
func NewLinear[T blend.Float]() Linear[T] {
	return Linear[T]{}
}

// Locate implements Strategy.
func (Linear[T]) Locate(samples []T, q T) (int, T) {
	n := len(samples)
	lower := n - 2
	for i := 1; i < n-1; i++ {
		if q < samples[i] {
			lower = i - 1
			break
		}
	}
	return lower, fracAt(samples, lower, q)
}

// Kind implements Strategy.
func (Linear[T]) Kind() Kind { return KindLinear }

// ConcurrentSafe implements Strategy. Linear keeps no state.
func (Linear[T]) ConcurrentSafe() bool { return true }

// Clone implements Strategy.
func (l Linear[T]) Clone() Strategy[T] { return l }
