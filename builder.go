// Package lutgo provides generic interpolating lookup tables.
//
// This file implements fluent builder APIs for constructing tables.
// Builders are immutable - each method returns a new builder with the
// updated configuration.
package lutgo

import (
	"github.com/hupe1980/lutgo/blend"
	"github.com/hupe1980/lutgo/bound"
	"github.com/hupe1980/lutgo/search"
)

// =============================================================================
// 1D Builder (Immutable)
// =============================================================================

// Table1D creates a builder for a scalar-valued one-dimensional table.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration, so partially configured builders can be shared
// safely.
//
// Example:
//
//	table, err := lutgo.Table1D[float64]().
//	    X(xs).
//	    Values(ys).
//	    Binary().
//	    Clamp().
//	    Build()
func Table1D[T blend.Float]() Table1DBuilder[T] {
	return Table1DBuilder[T]{}
}

// Table1DBuilder is an immutable fluent builder for LookupTable1D.
type Table1DBuilder[T blend.Float] struct {
	x        []T
	values   []T
	strategy search.Strategy[T]
	lower    bound.Policy[T]
	upper    bound.Policy[T]
	logger   *Logger
	metrics  MetricsCollector
}

// X sets the independent sample ordinates.
func (b Table1DBuilder[T]) X(samples []T) Table1DBuilder[T] {
	b.x = samples
	return b
}

// Values sets the dependent values, aligned 1:1 with X.
func (b Table1DBuilder[T]) Values(values []T) Table1DBuilder[T] {
	b.values = values
	return b
}

// Linear selects sequential search. Fastest for small axes.
func (b Table1DBuilder[T]) Linear() Table1DBuilder[T] {
	b.strategy = search.Linear[T]{}
	return b
}

// Binary selects bisection search. Preferred for large axes; the default.
func (b Table1DBuilder[T]) Binary() Table1DBuilder[T] {
	b.strategy = search.Binary[T]{}
	return b
}

// CachedLinearCell selects cached linear search. See the search package for
// the concurrency caveat.
func (b Table1DBuilder[T]) CachedLinearCell() Table1DBuilder[T] {
	b.strategy = search.NewCachedLinearCell[T]()
	return b
}

// Search sets an explicit search strategy, e.g. a search.Runtime.
func (b Table1DBuilder[T]) Search(strategy search.Strategy[T]) Table1DBuilder[T] {
	b.strategy = strategy
	return b
}

// Clamp saturates lookups at both ends of the axis. The default.
func (b Table1DBuilder[T]) Clamp() Table1DBuilder[T] {
	b.lower, b.upper = bound.Clamp[T]{}, bound.Clamp[T]{}
	return b
}

// Extrapolate extrapolates linearly beyond both ends of the axis.
func (b Table1DBuilder[T]) Extrapolate() Table1DBuilder[T] {
	b.lower, b.upper = bound.Interp[T]{}, bound.Interp[T]{}
	return b
}

// LowerBound sets the policy applied below the lowest sample.
func (b Table1DBuilder[T]) LowerBound(p bound.Policy[T]) Table1DBuilder[T] {
	b.lower = p
	return b
}

// UpperBound sets the policy applied above the highest sample.
func (b Table1DBuilder[T]) UpperBound(p bound.Policy[T]) Table1DBuilder[T] {
	b.upper = p
	return b
}

// WithLogger sets the logger used by the table.
func (b Table1DBuilder[T]) WithLogger(logger *Logger) Table1DBuilder[T] {
	b.logger = logger
	return b
}

// WithMetrics sets the metrics collector notified on every lookup.
func (b Table1DBuilder[T]) WithMetrics(collector MetricsCollector) Table1DBuilder[T] {
	b.metrics = collector
	return b
}

// Build validates the configuration and constructs the table.
func (b Table1DBuilder[T]) Build() (*LookupTable1D[T, T], error) {
	opts := []Option[T]{WithBounds(b.lower, b.upper)}
	if b.logger != nil {
		opts = append(opts, WithLogger[T](b.logger))
	}
	if b.metrics != nil {
		opts = append(opts, WithMetrics[T](b.metrics))
	}
	return New1D(b.x, b.strategy, b.values, opts...)
}

// =============================================================================
// 2D Builder (Immutable)
// =============================================================================

// Table2D creates a builder for a scalar-valued two-dimensional table.
//
// Example:
//
//	table, err := lutgo.Table2D[float64]().
//	    X(xs).
//	    Y(ys).
//	    Values(grid).
//	    Binary().
//	    Extrapolate().
//	    Build()
func Table2D[T blend.Float]() Table2DBuilder[T] {
	return Table2DBuilder[T]{}
}

// Table2DBuilder is an immutable fluent builder for LookupTable2D.
type Table2DBuilder[T blend.Float] struct {
	x, y           []T
	values         [][]T
	xStrategy      search.Strategy[T]
	yStrategy      search.Strategy[T]
	xLower, xUpper bound.Policy[T]
	yLower, yUpper bound.Policy[T]
	logger         *Logger
	metrics        MetricsCollector
}

// X sets the sample ordinates of the first axis.
func (b Table2DBuilder[T]) X(samples []T) Table2DBuilder[T] {
	b.x = samples
	return b
}

// Y sets the sample ordinates of the second axis.
func (b Table2DBuilder[T]) Y(samples []T) Table2DBuilder[T] {
	b.y = samples
	return b
}

// Values sets the dependent matrix with len(x) rows of len(y) values.
func (b Table2DBuilder[T]) Values(values [][]T) Table2DBuilder[T] {
	b.values = values
	return b
}

// Linear selects sequential search for both axes.
func (b Table2DBuilder[T]) Linear() Table2DBuilder[T] {
	b.xStrategy, b.yStrategy = search.Linear[T]{}, search.Linear[T]{}
	return b
}

// Binary selects bisection search for both axes; the default.
func (b Table2DBuilder[T]) Binary() Table2DBuilder[T] {
	b.xStrategy, b.yStrategy = search.Binary[T]{}, search.Binary[T]{}
	return b
}

// XSearch sets the search strategy of the first axis.
func (b Table2DBuilder[T]) XSearch(strategy search.Strategy[T]) Table2DBuilder[T] {
	b.xStrategy = strategy
	return b
}

// YSearch sets the search strategy of the second axis.
func (b Table2DBuilder[T]) YSearch(strategy search.Strategy[T]) Table2DBuilder[T] {
	b.yStrategy = strategy
	return b
}

// Clamp saturates lookups at every end of both axes. The default.
func (b Table2DBuilder[T]) Clamp() Table2DBuilder[T] {
	b.xLower, b.xUpper = bound.Clamp[T]{}, bound.Clamp[T]{}
	b.yLower, b.yUpper = bound.Clamp[T]{}, bound.Clamp[T]{}
	return b
}

// Extrapolate extrapolates linearly beyond every end of both axes.
func (b Table2DBuilder[T]) Extrapolate() Table2DBuilder[T] {
	b.xLower, b.xUpper = bound.Interp[T]{}, bound.Interp[T]{}
	b.yLower, b.yUpper = bound.Interp[T]{}, bound.Interp[T]{}
	return b
}

// XBounds sets the lower and upper policies of the first axis.
func (b Table2DBuilder[T]) XBounds(lower, upper bound.Policy[T]) Table2DBuilder[T] {
	b.xLower, b.xUpper = lower, upper
	return b
}

// YBounds sets the lower and upper policies of the second axis.
func (b Table2DBuilder[T]) YBounds(lower, upper bound.Policy[T]) Table2DBuilder[T] {
	b.yLower, b.yUpper = lower, upper
	return b
}

// WithLogger sets the logger used by the table.
func (b Table2DBuilder[T]) WithLogger(logger *Logger) Table2DBuilder[T] {
	b.logger = logger
	return b
}

// WithMetrics sets the metrics collector notified on every lookup.
func (b Table2DBuilder[T]) WithMetrics(collector MetricsCollector) Table2DBuilder[T] {
	b.metrics = collector
	return b
}

// Build validates the configuration and constructs the table.
func (b Table2DBuilder[T]) Build() (*LookupTable2D[T, T], error) {
	opts := []Option[T]{
		WithXBounds(b.xLower, b.xUpper),
		WithYBounds(b.yLower, b.yUpper),
	}
	if b.logger != nil {
		opts = append(opts, WithLogger[T](b.logger))
	}
	if b.metrics != nil {
		opts = append(opts, WithMetrics[T](b.metrics))
	}
	return New2D(b.x, b.xStrategy, b.y, b.yStrategy, b.values, opts...)
}
