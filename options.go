package lutgo

import (
	"github.com/hupe1980/lutgo/blend"
	"github.com/hupe1980/lutgo/bound"
)

type config[T blend.Float] struct {
	xLower, xUpper bound.Policy[T]
	yLower, yUpper bound.Policy[T]
	logger         *Logger
	metrics        MetricsCollector
}

func newConfig[T blend.Float](opts []Option[T]) config[T] {
	cfg := config[T]{logger: defaultLogger}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures table construction.
//
// Options primarily exist to avoid exploding the constructor surface:
// boundary policies, logging and metrics are all orthogonal to the
// sample data itself.
type Option[T blend.Float] func(*config[T])

// WithBounds sets the lower and upper boundary policies. For 2D tables it
// applies to both axes; WithXBounds/WithYBounds override per axis. The
// default for every end is Clamp.
func WithBounds[T blend.Float](lower, upper bound.Policy[T]) Option[T] {
	return func(c *config[T]) {
		c.xLower, c.xUpper = lower, upper
		c.yLower, c.yUpper = lower, upper
	}
}

// WithXBounds sets the boundary policies of the x axis of a 2D table.
func WithXBounds[T blend.Float](lower, upper bound.Policy[T]) Option[T] {
	return func(c *config[T]) {
		c.xLower, c.xUpper = lower, upper
	}
}

// WithYBounds sets the boundary policies of the y axis of a 2D table.
func WithYBounds[T blend.Float](lower, upper bound.Policy[T]) Option[T] {
	return func(c *config[T]) {
		c.yLower, c.yUpper = lower, upper
	}
}

// WithLogger sets the logger used by the table. If nil is passed, logging
// is disabled.
func WithLogger[T blend.Float](logger *Logger) Option[T] {
	return func(c *config[T]) {
		if logger == nil {
			logger = defaultLogger
		}
		c.logger = logger
	}
}

// WithMetrics sets the metrics collector notified on every lookup. Without
// a collector, lookups skip timing entirely.
func WithMetrics[T blend.Float](collector MetricsCollector) Option[T] {
	return func(c *config[T]) {
		c.metrics = collector
	}
}
