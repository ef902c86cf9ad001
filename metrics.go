package lutgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// Lookups are nanosecond-scale, so timing is only taken when a collector is
// configured; tables without one pay no instrumentation cost.
type MetricsCollector interface {
	// RecordLookup is called after each Lookup with the time it took.
	RecordLookup(duration time.Duration)

	// RecordBatch is called after each batch evaluation. count is the
	// number of queries evaluated, duration the total time taken.
	RecordBatch(count int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

// RecordLookup implements MetricsCollector.
func (NoopMetricsCollector) RecordLookup(time.Duration) {}

// RecordBatch implements MetricsCollector.
func (NoopMetricsCollector) RecordBatch(int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LookupCount      atomic.Int64
	LookupTotalNanos atomic.Int64
	BatchCount       atomic.Int64
	BatchItems       atomic.Int64
	BatchTotalNanos  atomic.Int64
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(duration time.Duration) {
	b.LookupCount.Add(1)
	b.LookupTotalNanos.Add(duration.Nanoseconds())
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(count))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
}

// AverageLookup returns the mean lookup duration observed so far, or zero
// when no lookups were recorded.
func (b *BasicMetricsCollector) AverageLookup() time.Duration {
	n := b.LookupCount.Load()
	if n == 0 {
		return 0
	}
	return time.Duration(b.LookupTotalNanos.Load() / n)
}
