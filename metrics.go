package featmat

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordSelect is called after each selection operation.
	// matchedPatterns is the number of patterns with at least one match,
	// kept is the resulting feature count, duration is the total time
	// taken, err is nil if successful.
	RecordSelect(matchedPatterns, kept int, duration time.Duration, err error)

	// RecordProjection is called after each feature-set alignment.
	// padded is the number of inserted zero columns.
	RecordProjection(padded int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSelect(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordProjection(int, time.Duration, error)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SelectCount      atomic.Int64
	SelectErrors     atomic.Int64
	SelectTotalNanos atomic.Int64
	ProjectionCount  atomic.Int64
	ProjectionErrors atomic.Int64
	PaddedColumns    atomic.Int64
}

// RecordSelect implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSelect(matchedPatterns, kept int, duration time.Duration, err error) {
	b.SelectCount.Add(1)
	b.SelectTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SelectErrors.Add(1)
	}
}

// RecordProjection implements MetricsCollector.
func (b *BasicMetricsCollector) RecordProjection(padded int, duration time.Duration, err error) {
	b.ProjectionCount.Add(1)
	b.PaddedColumns.Add(int64(padded))
	if err != nil {
		b.ProjectionErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SelectCount:      b.SelectCount.Load(),
		SelectErrors:     b.SelectErrors.Load(),
		SelectAvgNanos:   b.getAvgSelectNanos(),
		ProjectionCount:  b.ProjectionCount.Load(),
		ProjectionErrors: b.ProjectionErrors.Load(),
		PaddedColumns:    b.PaddedColumns.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSelectNanos() int64 {
	count := b.SelectCount.Load()
	if count == 0 {
		return 0
	}
	return b.SelectTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SelectCount      int64
	SelectErrors     int64
	SelectAvgNanos   int64
	ProjectionCount  int64
	ProjectionErrors int64
	PaddedColumns    int64
}
