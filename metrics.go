package unitgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// metric.PrometheusCollector implements it for Prometheus.
type MetricsCollector interface {
	// RecordParse is called after each parse. kind is empty when the input
	// could not be resolved to a kind.
	RecordParse(kind string, duration time.Duration, err error)

	// RecordConvert is called after each conversion of one or more values.
	// count is the number of values converted.
	RecordConvert(kind string, count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordParse(string, time.Duration, error)        {}
func (NoopMetricsCollector) RecordConvert(string, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ParseCount        atomic.Int64
	ParseErrors       atomic.Int64
	ParseTotalNanos   atomic.Int64
	ConvertCount      atomic.Int64
	ConvertErrors     atomic.Int64
	ConvertValues     atomic.Int64
	ConvertTotalNanos atomic.Int64
}

// RecordParse implements MetricsCollector.
func (b *BasicMetricsCollector) RecordParse(_ string, duration time.Duration, err error) {
	b.ParseCount.Add(1)
	b.ParseTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ParseErrors.Add(1)
	}
}

// RecordConvert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConvert(_ string, count int, duration time.Duration, err error) {
	b.ConvertCount.Add(1)
	b.ConvertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ConvertErrors.Add(1)
		return
	}
	b.ConvertValues.Add(int64(count))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ParseCount:      b.ParseCount.Load(),
		ParseErrors:     b.ParseErrors.Load(),
		ParseAvgNanos:   avg(b.ParseTotalNanos.Load(), b.ParseCount.Load()),
		ConvertCount:    b.ConvertCount.Load(),
		ConvertErrors:   b.ConvertErrors.Load(),
		ConvertValues:   b.ConvertValues.Load(),
		ConvertAvgNanos: avg(b.ConvertTotalNanos.Load(), b.ConvertCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ParseCount      int64
	ParseErrors     int64
	ParseAvgNanos   int64
	ConvertCount    int64
	ConvertErrors   int64
	ConvertValues   int64
	ConvertAvgNanos int64
}
