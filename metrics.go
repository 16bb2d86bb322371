package annostore

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/annostore/core"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// promcollector package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordAdd is called after each Add* call.
	RecordAdd(kind core.Kind, duration time.Duration, err error)

	// RecordDelete is called after each delete operation.
	RecordDelete(duration time.Duration, err error)

	// RecordQuery is called after each type query. subtype is true for
	// queries that include subtypes; results is the number of ids returned.
	RecordQuery(subtype bool, results int, duration time.Duration)

	// RecordSubtypeCache is called for each subtype query that was answered
	// from (hit) or filled into (miss) the subtype cache.
	RecordSubtypeCache(hit bool)

	// RecordIndexBuild is called after each relation index build.
	// index is "link" or "group".
	RecordIndexBuild(index string, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(core.Kind, time.Duration, error)     {}
func (NoopMetricsCollector) RecordDelete(time.Duration, error)             {}
func (NoopMetricsCollector) RecordQuery(bool, int, time.Duration)          {}
func (NoopMetricsCollector) RecordSubtypeCache(bool)                       {}
func (NoopMetricsCollector) RecordIndexBuild(string, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount         atomic.Int64
	AddErrors        atomic.Int64
	AddTotalNanos    atomic.Int64
	DeleteCount      atomic.Int64
	DeleteErrors     atomic.Int64
	QueryCount       atomic.Int64
	SubtypeQueries   atomic.Int64
	QueryTotalNanos  atomic.Int64
	CacheHits        atomic.Int64
	CacheMisses      atomic.Int64
	IndexBuilds      atomic.Int64
	IndexBuildErrors atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(_ core.Kind, duration time.Duration, err error) {
	b.AddCount.Add(1)
	b.AddTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AddErrors.Add(1)
	}
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(_ time.Duration, err error) {
	b.DeleteCount.Add(1)
	if err != nil {
		b.DeleteErrors.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(subtype bool, _ int, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if subtype {
		b.SubtypeQueries.Add(1)
	}
}

// RecordSubtypeCache implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSubtypeCache(hit bool) {
	if hit {
		b.CacheHits.Add(1)
	} else {
		b.CacheMisses.Add(1)
	}
}

// RecordIndexBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIndexBuild(_ string, _ time.Duration, err error) {
	b.IndexBuilds.Add(1)
	if err != nil {
		b.IndexBuildErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:         b.AddCount.Load(),
		AddErrors:        b.AddErrors.Load(),
		AddAvgNanos:      avg(b.AddTotalNanos.Load(), b.AddCount.Load()),
		DeleteCount:      b.DeleteCount.Load(),
		DeleteErrors:     b.DeleteErrors.Load(),
		QueryCount:       b.QueryCount.Load(),
		SubtypeQueries:   b.SubtypeQueries.Load(),
		QueryAvgNanos:    avg(b.QueryTotalNanos.Load(), b.QueryCount.Load()),
		CacheHits:        b.CacheHits.Load(),
		CacheMisses:      b.CacheMisses.Load(),
		IndexBuilds:      b.IndexBuilds.Load(),
		IndexBuildErrors: b.IndexBuildErrors.Load(),
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
	AddCount         int64
	AddErrors        int64
	AddAvgNanos      int64
	DeleteCount      int64
	DeleteErrors     int64
	QueryCount       int64
	SubtypeQueries   int64
	QueryAvgNanos    int64
	CacheHits        int64
	CacheMisses      int64
	IndexBuilds      int64
	IndexBuildErrors int64
}
