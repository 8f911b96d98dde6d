package densgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; a
// Prometheus-backed implementation lives in the prom package.
type MetricsCollector interface {
	// RecordRun is called after each clustering run.
	// clusters and noise describe the final partition; err is nil on success.
	RecordRun(duration time.Duration, points, clusters, noise int, err error)

	// RecordNeighborQuery is called after each epsilon-radius query.
	RecordNeighborQuery(duration time.Duration, neighbors int)

	// RecordExpansion is called when one cluster's frontier expansion
	// completes. size is the number of points placed into the cluster.
	RecordExpansion(duration time.Duration, size int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(time.Duration, int, int, int, error) {}
func (NoopMetricsCollector) RecordNeighborQuery(time.Duration, int)        {}
func (NoopMetricsCollector) RecordExpansion(time.Duration, int)            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount            atomic.Int64
	RunErrors           atomic.Int64
	RunTotalNanos       atomic.Int64
	PointsClustered     atomic.Int64
	ClustersFormed      atomic.Int64
	NoisePoints         atomic.Int64
	NeighborQueryCount  atomic.Int64
	NeighborQueryNanos  atomic.Int64
	NeighborsReturned   atomic.Int64
	ExpansionCount      atomic.Int64
	ExpansionTotalNanos atomic.Int64
	ExpansionPoints     atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(duration time.Duration, points, clusters, noise int, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	b.PointsClustered.Add(int64(points))
	b.ClustersFormed.Add(int64(clusters))
	b.NoisePoints.Add(int64(noise))
}

// RecordNeighborQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNeighborQuery(duration time.Duration, neighbors int) {
	b.NeighborQueryCount.Add(1)
	b.NeighborQueryNanos.Add(duration.Nanoseconds())
	b.NeighborsReturned.Add(int64(neighbors))
}

// RecordExpansion implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExpansion(duration time.Duration, size int) {
	b.ExpansionCount.Add(1)
	b.ExpansionTotalNanos.Add(duration.Nanoseconds())
	b.ExpansionPoints.Add(int64(size))
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	RunCount           int64
	RunErrors          int64
	RunAvgNanos        int64
	PointsClustered    int64
	ClustersFormed     int64
	NoisePoints        int64
	NeighborQueryCount int64
	NeighborQueryAvg   int64
	ExpansionCount     int64
	ExpansionAvgSize   int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		RunCount:           b.RunCount.Load(),
		RunErrors:          b.RunErrors.Load(),
		PointsClustered:    b.PointsClustered.Load(),
		ClustersFormed:     b.ClustersFormed.Load(),
		NoisePoints:        b.NoisePoints.Load(),
		NeighborQueryCount: b.NeighborQueryCount.Load(),
		ExpansionCount:     b.ExpansionCount.Load(),
	}
	if stats.RunCount > 0 {
		stats.RunAvgNanos = b.RunTotalNanos.Load() / stats.RunCount
	}
	if stats.NeighborQueryCount > 0 {
		stats.NeighborQueryAvg = b.NeighborQueryNanos.Load() / stats.NeighborQueryCount
	}
	if stats.ExpansionCount > 0 {
		stats.ExpansionAvgSize = b.ExpansionPoints.Load() / stats.ExpansionCount
	}
	return stats
}

// engineObserver adapts a MetricsCollector onto the engine's narrower
// observer interface.
type engineObserver struct {
	collector MetricsCollector
}

func (o engineObserver) OnNeighborQuery(duration time.Duration, neighbors int) {
	o.collector.RecordNeighborQuery(duration, neighbors)
}

func (o engineObserver) OnExpansion(duration time.Duration, size int) {
	o.collector.RecordExpansion(duration, size)
}

func (o engineObserver) OnNoise() {}
