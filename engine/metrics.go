package engine

import "time"

// MetricsObserver defines the interface for observing engine events.
type MetricsObserver interface {
	// OnNeighborQuery is called after each radius query.
	OnNeighborQuery(duration time.Duration, neighbors int)

	// OnExpansion is called when a frontier expansion completes.
	// size is the number of points the expansion placed into its cluster.
	OnExpansion(duration time.Duration, size int)

	// OnNoise is called when a point is marked as noise.
	OnNoise()
}

// NoopMetricsObserver is a no-op implementation of MetricsObserver.
type NoopMetricsObserver struct{}

func (o *NoopMetricsObserver) OnNeighborQuery(duration time.Duration, neighbors int) {}
func (o *NoopMetricsObserver) OnExpansion(duration time.Duration, size int)          {}
func (o *NoopMetricsObserver) OnNoise()                                              {}
