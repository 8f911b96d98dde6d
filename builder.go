// Package densgo provides density-based clustering of 2-D point sets.
//
// This file implements the fluent builder API for configuring clustering
// runs. Builders are immutable - each method returns a new builder with
// the updated configuration.
package densgo

import (
	"math"

	"github.com/hupe1980/densgo/engine"
	"github.com/hupe1980/densgo/geom"
	"github.com/hupe1980/densgo/index"
)

// Defaults applied by Cluster.
const (
	DefaultEpsilon = 2.5
	DefaultMinPts  = 2
	DefaultWorkers = 16
)

// Cluster creates a new clustering builder over the given point set.
// The type parameter carries an optional per-point payload through to the
// result rows; use any and skip Data when no payload is needed.
//
// Example:
//
//	result, err := densgo.Cluster[string](points).
//	    Epsilon(0.75).
//	    MinPts(4).
//	    Workers(32).
//	    Grid().
//	    MustBuild().
//	    Run(ctx)
func Cluster[T any](points []geom.Point) Builder[T] {
	return Builder[T]{
		points:    points,
		epsilon:   DefaultEpsilon,
		minPts:    DefaultMinPts,
		workers:   DefaultWorkers,
		indexKind: index.KindBruteForce,
	}
}

// Builder is an immutable fluent builder for Clusterer instances.
// Each method returns a new builder with the updated configuration.
type Builder[T any] struct {
	points    []geom.Point
	payload   []T
	epsilon   float64
	minPts    int
	workers   int
	indexKind index.Kind
	maxPoints int
	logger    *Logger
	metrics   MetricsCollector
}

// Epsilon sets the neighborhood radius. Two points are neighbors when
// their Euclidean distance is at most epsilon (inclusive).
func (b Builder[T]) Epsilon(epsilon float64) Builder[T] {
	b.epsilon = epsilon
	return b
}

// MinPts sets the density threshold: a point with at least minPts
// neighbors within Epsilon is a core point. Default: 2.
func (b Builder[T]) MinPts(minPts int) Builder[T] {
	b.minPts = minPts
	return b
}

// Workers sets the worker budget for the run. The partition is identical
// for any worker count. Default: 16.
func (b Builder[T]) Workers(workers int) Builder[T] {
	b.workers = workers
	return b
}

// Grid selects the cell-grid neighbor index. Exact like brute force, with
// O(n) build cost and much cheaper queries on spread-out datasets.
func (b Builder[T]) Grid() Builder[T] {
	b.indexKind = index.KindGrid
	return b
}

// BruteForce selects the brute-force neighbor index (the default).
func (b Builder[T]) BruteForce() Builder[T] {
	b.indexKind = index.KindBruteForce
	return b
}

// Index selects the neighbor index implementation by kind.
func (b Builder[T]) Index(kind index.Kind) Builder[T] {
	b.indexKind = kind
	return b
}

// Data attaches a payload slice parallel to the point set; payload[i]
// travels with point i into the result rows.
func (b Builder[T]) Data(payload []T) Builder[T] {
	b.payload = payload
	return b
}

// MaxPoints caps the accepted point count. Zero means no cap.
func (b Builder[T]) MaxPoints(n int) Builder[T] {
	b.maxPoints = n
	return b
}

// Logger sets the structured logger for run tracing.
func (b Builder[T]) Logger(l *Logger) Builder[T] {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b Builder[T]) Metrics(mc MetricsCollector) Builder[T] {
	b.metrics = mc
	return b
}

// Build validates the configuration and creates a Clusterer. All
// violations surface here, before any clustering work starts.
func (b Builder[T]) Build() (*Clusterer[T], error) {
	if len(b.points) == 0 {
		return nil, ErrNoPoints
	}
	if b.maxPoints > 0 && len(b.points) > b.maxPoints {
		return nil, &CapacityError{Points: len(b.points), Limit: b.maxPoints}
	}
	if !(b.epsilon > 0) || math.IsInf(b.epsilon, 1) {
		return nil, &ErrInvalidEpsilon{Epsilon: b.epsilon}
	}
	if b.minPts < 1 {
		return nil, translateError(engine.ErrInvalidMinPts)
	}
	if b.workers < 1 {
		return nil, translateError(engine.ErrInvalidWorkers)
	}
	if b.payload != nil && len(b.payload) != len(b.points) {
		return nil, &ErrPayloadMismatch{Points: len(b.points), Payload: len(b.payload)}
	}

	logger := b.logger
	if logger == nil {
		logger = NoopLogger()
	}
	metrics := b.metrics
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}

	return &Clusterer[T]{
		points:    b.points,
		payload:   b.payload,
		epsilon:   b.epsilon,
		minPts:    b.minPts,
		workers:   b.workers,
		indexKind: b.indexKind,
		logger:    logger,
		metrics:   metrics,
	}, nil
}

// MustBuild is like Build but panics on configuration errors. Intended
// for static configurations known to be valid.
func (b Builder[T]) MustBuild() *Clusterer[T] {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}
