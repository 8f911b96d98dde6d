package densgo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/densgo/engine"
	"github.com/hupe1980/densgo/geom"
	"github.com/hupe1980/densgo/index"
	"github.com/hupe1980/densgo/index/brute"
	"github.com/hupe1980/densgo/index/grid"
	"github.com/hupe1980/densgo/summary"
)

// Clusterer is a configured clustering run over an immutable point set.
// Create one through the Cluster builder. A Clusterer may run any number
// of times; every Run builds fresh per-point state and yields an
// isomorphic partition.
type Clusterer[T any] struct {
	points    []geom.Point
	payload   []T
	epsilon   float64
	minPts    int
	workers   int
	indexKind index.Kind
	logger    *Logger
	metrics   MetricsCollector
}

// Row is one point of a clustering result.
type Row[T any] struct {
	Point geom.Point
	// Label is 0 for noise and a positive cluster identity otherwise.
	Label int64
	// Data is the payload attached via the builder, if any.
	Data T
}

// Result is the outcome of one clustering run.
type Result[T any] struct {
	// RunID uniquely identifies this run in logs and snapshots.
	RunID uuid.UUID
	// Labels holds the output label of every point in input order:
	// 0 = noise or unassigned, >= 1 = cluster identity. Identities are
	// only meaningful within this run.
	Labels []int64
	// Rows pairs every point with its label and payload, in input order.
	Rows []Row[T]
	// Clusters is the number of clusters formed.
	Clusters int
	// NoisePoints is the number of points labeled noise.
	NoisePoints int
	// Duration is the wall-clock time of the run.
	Duration time.Duration
}

// Summary derives per-cluster membership bitmaps from the result.
func (r *Result[T]) Summary() *summary.Summary {
	labels := make([]engine.Label, len(r.Labels))
	for i, l := range r.Labels {
		if l == 0 {
			labels[i] = engine.Noise
			continue
		}
		labels[i] = engine.Label(l)
	}
	return summary.Build(labels)
}

// Snapshot packages the result's summary with its run id for persistence.
func (r *Result[T]) Snapshot() *summary.Snapshot {
	return &summary.Snapshot{RunID: r.RunID, Summary: r.Summary()}
}

// Run executes the clustering and returns the final partition. The
// returned error is ErrInvalidInput-class for bad input and
// ErrInternal-class for consistency violations; the latter means no
// usable partition was produced.
func (c *Clusterer[T]) Run(ctx context.Context) (*Result[T], error) {
	runID := uuid.New()
	logger := c.logger.WithRunID(runID)
	start := time.Now()

	result, err := c.run(ctx, runID, logger)
	duration := time.Since(start)

	if err != nil {
		err = translateError(err)
		c.metrics.RecordRun(duration, len(c.points), 0, 0, err)
		logger.LogRun(ctx, len(c.points), 0, 0, duration, err)
		return nil, err
	}

	result.Duration = duration
	c.metrics.RecordRun(duration, len(c.points), result.Clusters, result.NoisePoints, nil)
	logger.LogRun(ctx, len(c.points), result.Clusters, result.NoisePoints, duration, nil)
	return result, nil
}

func (c *Clusterer[T]) run(ctx context.Context, runID uuid.UUID, logger *Logger) (*Result[T], error) {
	idx, err := c.buildIndex()
	if err != nil {
		return nil, err
	}

	store := engine.NewPointStore(len(c.points))
	var alloc engine.Allocator

	engineOpts := func(o *engine.Options) {
		o.Logger = logger.Logger
		o.Metrics = engineObserver{collector: c.metrics}
	}

	expander, err := engine.NewExpander(store, idx, &alloc, c.minPts, engineOpts)
	if err != nil {
		return nil, err
	}
	coordinator, err := engine.NewCoordinator(expander, c.workers, engineOpts)
	if err != nil {
		return nil, err
	}

	if err := coordinator.Run(ctx); err != nil {
		return nil, err
	}

	labels := store.Labels()
	result := &Result[T]{
		RunID:    runID,
		Labels:   make([]int64, len(labels)),
		Rows:     make([]Row[T], len(labels)),
		Clusters: int(alloc.Allocated()),
	}
	for i, l := range labels {
		out := l.Output()
		result.Labels[i] = out
		if out == 0 {
			result.NoisePoints++
		}
		result.Rows[i] = Row[T]{Point: c.points[i], Label: out}
		if c.payload != nil {
			result.Rows[i].Data = c.payload[i]
		}
	}
	return result, nil
}

func (c *Clusterer[T]) buildIndex() (index.Index, error) {
	switch c.indexKind {
	case index.KindGrid:
		return grid.New(c.points, c.epsilon)
	case index.KindBruteForce:
		return brute.New(c.points, c.epsilon)
	default:
		return nil, fmt.Errorf("densgo: unknown index kind %s", c.indexKind)
	}
}
