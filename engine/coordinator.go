package engine

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultWorkers is the default worker budget of a clustering run.
const DefaultWorkers = 16

// Coordinator dispatches every point index through a bounded pool of
// workers. A worker slot is occupied until Process returns, which for a
// core point includes the whole frontier expansion. The first fatal error
// cancels the remaining dispatch.
type Coordinator struct {
	expander  *Expander
	workers   int
	logger    *slog.Logger
	progress  rate.Sometimes
	processed atomic.Int64
}

// NewCoordinator creates a coordinator running at most workers concurrent
// Process calls.
func NewCoordinator(e *Expander, workers int, optFns ...func(o *Options)) (*Coordinator, error) {
	opts := applyOptions(optFns)

	if workers < 1 {
		return nil, ErrInvalidWorkers
	}

	return &Coordinator{
		expander: e,
		workers:  workers,
		logger:   opts.Logger,
		progress: rate.Sometimes{Interval: time.Second},
	}, nil
}

// Run drives every point of the store through the expander and blocks
// until all workers drain. It returns the first fatal error, or ctx.Err()
// if the context is canceled mid-run.
func (c *Coordinator) Run(ctx context.Context) error {
	n := c.expander.store.Len()
	start := time.Now()
	c.processed.Store(0)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := c.expander.Process(gctx, i); err != nil {
				return err
			}
			done := c.processed.Add(1)
			c.progress.Do(func() {
				c.logger.Debug("clustering progress",
					"processed", done,
					"total", n,
				)
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		c.logger.Error("dispatch aborted",
			"processed", c.processed.Load(),
			"total", n,
			"error", err,
		)
		return err
	}
	// The group reports nil when the parent context was canceled before any
	// worker failed; the run is still incomplete.
	if err := ctx.Err(); err != nil {
		c.logger.Error("dispatch aborted",
			"processed", c.processed.Load(),
			"total", n,
			"error", err,
		)
		return err
	}

	c.logger.Debug("dispatch complete",
		"points", n,
		"clusters", c.expander.alloc.Allocated(),
		"workers", c.workers,
		"duration", time.Since(start),
	)
	return nil
}

// Processed returns the number of points fully processed so far.
func (c *Coordinator) Processed() int64 {
	return c.processed.Load()
}
