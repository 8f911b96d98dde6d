package engine

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/hupe1980/densgo/index"
)

// Expander runs the per-point visitation state machine: claim, density
// test, identity allocation, and frontier expansion.
//
// Claims, neighbor queries, and noise marking run fully in parallel across
// workers. Frontier expansion is serialized through a weight-1 permit: a
// worker that claims a core point expands that point's entire reachable
// region before any other expansion may start. Without this ordering two
// workers claiming seeds inside one density-connected region would race
// into two identities for the same region; with it, a core point carrying
// a foreign identity can only mean the discipline was broken, which is
// surfaced as a LabelConflictError instead of being patched over.
type Expander struct {
	store   *PointStore
	index   index.Index
	alloc   *Allocator
	minPts  int
	gate    *semaphore.Weighted
	scratch sync.Pool
	metrics MetricsObserver
}

type scratch struct {
	ns       []int
	frontier []int
}

// NewExpander creates an expander over the given store, index, and
// allocator.
func NewExpander(store *PointStore, idx index.Index, alloc *Allocator, minPts int, optFns ...func(o *Options)) (*Expander, error) {
	opts := applyOptions(optFns)

	if minPts < 1 {
		return nil, ErrInvalidMinPts
	}
	if store.Len() != idx.Len() {
		return nil, ErrSizeMismatch
	}

	e := &Expander{
		store:   store,
		index:   idx,
		alloc:   alloc,
		minPts:  minPts,
		gate:    semaphore.NewWeighted(1),
		metrics: opts.Metrics,
	}
	e.scratch.New = func() any { return new(scratch) }
	return e, nil
}

// Process runs the state machine for point i. The call returns only after
// any frontier expansion it triggers has fully completed, so a worker slot
// stays occupied for the whole region.
func (e *Expander) Process(ctx context.Context, i int) error {
	if !e.store.TryMarkVisited(i) {
		// Another worker owns this point.
		return nil
	}

	sc := e.scratch.Get().(*scratch)
	defer e.scratch.Put(sc)

	sc.ns = e.neighbors(i, sc.ns[:0])
	if len(sc.ns) < e.minPts {
		e.store.MarkNoise(i)
		e.metrics.OnNoise()
		return nil
	}

	// Core point. Take the expansion permit; claims and queries of other
	// workers proceed while we wait.
	if err := e.gate.Acquire(ctx, 1); err != nil {
		return err
	}
	defer e.gate.Release(1)

	if e.store.Label(i).IsCluster() {
		// An expansion that ran while this worker waited absorbed the
		// point and already walked its whole region.
		return nil
	}

	id, err := e.alloc.Next()
	if err != nil {
		return err
	}
	if err := e.store.Assign(i, id); err != nil {
		return err
	}
	return e.expand(ctx, id, sc)
}

// expand walks the frontier seeded with sc.ns until the reachable region
// of the current core point is fully labeled with id. The worklist is
// bounded by the total neighbor-list volume of the region: a point's
// neighbors are pushed at most once, when the expansion first takes
// ownership of it.
func (e *Expander) expand(ctx context.Context, id Label, sc *scratch) error {
	start := time.Now()
	size := 1 // the seed

	sc.frontier = append(sc.frontier[:0], sc.ns...)
	for len(sc.frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		j := sc.frontier[len(sc.frontier)-1]
		sc.frontier = sc.frontier[:len(sc.frontier)-1]

		if e.store.TryMarkVisited(j) {
			// Newly owned by this expansion.
			if err := e.store.Assign(j, id); err != nil {
				return err
			}
			size++
			sc.ns = e.neighbors(j, sc.ns[:0])
			if len(sc.ns) >= e.minPts {
				sc.frontier = append(sc.frontier, sc.ns...)
			}
			continue
		}

		got, changed := e.store.Upgrade(j, id)
		if !changed {
			if got == id {
				// Duplicate worklist entry; already walked.
				continue
			}
			// A border point claimed by an earlier cluster is legal and
			// stays where it is. A core point carrying a foreign identity
			// means two expansions reached one region.
			sc.ns = e.neighbors(j, sc.ns[:0])
			if len(sc.ns) >= e.minPts {
				return &LabelConflictError{Point: j, Existing: got, Proposed: id}
			}
			continue
		}

		// Absorbed from Unassigned or Noise. If the point is core its
		// reachable set belongs to this region too; this covers points
		// claimed top-level by workers still waiting on the permit.
		size++
		sc.ns = e.neighbors(j, sc.ns[:0])
		if len(sc.ns) >= e.minPts {
			sc.frontier = append(sc.frontier, sc.ns...)
		}
	}

	e.metrics.OnExpansion(time.Since(start), size)
	return nil
}

func (e *Expander) neighbors(i int, dst []int) []int {
	start := time.Now()
	ns := e.index.Neighbors(i, dst)
	e.metrics.OnNeighborQuery(time.Since(start), len(ns))
	return ns
}
