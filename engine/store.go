package engine

import "sync/atomic"

// PointStore owns all mutable per-point state of a clustering run: one
// visited flag and one label per point, both driven through atomic
// transitions. It is the only shared mutable resource while a run is in
// flight, so the ownership rules live here and nowhere else:
//
//   - TryMarkVisited admits each point into processing exactly once.
//   - Assign is the owner path: it never moves a point between two
//     concrete cluster identities.
//   - Upgrade is the absorption path: it only ever lifts Unassigned or
//     Noise into a cluster and leaves claimed identities untouched.
//
// A store is built fresh for every run and discarded afterwards.
type PointStore struct {
	visited []atomic.Bool
	labels  []atomic.Int64
}

// NewPointStore creates a store for n points, all unvisited and unassigned.
func NewPointStore(n int) *PointStore {
	return &PointStore{
		visited: make([]atomic.Bool, n),
		labels:  make([]atomic.Int64, n),
	}
}

// Len returns the number of points tracked by the store.
func (s *PointStore) Len() int {
	return len(s.visited)
}

// TryMarkVisited atomically claims point i for processing. It returns true
// exactly once per point per run; every later call returns false.
func (s *PointStore) TryMarkVisited(i int) bool {
	return s.visited[i].CompareAndSwap(false, true)
}

// Visited reports whether point i has been claimed.
func (s *PointStore) Visited(i int) bool {
	return s.visited[i].Load()
}

// Label returns the current label of point i.
func (s *PointStore) Label(i int) Label {
	return Label(s.labels[i].Load())
}

// Assign labels an owned point with the cluster identity id. Assigning
// over Unassigned or Noise succeeds; re-assigning the same identity is a
// no-op. Assigning over a different cluster identity returns a
// *LabelConflictError and leaves the label untouched: a conflicting owner
// write means the claim discipline was violated, and the store refuses to
// paper over it.
func (s *PointStore) Assign(i int, id Label) error {
	for {
		cur := Label(s.labels[i].Load())
		if cur == id {
			return nil
		}
		if cur.IsCluster() {
			return &LabelConflictError{Point: i, Existing: cur, Proposed: id}
		}
		if s.labels[i].CompareAndSwap(int64(cur), int64(id)) {
			return nil
		}
	}
}

// MarkNoise labels point i as noise if it is still unassigned. A point
// that was absorbed into a cluster in the meantime keeps its cluster.
func (s *PointStore) MarkNoise(i int) {
	s.labels[i].CompareAndSwap(int64(Unassigned), int64(Noise))
}

// Upgrade atomically lifts point i into cluster id if its label is still
// Unassigned or Noise. It returns the label the point holds afterwards and
// whether this call changed it. Points already carrying a cluster
// identity, this one or another, are left untouched.
func (s *PointStore) Upgrade(i int, id Label) (Label, bool) {
	for {
		cur := Label(s.labels[i].Load())
		if cur.IsCluster() {
			return cur, false
		}
		if s.labels[i].CompareAndSwap(int64(cur), int64(id)) {
			return id, true
		}
	}
}

// Labels returns a snapshot of all labels.
func (s *PointStore) Labels() []Label {
	out := make([]Label, len(s.labels))
	for i := range s.labels {
		out[i] = Label(s.labels[i].Load())
	}
	return out
}
