package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrIdentityExhausted is returned when the cluster identity counter
	// leaves the positive range. Unreachable at realistic point counts, but
	// checked on every allocation.
	ErrIdentityExhausted = errors.New("engine: cluster identity space exhausted")

	// ErrInvalidMinPts is returned when the density threshold is below 1.
	ErrInvalidMinPts = errors.New("engine: minPts must be at least 1")

	// ErrInvalidWorkers is returned when the worker budget is below 1.
	ErrInvalidWorkers = errors.New("engine: workers must be at least 1")

	// ErrSizeMismatch is returned when the point store and the neighbor
	// index disagree about the number of points.
	ErrSizeMismatch = errors.New("engine: store and index size mismatch")
)

// LabelConflictError reports an attempt to move a point from one concrete
// cluster identity to a different one. It is fatal: under the
// claim-then-expand discipline two expansions can never label the same
// core point, so a conflict means the discipline was violated and the run
// must not continue.
type LabelConflictError struct {
	Point    int
	Existing Label
	Proposed Label
}

func (e *LabelConflictError) Error() string {
	return fmt.Sprintf("engine: point %d already labeled %s, refusing relabel to %s",
		e.Point, e.Existing, e.Proposed)
}
