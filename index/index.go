// Package index defines the neighbor-index contract used by the clustering
// engine. An index answers exact epsilon-radius queries over an immutable
// 2-D point set; implementations live in subpackages (brute, grid).
package index

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/densgo/geom"
)

// Index is an exact radius-neighbor index over a fixed point set.
//
// Implementations must be safe for concurrent queries and must never
// mutate the point set after construction.
type Index interface {
	// Neighbors appends to dst the indexes of every point j != i whose
	// squared Euclidean distance to point i is at most epsilon squared,
	// and returns the extended slice. The boundary is inclusive. The
	// result order is unspecified but deterministic for a given index.
	Neighbors(i int, dst []int) []int

	// Len returns the number of indexed points.
	Len() int
}

// Kind identifies a neighbor-index implementation.
type Kind int

const (
	// KindBruteForce scans every point per query. Exact, no build cost.
	KindBruteForce Kind = iota
	// KindGrid buckets points into epsilon-sized cells and scans the 3x3
	// cell neighborhood per query. Exact, O(n) build.
	KindGrid
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindBruteForce:
		return "brute"
	case KindGrid:
		return "grid"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

var (
	// ErrNoPoints is returned when an index is built over an empty point set.
	ErrNoPoints = errors.New("index: no points")
)

// ErrInvalidEpsilon indicates a non-positive or non-finite radius.
type ErrInvalidEpsilon struct {
	Epsilon float64
}

func (e *ErrInvalidEpsilon) Error() string {
	return fmt.Sprintf("index: invalid epsilon: %v", e.Epsilon)
}

// Validate checks the inputs common to all index constructors.
func Validate(points []geom.Point, epsilon float64) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	if !(epsilon > 0) || math.IsInf(epsilon, 1) {
		return &ErrInvalidEpsilon{Epsilon: epsilon}
	}
	return nil
}
