package engine

import "fmt"

// Label is the clustering state of a single point. The zero value means
// the point has not been assigned; Noise marks a point with too few
// neighbors; values of 1 and above are cluster identities.
type Label int64

const (
	// Unassigned is the initial label of every point.
	Unassigned Label = 0
	// Noise marks a point that is not density-reachable from any core point.
	Noise Label = -1
)

// IsCluster reports whether l is a concrete cluster identity.
func (l Label) IsCluster() bool { return l > 0 }

// IsNoise reports whether l marks noise.
func (l Label) IsNoise() bool { return l < 0 }

// Output returns the label in the output encoding: 0 for noise or
// unassigned points, the cluster identity otherwise.
func (l Label) Output() int64 {
	if l < 0 {
		return 0
	}
	return int64(l)
}

// String implements fmt.Stringer.
func (l Label) String() string {
	switch {
	case l == Unassigned:
		return "unassigned"
	case l < 0:
		return "noise"
	default:
		return fmt.Sprintf("cluster(%d)", int64(l))
	}
}
