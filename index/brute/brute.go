// Package brute implements an exact neighbor index by linear scan.
// Queries cost O(n) but there is no build cost and no auxiliary memory,
// which keeps it the reference implementation the grid index is checked
// against.
package brute

import (
	"github.com/hupe1980/densgo/geom"
	"github.com/hupe1980/densgo/index"
)

// Compile-time interface checks.
var _ index.Index = (*Index)(nil)

// Index is a brute-force exact radius-neighbor index.
type Index struct {
	points []geom.Point
	eps2   float64
}

// New creates a brute-force index over points with the given radius.
func New(points []geom.Point, epsilon float64) (*Index, error) {
	if err := index.Validate(points, epsilon); err != nil {
		return nil, err
	}
	return &Index{
		points: points,
		eps2:   epsilon * epsilon,
	}, nil
}

// Len returns the number of indexed points.
func (x *Index) Len() int {
	return len(x.points)
}

// Neighbors appends to dst every point index within the radius of point i,
// excluding i itself. Results are in ascending index order.
func (x *Index) Neighbors(i int, dst []int) []int {
	p := x.points[i]
	for j, q := range x.points {
		if j == i {
			continue
		}
		if geom.SquaredDistance(p, q) <= x.eps2 {
			dst = append(dst, j)
		}
	}
	return dst
}
