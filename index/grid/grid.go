// Package grid implements an exact neighbor index backed by a uniform
// cell grid. Points are bucketed into square cells with side epsilon, so
// every neighbor of a point lies in the 3x3 block of cells around it.
// Queries scan only those buckets, which makes dense workloads roughly
// O(neighbors) instead of O(n) per query while staying exact.
package grid

import (
	"math"

	"github.com/hupe1980/densgo/geom"
	"github.com/hupe1980/densgo/index"
)

// Compile-time interface checks.
var _ index.Index = (*Index)(nil)

// Index is a uniform-grid exact radius-neighbor index.
type Index struct {
	points []geom.Point
	eps2   float64
	cell   float64
	origin geom.Point
	cells  map[cellKey][]int32
}

type cellKey struct {
	cx int32
	cy int32
}

// New creates a grid index over points with the given radius.
// Build cost is a single pass over the point set.
func New(points []geom.Point, epsilon float64) (*Index, error) {
	if err := index.Validate(points, epsilon); err != nil {
		return nil, err
	}

	origin := geom.Bounds(points).Min
	x := &Index{
		points: points,
		eps2:   epsilon * epsilon,
		cell:   epsilon,
		origin: origin,
		cells:  make(map[cellKey][]int32),
	}
	for i, p := range points {
		k := x.keyOf(p)
		x.cells[k] = append(x.cells[k], int32(i))
	}
	return x, nil
}

func (x *Index) keyOf(p geom.Point) cellKey {
	return cellKey{
		cx: int32(math.Floor((p.X - x.origin.X) / x.cell)),
		cy: int32(math.Floor((p.Y - x.origin.Y) / x.cell)),
	}
}

// Len returns the number of indexed points.
func (x *Index) Len() int {
	return len(x.points)
}

// Neighbors appends to dst every point index within the radius of point i,
// excluding i itself. Buckets are visited in a fixed cell order and points
// within a bucket in insertion order, so results are deterministic.
func (x *Index) Neighbors(i int, dst []int) []int {
	p := x.points[i]
	center := x.keyOf(p)
	for dy := int32(-1); dy <= 1; dy++ {
		for dx := int32(-1); dx <= 1; dx++ {
			bucket := x.cells[cellKey{cx: center.cx + dx, cy: center.cy + dy}]
			for _, j := range bucket {
				if int(j) == i {
					continue
				}
				if geom.SquaredDistance(p, x.points[j]) <= x.eps2 {
					dst = append(dst, int(j))
				}
			}
		}
	}
	return dst
}
