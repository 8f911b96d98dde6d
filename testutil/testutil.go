// Package testutil provides deterministic data generation and reference
// implementations for clustering tests.
package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/densgo/geom"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// NormFloat64 returns a normally distributed pseudo-random number.
func (r *RNG) NormFloat64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.NormFloat64()
}

// Blob appends n points normally distributed around center with the given
// standard deviation and returns the extended slice.
func Blob(rng *RNG, dst []geom.Point, center geom.Point, stddev float64, n int) []geom.Point {
	for i := 0; i < n; i++ {
		dst = append(dst, geom.Point{
			X: center.X + rng.NormFloat64()*stddev,
			Y: center.Y + rng.NormFloat64()*stddev,
		})
	}
	return dst
}

// Uniform appends n points uniformly distributed over r and returns the
// extended slice.
func Uniform(rng *RNG, dst []geom.Point, r geom.Rect, n int) []geom.Point {
	for i := 0; i < n; i++ {
		dst = append(dst, geom.Point{
			X: r.Min.X + rng.Float64()*r.Width(),
			Y: r.Min.Y + rng.Float64()*r.Height(),
		})
	}
	return dst
}

// SequentialLabels runs a single-threaded textbook DBSCAN over points and
// returns per-point labels: -1 for noise, cluster ids from 1 upward.
// Neighbor sets exclude the point itself; a point is core when it has at
// least minPts neighbors. This is the ground truth concurrent runs are
// compared against.
func SequentialLabels(points []geom.Point, epsilon float64, minPts int) []int64 {
	const noise = -1

	eps2 := epsilon * epsilon
	labels := make([]int64, len(points))

	neighbors := func(i int, dst []int) []int {
		for j := range points {
			if j == i {
				continue
			}
			if geom.SquaredDistance(points[i], points[j]) <= eps2 {
				dst = append(dst, j)
			}
		}
		return dst
	}

	var next int64
	var frontier, ns []int
	for i := range points {
		if labels[i] != 0 {
			continue
		}
		ns = neighbors(i, ns[:0])
		if len(ns) < minPts {
			labels[i] = noise
			continue
		}
		next++
		labels[i] = next
		frontier = append(frontier[:0], ns...)
		for len(frontier) > 0 {
			j := frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
			if labels[j] > 0 {
				continue
			}
			fresh := labels[j] == 0 // noise neighbors join the cluster but never expand
			labels[j] = next
			if !fresh {
				continue
			}
			ns = neighbors(j, ns[:0])
			if len(ns) >= minPts {
				frontier = append(frontier, ns...)
			}
		}
	}
	return labels
}

// SamePartition reports whether a and b describe the same grouping of
// points: noise matches noise and cluster ids map one-to-one, ignoring the
// concrete id values.
func SamePartition(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	ab := make(map[int64]int64)
	ba := make(map[int64]int64)
	for i := range a {
		an, bn := a[i] <= 0, b[i] <= 0
		if an != bn {
			return false
		}
		if an {
			continue
		}
		if m, ok := ab[a[i]]; ok && m != b[i] {
			return false
		}
		if m, ok := ba[b[i]]; ok && m != a[i] {
			return false
		}
		ab[a[i]] = b[i]
		ba[b[i]] = a[i]
	}
	return true
}

// ClusterSizes returns the size of each cluster in labels keyed by id,
// counting noise (labels <= 0) separately in the second return.
func ClusterSizes(labels []int64) (map[int64]int, int) {
	sizes := make(map[int64]int)
	noise := 0
	for _, l := range labels {
		if l <= 0 {
			noise++
			continue
		}
		sizes[l]++
	}
	return sizes, noise
}

// Jitter returns v perturbed by at most eps in either direction, useful for
// placing points just inside or outside a radius boundary.
func Jitter(rng *RNG, v, eps float64) float64 {
	return v + (rng.Float64()*2-1)*eps
}

// MaxSpread returns the largest pairwise squared distance in points.
func MaxSpread(points []geom.Point) float64 {
	var m float64
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			m = math.Max(m, geom.SquaredDistance(points[i], points[j]))
		}
	}
	return m
}
