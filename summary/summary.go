// Package summary derives per-cluster membership from a finished
// clustering run and persists it as a compact binary snapshot.
package summary

import (
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/densgo/engine"
)

// Cluster is the membership of one cluster identity.
type Cluster struct {
	ID      int64
	Members *roaring.Bitmap
}

// Size returns the number of points in the cluster.
func (c Cluster) Size() int {
	return int(c.Members.GetCardinality())
}

// Summary is the per-cluster view of a run's final labels. Clusters are
// ordered by ascending identity; membership and noise are Roaring bitmaps
// over point indexes.
type Summary struct {
	Clusters []Cluster
	Noise    *roaring.Bitmap
	Points   int
}

// Build groups final labels into per-cluster membership. Unassigned labels
// count as noise, matching the output encoding.
func Build(labels []engine.Label) *Summary {
	byID := make(map[int64]*roaring.Bitmap)
	noise := roaring.New()

	for i, l := range labels {
		if !l.IsCluster() {
			noise.Add(uint32(i))
			continue
		}
		bm, ok := byID[int64(l)]
		if !ok {
			bm = roaring.New()
			byID[int64(l)] = bm
		}
		bm.Add(uint32(i))
	}

	clusters := make([]Cluster, 0, len(byID))
	for id, bm := range byID {
		clusters = append(clusters, Cluster{ID: id, Members: bm})
	}
	sort.Slice(clusters, func(i, j int) bool { return clusters[i].ID < clusters[j].ID })

	return &Summary{
		Clusters: clusters,
		Noise:    noise,
		Points:   len(labels),
	}
}

// NoiseCount returns the number of noise points.
func (s *Summary) NoiseCount() int {
	return int(s.Noise.GetCardinality())
}

// Cluster returns the membership of the given identity, or nil if no point
// carries it.
func (s *Summary) Cluster(id int64) *Cluster {
	i := sort.Search(len(s.Clusters), func(i int) bool { return s.Clusters[i].ID >= id })
	if i < len(s.Clusters) && s.Clusters[i].ID == id {
		return &s.Clusters[i]
	}
	return nil
}

// LabelOf returns the output label of point i per the Summary.
func (s *Summary) LabelOf(i int) int64 {
	for _, c := range s.Clusters {
		if c.Members.Contains(uint32(i)) {
			return c.ID
		}
	}
	return 0
}

// String implements fmt.Stringer.
func (s *Summary) String() string {
	return fmt.Sprintf("summary: %d points, %d clusters, %d noise", s.Points, len(s.Clusters), s.NoiseCount())
}
