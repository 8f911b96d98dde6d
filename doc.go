// Package densgo clusters 2-D point sets by spatial density.
//
// Densgo implements a concurrent DBSCAN: points with at least MinPts
// neighbors within radius Epsilon seed clusters, clusters grow through
// density-reachable points, and everything else is noise. Cluster shapes
// and counts fall out of the data.
//
// # Quick start
//
//	points := []geom.Point{{X: 1, Y: 1}, {X: 1.5, Y: 1}, {X: 9, Y: 9}}
//
//	result, err := densgo.Cluster[string](points).
//	    Epsilon(2.5).
//	    MinPts(2).
//	    Workers(16).
//	    MustBuild().
//	    Run(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, row := range result.Rows {
//	    fmt.Println(row.Point, row.Label)
//	}
//
// # Guarantees
//
//   - The partition (which points share a cluster) is deterministic for a
//     given point set, Epsilon, and MinPts, independent of Workers.
//   - Concrete cluster identities are assigned in race order and are only
//     meaningful within one run.
//   - Every point is processed exactly once; labels never move between
//     two cluster identities. A detected violation aborts the run.
//
// # Packages
//
//   - engine: point state, identity allocation, frontier expansion,
//     worker coordination
//   - index/brute, index/grid: exact epsilon-radius neighbor indexes
//   - dataset: text point-set loading and result writing
//   - blobstore (+ s3, minio): dataset and snapshot storage backends
//   - summary: per-cluster membership bitmaps and binary snapshots
//   - prom: Prometheus metrics adapter
package densgo
