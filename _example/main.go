package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/hupe1980/densgo"
	"github.com/hupe1980/densgo/geom"
	"github.com/hupe1980/densgo/testutil"
)

func main() {
	ctx := context.Background()
	rng := testutil.NewRNG(4711)

	var points []geom.Point
	points = testutil.Blob(rng, points, geom.Point{X: 0, Y: 0}, 0.8, 2000)
	points = testutil.Blob(rng, points, geom.Point{X: 12, Y: 5}, 0.8, 2000)
	points = testutil.Uniform(rng, points, geom.Rect{
		Min: geom.Point{X: -30, Y: -30},
		Max: geom.Point{X: 30, Y: 30},
	}, 500)

	var metrics densgo.BasicMetricsCollector

	result, err := densgo.Cluster[any](points).
		Epsilon(0.5).
		MinPts(5).
		Workers(16).
		Grid().
		Logger(densgo.NewTextLogger(slog.LevelInfo)).
		Metrics(&metrics).
		MustBuild().
		Run(ctx)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("clustered %d points into %d clusters (%d noise) in %s\n",
		len(points), result.Clusters, result.NoisePoints, result.Duration)

	for _, c := range result.Summary().Clusters {
		fmt.Printf("  cluster %d: %d points\n", c.ID, c.Size())
	}

	stats := metrics.GetStats()
	fmt.Printf("neighbor queries: %d (avg %dns)\n", stats.NeighborQueryCount, stats.NeighborQueryAvg)
}
