package densgo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/densgo"
	"github.com/hupe1980/densgo/geom"
)

// Example demonstrates clustering a small point set with the fluent builder.
func Example() {
	points := []geom.Point{
		{X: 1, Y: 1}, {X: 1.5, Y: 1}, {X: 1, Y: 1.5}, // dense group
		{X: 10, Y: 10}, {X: 10.5, Y: 10}, {X: 10, Y: 10.5}, // another group
		{X: 50, Y: 50}, // isolated
	}

	result, err := densgo.Cluster[any](points).
		Epsilon(2.5).
		MinPts(2).
		Workers(4).
		MustBuild().
		Run(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("clusters:", result.Clusters)
	fmt.Println("noise:", result.NoisePoints)
	fmt.Println("same group:", result.Labels[0] == result.Labels[1])
	// Output:
	// clusters: 2
	// noise: 1
	// same group: true
}

// Example_payload shows carrying per-point data through a run.
func Example_payload() {
	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	ids := []string{"sensor-a", "sensor-b", "sensor-c"}

	result, err := densgo.Cluster[string](points).
		Epsilon(2).
		MinPts(2).
		Data(ids).
		MustBuild().
		Run(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Rows[0].Data, result.Rows[0].Label > 0)
	// Output: sensor-a true
}
