// Package prom exposes clustering metrics to Prometheus. Collector
// implements densgo.MetricsCollector on top of prometheus/client_golang.
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/densgo"
)

// Collector is a Prometheus-backed densgo.MetricsCollector.
type Collector struct {
	runs             *prometheus.CounterVec
	runDuration      prometheus.Histogram
	neighborDuration prometheus.Histogram
	neighborCount    prometheus.Histogram
	expansionSize    prometheus.Histogram
	clusters         prometheus.Gauge
	noise            prometheus.Gauge
}

// NewCollector creates a Collector and registers its metrics with reg.
// A nil reg falls back to the default registerer. namespace scopes all
// metric names; leave it empty for bare densgo_* names.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "densgo",
			Name:      "runs_total",
			Help:      "Clustering runs by outcome.",
		}, []string{"outcome"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "densgo",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of clustering runs.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		neighborDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "densgo",
			Name:      "neighbor_query_duration_seconds",
			Help:      "Duration of epsilon-radius neighbor queries.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		neighborCount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "densgo",
			Name:      "neighbor_query_results",
			Help:      "Neighbors returned per epsilon-radius query.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		expansionSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "densgo",
			Name:      "expansion_points",
			Help:      "Points claimed per frontier expansion.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
		}),
		clusters: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "densgo",
			Name:      "last_run_clusters",
			Help:      "Clusters formed by the most recent successful run.",
		}),
		noise: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "densgo",
			Name:      "last_run_noise_points",
			Help:      "Noise points in the most recent successful run.",
		}),
	}

	for _, m := range []prometheus.Collector{
		c.runs, c.runDuration, c.neighborDuration, c.neighborCount, c.expansionSize, c.clusters, c.noise,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNewCollector is like NewCollector but panics on registration errors.
func MustNewCollector(reg prometheus.Registerer, namespace string) *Collector {
	c, err := NewCollector(reg, namespace)
	if err != nil {
		panic(err)
	}
	return c
}

// RecordRun implements densgo.MetricsCollector.
func (c *Collector) RecordRun(duration time.Duration, points, clusters, noise int, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	c.runs.WithLabelValues(outcome).Inc()
	c.runDuration.Observe(duration.Seconds())
	if err == nil {
		c.clusters.Set(float64(clusters))
		c.noise.Set(float64(noise))
	}
}

// RecordNeighborQuery implements densgo.MetricsCollector.
func (c *Collector) RecordNeighborQuery(duration time.Duration, neighbors int) {
	c.neighborDuration.Observe(duration.Seconds())
	c.neighborCount.Observe(float64(neighbors))
}

// RecordExpansion implements densgo.MetricsCollector.
func (c *Collector) RecordExpansion(duration time.Duration, size int) {
	c.expansionSize.Observe(float64(size))
}

var _ densgo.MetricsCollector = (*Collector)(nil)
