// Command densgo clusters a 2-D point set by spatial density and writes
// the labeled result back out.
//
// Input and output accept local paths or s3://bucket/key URIs. Flags may
// be layered over a YAML config file; explicit flags win.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/hupe1980/densgo"
	"github.com/hupe1980/densgo/blobstore"
	"github.com/hupe1980/densgo/dataset"
	"github.com/hupe1980/densgo/engine"
	"github.com/hupe1980/densgo/geom"
	"github.com/hupe1980/densgo/index"
	"github.com/hupe1980/densgo/summary"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "densgo:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	if cfg.Input == "" {
		return fmt.Errorf("no input dataset (use -input)")
	}

	inStore, inName, err := openStore(ctx, cfg.Input)
	if err != nil {
		return err
	}

	points, info, err := dataset.Load(ctx, inStore, inName, func(o *dataset.Options) {
		if cfg.MaxPoints > 0 {
			o.MaxPoints = cfg.MaxPoints
		}
	})
	logger.LogLoad(ctx, cfg.Input, info.Points, info.Fingerprint, err)
	if err != nil {
		return err
	}

	kind, err := parseIndexKind(cfg.Index)
	if err != nil {
		return err
	}

	clusterer, err := densgo.Cluster[any](points).
		Epsilon(cfg.Epsilon).
		MinPts(cfg.MinPts).
		Workers(cfg.Workers).
		Index(kind).
		Logger(logger).
		Build()
	if err != nil {
		return err
	}

	result, err := clusterer.Run(ctx)
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		outStore, outName, err := openStore(ctx, cfg.Output)
		if err != nil {
			return err
		}
		err = writeResults(ctx, outStore, outName, points, result.Labels)
		logger.LogWrite(ctx, cfg.Output, len(points), err)
		if err != nil {
			return err
		}
	}

	if cfg.Summary != "" {
		comp, err := summary.ParseCompression(cfg.Compression)
		if err != nil {
			return err
		}
		snapStore, snapName, err := openStore(ctx, cfg.Summary)
		if err != nil {
			return err
		}
		err = result.Snapshot().Save(ctx, snapStore, snapName, comp)
		logger.LogSnapshot(ctx, cfg.Summary, err)
		if err != nil {
			return err
		}
	}

	report(ctx, logger, result, info)
	return nil
}

// report prints the run summary the way the pipeline's operators read it:
// one structured line with partition counts, timing, and memory usage.
func report(ctx context.Context, logger *densgo.Logger, result *densgo.Result[any], info dataset.Info) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	logger.InfoContext(ctx, "run report",
		"points", info.Points,
		"clusters", result.Clusters,
		"noise", result.NoisePoints,
		"duration", result.Duration.Round(time.Microsecond),
		"heap_alloc_bytes", ms.HeapAlloc,
		"total_alloc_bytes", ms.TotalAlloc,
		"num_gc", ms.NumGC,
	)
}

func writeResults(ctx context.Context, store blobstore.BlobStore, name string, points []geom.Point, labels []int64) error {
	els := make([]engine.Label, len(labels))
	for i, l := range labels {
		els[i] = engine.Label(l)
	}
	_, err := dataset.Store(ctx, store, name, points, els)
	return err
}

func newLogger(cfg *config) (*densgo.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	switch cfg.LogFormat {
	case "json":
		return densgo.NewJSONLogger(level), nil
	case "", "text":
		return densgo.NewTextLogger(level), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}
}

func parseIndexKind(s string) (index.Kind, error) {
	switch s {
	case "", "brute":
		return index.KindBruteForce, nil
	case "grid":
		return index.KindGrid, nil
	default:
		return 0, fmt.Errorf("unknown index kind %q", s)
	}
}
