package engine

import (
	"io"
	"log/slog"
)

// Options configures the engine components.
type Options struct {
	// Logger receives structured progress and lifecycle logs.
	Logger *slog.Logger

	// Metrics observes engine events.
	Metrics MetricsObserver
}

// DefaultOptions contains the default engine configuration.
var DefaultOptions = Options{
	Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	Metrics: &NoopMetricsObserver{},
}

func applyOptions(optFns []func(o *Options)) Options {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = DefaultOptions.Logger
	}
	if opts.Metrics == nil {
		opts.Metrics = DefaultOptions.Metrics
	}
	return opts
}
