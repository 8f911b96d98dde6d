package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// config holds the effective CLI configuration: defaults, overlaid by an
// optional YAML file, overlaid by explicitly set flags.
type config struct {
	Input       string  `yaml:"input"`
	Output      string  `yaml:"output"`
	Summary     string  `yaml:"summary"`
	Epsilon     float64 `yaml:"epsilon"`
	MinPts      int     `yaml:"min_pts"`
	Workers     int     `yaml:"workers"`
	Index       string  `yaml:"index"`
	MaxPoints   int     `yaml:"max_points"`
	Compression string  `yaml:"compression"`
	LogLevel    string  `yaml:"log_level"`
	LogFormat   string  `yaml:"log_format"`
}

func defaultConfig() config {
	return config{
		Epsilon:     2.5,
		MinPts:      2,
		Workers:     16,
		Index:       "brute",
		Compression: "none",
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

func loadConfig(args []string) (*config, error) {
	def := defaultConfig()

	fs := flag.NewFlagSet("densgo", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file; explicit flags override its values")
	input := fs.String("input", def.Input, "input dataset (local path or s3://bucket/key)")
	output := fs.String("output", def.Output, "labeled results destination (local path or s3://bucket/key)")
	summaryOut := fs.String("summary", def.Summary, "cluster-summary snapshot destination")
	epsilon := fs.Float64("epsilon", def.Epsilon, "neighborhood radius")
	minPts := fs.Int("minpts", def.MinPts, "density threshold (neighbors for a core point)")
	workers := fs.Int("workers", def.Workers, "concurrent worker budget")
	indexKind := fs.String("index", def.Index, "neighbor index: brute or grid")
	maxPoints := fs.Int("max-points", def.MaxPoints, "maximum accepted point count (0 = dataset default)")
	compression := fs.String("compression", def.Compression, "snapshot compression: none, lz4, or zstd")
	logLevel := fs.String("log-level", def.LogLevel, "log level: debug, info, warn, or error")
	logFormat := fs.String("log-format", def.LogFormat, "log format: text or json")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := def
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", *configPath, err)
		}
	}

	// Explicit flags beat the file.
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["input"] {
		cfg.Input = *input
	}
	if set["output"] {
		cfg.Output = *output
	}
	if set["summary"] {
		cfg.Summary = *summaryOut
	}
	if set["epsilon"] {
		cfg.Epsilon = *epsilon
	}
	if set["minpts"] {
		cfg.MinPts = *minPts
	}
	if set["workers"] {
		cfg.Workers = *workers
	}
	if set["index"] {
		cfg.Index = *indexKind
	}
	if set["max-points"] {
		cfg.MaxPoints = *maxPoints
	}
	if set["compression"] {
		cfg.Compression = *compression
	}
	if set["log-level"] {
		cfg.LogLevel = *logLevel
	}
	if set["log-format"] {
		cfg.LogFormat = *logFormat
	}

	return &cfg, nil
}

// String implements fmt.Stringer for debug logging.
func (c *config) String() string {
	return "epsilon=" + strconv.FormatFloat(c.Epsilon, 'g', -1, 64) +
		" minpts=" + strconv.Itoa(c.MinPts) +
		" workers=" + strconv.Itoa(c.Workers) +
		" index=" + c.Index
}
