package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/densgo/index"
	"github.com/hupe1980/densgo/summary"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, 2.5, cfg.Epsilon)
		assert.Equal(t, 2, cfg.MinPts)
		assert.Equal(t, 16, cfg.Workers)
		assert.Equal(t, "brute", cfg.Index)
	})

	t.Run("flags", func(t *testing.T) {
		cfg, err := loadConfig([]string{"-epsilon", "0.5", "-minpts", "4", "-index", "grid"})
		require.NoError(t, err)
		assert.Equal(t, 0.5, cfg.Epsilon)
		assert.Equal(t, 4, cfg.MinPts)
		assert.Equal(t, "grid", cfg.Index)
	})

	t.Run("file with flag override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cfg.yaml")
		require.NoError(t, os.WriteFile(path, []byte("epsilon: 9.0\nworkers: 4\nindex: grid\n"), 0o600))

		cfg, err := loadConfig([]string{"-config", path, "-epsilon", "1.5"})
		require.NoError(t, err)
		assert.Equal(t, 1.5, cfg.Epsilon) // flag wins
		assert.Equal(t, 4, cfg.Workers)   // file wins over default
		assert.Equal(t, "grid", cfg.Index)
	})

	t.Run("bad file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cfg.yaml")
		require.NoError(t, os.WriteFile(path, []byte(":\tnot yaml"), 0o600))
		_, err := loadConfig([]string{"-config", path})
		assert.Error(t, err)
	})
}

func TestParseIndexKind(t *testing.T) {
	for name, want := range map[string]index.Kind{
		"":      index.KindBruteForce,
		"brute": index.KindBruteForce,
		"grid":  index.KindGrid,
	} {
		got, err := parseIndexKind(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := parseIndexKind("kdtree")
	assert.Error(t, err)
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("local path", func(t *testing.T) {
		dir := t.TempDir()
		store, name, err := openStore(ctx, filepath.Join(dir, "points.txt"))
		require.NoError(t, err)
		assert.Equal(t, "points.txt", name)
		require.NoError(t, store.Put(ctx, name, []byte("1 2\n")))
	})

	t.Run("invalid s3 uri", func(t *testing.T) {
		_, _, err := openStore(ctx, "s3://bucket-only")
		assert.Error(t, err)
	})
}

func TestRunEndToEnd(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	snap := filepath.Join(dir, "run.snap")

	require.NoError(t, os.WriteFile(in, []byte("0 0\n1 0\n0 1\n100 100\n"), 0o600))

	err := run(ctx, []string{
		"-input", in,
		"-output", out,
		"-summary", snap,
		"-epsilon", "2",
		"-minpts", "2",
		"-workers", "4",
		"-compression", "zstd",
		"-log-level", "error",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(lines[0], " 1"))
	assert.True(t, strings.HasSuffix(lines[3], " 0")) // isolated point is noise

	snapData, err := os.ReadFile(snap)
	require.NoError(t, err)
	decoded, err := summary.Decode(snapData)
	require.NoError(t, err)
	assert.Equal(t, 4, decoded.Summary.Points)
	require.Len(t, decoded.Summary.Clusters, 1)
	assert.Equal(t, 1, decoded.Summary.NoiseCount())
}

func TestRunErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing input flag", func(t *testing.T) {
		err := run(ctx, []string{"-log-level", "error"})
		assert.Error(t, err)
	})

	t.Run("missing input file", func(t *testing.T) {
		err := run(ctx, []string{"-input", filepath.Join(t.TempDir(), "nope.txt"), "-log-level", "error"})
		assert.Error(t, err)
	})

	t.Run("malformed dataset", func(t *testing.T) {
		in := filepath.Join(t.TempDir(), "bad.txt")
		require.NoError(t, os.WriteFile(in, []byte("1 2 oops"), 0o600))
		err := run(ctx, []string{"-input", in, "-log-level", "error"})
		assert.Error(t, err)
	})
}
