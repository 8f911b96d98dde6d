package summary

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/densgo/blobstore"
	"github.com/hupe1980/densgo/engine"
)

func TestBuild(t *testing.T) {
	labels := []engine.Label{1, engine.Noise, 2, 1, engine.Unassigned, 2, 2}

	s := Build(labels)
	assert.Equal(t, 7, s.Points)
	require.Len(t, s.Clusters, 2)

	assert.Equal(t, int64(1), s.Clusters[0].ID)
	assert.Equal(t, 2, s.Clusters[0].Size())
	assert.True(t, s.Clusters[0].Members.Contains(0))
	assert.True(t, s.Clusters[0].Members.Contains(3))

	assert.Equal(t, int64(2), s.Clusters[1].ID)
	assert.Equal(t, 3, s.Clusters[1].Size())

	// Unassigned counts as noise at output.
	assert.Equal(t, 2, s.NoiseCount())
	assert.True(t, s.Noise.Contains(1))
	assert.True(t, s.Noise.Contains(4))

	assert.Equal(t, int64(2), s.LabelOf(5))
	assert.Equal(t, int64(0), s.LabelOf(1))

	require.NotNil(t, s.Cluster(2))
	assert.Nil(t, s.Cluster(3))
}

func TestSnapshotRoundTrip(t *testing.T) {
	labels := []engine.Label{1, 1, engine.Noise, 2, 2, 2}
	snap := &Snapshot{
		RunID:   uuid.New(),
		Summary: Build(labels),
	}

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZstd} {
		t.Run(c.String(), func(t *testing.T) {
			data, err := snap.Encode(c)
			require.NoError(t, err)

			got, err := Decode(data)
			require.NoError(t, err)

			assert.Equal(t, snap.RunID, got.RunID)
			assert.Equal(t, snap.Summary.Points, got.Summary.Points)
			require.Len(t, got.Summary.Clusters, 2)
			assert.True(t, got.Summary.Clusters[0].Members.Equals(snap.Summary.Clusters[0].Members))
			assert.True(t, got.Summary.Clusters[1].Members.Equals(snap.Summary.Clusters[1].Members))
			assert.True(t, got.Summary.Noise.Equals(snap.Summary.Noise))
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Run("truncated", func(t *testing.T) {
		_, err := Decode([]byte{1, 2, 3})
		assert.ErrorIs(t, err, ErrCorruptSnapshot)
	})

	t.Run("wrong magic", func(t *testing.T) {
		data := make([]byte, 40)
		_, err := Decode(data)
		assert.ErrorIs(t, err, ErrInvalidMagic)
	})

	t.Run("wrong version", func(t *testing.T) {
		snap := &Snapshot{RunID: uuid.New(), Summary: Build([]engine.Label{1})}
		data, err := snap.Encode(CompressionNone)
		require.NoError(t, err)
		data[4] = 0xFF
		_, err = Decode(data)
		assert.ErrorIs(t, err, ErrInvalidVersion)
	})

	t.Run("truncated payload", func(t *testing.T) {
		snap := &Snapshot{RunID: uuid.New(), Summary: Build([]engine.Label{1, 2, engine.Noise})}
		data, err := snap.Encode(CompressionNone)
		require.NoError(t, err)
		_, err = Decode(data[:len(data)-4])
		assert.Error(t, err)
	})
}

func TestSnapshotSaveLoad(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	snap := &Snapshot{RunID: uuid.New(), Summary: Build([]engine.Label{1, 1, engine.Noise})}
	require.NoError(t, snap.Save(ctx, store, "run.snap", CompressionZstd))

	got, err := LoadSnapshot(ctx, store, "run.snap")
	require.NoError(t, err)
	assert.Equal(t, snap.RunID, got.RunID)
	assert.Equal(t, 1, got.Summary.NoiseCount())

	_, err = LoadSnapshot(ctx, store, "missing.snap")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestParseCompression(t *testing.T) {
	for name, want := range map[string]Compression{
		"":     CompressionNone,
		"none": CompressionNone,
		"lz4":  CompressionLZ4,
		"zstd": CompressionZstd,
	} {
		got, err := ParseCompression(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseCompression("gzip")
	assert.Error(t, err)
}
