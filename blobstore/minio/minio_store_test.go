package minio

import (
	"context"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/densgo/blobstore"
)

func TestKeyPrefix(t *testing.T) {
	s := &Store{bucket: "b", prefix: "runs/"}
	assert.Equal(t, "runs/points.txt", s.key("points.txt"))

	s = &Store{bucket: "b"}
	assert.Equal(t, "points.txt", s.key("points.txt"))
}

// TestMinioStore_Integration requires a running MinIO instance and is
// skipped otherwise.
func TestMinioStore_Integration(t *testing.T) {
	client, err := minio.New("localhost:9000", &minio.Options{
		Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("minio client creation failed: %v", err)
	}

	ctx := context.Background()
	if _, err = client.ListBuckets(ctx); err != nil {
		t.Skipf("minio not available: %v", err)
	}

	bucket := "test-densgo"
	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	store := NewStore(client, bucket, "it/")

	t.Run("put open round trip", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "points.txt", []byte("1.0 2.0\n3.0 4.0\n")))

		data, err := blobstore.ReadAll(ctx, store, "points.txt")
		require.NoError(t, err)
		assert.Equal(t, "1.0 2.0\n3.0 4.0\n", string(data))
	})

	t.Run("ranged read", func(t *testing.T) {
		b, err := store.Open(ctx, "points.txt")
		require.NoError(t, err)
		defer b.Close()

		buf := make([]byte, 3)
		n, err := b.ReadAt(buf, 4)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, "2.0", string(buf))
	})

	t.Run("create stream", func(t *testing.T) {
		w, err := store.Create(ctx, "stream.txt")
		require.NoError(t, err)
		_, err = w.Write([]byte("5.0 6.0\n"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		data, err := blobstore.ReadAll(ctx, store, "stream.txt")
		require.NoError(t, err)
		assert.Equal(t, "5.0 6.0\n", string(data))
	})

	t.Run("list and delete", func(t *testing.T) {
		names, err := store.List(ctx, "")
		require.NoError(t, err)
		assert.Contains(t, names, "points.txt")

		require.NoError(t, store.Delete(ctx, "points.txt"))
		require.NoError(t, store.Delete(ctx, "points.txt"))

		_, err = store.Open(ctx, "points.txt")
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})
}
