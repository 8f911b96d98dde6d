package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	ctx := context.Background()

	t.Run("put open round trip", func(t *testing.T) {
		store, err := NewLocalStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Put(ctx, "points.txt", []byte("1.0 2.0\n")))

		b, err := store.Open(ctx, "points.txt")
		require.NoError(t, err)
		defer b.Close()

		require.Equal(t, int64(8), b.Size())

		data, err := b.(Mappable).Bytes()
		require.NoError(t, err)
		require.Equal(t, "1.0 2.0\n", string(data))
	})

	t.Run("create is atomic", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewLocalStore(dir)
		require.NoError(t, err)

		w, err := store.Create(ctx, "out.txt")
		require.NoError(t, err)
		_, err = w.Write([]byte("partial"))
		require.NoError(t, err)

		// Not visible until Close.
		_, err = os.Stat(filepath.Join(dir, "out.txt"))
		require.True(t, os.IsNotExist(err))

		require.NoError(t, w.Close())
		data, err := ReadAll(ctx, store, "out.txt")
		require.NoError(t, err)
		require.Equal(t, "partial", string(data))
	})

	t.Run("put replaces", func(t *testing.T) {
		store, err := NewLocalStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Put(ctx, "a", []byte("old")))
		require.NoError(t, store.Put(ctx, "a", []byte("new")))

		data, err := ReadAll(ctx, store, "a")
		require.NoError(t, err)
		require.Equal(t, "new", string(data))
	})

	t.Run("missing blob", func(t *testing.T) {
		store, err := NewLocalStore(t.TempDir())
		require.NoError(t, err)

		_, err = store.Open(ctx, "nope")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete and list", func(t *testing.T) {
		store, err := NewLocalStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Put(ctx, "runs/a", []byte("x")))
		require.NoError(t, store.Put(ctx, "runs/b", []byte("y")))
		require.NoError(t, store.Put(ctx, "other", []byte("z")))

		names, err := store.List(ctx, "runs/")
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"runs/a", "runs/b"}, names)

		require.NoError(t, store.Delete(ctx, "runs/a"))
		require.NoError(t, store.Delete(ctx, "runs/a")) // idempotent

		names, err = store.List(ctx, "runs/")
		require.NoError(t, err)
		require.Equal(t, []string{"runs/b"}, names)
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Put(ctx, "a", []byte("hello")))

		data, err := ReadAll(ctx, store, "a")
		require.NoError(t, err)
		require.Equal(t, "hello", string(data))
	})

	t.Run("open handle isolated from later put", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Put(ctx, "a", []byte("old")))

		b, err := store.Open(ctx, "a")
		require.NoError(t, err)
		defer b.Close()

		require.NoError(t, store.Put(ctx, "a", []byte("new")))

		buf := make([]byte, 3)
		_, err = b.ReadAt(buf, 0)
		require.NoError(t, err)
		require.Equal(t, "old", string(buf))
	})

	t.Run("create visible on close", func(t *testing.T) {
		store := NewMemoryStore()
		w, err := store.Create(ctx, "a")
		require.NoError(t, err)
		_, err = w.Write([]byte("data"))
		require.NoError(t, err)

		_, err = store.Open(ctx, "a")
		require.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, w.Close())
		data, err := ReadAll(ctx, store, "a")
		require.NoError(t, err)
		require.Equal(t, "data", string(data))
	})

	t.Run("list and delete", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Put(ctx, "x/1", nil))
		require.NoError(t, store.Put(ctx, "y/1", nil))

		names, err := store.List(ctx, "x/")
		require.NoError(t, err)
		require.Equal(t, []string{"x/1"}, names)

		require.NoError(t, store.Delete(ctx, "x/1"))
		_, err = store.Open(ctx, "x/1")
		require.ErrorIs(t, err, ErrNotFound)
	})
}
