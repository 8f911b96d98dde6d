package mmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapping(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blob")
		require.NoError(t, os.WriteFile(path, []byte("0.5 1.5\n2.5 3.5\n"), 0o600))

		m, err := Open(path)
		require.NoError(t, err)

		data, err := m.Bytes()
		require.NoError(t, err)
		require.Equal(t, "0.5 1.5\n2.5 3.5\n", string(data))
		require.Equal(t, int64(16), m.Size())

		buf := make([]byte, 3)
		n, err := m.ReadAt(buf, 4)
		require.NoError(t, err)
		require.Equal(t, 3, n)
		require.Equal(t, "1.5", string(buf))

		require.NoError(t, m.Close())
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		m, err := Open(path)
		require.NoError(t, err)
		require.Equal(t, int64(0), m.Size())
		require.NoError(t, m.Close())
	})

	t.Run("closed mapping", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blob")
		require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))

		m, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, m.Close())
		require.NoError(t, m.Close()) // idempotent

		_, err = m.Bytes()
		require.ErrorIs(t, err, ErrClosed)
		_, err = m.ReadAt(make([]byte, 1), 0)
		require.ErrorIs(t, err, ErrClosed)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Open(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
	})
}
