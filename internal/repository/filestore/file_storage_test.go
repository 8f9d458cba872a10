package filestore

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileStorage_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("writes file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		storage := NewFileStorage(fs, zap.NewNop())

		require.NoError(t, storage.Save(ctx, "incident-1.png", []byte("payload")))

		data, err := afero.ReadFile(fs, "incident-1.png")
		require.NoError(t, err)
		assert.Equal(t, "payload", string(data))
	})

	t.Run("rejects nested names", func(t *testing.T) {
		storage := NewFileStorage(afero.NewMemMapFs(), nil)

		for _, name := range []string{"", "../escape.png", "sub/dir.png"} {
			assert.Error(t, storage.Save(ctx, name, []byte("x")), name)
		}
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		storage := NewFileStorage(fs, nil)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		assert.ErrorIs(t, storage.Save(cancelled, "a.png", []byte("x")), context.Canceled)
		exists, err := afero.Exists(fs, "a.png")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestNewDirStorage(t *testing.T) {
	dir := t.TempDir() + "/uploads"
	storage, err := NewDirStorage(dir, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, storage.Save(context.Background(), "incident-2.gif", []byte("GIF89a")))

	data, err := afero.ReadFile(afero.NewOsFs(), dir+"/incident-2.gif")
	require.NoError(t, err)
	assert.Equal(t, "GIF89a", string(data))
}
