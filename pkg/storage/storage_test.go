package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"telephysio/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLocalStore_PutAndDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(dir, "/uploads/", zap.NewNop())
	require.NoError(t, err)

	url, err := s.Put(context.Background(), "avatars/u1.png", strings.NewReader("png"), 3, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/avatars/u1.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "avatars", "u1.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))

	require.NoError(t, s.Delete(context.Background(), "avatars/u1.png"))
	_, err = os.Stat(filepath.Join(dir, "avatars", "u1.png"))
	assert.True(t, os.IsNotExist(err))

	// Deleting twice is fine.
	require.NoError(t, s.Delete(context.Background(), "avatars/u1.png"))
}

func TestLocalStore_KeyCannotEscape(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(dir, "/uploads", zap.NewNop())
	require.NoError(t, err)

	_, err = s.Put(context.Background(), "../../etc/evil", strings.NewReader("x"), 1, "text/plain")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "etc", "evil"))
	assert.NoError(t, err)
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(context.Background(), &config.StorageConfig{Provider: "ftp"}, zap.NewNop())
	assert.Error(t, err)
}

func TestNew_MinIOWithoutEndpoint(t *testing.T) {
	_, err := New(context.Background(), &config.StorageConfig{Provider: "minio"}, zap.NewNop())
	assert.Error(t, err)
}
