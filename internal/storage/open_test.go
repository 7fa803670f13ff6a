package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolioapi/internal/config"
)

func TestOpen_File(t *testing.T) {
	dataDir, cvDir := t.TempDir(), t.TempDir()

	b, err := Open(config.StorageConfig{Backend: config.StorageBackendFile, DataDir: dataDir, CVDir: cvDir}, config.MinIOConfig{})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = b.Posts.Put(ctx, "blog_posts_es.json", strings.NewReader("[]"), PutObjectOptions{})
	require.NoError(t, err)

	_, _, err = b.CV.Get(ctx, "blog_posts_es.json")
	assert.ErrorIs(t, err, ErrNotExist)
}

func TestOpen_Unknown(t *testing.T) {
	_, err := Open(config.StorageConfig{Backend: "ftp"}, config.MinIOConfig{})
	assert.EqualError(t, err, `unknown storage backend "ftp"`)
}

func TestOpen_MinIOMissingBucket(t *testing.T) {
	_, err := Open(config.StorageConfig{Backend: config.StorageBackendMinIO}, config.MinIOConfig{Endpoint: "localhost:9000"})
	assert.Error(t, err)
}
