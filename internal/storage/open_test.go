package storage

import (
	"testing"

	"portfolioapi/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	s, err := Open(config.MediaConfig{Driver: "local", Root: t.TempDir(), URL: "/media/"}, config.MinIOConfig{})
	require.NoError(t, err)
	assert.NotNil(t, s)

	_, err = Open(config.MediaConfig{Driver: "ftp"}, config.MinIOConfig{})
	assert.ErrorContains(t, err, `unknown storage driver "ftp"`)

	_, err = Open(config.MediaConfig{Driver: "minio"}, config.MinIOConfig{})
	assert.ErrorContains(t, err, "minio endpoint is required")
}

func TestPathPrefix(t *testing.T) {
	assert.Equal(t, "/media/", PathPrefix(config.MediaConfig{Driver: "local", URL: "/media"}, config.MinIOConfig{}))
	assert.Equal(t, "/files/", PathPrefix(config.MediaConfig{Driver: "local", URL: "https://cdn.test/files/"}, config.MinIOConfig{}))
	assert.Equal(t, "", PathPrefix(config.MediaConfig{Driver: "minio"}, config.MinIOConfig{}))
	assert.Equal(t, "/portfolio/", PathPrefix(config.MediaConfig{Driver: "minio"}, config.MinIOConfig{PublicURL: "https://s3.test/portfolio"}))
}
