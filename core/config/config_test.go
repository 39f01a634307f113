package config_test

import (
	"testing"

	"tomato-manager/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Minio.Endpoint)
	assert.Equal(t, 9000, cfg.Minio.Port)
	assert.False(t, cfg.Minio.UseSSL)
	assert.Equal(t, "minioadmin", cfg.Minio.AccessKey)
	assert.Equal(t, "minioadmin", cfg.Minio.SecretKey)
	assert.Equal(t, "tomato-manager", cfg.Minio.BucketName)
	assert.Empty(t, cfg.Minio.ExternalURL)
	assert.Equal(t, "us-east-1", cfg.Minio.Region)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("MINIO_ENDPOINT", "minio.internal")
	t.Setenv("MINIO_PORT", "9100")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("MINIO_BUCKET_NAME", "uploads")
	t.Setenv("MINIO_EXTERNAL_URL", "https://example.com")
	t.Setenv("SERVER_PORT", "3000")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "minio.internal", cfg.Minio.Endpoint)
	assert.Equal(t, 9100, cfg.Minio.Port)
	assert.True(t, cfg.Minio.UseSSL)
	assert.Equal(t, "uploads", cfg.Minio.BucketName)
	assert.Equal(t, "https://example.com", cfg.Minio.ExternalURL)
	assert.Equal(t, "3000", cfg.Server.Port)
}
