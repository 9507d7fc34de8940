package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "SHUTDOWN_TIMEOUT_SECONDS", "STORAGE_BACKEND", "REDIS_DB", "CORS_ALLOW_ORIGINS", "CATALOG_CSV"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, BackendFile, cfg.StorageBackend)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, []string{"*"}, cfg.AllowOrigins)
	assert.Empty(t, cfg.CatalogCSV)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")
	t.Setenv("STORAGE_BACKEND", "Redis")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000, https://shop.example.com ,")

	cfg := FromEnv()
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, BackendRedis, cfg.StorageBackend)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, []string{"http://localhost:3000", "https://shop.example.com"}, cfg.AllowOrigins)
}

func TestFromEnv_BadNumbersFallBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "soon")
	t.Setenv("REDIS_DB", "x")
	cfg := FromEnv()
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("STOREFRONT_TEST_KEY=from-file\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	t.Setenv("STOREFRONT_TEST_KEY", "")
	os.Unsetenv("STOREFRONT_TEST_KEY")

	LoadDotEnv(log.New(io.Discard, "", 0))
	assert.Equal(t, "from-file", os.Getenv("STOREFRONT_TEST_KEY"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))
	assert.NotPanics(t, func() { LoadDotEnv(log.New(io.Discard, "", 0)) })
}
