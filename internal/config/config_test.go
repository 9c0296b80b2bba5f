package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/newsdata/blobstore"
	minioblob "github.com/hupe1980/newsdata/blobstore/minio"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Default(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
threshold = 5.5
log_level = "debug"
concurrency = 8
io_limit = 1048576

[store]
kind = "s3"
bucket = "news"
prefix = "datasets/"
region = "eu-central-1"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5.5, cfg.Threshold)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.Equal(t, int64(1048576), cfg.IOLimit)
	assert.Zero(t, cfg.MemoryLimit)
	assert.Equal(t, StoreConfig{Kind: StoreS3, Bucket: "news", Prefix: "datasets/", Region: "eu-central-1"}, cfg.Store)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_KeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "threshold = 3\n"))
	require.NoError(t, err)

	assert.Equal(t, 3.0, cfg.Threshold)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, StoreLocal, cfg.Store.Kind)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Load(writeConfig(t, "threshold = \n"))
		assert.Error(t, err)
	})

	tests := map[string]string{
		"concurrency":   "concurrency = 0\n",
		"negative io":   "io_limit = -1\n",
		"log level":     "log_level = \"loud\"\n",
		"unknown store": "[store]\nkind = \"ftp\"\n",
		"s3 bucket":     "[store]\nkind = \"s3\"\n",
		"minio":         "[store]\nkind = \"minio\"\nbucket = \"b\"\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestStoreConfig_Open(t *testing.T) {
	ctx := context.Background()

	t.Run("local", func(t *testing.T) {
		store, err := StoreConfig{Kind: StoreLocal, Root: t.TempDir()}.Open(ctx)
		require.NoError(t, err)
		assert.IsType(t, &blobstore.LocalStore{}, store)
	})

	t.Run("minio", func(t *testing.T) {
		store, err := StoreConfig{
			Kind:      StoreMinIO,
			Endpoint:  "localhost:9000",
			Bucket:    "news",
			AccessKey: "minioadmin",
			SecretKey: "minioadmin",
		}.Open(ctx)
		require.NoError(t, err)
		assert.IsType(t, &minioblob.Store{}, store)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := StoreConfig{Kind: "ftp"}.Open(ctx)
		assert.Error(t, err)
	})
}
