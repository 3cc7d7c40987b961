package storage_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nikbrunner/stories/internal/storage"
	"gotest.tools/v3/assert"
)

func TestLoadConfig_CreatesDefaults(t *testing.T) {
	t.Setenv(storage.EndpointEnv, "")
	path := filepath.Join(t.TempDir(), "stories", "config.json")

	cfg, err := storage.LoadConfig(path)
	assert.NilError(t, err)
	assert.Equal(t, *cfg, storage.DefaultConfig())

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}
}

func TestLoadConfig_FillsMissingFields(t *testing.T) {
	t.Setenv(storage.EndpointEnv, "")
	path := filepath.Join(t.TempDir(), "config.json")
	assert.NilError(t, os.WriteFile(path, []byte(`{"logLevel":"debug"}`), 0644))

	cfg, err := storage.LoadConfig(path)
	assert.NilError(t, err)
	assert.Equal(t, cfg.LogLevel, "debug")
	assert.Equal(t, cfg.Endpoint, storage.DefaultConfig().Endpoint)
	assert.Equal(t, cfg.Timeout(), 10*time.Second)
}

func TestLoadConfig_EnvOverridesEndpoint(t *testing.T) {
	t.Setenv(storage.EndpointEnv, "https://api.example.com/graphql")
	path := filepath.Join(t.TempDir(), "config.json")
	assert.NilError(t, os.WriteFile(path, []byte(`{"endpoint":"http://file/graphql"}`), 0644))

	cfg, err := storage.LoadConfig(path)
	assert.NilError(t, err)
	assert.Equal(t, cfg.Endpoint, "https://api.example.com/graphql")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	assert.NilError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := storage.LoadConfig(path)
	assert.Assert(t, err != nil)
}

func TestResolvePaths(t *testing.T) {
	cfg := &storage.Config{CachePath: "/tmp/c.db", LogFile: "/tmp/s.log"}

	cachePath, err := storage.ResolveCachePath(cfg)
	assert.NilError(t, err)
	assert.Equal(t, cachePath, "/tmp/c.db")

	logPath, err := storage.ResolveLogPath(cfg)
	assert.NilError(t, err)
	assert.Equal(t, logPath, "/tmp/s.log")

	defaultCache, err := storage.ResolveCachePath(&storage.Config{})
	assert.NilError(t, err)
	assert.Equal(t, filepath.Base(defaultCache), "cache.db")
}
