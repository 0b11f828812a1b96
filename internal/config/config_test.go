package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "news.db", cfg.Storage.DatabasePath)
	assert.Equal(t, "articles.csv", cfg.Storage.ExportPath)
	assert.Equal(t, "news_pipeline.log", cfg.Logging.File)
	assert.Equal(t, "info", cfg.Logging.Level)

	require.Len(t, cfg.Sites, 2)
	assert.Equal(t, "Skift", cfg.Sites[0].Name)
	assert.Equal(t, "skift", cfg.Sites[0].Scanner)
	assert.Equal(t, "PhocusWire", cfg.Sites[1].Name)
	assert.Equal(t, "phocuswire", cfg.Sites[1].Scanner)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TRAVELNEWS_DB_PATH", "/tmp/other.db")
	t.Setenv("TRAVELNEWS_LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "/tmp/other.db", cfg.Storage.DatabasePath)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
logging:
  level: warn
storage:
  exportPath: snapshot.csv
sites:
  - name: Skift
    scanner: skift
    url: https://example.org
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))
	t.Setenv("TRAVELNEWS_CONFIG", path)

	cfg := Load()

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "snapshot.csv", cfg.Storage.ExportPath)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, "news.db", cfg.Storage.DatabasePath)
	require.Len(t, cfg.Sites, 1)
	assert.Equal(t, "https://example.org", cfg.Sites[0].URL)
}

func TestLoadUnreadableFileFallsBack(t *testing.T) {
	t.Setenv("TRAVELNEWS_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := Load()
	assert.Equal(t, "news.db", cfg.Storage.DatabasePath)
}
