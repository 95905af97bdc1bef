package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corep.yaml")

	original := Default()
	original.Server.Port = 9001
	original.Retrieval.DocsDir = "docs"
	require.NoError(t, Save(path, original))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not: a: mapping"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "reg_docs", cfg.Retrieval.DocsDir)
	assert.Equal(t, 3, cfg.Retrieval.TopK)
	assert.Equal(t, 5, cfg.Retrieval.CacheTTLMinutes)
	assert.Equal(t, "GBP", cfg.Report.Currency)
	assert.True(t, cfg.Audit.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOrDefault_NoFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "corep.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
}

func TestLoadOrDefault_EnvOverrides(t *testing.T) {
	t.Setenv("COREP_PORT", "9090")
	t.Setenv("COREP_DOCS_DIR", "/tmp/docs")
	t.Setenv("COREP_LOG_LEVEL", "debug")

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "corep.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/tmp/docs", cfg.Retrieval.DocsDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadOrDefault_BadPortIgnored(t *testing.T) {
	t.Setenv("COREP_PORT", "not-a-port")
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "corep.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
}
