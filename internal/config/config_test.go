package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(contents), 0o644))
}

func TestLoad_MissingFileIsZeroConfig(t *testing.T) {
	t.Parallel()
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoad_AllFields(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeConfig(t, dir, "db: .gen-ir/index.db\nformat: text\nlog_level: debug\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ".gen-ir/index.db", cfg.DB)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_PartialFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeConfig(t, dir, "format: json\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Empty(t, cfg.DB)
	assert.Equal(t, "json", cfg.Format)
	assert.Empty(t, cfg.LogLevel)
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeConfig(t, dir, "formt: json\n")

	_, err := Load(dir)
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeConfig(t, dir, "db: [unclosed\n")

	_, err := Load(dir)
	require.Error(t, err)
}
