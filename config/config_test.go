package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.Color)
	assert.Equal(t, 80, cfg.Width)
	assert.Equal(t, 120, cfg.Piped.Width)
	assert.Equal(t, 1, cfg.Piped.Columns)
	assert.Equal(t, 0, cfg.Ls.Limit)
	assert.True(t, cfg.Ls.Truncate)
	assert.Equal(t, "[{resource}]$ ", cfg.Prompt)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMergesFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.yaml")
	require.NoError(t, os.WriteFile(first, []byte("color: false\npiped:\n  width: 100\nls:\n  limit: 10\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("ls:\n  limit: 20\n"), 0o644))

	cfg, err := Load([]string{first, second})
	require.NoError(t, err)
	assert.False(t, cfg.Color)
	assert.Equal(t, 100, cfg.Piped.Width)
	assert.Equal(t, 1, cfg.Piped.Columns)
	assert.Equal(t, 20, cfg.Ls.Limit)
}

func TestLoadMergesMixedFormats(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.toml")
	third := filepath.Join(dir, "third.json")
	require.NoError(t, os.WriteFile(first, []byte("width: 90\nls:\n  limit: 5\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("[piped]\nwidth = 77\n"), 0o644))
	require.NoError(t, os.WriteFile(third, []byte(`{"ls": {"limit": 7}}`), 0o644))

	cfg, err := Load([]string{first, second, third})
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.Width)
	assert.Equal(t, 77, cfg.Piped.Width)
	assert.Equal(t, 1, cfg.Piped.Columns)
	assert.Equal(t, 7, cfg.Ls.Limit)
	assert.True(t, cfg.Color)
}

func TestDefaultMatchesLoad(t *testing.T) {
	// No config file is found in the package directory or the home directory
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("JAVASH_PIPED_WIDTH", "90")
	t.Setenv("JAVASH_LOG_LEVEL", "debug")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.Piped.Width)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load([]string{filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}
