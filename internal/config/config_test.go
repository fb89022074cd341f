package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFindsFileInParent(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, `
log_level = "debug"

[twelvedays]
correct_spelling = true
`)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	cfg, err := Load(nested)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.TwelveDays.CorrectSpelling)
	assert.Equal(t, path, cfg.Path)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := findConfigFile(dir)
	require.NoError(t, err)
	if cfg != "" {
		// A primer.toml above the temp dir would make this test meaningless
		t.Skipf("found unrelated config at %s", cfg)
	}

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestLoadFileRejectsInvalidLevel(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `log_level = "verbose"`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `colour = "red"`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestLoadFileRejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `log_level = `)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
