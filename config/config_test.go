package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alvawei/smerge-sub000/format"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := write(t, `
color = "never"
local_label = "mine"
union_imports = false
format = "json"
`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, "mine", cfg.LocalLabel)
	assert.Equal(t, "REMOTE", cfg.RemoteLabel)
	assert.False(t, cfg.UnionImports)
	assert.True(t, cfg.Parallel)
	assert.Equal(t, format.JSONFormat, cfg.Format)
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]string{
		"unknown key": `colour = "auto"`,
		"bad color":   `color = "sometimes"`,
		"bad format":  `format = "xml"`,
		"empty label": `remote_label = ""`,
		"syntax":      `color = `,
		"wrong type":  `parallel = "yes"`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFromFile(write(t, content))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smerge", "config.toml")
	cfg := Default()
	cfg.Color = ColorAlways
	cfg.Format = format.JSONFormat
	require.NoError(t, cfg.Save(path))
	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "smerge", "config.toml"), path)
}
