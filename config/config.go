// Package config loads user settings for the smerge command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alvawei/smerge-sub000/format"

	"github.com/pelletier/go-toml/v2"
)

var ErrConfig = errors.New("config error")

// ColorMode selects when output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("%w: bad color mode %q", ErrConfig, s)
}

// Config holds the settings read from config.toml.  Keys missing from the
// file keep their defaults.
type Config struct {
	Color        ColorMode     `toml:"color"`
	LocalLabel   string        `toml:"local_label"`
	RemoteLabel  string        `toml:"remote_label"`
	UnionImports bool          `toml:"union_imports"`
	Parallel     bool          `toml:"parallel"`
	Format       format.Format `toml:"format"`
}

func Default() *Config {
	return &Config{
		Color:        ColorAuto,
		LocalLabel:   "LOCAL",
		RemoteLabel:  "REMOTE",
		UnionImports: true,
		Parallel:     true,
		Format:       format.YAMLFormat,
	}
}

// Load loads the config file from the standard location.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFromFile(path)
}

// LoadFromFile loads the config at path.  A missing file gives the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}
	if _, err := ParseColorMode(string(cfg.Color)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.LocalLabel == "" || cfg.RemoteLabel == "" {
		return nil, fmt.Errorf("%w: %s: labels must not be empty", ErrConfig, path)
	}
	return cfg, nil
}

// Path returns $XDG_CONFIG_HOME/smerge/config.toml, falling back to
// ~/.config/smerge/config.toml.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "smerge", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "smerge", "config.toml"), nil
}

// Save writes c to path, creating the directory if needed.
func (c *Config) Save(path string) error {
	d, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, d, 0o644)
}
