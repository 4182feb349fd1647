// Package config loads the optional lc.toml project settings file:
// host word size, diagnostic color mode, and the default diagnostic
// cap. CLI flags given a non-default value (--color other than "auto",
// --max-diagnostics above 0) take precedence over file values (see
// cmd/lc), mirroring how the teacher layers persistent flags over its
// project manifest.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the flattened settings shape every field in lc.toml maps
// onto. Load starts from Default(), so a field the file omits keeps its
// default value and a field the file sets to zero stays zero.
type Config struct {
	WordSize       int    `toml:"word_size"`
	Color          string `toml:"color"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

// Default returns the built-in settings used when no lc.toml exists.
func Default() Config {
	return Config{WordSize: 8, Color: "auto", MaxDiagnostics: 100}
}

// Load reads lc.toml from startDir, walking up to the filesystem root
// the way a project manifest search does, and returns (Default(),
// false, nil) if none is found.
func Load(startDir string) (Config, bool, error) {
	path, ok, err := findConfigFile(startDir)
	if err != nil || !ok {
		return Default(), ok, err
	}
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, true, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, true, nil
}

func findConfigFile(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, err
	}
	for {
		candidate := filepath.Join(dir, "lc.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !os.IsNotExist(err) {
			return "", false, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
