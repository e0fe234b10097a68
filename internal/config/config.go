// Package config loads the optional minify.toml file from the target
// directory. A missing file is not an error; every setting has a zero
// value that leaves the default behavior untouched.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the config file probed for at the target root.
const FileName = "minify.toml"

// Config holds the optional per-directory settings.
type Config struct {
	// Exclude lists glob patterns removed from the walk. Patterns are
	// matched against the path relative to the target root and against
	// the file's base name.
	Exclude []string `toml:"exclude"`

	// Quiet suppresses per-file output, same as the --quiet flag.
	Quiet bool `toml:"quiet"`
}

// Load reads minify.toml from dir. If the file does not exist, a zero
// Config is returned.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}
