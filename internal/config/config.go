// Package config loads the optional .gen-ir.yaml file that supplies
// defaults for the gen-ir CLI. Command-line flags always win over file
// values; a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = ".gen-ir.yaml"

// Config holds CLI defaults. Zero values mean "not set" and defer to the
// built-in defaults.
type Config struct {
	// DB is the SQLite index path.
	DB string `yaml:"db"`
	// Format is the output format, json or text.
	Format string `yaml:"format"`
	// LogLevel is the minimum diagnostic severity: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Load reads dir/.gen-ir.yaml. A missing file yields a zero Config and no
// error. Unknown keys are rejected so typos surface instead of being
// silently ignored.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}
