// Package config handles loading nano-highlight's optional YAML config.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure of the file passed with -config.
// Every field is optional; the zero Config reproduces the default run.
type Config struct {
	// Home overrides the directory that receives .nanorc and .nano/.
	// Empty means the invoking user's home directory.
	Home string `yaml:"home"`

	// Verbose enables debug logging, same as -v.
	Verbose bool `yaml:"verbose"`
}

// Load reads path and returns the parsed Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}
