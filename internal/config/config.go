// Package config loads optional solver tuning from a YAML file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config tunes the solver and generator. Zero values mean "use defaults".
type Config struct {
	// MaxIterations caps the randomized stage's restart budget.
	MaxIterations int `yaml:"max_iterations,omitempty"`
	// Seed fixes the random source; 0 seeds from the clock.
	Seed int64 `yaml:"seed,omitempty"`
	// Removals is the default cell count cleared by reduce/generate.
	Removals int `yaml:"removals,omitempty"`
	// DataDir is where puzzles are persisted.
	DataDir string `yaml:"data_dir,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Removals: 40, DataDir: "./data"}
}

// Load reads path and overlays it on the defaults. A missing path is not
// an error; a present but malformed file is.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if c.Removals == 0 {
		c.Removals = Default().Removals
	}
	if c.DataDir == "" {
		c.DataDir = Default().DataDir
	}
	return c, nil
}
