// Package config holds the run configuration of the minilang CLI. Values
// come from an optional YAML file and are then overridden by any flag set
// explicitly on the command line.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"minilang/types"
)

// Config is the full set of run options
type Config struct {
	Lexemes     string   `yaml:"lexemes"`   // lexeme listing destination
	Globals     string   `yaml:"globals"`   // global variable report destination
	Functions   string   `yaml:"functions"` // function report destination
	Trace       bool     `yaml:"trace"`
	TraceFilter []string `yaml:"trace_filter"`
	MaxDepth    int      `yaml:"max_depth"`
	History     string   `yaml:"history"` // REPL history file
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		MaxDepth: types.DefaultMaxDepth,
		History:  ".minilang_history",
	}
}

// Load reads a YAML configuration file on top of the defaults
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration on top of the defaults. Unknown keys
// are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks option values that the decoder cannot
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	for _, f := range c.TraceFilter {
		if strings.TrimSpace(f) == "" {
			return errors.New("trace_filter contains an empty pattern")
		}
	}
	return nil
}

// SplitFilters splits a comma separated list of trace globs
func SplitFilters(s string) []string {
	if s == "" {
		return nil
	}
	var filters []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			filters = append(filters, f)
		}
	}
	return filters
}
