// Package config loads the interpreter's tunable run-time settings from
// an optional YAML file using github.com/goccy/go-yaml.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// RunConfig holds the interpreter's tunable settings. Zero value is the
// default configuration: unbounded call depth, tracing off.
type RunConfig struct {
	// MaxCallDepth bounds Frame Stack growth; exceeding it is reported as
	// an internal error (code 99) instead of letting the Go call stack
	// that mirrors it (the Evaluator/Dispatcher are mutually recursive)
	// overflow the process. Zero means unbounded.
	MaxCallDepth int `yaml:"maxCallDepth"`

	// TraceEnabled turns on dispatch-event JSON tracing (internal/trace).
	// Tracing is purely observational: it never changes dispatch outcomes.
	TraceEnabled bool `yaml:"traceEnabled"`

	// TraceEventLimit caps the number of trace events written; events
	// after the cap are dropped. Zero means unbounded.
	TraceEventLimit int `yaml:"traceEventLimit"`
}

// Default returns the zero-value configuration explicitly, for call sites
// that want to be clear they are not loading a file.
func Default() RunConfig {
	return RunConfig{}
}

// Load reads a RunConfig from path. A missing file is not an error - the
// defaults apply - matching the ambient stack's "absence of a config file
// is not an error" rule.
func Load(path string) (RunConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
