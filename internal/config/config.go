// Package config provides the optional schemagen config file model plus a
// lightweight validator over decoded values.
//
// The config file is YAML and everything in it is optional; command-line
// flags and SCHEMAGEN_* environment variables take precedence over it in
// the wiring layer. Design goals:
//
//  1. A missing or empty file behaves exactly like an absent config.
//  2. Unknown keys are rejected at decode time so typos surface early.
//  3. Validation never mutates the config; it reports issues the CLI can
//     print and act on.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"schemagen/internal/schema"
)

// Metrics selects and configures the metrics backend.
type Metrics struct {
	// Backend is one of "", "none", "pushgateway", "datadog".
	Backend string `yaml:"backend"`
	// URL is the Pushgateway base URL or the DogStatsD address.
	URL string `yaml:"url"`
	// Job is the Pushgateway job name; defaults to "schemagen".
	Job string `yaml:"job"`
}

// Config is the decoded schemagen config file.
type Config struct {
	// OutputDir overrides the artifact output directory.
	OutputDir string `yaml:"output_dir"`
	// Dialects overrides the default export set, in order.
	Dialects []string `yaml:"dialects"`
	// Verbose echoes generated statements to stdout.
	Verbose bool `yaml:"verbose"`
	// TypeOverrides maps dialect short name → logical type → raw SQL type.
	TypeOverrides map[string]map[string]string `yaml:"type_overrides"`
	// Metrics configures the metrics backend.
	Metrics Metrics `yaml:"metrics"`
}

// Load reads and decodes a YAML config file. An empty file yields the zero
// Config; unknown keys are an error.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var c Config
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return c, nil
}

// Overrides converts the raw override map into the typed form the export
// request takes. Unknown logical types are carried through unchanged;
// Validate is responsible for flagging them.
func (c Config) Overrides() map[string]map[schema.ColType]string {
	if len(c.TypeOverrides) == 0 {
		return nil
	}
	out := make(map[string]map[schema.ColType]string, len(c.TypeOverrides))
	for dialectName, m := range c.TypeOverrides {
		typed := make(map[schema.ColType]string, len(m))
		for k, v := range m {
			typed[schema.ColType(k)] = v
		}
		out[dialectName] = typed
	}
	return out
}
