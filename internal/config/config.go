// Package config loads the optional profilecheck configuration file.
//
// The file is located by the --config flag or, failing that, the
// PROFILECHECK_CONFIG environment variable. There is no automatic discovery.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when --config is not set.
const EnvPath = "PROFILECHECK_CONFIG"

// Config is the decoded configuration file.
type Config struct {
	// Profile is the profile value to check. It keeps whatever type the YAML
	// scalar decodes to, so `profile: 42` yields an int.
	Profile any `yaml:"profile"`

	// Verbose enables diagnostic logging on stderr.
	Verbose bool `yaml:"verbose"`

	hasProfile bool
}

// HasProfile reports whether the file set the profile key, even to null.
func (c *Config) HasProfile() bool { return c.hasProfile }

// Path returns the config path to load: flag wins over the environment.
// An empty result means no config file.
func Path(flag string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv(EnvPath)
}

// Load reads and decodes the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes config content. Unknown keys are an error.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// empty file
			return cfg, nil
		}
		return nil, err
	}

	// Decode a second time into a node map to tell "absent" from "null".
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	_, cfg.hasProfile = raw["profile"]

	return cfg, nil
}
