// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles pyclassgen project configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the default configuration file name.
const FileName = "pyclassgen.yaml"

// EnvConfigPath names the environment variable overriding the config location.
const EnvConfigPath = "PYCLASSGEN_CONFIG"

// Libraries accepted in the library field.
var Libraries = []string{"attrs", "dataclasses"}

// DefaultLibrary is used when neither a flag, the config file nor a prompt
// picks a library.
const DefaultLibrary = "attrs"

// ErrUnsupportedVersion indicates a config file written for another format version.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// Config represents the pyclassgen.yaml configuration file.
// Every field except Version may be overridden on the command line.
type Config struct {
	Version   int    `yaml:"version"`
	Schema    string `yaml:"schema,omitempty"`
	Hints     string `yaml:"hints,omitempty"`
	Output    string `yaml:"output,omitempty"`
	Module    string `yaml:"module,omitempty"`
	RootClass string `yaml:"rootClass,omitempty"`
	Library   string `yaml:"library,omitempty"`
	Force     bool   `yaml:"force,omitempty"`
	Workers   int    `yaml:"workers,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Version: CurrentConfigVersion}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg := Default()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return ErrUnsupportedVersion
	}
	if c.Library != "" && !isLibrary(c.Library) {
		return fmt.Errorf("unsupported library %q (expected one of %v)", c.Library, Libraries)
	}
	if c.Workers < 0 {
		return errors.New("workers must not be negative")
	}
	return nil
}

func isLibrary(name string) bool {
	for _, l := range Libraries {
		if l == name {
			return true
		}
	}
	return false
}
