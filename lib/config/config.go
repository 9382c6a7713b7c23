// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config is the ticketdesk configuration.
type Config struct {
	// Paths configures file locations.
	Paths PathsConfig `yaml:"paths"`

	// UI configures the terminal interface.
	UI UIConfig `yaml:"ui"`
}

// PathsConfig configures file locations.
type PathsConfig struct {
	// Data is the ticket database file. The parent directory is
	// created on first open.
	Data string `yaml:"data"`

	// Export is the default directory for CSV exports. Overridable
	// per invocation with --output.
	Export string `yaml:"export"`
}

// UIConfig configures the terminal interface.
type UIConfig struct {
	// Theme forces a theme ("light" or "dark"). Empty means follow
	// the persisted preference, falling back to terminal background
	// detection.
	Theme string `yaml:"theme"`
}

// Default returns the default configuration: database under the
// user's config directory, exports into the working directory, theme
// resolved at startup.
func Default() *Config {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}

	return &Config{
		Paths: PathsConfig{
			Data:   filepath.Join(configDir, "ticketdesk", "tickets.db"),
			Export: ".",
		},
	}
}

// Load loads configuration from the TICKETDESK_CONFIG environment
// variable. When the variable is unset, the defaults apply; a config
// file is optional for a single-user tool.
func Load() (*Config, error) {
	path := os.Getenv("TICKETDESK_CONFIG")
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path, merging
// over the defaults.
//
// The config file is the single source of truth: environment
// variables do not override config values. The only expansion
// performed is ${HOME} and similar path variables for portability.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in
// paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Paths.Data = expandVars(c.Paths.Data, vars)
	c.Paths.Export = expandVars(c.Paths.Export, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Paths.Data == "" {
		return fmt.Errorf("paths.data is required")
	}
	switch c.UI.Theme {
	case "", "light", "dark":
	default:
		return fmt.Errorf("invalid ui.theme %q (want light or dark)", c.UI.Theme)
	}
	return nil
}

// EnsureDataDir creates the parent directory of the data file.
func (c *Config) EnsureDataDir() error {
	dir := filepath.Dir(c.Paths.Data)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: creating data directory %s: %w", dir, err)
	}
	return nil
}
