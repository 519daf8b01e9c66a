// Package config holds runtime configuration for the cloudstub server.
//
// Values are resolved in order: defaults, then an optional YAML file, then
// CLOUDSTUB_* environment variables, then command-line flags. Later sources
// win.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the effective server configuration.
type Config struct {
	// Host is the interface to bind the listener to.
	Host string `yaml:"host"`

	// Port is the TCP port to listen on. 0 picks a free port.
	Port int `yaml:"port"`

	// Enabled is the mock-mode switch. When false the stub refuses to
	// start; the caller is expected to point clients at a live upstream
	// instead.
	Enabled bool `yaml:"enabled"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"logLevel"`

	// LogFormat is the log output format (text or json).
	LogFormat string `yaml:"logFormat"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Host:      "127.0.0.1",
		Port:      8080,
		Enabled:   true,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadFile loads configuration from a YAML file, applied over defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values a listener cannot honor.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 0 and 65535", c.Port)
	}
	if c.Host == "" {
		return fmt.Errorf("host must not be empty")
	}
	return nil
}
