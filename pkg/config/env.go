package config

import (
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvHost      = "CLOUDSTUB_HOST"
	EnvPort      = "CLOUDSTUB_PORT"
	EnvEnabled   = "CLOUDSTUB_ENABLED"
	EnvLogLevel  = "CLOUDSTUB_LOG_LEVEL"
	EnvLogFormat = "CLOUDSTUB_LOG_FORMAT"
)

// LoadEnv applies configuration from environment variables.
// It only overrides values that are present in the environment.
func LoadEnv(cfg *Config) {
	if v := os.Getenv(EnvHost); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}

	if v := os.Getenv(EnvEnabled); v != "" {
		cfg.Enabled = v == "true" || v == "1" || v == "yes"
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}
}
