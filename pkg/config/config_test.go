package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloudstub.yaml")
	content := "host: 0.0.0.0\nport: 9090\nlogLevel: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)

	// Fields the file omits keep their defaults.
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadFileDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloudstub.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enabled: false\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [not a port"), 0o644))
	_, err = LoadFile(path)
	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvHost, "0.0.0.0")
	t.Setenv(EnvPort, "4280")
	t.Setenv(EnvEnabled, "false")
	t.Setenv(EnvLogFormat, "json")

	cfg := Default()
	LoadEnv(cfg)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 4280, cfg.Port)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "json", cfg.LogFormat)

	// Level untouched since CLOUDSTUB_LOG_LEVEL is unset.
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnvIgnoresBadPort(t *testing.T) {
	t.Setenv(EnvPort, "not-a-number")

	cfg := Default()
	LoadEnv(cfg)
	assert.Equal(t, 8080, cfg.Port)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Port = 70000
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Host = ""
	assert.Error(t, cfg.Validate())
}
