package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cloudstub/cloudstub/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetServeFlags(t *testing.T) {
	t.Helper()
	serveHost = ""
	servePort = 0
	serveConfig = ""
	serveLogLevel = ""
	serveLogFormat = ""
	t.Cleanup(func() {
		serveHost = ""
		servePort = 0
		serveConfig = ""
		serveLogLevel = ""
		serveLogFormat = ""
	})
}

func TestResolveServeConfigDefaults(t *testing.T) {
	resetServeFlags(t)

	cfg, err := resolveServeConfig()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestResolveServeConfigFlagsWin(t *testing.T) {
	resetServeFlags(t)

	path := filepath.Join(t.TempDir(), "cloudstub.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9000\nhost: 0.0.0.0\n"), 0o644))

	serveConfig = path
	servePort = 9100
	t.Setenv(config.EnvLogLevel, "debug")

	cfg, err := resolveServeConfig()
	require.NoError(t, err)

	// Flag beats file, env fills what flags leave alone.
	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestResolveServeConfigMissingFile(t *testing.T) {
	resetServeFlags(t)
	serveConfig = filepath.Join(t.TempDir(), "absent.yaml")

	_, err := resolveServeConfig()
	assert.Error(t, err)
}

func TestResolveServeConfigInvalidPort(t *testing.T) {
	resetServeFlags(t)
	servePort = 99999

	_, err := resolveServeConfig()
	assert.Error(t, err)
}

func TestServeRefusesWhenDisabled(t *testing.T) {
	resetServeFlags(t)
	t.Setenv(config.EnvEnabled, "false")

	err := runServe(serveCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mock mode is disabled")
}
