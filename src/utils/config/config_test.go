package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	config := Default()
	require.NotNil(t, config)
	require.Equal(t, ":7777", config.RESTListenAddress)
	require.Equal(t, 30*time.Second, config.StopTimeout)
	require.Equal(t, uint16(5432), config.Database.Port)
	require.Equal(t, "0.0.0.0:3001", config.Api.ListenAddress)
	require.False(t, config.Profiler.Enabled)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SYNCSTATE_API_SECRET_KEY", "from-env")
	t.Setenv("SYNCSTATE_DATABASE_PORT", "6543")
	t.Setenv("SYNCSTATE_STOP_TIMEOUT", "3s")

	config, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "from-env", config.Api.SecretKey)
	require.Equal(t, uint16(6543), config.Database.Port)
	require.Equal(t, 3*time.Second, config.StopTimeout)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Api": {"ListenAddress": "127.0.0.1:9999"}, "LogLevel": "INFO"}`), 0600))

	config, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9999", config.Api.ListenAddress)
	require.Equal(t, "INFO", config.LogLevel)
}

func TestMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
