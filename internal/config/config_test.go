package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rpggio/pairwork/internal/config"
	"github.com/rpggio/pairwork/internal/render"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PAIRWORK_CONFIG_PATH", "PAIRWORK_SERVER_HOST", "PAIRWORK_SERVER_PORT",
		"PAIRWORK_TRANSPORT", "PAIRWORK_AUTH_TOKEN", "PAIRWORK_INPUT_FILE",
		"PAIRWORK_INPUT_SEPARATOR", "PAIRWORK_DB_PATH", "PAIRWORK_DB_TABLE",
		"PAIRWORK_OUTPUT_FORMAT", "PAIRWORK_LOG_LEVEL", "PAIRWORK_LOG_PATH",
	} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pairwork.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.Equal(t, config.TransportStdio, cfg.Transport.Mode)
	require.Equal(t, "assignments", cfg.Input.Table)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
server:
  port: 9090
transport:
  mode: http
input:
  separator: ";"
  table: staffing
output:
  format: json
log:
  level: debug
`)
	t.Setenv("PAIRWORK_SERVER_PORT", "9191")
	t.Setenv("PAIRWORK_DB_TABLE", "people")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 9191, cfg.Server.Port)
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, config.TransportHTTP, cfg.Transport.Mode)
	require.Equal(t, ";", cfg.Input.Separator)
	require.Equal(t, "people", cfg.Input.Table)
	require.Equal(t, "json", cfg.Output.Format)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_PathFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAIRWORK_CONFIG_PATH", writeFile(t, "input:\n  file: data.csv\n"))

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "data.csv", cfg.Input.File)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "server: [not, a, map"))
	require.Error(t, err)

	_, err = config.Load(writeFile(t, "transport:\n  mode: carrier-pigeon\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "output:\n  format: xml\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.ErrorIs(t, err, render.ErrUnknownFormat)

	t.Setenv("PAIRWORK_SERVER_PORT", "eighty")
	_, err = config.Load("")
	require.Error(t, err)
}
