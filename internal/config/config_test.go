package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/docker-entrypoint/internal/model"
)

// writeFile writes content into a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// requireConfigError asserts err is a CLIError with ExitConfigError.
func requireConfigError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr), "expected CLIError, got %T", err)
	assert.Equal(t, model.ExitConfigError, cliErr.Code)
}

// TestLoad_Empty verifies that no path means defaults.
func TestLoad_Empty(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "d8", cfg.Engine)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
}

// TestLoad_JSONC verifies comment and trailing-comma tolerant parsing.
func TestLoad_JSONC(t *testing.T) {
	path := writeFile(t, "entrypoint.json", `{
  // engine selection
  "engine": "/opt/v8/d8",
  "logLevel": "debug",
  /* structured logs for the collector */
  "logFormat": "json",
  "engineFlags": ["--harmony", "--log-gc",],
}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/v8/d8", cfg.Engine)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
	assert.Equal(t, []string{"--harmony", "--log-gc"}, cfg.EngineFlags)
	assert.IsType(t, &logrus.JSONFormatter{}, cfg.Formatter())
}

// TestLoad_YAML verifies YAML parsing and that unset fields keep defaults.
func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "entrypoint.yml", `
engineFlags:
  - --prof
buildInfoFile: /etc/build-info.env
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"--prof"}, cfg.EngineFlags)
	assert.Equal(t, "/etc/build-info.env", cfg.BuildInfoFile)
	assert.Equal(t, "d8", cfg.Engine)
	assert.Equal(t, FormatText, cfg.LogFormat)
	assert.IsType(t, &logrus.TextFormatter{}, cfg.Formatter())
}

// TestLoad_Errors verifies that every failure maps to ExitConfigError.
func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"malformed json", "bad.json", `{"engine": `},
		{"malformed yaml", "bad.yaml", "engine: [unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			requireConfigError(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
		requireConfigError(t, err)
	})
}

// TestLoad_DefersValidation verifies that Load keeps out-of-range values so
// that command-line overrides can still replace them before Validate runs.
func TestLoad_DefersValidation(t *testing.T) {
	cfg, err := Load(writeFile(t, "level.yaml", "logLevel: loud\n"))
	require.NoError(t, err)
	assert.Equal(t, "loud", cfg.LogLevel)
	assert.Error(t, cfg.Validate())

	cfg.LogLevel = "info"
	assert.NoError(t, cfg.Validate())
}

// TestConfig_Validate covers the values Validate rejects.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"invalid level", func(c *Config) { c.LogLevel = "loud" }, "logLevel"},
		{"invalid format", func(c *Config) { c.LogFormat = "xml" }, "logFormat"},
		{"empty engine", func(c *Config) { c.Engine = "  " }, "engine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	assert.NoError(t, Default().Validate())
}

// TestConfig_Level_Fallback verifies the info fallback for bad levels.
func TestConfig_Level_Fallback(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "loud"
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
}

// TestConfig_Properties verifies the debug dump fields.
func TestConfig_Properties(t *testing.T) {
	cfg := Default()
	cfg.EngineFlags = []string{"--harmony", "--prof"}

	props := cfg.Properties()
	require.Len(t, props, 5)
	assert.Equal(t, "engineFlags: --harmony --prof", props[3].String())
}
