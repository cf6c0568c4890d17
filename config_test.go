package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(writeConfigFile(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "sales-analytics-api", cfg.App.Name)
	assert.Equal(t, "Sales Analytics API", cfg.App.Title)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "/docs", cfg.App.DocsPath)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, gin.ReleaseMode, cfg.Server.Mode)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, 12*time.Hour, cfg.CORS.MaxAge)
	assert.Equal(t, ":8080", cfg.addr())
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfigFile(t, `
app:
  name: analytics-staging
server:
  port: "9000"
  mode: debug
  read_timeout: 3s
logging:
  level: debug
  format: console
cors:
  allow_origins:
    - https://dashboard.example
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "analytics-staging", cfg.App.Name)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, gin.DebugMode, cfg.Server.Mode)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"https://dashboard.example"}, cfg.CORS.AllowOrigins)
	// untouched keys keep their defaults
	assert.Equal(t, "1.0.0", cfg.App.Version)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("LOGGING_LEVEL", "warn")

	cfg, err := loadConfig(writeConfigFile(t, "server:\n  port: \"7000\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "9191", cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown mode", "server:\n  mode: turbo\n", "server.mode"},
		{"empty port", "server:\n  port: \"\"\n", "server.port"},
		{"malformed yaml", "server: [\n", "error reading config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfigFile(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
