// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateConfig keeps the developer's config files and env out of the test.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	for key := range envMappings {
		name := strings.ToUpper(key)
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	assert.Equal(t, DriverDuckDB, cfg.Database.Driver)
	assert.Equal(t, "/data/chartroom.duckdb", cfg.Database.Path)
	assert.True(t, cfg.Database.MigrateOnStart)
	assert.Equal(t, 5, cfg.API.DefaultPageSize)
	assert.Equal(t, PageOverflowPermissive, cfg.API.PageOverflow)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Security.CORSOrigins)
	require.NoError(t, cfg.Validate())
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	isolateConfig(t)

	cfg, err := LoadWithKoanf()
	require.NoError(t, err)
	assert.Equal(t, DriverDuckDB, cfg.Database.Driver)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	isolateConfig(t)
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://chartroom@localhost/chartroom?sslmode=disable")
	t.Setenv("HTTP_PORT", "8088")
	t.Setenv("API_PAGE_OVERFLOW", "clamp")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, https://charts.example.com")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithKoanf()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://chartroom@localhost/chartroom?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, 8088, cfg.Server.Port)
	assert.Equal(t, PageOverflowClamp, cfg.API.PageOverflow)
	assert.Equal(t, []string{"http://localhost:5173", "https://charts.example.com"}, cfg.Security.CORSOrigins)
	assert.Equal(t, 30*time.Second, cfg.Security.RateLimitWindow)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadWithKoanf_FileThenEnv(t *testing.T) {
	isolateConfig(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := []byte(`
database:
  path: ":memory:"
  max_open_conns: 4
api:
  default_page_size: 10
logging:
  level: warn
`)
	require.NoError(t, os.WriteFile(path, yaml, 0o600))
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadWithKoanf()
	require.NoError(t, err)

	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, 4, cfg.Database.MaxOpenConns)
	assert.Equal(t, 10, cfg.API.DefaultPageSize)
	assert.Equal(t, "error", cfg.Logging.Level, "env must win over file")
}

func TestLoadWithKoanf_InvalidConfig(t *testing.T) {
	isolateConfig(t)
	t.Setenv("DATABASE_DRIVER", "mysql")

	_, err := LoadWithKoanf()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_DRIVER")
}

func TestEnvTransformFunc(t *testing.T) {
	assert.Equal(t, "database.path", envTransformFunc("DUCKDB_PATH"))
	assert.Equal(t, "server.port", envTransformFunc("HTTP_PORT"))
	assert.Equal(t, "", envTransformFunc("HOME"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"postgres without dsn", func(c *Config) { c.Database.Driver = DriverPostgres }, "DATABASE_URL"},
		{"empty duckdb path", func(c *Config) { c.Database.Path = "" }, "DUCKDB_PATH"},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"default page above max", func(c *Config) { c.API.DefaultPageSize = 500 }, "API_DEFAULT_PAGE_SIZE"},
		{"max page size above ceiling", func(c *Config) { c.API.MaxPageSize = math.MaxInt }, "API_MAX_PAGE_SIZE"},
		{"max page size at ceiling", func(c *Config) { c.API.MaxPageSize = MaxPageSizeCeiling }, ""},
		{"ranking limit above ceiling", func(c *Config) { c.API.MaxRankingLimit = MaxPageSizeCeiling + 1 }, "API_MAX_RANKING_LIMIT"},
		{"ranking limit below 10", func(c *Config) { c.API.MaxRankingLimit = 5 }, "API_MAX_RANKING_LIMIT"},
		{"unknown overflow", func(c *Config) { c.API.PageOverflow = "error" }, "API_PAGE_OVERFLOW"},
		{"zero breaker failures", func(c *Config) { c.Database.BreakerFailures = 0 }, "DB_BREAKER_FAILURES"},
		{"breaker disabled ignores failures", func(c *Config) {
			c.Database.BreakerEnabled = false
			c.Database.BreakerFailures = 0
		}, ""},
		{"rate limit disabled ignores window", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitWindow = 0
		}, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestServerConfig_Addr(t *testing.T) {
	s := ServerConfig{Host: "0.0.0.0", Port: 3000}
	assert.Equal(t, "0.0.0.0:3000", s.Addr())
}
