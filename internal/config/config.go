// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

// Package config loads Chartroom configuration from defaults, an optional
// YAML file and environment variables, in that order of precedence (lowest
// first). See LoadWithKoanf.
package config

import (
	"time"
)

// Database drivers.
const (
	DriverDuckDB   = "duckdb"
	DriverPostgres = "postgres"
)

// Page overflow policies for paginated detail endpoints.
const (
	// PageOverflowPermissive returns an empty page when page > totalPages.
	PageOverflowPermissive = "permissive"

	// PageOverflowClamp serves the last page when page > totalPages.
	PageOverflowClamp = "clamp"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatabaseConfig holds the star-schema store settings.
type DatabaseConfig struct {
	Driver    string `koanf:"driver"`     // duckdb or postgres
	Path      string `koanf:"path"`       // DuckDB file path, ":memory:" for an ephemeral store
	DSN       string `koanf:"dsn"`        // PostgreSQL connection string (lib/pq format)
	MaxMemory string `koanf:"max_memory"` // DuckDB memory_limit
	Threads   int    `koanf:"threads"`    // DuckDB threads (0 = NumCPU)

	MaxOpenConns    int           `koanf:"max_open_conns"` // 0 = NumCPU
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`

	MigrateOnStart bool `koanf:"migrate_on_start"`

	BreakerEnabled  bool          `koanf:"breaker_enabled"`
	BreakerFailures uint32        `koanf:"breaker_failures"` // consecutive failures before the breaker opens
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"`  // open state duration before a half-open probe
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// APIConfig holds pagination and ranking limits.
type APIConfig struct {
	DefaultPageSize int    `koanf:"default_page_size"`
	MaxPageSize     int    `koanf:"max_page_size"`
	MaxRankingLimit int    `koanf:"max_ranking_limit"`
	PageOverflow    string `koanf:"page_overflow"` // permissive or clamp
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from all layered sources.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// Addr returns the host:port listen address.
func (s *ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}
