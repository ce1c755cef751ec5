// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package config

import (
	"fmt"
	"time"
)

// MaxPageSizeCeiling bounds API_MAX_PAGE_SIZE and API_MAX_RANKING_LIMIT.
const MaxPageSizeCeiling = 1000

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDatabase() error {
	switch c.Database.Driver {
	case DriverDuckDB:
		if c.Database.Path == "" {
			return fmt.Errorf("DUCKDB_PATH is required when DATABASE_DRIVER=duckdb")
		}
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("DATABASE_URL is required when DATABASE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("DATABASE_DRIVER must be one of: duckdb, postgres (got %q)", c.Database.Driver)
	}

	if c.Database.MaxOpenConns < 0 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be >= 0")
	}
	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("DB_MAX_IDLE_CONNS must be >= 0")
	}
	if c.Database.BreakerEnabled {
		if c.Database.BreakerFailures == 0 {
			return fmt.Errorf("DB_BREAKER_FAILURES must be at least 1 when the breaker is enabled")
		}
		if c.Database.BreakerTimeout < time.Second {
			return fmt.Errorf("DB_BREAKER_TIMEOUT must be at least 1s")
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.WriteTimeout <= 0 || c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("HTTP read and write timeouts must be positive")
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.MaxPageSize < 1 || c.API.MaxPageSize > MaxPageSizeCeiling {
		return fmt.Errorf("API_MAX_PAGE_SIZE must be between 1 and %d", MaxPageSizeCeiling)
	}
	if c.API.DefaultPageSize < 1 || c.API.DefaultPageSize > c.API.MaxPageSize {
		return fmt.Errorf("API_DEFAULT_PAGE_SIZE must be between 1 and API_MAX_PAGE_SIZE (%d)", c.API.MaxPageSize)
	}
	// The default ranking limit is 10 and must always be servable.
	if c.API.MaxRankingLimit < 10 || c.API.MaxRankingLimit > MaxPageSizeCeiling {
		return fmt.Errorf("API_MAX_RANKING_LIMIT must be between 10 and %d", MaxPageSizeCeiling)
	}
	switch c.API.PageOverflow {
	case PageOverflowPermissive, PageOverflowClamp:
	default:
		return fmt.Errorf("API_PAGE_OVERFLOW must be one of: permissive, clamp (got %q)", c.API.PageOverflow)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
