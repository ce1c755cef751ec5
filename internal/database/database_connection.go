// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

/*
database_connection.go - Connection Pool Configuration and Error Detection

Pool sizing comes from config.DatabaseConfig:
  - MaxOpenConns: 0 means runtime.NumCPU()
  - MaxIdleConns: idle connections kept for reuse
  - ConnMaxLifetime / ConnMaxIdleTime: recycle stale connections

Requests beyond MaxOpenConns queue inside database/sql until a connection
frees up or the request context is done.

Error Detection:
isConnectionError separates "the backend is unreachable" from "the query
failed". Only the former is reported as unreachable to API clients.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"runtime"
	"strings"
	"syscall"

	"github.com/tomtom215/chartroom/internal/config"
)

func maxOpenConns(cfg *config.DatabaseConfig) int {
	if cfg.MaxOpenConns > 0 {
		return cfg.MaxOpenConns
	}
	return runtime.NumCPU()
}

// configureConnectionPool sets connection pool parameters
func configureConnectionPool(conn *sql.DB, cfg *config.DatabaseConfig) {
	conn.SetMaxOpenConns(maxOpenConns(cfg))
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
}

var connectionErrorMarkers = []string{
	"connection refused",
	"connection reset",
	"broken pipe",
	"bad connection",
	"database is closed",
	"no such host",
	"i/o timeout",
}

// isConnectionError checks if an error indicates database connection loss
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	for _, marker := range connectionErrorMarkers {
		if strings.Contains(errMsg, marker) {
			return true
		}
	}
	return false
}
