// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package database

// Dialect names the backend. Its value doubles as the sqlx driver name, which
// decides how ? placeholders are rebound: DuckDB keeps them as written and
// PostgreSQL gets $1, $2, ...
type Dialect string

const (
	DialectDuckDB   Dialect = "duckdb"
	DialectPostgres Dialect = "postgres"
)
