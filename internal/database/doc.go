// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

/*
Package database provides the read-only analytics query layer over the
music-performance star schema.

# Schema

The schema is a classic star: dimensions dim_artist, dim_song, dim_platform,
dim_producer and dim_grammy; one fact table fact_song_performance holding
streams (Spotify), views (YouTube) and weeks_on_chart; and the many-to-many
bridge_artist_producer. The query layer never writes domain rows.

# Backends

Two drivers are supported through database/sql:
  - duckdb (github.com/duckdb/duckdb-go/v2), the default, file or :memory:
  - postgres (github.com/lib/pq)

Queries are written once with ? placeholders and rebound per Dialect.

# Operations

  - GetKPIs: distinct artist/song counts and the combined streams+views total
  - GetRankings, GetChartData: top artists by platform metric, top songs by
    longest chart run
  - SearchArtists: case-insensitive substring lookup, minimum two characters
  - GetArtistMetrics, GetAwardHistory, GetProducerCredits: per-artist detail,
    the latter two paginated

# Failure Handling

Every query runs behind a gobreaker circuit breaker and records Prometheus
metrics. Backend failures surface as *BackendUnavailableError (matching
ErrBackendUnavailable); bad filter values surface as
*models.InvalidFilterError before any query is issued.

# Migrations

See migrations.go. PostgreSQL uses golang-migrate; DuckDB uses a built-in
runner over the same embedded files.

# Testing

Unit tests run against in-memory DuckDB seeded with fixtures, and against
go-sqlmock where the test asserts which queries are (not) issued. Tests
tagged integration run the same fixtures on PostgreSQL via testcontainers.
*/
package database
