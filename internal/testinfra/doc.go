// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

//go:build integration

// Package testinfra provides container-backed infrastructure for integration
// tests. It is compiled only with the integration build tag:
//
//	go test -tags integration ./internal/database/...
//
// # PostgreSQL Container
//
// StartPostgres runs a disposable PostgreSQL server and returns a lib/pq DSN:
//
//	func TestAgainstPostgres(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    dsn := testinfra.StartPostgres(t)
//	    db, err := database.New(&config.DatabaseConfig{Driver: "postgres", DSN: dsn}, opts)
//	    // ...
//	}
//
// The container is terminated by t.Cleanup.
package testinfra
