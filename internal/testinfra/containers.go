// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

//go:build integration

package testinfra

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresImage is the server image used by StartPostgres.
const PostgresImage = "postgres:16-alpine"

// SkipIfNoDocker skips t when no Docker daemon answers within five seconds.
func SkipIfNoDocker(t *testing.T) {
	t.Helper()
	if !DockerAvailable() {
		t.Skip("docker daemon not reachable; skipping container test")
	}
}

// DockerAvailable runs `docker info` as a cheap daemon probe.
func DockerAvailable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return exec.CommandContext(ctx, "docker", "info").Run() == nil
}

// StartPostgres runs an empty PostgreSQL container for the lifetime of t and
// returns a lib/pq DSN for it. The schema is left to the caller's migrations.
func StartPostgres(t *testing.T) string {
	t.Helper()

	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx,
		PostgresImage,
		tcpostgres.WithDatabase("chartroom_test"),
		tcpostgres.WithUsername("chartroom"),
		tcpostgres.WithPassword("chartroom"),
		testcontainers.WithWaitStrategy(
			// Postgres logs readiness once for the init server and once for the real one.
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(90*time.Second)),
	)
	testcontainers.CleanupContainer(t, ctr)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("postgres dsn: %v", err)
	}
	return dsn
}
