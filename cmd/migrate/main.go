// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

// Package main applies or rolls back the Chartroom star schema.
//
//	chartroom-migrate up       apply all pending migrations
//	chartroom-migrate down     roll back every migration
//	chartroom-migrate version  print the current schema version
//
// The target database comes from the same configuration as the server
// (DATABASE_DRIVER, DATABASE_PATH, DATABASE_DSN, config.yaml).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/tomtom215/chartroom/internal/config"
	"github.com/tomtom215/chartroom/internal/database"
	"github.com/tomtom215/chartroom/internal/logging"
)

// Exit codes for the migrate command.
const (
	exitSuccess = 0
	exitFailure = 1
)

// migrateTimeout bounds a single migrate invocation.
const migrateTimeout = 5 * time.Minute

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: chartroom-migrate <up|down|version>")
		return exitFailure
	}
	command := args[0]
	if command != "up" && command != "down" && command != "version" {
		fmt.Fprintf(os.Stderr, "Invalid command: %q (must be \"up\", \"down\" or \"version\")\n", command)
		return exitFailure
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return exitFailure
	}
	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Timestamp: true,
	})

	db, err := database.New(&cfg.Database, database.OptionsFromConfig(cfg))
	if err != nil {
		logging.Error().Err(err).Msg("Failed to open database")
		return exitFailure
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	switch command {
	case "up":
		err = db.Migrate(ctx)
	case "down":
		err = db.MigrateDown(ctx)
	}
	if err != nil {
		logging.Error().Err(err).Str("command", command).Msg("Migration failed")
		return exitFailure
	}

	version, dirty, err := db.SchemaVersion(ctx)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to read schema version")
		return exitFailure
	}
	logging.Info().
		Str("command", command).
		Str("driver", cfg.Database.Driver).
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("Migration completed")
	return exitSuccess
}
