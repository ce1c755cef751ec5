// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

// Package main is the entry point for the Chartroom API server.
//
// Startup order:
//
//  1. Configuration (Koanf v2: defaults, config.yaml, environment)
//  2. Logging
//  3. Database (DuckDB or PostgreSQL), migrated when database.migrate_on_start is set
//  4. HTTP handler and chi router
//  5. Supervisor tree running the HTTP server and pool statistics sampling
//
// SIGINT or SIGTERM cancels the tree; the HTTP server drains for
// server.shutdown_timeout before the database is closed.
//
// Example:
//
//	DATABASE_PATH=./data/chartroom.duckdb HTTP_PORT=3000 ./chartroom
//	DATABASE_DRIVER=postgres DATABASE_DSN="postgres://chartroom@db/chartroom?sslmode=disable" ./chartroom
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/chartroom/docs" // Import generated swagger docs
	"github.com/tomtom215/chartroom/internal/api"
	"github.com/tomtom215/chartroom/internal/config"
	"github.com/tomtom215/chartroom/internal/database"
	"github.com/tomtom215/chartroom/internal/logging"
	"github.com/tomtom215/chartroom/internal/supervisor"
	"github.com/tomtom215/chartroom/internal/supervisor/services"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// poolStatsInterval is how often database pool statistics are exported.
const poolStatsInterval = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("driver", cfg.Database.Driver).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Chartroom")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Chartroom stopped with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config) error {
	db, err := database.New(&cfg.Database, database.OptionsFromConfig(cfg))
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.MigrateOnStart {
		if err := db.Migrate(ctx); err != nil {
			return err
		}
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + time.Second,
	})
	if err != nil {
		return err
	}

	handler := api.NewHandler(db, cfg, version)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	tree.AddDataService(services.NewDBStatsService(db.Conn(), poolStatsInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var treeErr error
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
		treeErr = err
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}
	return treeErr
}
