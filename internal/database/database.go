// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/chartroom/internal/config"
	"github.com/tomtom215/chartroom/internal/logging"
)

// DefaultRankingLimit is used when a caller does not ask for a ranking size.
const DefaultRankingLimit = 10

// Options tunes query-layer behavior that is independent of the driver.
type Options struct {
	// PageOverflow is config.PageOverflowPermissive or config.PageOverflowClamp.
	PageOverflow string

	// MaxRankingLimit is the largest accepted ranking limit.
	MaxRankingLimit int

	BreakerEnabled  bool
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		PageOverflow:    config.PageOverflowPermissive,
		MaxRankingLimit: 100,
		BreakerEnabled:  true,
		BreakerFailures: 5,
		BreakerTimeout:  30 * time.Second,
	}
}

// OptionsFromConfig derives Options from the loaded application config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		PageOverflow:    cfg.API.PageOverflow,
		MaxRankingLimit: cfg.API.MaxRankingLimit,
		BreakerEnabled:  cfg.Database.BreakerEnabled,
		BreakerFailures: cfg.Database.BreakerFailures,
		BreakerTimeout:  cfg.Database.BreakerTimeout,
	}
}

// DB is the read-only query layer over the star schema. It is safe for
// concurrent use; all state is fixed after construction.
type DB struct {
	conn    *sqlx.DB
	dialect Dialect
	opts    Options
	breaker *gobreaker.CircuitBreaker[interface{}]
}

// New opens the configured backend and verifies it is reachable.
// Migrations are not applied; call Migrate for that.
func New(cfg *config.DatabaseConfig, opts Options) (*DB, error) {
	var (
		driverName string
		dsn        string
		dialect    Dialect
	)

	switch cfg.Driver {
	case config.DriverDuckDB, "":
		if err := ensureParentDir(cfg.Path); err != nil {
			return nil, err
		}
		driverName, dsn, dialect = "duckdb", duckDBConnString(cfg), DialectDuckDB
	case config.DriverPostgres:
		driverName, dsn, dialect = "postgres", cfg.DSN, DialectPostgres
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	conn, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	configureConnectionPool(conn, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to connect to %s: %w", driverName, err)
	}

	logging.Info().
		Str("driver", driverName).
		Int("max_open_conns", maxOpenConns(cfg)).
		Bool("breaker", opts.BreakerEnabled).
		Msg("Database connection established")

	return NewWithConn(conn, dialect, opts), nil
}

// NewWithConn wraps an already open pool. Tests use it with go-sqlmock.
func NewWithConn(conn *sql.DB, dialect Dialect, opts Options) *DB {
	if opts.PageOverflow == "" {
		opts.PageOverflow = config.PageOverflowPermissive
	}
	if opts.MaxRankingLimit <= 0 {
		opts.MaxRankingLimit = DefaultOptions().MaxRankingLimit
	}

	db := &DB{
		conn:    sqlx.NewDb(conn, string(dialect)),
		dialect: dialect,
		opts:    opts,
	}
	if opts.BreakerEnabled {
		db.breaker = newBreaker(opts)
	}
	return db
}

// Conn returns the underlying SQL connection pool.
func (db *DB) Conn() *sql.DB {
	return db.conn.DB
}

// Dialect reports which SQL dialect queries are rebound to.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Close closes the connection pool.
func (db *DB) Close() error {
	if db.conn.DB == nil {
		return nil
	}
	return db.conn.Close()
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db.conn.DB == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

func duckDBConnString(cfg *config.DatabaseConfig) string {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d", cfg.Path, threads)
	if cfg.MaxMemory != "" {
		connStr += "&max_memory=" + cfg.MaxMemory
	}
	return connStr
}

// ensureParentDir creates the directory holding a DuckDB file.
func ensureParentDir(path string) error {
	if path == "" || path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create database directory %s: %w", dir, err)
	}
	return nil
}
