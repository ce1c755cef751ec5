// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

/*
migrations.go - Versioned Schema Migrations

Migrations live in migrations/ as golang-migrate files
(NNNNNN_name.up.sql / .down.sql) and are embedded in the binary:
  - PostgreSQL runs them through golang-migrate (iofs source).
  - DuckDB has no golang-migrate driver, so a small runner here applies the
    same files and keeps the same schema_migrations(version, dirty) row.

Migrations are append-only. Never edit a file that has shipped.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/tomtom215/chartroom/internal/logging"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// Migration is one embedded migration file pair.
type Migration struct {
	Version uint
	Name    string
	Up      string
	Down    string
}

const schemaMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version BIGINT NOT NULL,
	dirty BOOLEAN NOT NULL
)`

// loadMigrations reads the embedded migration files in version order.
func loadMigrations() ([]Migration, error) {
	entries, err := fs.ReadDir(migrationsFS, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded migrations: %w", err)
	}

	byVersion := make(map[uint]*Migration)
	for _, entry := range entries {
		name := entry.Name()
		var direction string
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			direction = "up"
		case strings.HasSuffix(name, ".down.sql"):
			direction = "down"
		default:
			continue
		}

		prefix, rest, ok := strings.Cut(name, "_")
		if !ok {
			return nil, fmt.Errorf("malformed migration file name %q", name)
		}
		version, err := strconv.ParseUint(prefix, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed migration version in %q: %w", name, err)
		}

		body, err := fs.ReadFile(migrationsFS, path.Join(migrationsDir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		m, exists := byVersion[uint(version)]
		if !exists {
			m = &Migration{
				Version: uint(version),
				Name:    strings.TrimSuffix(strings.TrimSuffix(rest, ".up.sql"), ".down.sql"),
			}
			byVersion[uint(version)] = m
		}
		if direction == "up" {
			m.Up = string(body)
		} else {
			m.Down = string(body)
		}
	}

	migrations := make([]Migration, 0, len(byVersion))
	for _, m := range byVersion {
		migrations = append(migrations, *m)
	}
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

// Migrate brings the schema up to the latest embedded version.
func (db *DB) Migrate(ctx context.Context) error {
	if db.dialect == DialectPostgres {
		return db.migratePostgres(ctx, func(m *migrate.Migrate) error { return m.Up() })
	}
	return db.migrateDuckDBUp(ctx)
}

// MigrateDown rolls every applied migration back.
func (db *DB) MigrateDown(ctx context.Context) error {
	if db.dialect == DialectPostgres {
		return db.migratePostgres(ctx, func(m *migrate.Migrate) error { return m.Down() })
	}
	return db.migrateDuckDBDown(ctx)
}

// SchemaVersion returns the applied version. Zero means no migrations ran.
func (db *DB) SchemaVersion(ctx context.Context) (version uint, dirty bool, err error) {
	var exists bool
	err = db.conn.QueryRowContext(ctx, db.conn.Rebind(
		`SELECT COUNT(*) > 0 FROM information_schema.tables WHERE table_name = ?`),
		"schema_migrations").Scan(&exists)
	if err != nil {
		return 0, false, fmt.Errorf("failed to check schema_migrations: %w", err)
	}
	if !exists {
		return 0, false, nil
	}

	var v int64
	err = db.conn.QueryRowContext(ctx, `SELECT version, dirty FROM schema_migrations LIMIT 1`).Scan(&v, &dirty)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read schema version: %w", err)
	}
	if v < 0 {
		return 0, dirty, nil
	}
	return uint(v), dirty, nil
}

// migratePostgres runs golang-migrate through migratepg.WithConnection on a
// single *sql.Conn taken from the pool, so closing the migrator releases that
// connection and leaves the pool open.
func (db *DB) migratePostgres(ctx context.Context, step func(*migrate.Migrate) error) error {
	src, err := iofs.New(migrationsFS, migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to open migration source: %w", err)
	}

	conn, err := db.conn.Conn(ctx)
	if err != nil {
		closeQuietly(src)
		return fmt.Errorf("failed to acquire migration connection: %w", err)
	}

	driver, err := migratepg.WithConnection(ctx, conn, &migratepg.Config{})
	if err != nil {
		closeQuietly(src)
		closeQuietly(conn)
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		closeQuietly(src)
		closeQuietly(driver)
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logging.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("Failed to close migrator")
		}
	}()

	if err := step(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("postgres migration failed: %w", err)
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		logging.Info().Msg("Schema has no applied migrations")
	case err != nil:
		return fmt.Errorf("failed to read schema version: %w", err)
	default:
		logging.Info().Uint("version", version).Bool("dirty", dirty).Msg("Schema migrated")
	}
	return nil
}

func (db *DB) migrateDuckDBUp(ctx context.Context) error {
	migrations, err := loadMigrations()
	if err != nil {
		return err
	}
	if _, err := db.conn.ExecContext(ctx, schemaMigrationsTable); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	current, dirty, err := db.SchemaVersion(ctx)
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("schema is dirty at version %d, fix it manually", current)
	}

	applied := 0
	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		if err := db.applyDuckDBMigration(ctx, m.Up, int64(m.Version)); err != nil {
			return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}
		applied++
		logging.Info().Uint("version", m.Version).Str("name", m.Name).Msg("Applied migration")
	}

	if applied == 0 {
		logging.Debug().Uint("version", current).Msg("Schema up to date")
	}
	return nil
}

func (db *DB) migrateDuckDBDown(ctx context.Context) error {
	migrations, err := loadMigrations()
	if err != nil {
		return err
	}

	current, _, err := db.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	for i := len(migrations) - 1; i >= 0; i-- {
		m := migrations[i]
		if m.Version > current {
			continue
		}
		next := int64(-1)
		if i > 0 {
			next = int64(migrations[i-1].Version)
		}
		if err := db.applyDuckDBMigration(ctx, m.Down, next); err != nil {
			return fmt.Errorf("failed to roll back migration %d (%s): %w", m.Version, m.Name, err)
		}
		logging.Info().Uint("version", m.Version).Str("name", m.Name).Msg("Rolled back migration")
	}
	return nil
}

// applyDuckDBMigration runs one migration body and records the resulting
// version in a single transaction. A negative version clears the row.
func (db *DB) applyDuckDBMigration(ctx context.Context, body string, version int64) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// The DuckDB driver runs every statement of a multi-statement body.
	if _, err := tx.ExecContext(ctx, body); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM schema_migrations`); err != nil {
		return err
	}
	if version >= 0 {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO schema_migrations (version, dirty) VALUES (?, false)`, version); err != nil {
			return err
		}
	}
	return tx.Commit()
}
