// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/chartroom/internal/metrics"
)

// run executes fn under the circuit breaker, records query metrics and maps
// any failure to *BackendUnavailableError. A canceled context is returned
// as-is: the caller went away and the backend is not at fault. Failures are
// not logged here; the caller that answers the request logs once.
func (db *DB) run(ctx context.Context, op, table string, fn func(context.Context) error) error {
	start := time.Now()

	var err error
	if db.breaker != nil {
		_, err = db.breaker.Execute(func() (interface{}, error) {
			return nil, fn(ctx)
		})
	} else {
		err = fn(ctx)
	}

	metrics.RecordDBQuery(op, table, time.Since(start), err)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", op, err)
	}

	return &BackendUnavailableError{
		Op:          op,
		Unreachable: isBreakerRejection(err) || isConnectionError(err),
		Err:         err,
	}
}

// selectRows runs query and maps every row onto T by its db tags. The result
// is never nil.
func selectRows[T any](ctx context.Context, db *DB, op, table, query string, args []interface{}) ([]T, error) {
	results := make([]T, 0)
	err := db.run(ctx, op, table, func(ctx context.Context) error {
		return db.conn.SelectContext(ctx, &results, db.conn.Rebind(query), args...)
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// queryRow runs a single-row query and scans its columns into dest.
func (db *DB) queryRow(ctx context.Context, op, table, query string, args []interface{}, dest ...interface{}) error {
	return db.run(ctx, op, table, func(ctx context.Context) error {
		return db.conn.QueryRowxContext(ctx, db.conn.Rebind(query), args...).Scan(dest...)
	})
}
