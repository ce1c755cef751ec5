// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomtom215/chartroom/internal/models"
)

func TestRebind_FollowsDialect(t *testing.T) {
	tests := []struct {
		dialect Dialect
		in      string
		want    string
	}{
		{DialectDuckDB, "a = ? AND b = ?", "a = ? AND b = ?"},
		{DialectPostgres, "a = ? AND b = ? LIMIT ?", "a = $1 AND b = $2 LIMIT $3"},
		{DialectPostgres, "SELECT 1", "SELECT 1"},
		{DialectPostgres, `LIKE ? ESCAPE '\' LIMIT ?`, `LIKE $1 ESCAPE '\' LIMIT $2`},
	}
	for _, tt := range tests {
		t.Run(string(tt.dialect)+"/"+tt.in, func(t *testing.T) {
			db := NewWithConn(nil, tt.dialect, DefaultOptions())
			assert.Equal(t, tt.want, db.conn.Rebind(tt.in))
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{7, 5, 2},
		{11, 5, 3},
		{3, 1, 3},
		{7, math.MaxInt, 1},
		{math.MaxInt64, math.MaxInt, 1},
		{5, 0, 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.total, tt.size), func(t *testing.T) {
			assert.Equal(t, tt.want, totalPages(tt.total, tt.size))
		})
	}
}

func TestIsConnectionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"bad conn", fmt.Errorf("query: %w", driver.ErrBadConn), true},
		{"econnrefused", fmt.Errorf("dial: %w", syscall.ECONNREFUSED), true},
		{"net op error", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("boom")}, true},
		{"closed database", errors.New("sql: database is closed"), true},
		{"binder error", errors.New("Binder Error: table dim_artist does not exist"), false},
		{"canceled", context.Canceled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isConnectionError(tt.err))
		})
	}
}

func TestBackendUnavailableError(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("wrapped: %w", &BackendUnavailableError{Op: "kpis", Unreachable: true, Err: cause})

	assert.True(t, errors.Is(err, ErrBackendUnavailable))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, models.ErrInvalidFilter))
	assert.Contains(t, err.Error(), "kpis: backend unreachable: connection refused")
}
