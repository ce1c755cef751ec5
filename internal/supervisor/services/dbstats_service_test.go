// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package services

import (
	"context"
	"database/sql"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/tomtom215/chartroom/internal/metrics"
)

type fakeStats struct {
	calls atomic.Int32
}

func (f *fakeStats) Stats() sql.DBStats {
	f.calls.Add(1)
	return sql.DBStats{OpenConnections: 3, InUse: 2, Idle: 1, WaitCount: 9}
}

func TestDBStatsService_Samples(t *testing.T) {
	source := &fakeStats{}
	svc := NewDBStatsService(source, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	assert.Eventually(t, func() bool { return source.calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.DBPoolConnections.WithLabelValues("open")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.DBPoolConnections.WithLabelValues("in_use")))
	assert.Equal(t, 9.0, testutil.ToFloat64(metrics.DBPoolWaitCount))
}

func TestDBStatsService_Defaults(t *testing.T) {
	svc := NewDBStatsService(&fakeStats{}, 0)
	assert.Equal(t, 15*time.Second, svc.interval)
	assert.Equal(t, "db-pool-stats", svc.String())
}
