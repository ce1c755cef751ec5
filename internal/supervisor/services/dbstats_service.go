// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/tomtom215/chartroom/internal/metrics"
)

// PoolStatsSource reports connection pool statistics. *sql.DB satisfies it.
type PoolStatsSource interface {
	Stats() sql.DBStats
}

// DBStatsService samples the database pool into Prometheus gauges on a
// fixed interval. It never fails; it stops when its context is canceled.
type DBStatsService struct {
	source   PoolStatsSource
	interval time.Duration
}

// NewDBStatsService samples source every interval. A non-positive interval
// becomes 15s.
func NewDBStatsService(source PoolStatsSource, interval time.Duration) *DBStatsService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &DBStatsService{source: source, interval: interval}
}

// Serve implements suture.Service.
func (s *DBStatsService) Serve(ctx context.Context) error {
	s.sample()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sample()
		}
	}
}

func (s *DBStatsService) sample() {
	st := s.source.Stats()
	metrics.SetDBPoolStats(st.OpenConnections, st.InUse, st.Idle, st.WaitCount)
}

// String names the service in supervisor events.
func (s *DBStatsService) String() string {
	return "db-pool-stats"
}
