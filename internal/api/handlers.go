// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package api

import (
	"context"
	"time"

	"github.com/tomtom215/chartroom/internal/config"
	"github.com/tomtom215/chartroom/internal/models"
)

// AnalyticsStore is the read-only query surface the handlers depend on.
// *database.DB satisfies it.
type AnalyticsStore interface {
	GetKPIs(ctx context.Context, filter models.PlatformFilter) (*models.KPIs, error)
	GetRankings(ctx context.Context, kind models.RankingKind, platform models.PlatformFilter, limit int) ([]models.RankingEntry, error)
	GetChartData(ctx context.Context) (*models.ChartData, error)
	SearchArtists(ctx context.Context, term string) ([]models.ArtistSearchResult, error)
	GetArtistMetrics(ctx context.Context, artistID int64) (*models.ArtistMetrics, error)
	GetAwardHistory(ctx context.Context, artistID int64, req models.PageRequest) (*models.Page[models.GrammyRecord], error)
	GetProducerCredits(ctx context.Context, artistID int64, req models.PageRequest) (*models.Page[models.ProducerCredit], error)
	Ping(ctx context.Context) error
	BreakerState() string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_analytics.go: KPIs, rankings and chart data
//   - handlers_artist.go: artist search and artist detail
//   - handlers_health.go: liveness and readiness probes
//   - handlers_helpers.go: response encoding and parameter parsing
type Handler struct {
	store     AnalyticsStore
	config    *config.Config
	version   string
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// Example:
//
//	handler := api.NewHandler(db, cfg, version)
//	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
//	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
func NewHandler(store AnalyticsStore, cfg *config.Config, version string) *Handler {
	return &Handler{
		store:     store,
		config:    cfg,
		version:   version,
		startTime: time.Now(),
	}
}
