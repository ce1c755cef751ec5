// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/chartroom/internal/config"
	"github.com/tomtom215/chartroom/internal/models"
)

// fakeStore is an AnalyticsStore whose behavior is set per test. Unset
// functions return zero values.
type fakeStore struct {
	kpis      func(models.PlatformFilter) (*models.KPIs, error)
	rankings  func(models.RankingKind, models.PlatformFilter, int) ([]models.RankingEntry, error)
	chartData func() (*models.ChartData, error)
	search    func(string) ([]models.ArtistSearchResult, error)
	metrics   func(int64) (*models.ArtistMetrics, error)
	awards    func(int64, models.PageRequest) (*models.Page[models.GrammyRecord], error)
	producers func(int64, models.PageRequest) (*models.Page[models.ProducerCredit], error)
	pingErr   error
	breaker   string
}

func (f *fakeStore) GetKPIs(_ context.Context, filter models.PlatformFilter) (*models.KPIs, error) {
	if f.kpis == nil {
		return &models.KPIs{}, nil
	}
	return f.kpis(filter)
}

func (f *fakeStore) GetRankings(_ context.Context, kind models.RankingKind, platform models.PlatformFilter, limit int) ([]models.RankingEntry, error) {
	if f.rankings == nil {
		return []models.RankingEntry{}, nil
	}
	return f.rankings(kind, platform, limit)
}

func (f *fakeStore) GetChartData(_ context.Context) (*models.ChartData, error) {
	if f.chartData == nil {
		return &models.ChartData{}, nil
	}
	return f.chartData()
}

func (f *fakeStore) SearchArtists(_ context.Context, term string) ([]models.ArtistSearchResult, error) {
	if f.search == nil {
		return []models.ArtistSearchResult{}, nil
	}
	return f.search(term)
}

func (f *fakeStore) GetArtistMetrics(_ context.Context, artistID int64) (*models.ArtistMetrics, error) {
	if f.metrics == nil {
		return &models.ArtistMetrics{}, nil
	}
	return f.metrics(artistID)
}

func (f *fakeStore) GetAwardHistory(_ context.Context, artistID int64, req models.PageRequest) (*models.Page[models.GrammyRecord], error) {
	if f.awards == nil {
		return &models.Page[models.GrammyRecord]{Data: []models.GrammyRecord{}, TotalPages: 1}, nil
	}
	return f.awards(artistID, req)
}

func (f *fakeStore) GetProducerCredits(_ context.Context, artistID int64, req models.PageRequest) (*models.Page[models.ProducerCredit], error) {
	if f.producers == nil {
		return &models.Page[models.ProducerCredit]{Data: []models.ProducerCredit{}, TotalPages: 1}, nil
	}
	return f.producers(artistID, req)
}

func (f *fakeStore) Ping(context.Context) error {
	return f.pingErr
}

func (f *fakeStore) BreakerState() string {
	if f.breaker == "" {
		return "closed"
	}
	return f.breaker
}

func testConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{Driver: config.DriverDuckDB},
		API: config.APIConfig{
			DefaultPageSize: 5,
			MaxPageSize:     100,
			MaxRankingLimit: 100,
			PageOverflow:    config.PageOverflowPermissive,
		},
		Security: config.SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   1000,
			RateLimitWindow: time.Minute,
		},
	}
}

// setupRouter returns the full chi router over store.
func setupRouter(t *testing.T, store AnalyticsStore) http.Handler {
	t.Helper()
	cfg := testConfig()
	handler := NewHandler(store, cfg, "test")
	return NewRouter(handler, NewChiMiddlewareFromConfig(&cfg.Security)).SetupChi()
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
