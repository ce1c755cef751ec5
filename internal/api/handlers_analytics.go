// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package api

import (
	"net/http"

	"github.com/tomtom215/chartroom/internal/models"
)

// KPIs godoc
// @Summary Headline KPIs
// @Description Distinct artist and song counts plus the summed streams/views for a platform slice. total_streams_views is null for grammy.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param platform query string false "Platform filter" Enums(all, spotify, youtube, grammy) default(all)
// @Success 200 {object} models.KPIs "KPIs computed successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid platform"
// @Failure 500 {object} models.ErrorResponse "Database error"
// @Failure 503 {object} models.ErrorResponse "Backend unavailable"
// @Router /kpis [get]
func (h *Handler) KPIs(w http.ResponseWriter, r *http.Request) {
	filter, err := models.ParsePlatformFilter("platform", queryParam(r, "platform", string(models.PlatformAll)), models.KPIFilters)
	if err != nil {
		respondStoreError(w, r, "kpis", err)
		return
	}

	kpis, err := h.store.GetKPIs(r.Context(), filter)
	if err != nil {
		respondStoreError(w, r, "kpis", err)
		return
	}
	respondJSON(w, r, http.StatusOK, kpis)
}

// ArtistRankings godoc
// @Summary Top artists by platform metric
// @Description Artists ranked by summed Spotify streams or YouTube views, highest first.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param platform query string false "Platform" Enums(spotify, youtube) default(youtube)
// @Param limit query int false "Maximum rows (1 to api.max_ranking_limit)" default(10)
// @Success 200 {array} models.ArtistRanking "Ranking computed successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid platform or limit"
// @Failure 500 {object} models.ErrorResponse "Database error"
// @Failure 503 {object} models.ErrorResponse "Backend unavailable"
// @Router /artist-rankings [get]
func (h *Handler) ArtistRankings(w http.ResponseWriter, r *http.Request) {
	entries, ok := h.rankings(w, r, models.RankingArtist)
	if !ok {
		return
	}
	respondJSON(w, r, http.StatusOK, models.ArtistRankings(entries))
}

// SongRankings godoc
// @Summary Songs with the longest chart run
// @Description Songs ranked by their longest weeks_on_chart on the platform, highest first.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param platform query string false "Platform" Enums(spotify, youtube) default(youtube)
// @Param limit query int false "Maximum rows (1 to api.max_ranking_limit)" default(10)
// @Success 200 {array} models.SongRanking "Ranking computed successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid platform or limit"
// @Failure 500 {object} models.ErrorResponse "Database error"
// @Failure 503 {object} models.ErrorResponse "Backend unavailable"
// @Router /song-rankings [get]
func (h *Handler) SongRankings(w http.ResponseWriter, r *http.Request) {
	entries, ok := h.rankings(w, r, models.RankingSong)
	if !ok {
		return
	}
	respondJSON(w, r, http.StatusOK, models.SongRankings(entries))
}

// rankings parses the shared ranking parameters and runs the query. It
// writes the error response itself and reports false on failure.
func (h *Handler) rankings(w http.ResponseWriter, r *http.Request, kind models.RankingKind) ([]models.RankingEntry, bool) {
	op := "rankings_" + string(kind)

	platform, err := models.ParsePlatformFilter("platform", queryParam(r, "platform", string(models.PlatformYouTube)), models.RankingPlatforms)
	if err != nil {
		respondStoreError(w, r, op, err)
		return nil, false
	}

	q, verr := h.parseRankingQuery(r)
	if verr != nil {
		respondValidationError(w, r, verr)
		return nil, false
	}

	entries, err := h.store.GetRankings(r.Context(), kind, platform, q.Limit)
	if err != nil {
		respondStoreError(w, r, op, err)
		return nil, false
	}
	return entries, true
}

// ChartData godoc
// @Summary Dashboard chart payload
// @Description Top 10 Spotify artists, top 10 YouTube artists and the 10 songs with the longest chart run across all platforms.
// @Tags Analytics
// @Accept json
// @Produce json
// @Success 200 {object} models.ChartData "Chart data computed successfully"
// @Failure 500 {object} models.ErrorResponse "Database error"
// @Failure 503 {object} models.ErrorResponse "Backend unavailable"
// @Router /chart-data [get]
func (h *Handler) ChartData(w http.ResponseWriter, r *http.Request) {
	data, err := h.store.GetChartData(r.Context())
	if err != nil {
		respondStoreError(w, r, "chart_data", err)
		return
	}
	respondJSON(w, r, http.StatusOK, data)
}
