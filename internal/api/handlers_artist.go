// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/chartroom/internal/logging"
)

// SearchArtists godoc
// @Summary Artist name lookup
// @Description Case-insensitive substring match on artist names, at most 10 results ordered by name. Terms shorter than 2 characters return an empty list without querying.
// @Tags Artists
// @Accept json
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {array} models.ArtistSearchResult "Matching artists"
// @Failure 500 {object} models.ErrorResponse "Database error"
// @Failure 503 {object} models.ErrorResponse "Backend unavailable"
// @Router /search/artists [get]
func (h *Handler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")

	results, err := h.store.SearchArtists(r.Context(), term)
	if err != nil {
		respondStoreError(w, r, "search_artists", err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("term", logging.SanitizeValue(term)).
		Int("results", len(results)).
		Msg("Artist search")
	respondJSON(w, r, http.StatusOK, results)
}

// ArtistDetail godoc
// @Summary Artist platform totals
// @Description Total Spotify streams and YouTube views for one artist. Unknown artists yield zeros.
// @Tags Artists
// @Accept json
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} models.ArtistMetrics "Artist totals"
// @Failure 400 {object} models.ErrorResponse "Malformed id"
// @Failure 500 {object} models.ErrorResponse "Database error"
// @Failure 503 {object} models.ErrorResponse "Backend unavailable"
// @Router /artist/{id} [get]
func (h *Handler) ArtistDetail(w http.ResponseWriter, r *http.Request) {
	artistID, verr := parseArtistID(chi.URLParam(r, "id"))
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	metrics, err := h.store.GetArtistMetrics(r.Context(), artistID)
	if err != nil {
		respondStoreError(w, r, "artist_metrics", err)
		return
	}
	respondJSON(w, r, http.StatusOK, metrics)
}

// ArtistGrammys godoc
// @Summary Artist award history
// @Description Paginated Grammy nominations and wins, newest first. A page past the end returns an empty data array.
// @Tags Artists
// @Accept json
// @Produce json
// @Param id path int true "Artist ID"
// @Param page query int false "1-indexed page" default(1)
// @Param limit query int false "Page size (1 to api.max_page_size)" default(5)
// @Success 200 {object} models.Page[models.GrammyRecord] "Award page"
// @Failure 400 {object} models.ErrorResponse "Malformed id, page or limit"
// @Failure 500 {object} models.ErrorResponse "Database error"
// @Failure 503 {object} models.ErrorResponse "Backend unavailable"
// @Router /artist/{id}/grammys [get]
func (h *Handler) ArtistGrammys(w http.ResponseWriter, r *http.Request) {
	artistID, verr := parseArtistID(chi.URLParam(r, "id"))
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	q, verr := h.parsePageQuery(r)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	page, err := h.store.GetAwardHistory(r.Context(), artistID, q.PageRequest())
	if err != nil {
		respondStoreError(w, r, "award_history", err)
		return
	}
	respondJSON(w, r, http.StatusOK, page)
}

// ArtistProducers godoc
// @Summary Artist producer credits
// @Description Paginated distinct producers credited on the artist's work, ordered by name.
// @Tags Artists
// @Accept json
// @Produce json
// @Param id path int true "Artist ID"
// @Param page query int false "1-indexed page" default(1)
// @Param limit query int false "Page size (1 to api.max_page_size)" default(5)
// @Success 200 {object} models.Page[models.ProducerCredit] "Producer page"
// @Failure 400 {object} models.ErrorResponse "Malformed id, page or limit"
// @Failure 500 {object} models.ErrorResponse "Database error"
// @Failure 503 {object} models.ErrorResponse "Backend unavailable"
// @Router /artist/{id}/producers [get]
func (h *Handler) ArtistProducers(w http.ResponseWriter, r *http.Request) {
	artistID, verr := parseArtistID(chi.URLParam(r, "id"))
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	q, verr := h.parsePageQuery(r)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	page, err := h.store.GetProducerCredits(r.Context(), artistID, q.PageRequest())
	if err != nil {
		respondStoreError(w, r, "producer_credits", err)
		return
	}
	respondJSON(w, r, http.StatusOK, page)
}
