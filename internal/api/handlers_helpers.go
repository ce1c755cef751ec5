// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package api

import (
	"fmt"
	"hash/fnv"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/chartroom/internal/logging"
	"github.com/tomtom215/chartroom/internal/models"
	"github.com/tomtom215/chartroom/internal/validation"
)

// respondJSON encodes body and writes it with an ETag. A GET whose
// If-None-Match equals the ETag gets 304 and no body.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	etag := generateETag(data)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Vary", "Accept-Encoding")
	w.Header().Set("ETag", etag)

	if status == http.StatusOK && r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag returns a weak validator over the FNV-1a hash of data.
func generateETag(data []byte) string {
	h := fnv.New64a()
	_, _ = h.Write(data)
	return fmt.Sprintf("W/\"%016x\"", h.Sum64())
}

// respondError sends an error response
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]string) {
	logging.Ctx(r.Context()).Debug().
		Int("status", status).
		Str("code", code).
		Str("path", logging.SanitizeValue(r.URL.Path)).
		Msg("API error response")

	respondJSON(w, r, status, &models.ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

// queryParam returns the query parameter or fallback when it is absent or empty.
func queryParam(r *http.Request, key, fallback string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return fallback
}

// intQueryParam parses an integer query parameter. An absent parameter
// yields fallback; anything that is not a base-10 integer is a validation
// failure, never silently replaced by the default.
func intQueryParam(r *http.Request, key string, fallback int) (int, *validation.RequestValidationError) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, malformed(key, raw)
	}
	return v, nil
}

// parseArtistID parses the {id} path segment.
func parseArtistID(raw string) (int64, *validation.RequestValidationError) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, malformed("id", raw)
	}
	return id, nil
}

func malformed(field, raw string) *validation.RequestValidationError {
	return &validation.RequestValidationError{
		Fields: []validation.FieldError{{
			Field:   field,
			Tag:     "integer",
			Value:   raw,
			Message: field + " must be an integer",
		}},
	}
}
