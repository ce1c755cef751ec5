// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/chartroom/internal/database"
	"github.com/tomtom215/chartroom/internal/logging"
	"github.com/tomtom215/chartroom/internal/models"
	"github.com/tomtom215/chartroom/internal/validation"
)

// Error codes carried in models.ErrorResponse.
const (
	CodeInvalidFilter      = "INVALID_FILTER"
	CodeValidationError    = "VALIDATION_ERROR"
	CodeBackendUnavailable = "BACKEND_UNAVAILABLE"
	CodeDatabaseError      = "DATABASE_ERROR"
	CodeRateLimited        = "RATE_LIMITED"
	CodeRequestCanceled    = "REQUEST_CANCELED"
)

// statusClientClosedRequest is the de facto status for a request whose client
// went away before the response was written.
const statusClientClosedRequest = 499

// Client-facing messages for backend failures. Driver text stays in the log.
const (
	msgBackendUnavailable = "analytics backend is unavailable"
	msgDatabaseError      = "failed to query analytics data"
)

// respondStoreError maps an AnalyticsStore error onto a status and code. It is
// the only place store failures are logged.
func respondStoreError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, context.Canceled) {
		logging.Ctx(r.Context()).Debug().
			Str("operation", op).
			Msg("Client canceled request")
		respondError(w, r, statusClientClosedRequest, CodeRequestCanceled, "request canceled", nil)
		return
	}

	var filterErr *models.InvalidFilterError
	if errors.As(err, &filterErr) {
		respondError(w, r, http.StatusBadRequest, CodeInvalidFilter, filterErr.Error(), nil)
		return
	}

	var backendErr *database.BackendUnavailableError
	if errors.As(err, &backendErr) && backendErr.Unreachable {
		logging.Ctx(r.Context()).Warn().
			Str("operation", op).
			Str("error", logging.SanitizeValue(err.Error())).
			Msg("Analytics backend unreachable")
		respondError(w, r, http.StatusServiceUnavailable, CodeBackendUnavailable, msgBackendUnavailable, nil)
		return
	}

	logging.Ctx(r.Context()).Error().
		Str("operation", op).
		Str("error", logging.SanitizeValue(err.Error())).
		Msg("Analytics query failed")
	respondError(w, r, http.StatusInternalServerError, CodeDatabaseError, msgDatabaseError, nil)
}

// respondValidationError writes a VALIDATION_ERROR with per-parameter details.
func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	respondError(w, r, http.StatusBadRequest, CodeValidationError, verr.Error(), verr.Details())
}
