// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/chartroom/internal/logging"
	"github.com/tomtom215/chartroom/internal/models"
)

// readyPingTimeout bounds the database ping behind the readiness probe.
const readyPingTimeout = 2 * time.Second

// HealthLive godoc
// @Summary Liveness probe
// @Description Returns 200 while the process is running, regardless of the database.
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} models.HealthStatus "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &models.HealthStatus{
		Status:  "alive",
		Version: h.version,
		Driver:  h.config.Database.Driver,
		Uptime:  time.Since(h.startTime).Seconds(),
	})
}

// HealthReady godoc
// @Summary Readiness probe
// @Description Returns 200 when the analytics database answers a ping, 503 otherwise.
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} models.HealthStatus "Service is ready"
// @Failure 503 {object} models.HealthStatus "Database unreachable"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyPingTimeout)
	defer cancel()

	status := &models.HealthStatus{
		Status:            "ready",
		Version:           h.version,
		Driver:            h.config.Database.Driver,
		DatabaseConnected: true,
		BreakerState:      h.store.BreakerState(),
		Uptime:            time.Since(h.startTime).Seconds(),
	}

	if err := h.store.Ping(ctx); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness check failed")
		status.Status = "not_ready"
		status.DatabaseConnected = false
		respondJSON(w, r, http.StatusServiceUnavailable, status)
		return
	}
	respondJSON(w, r, http.StatusOK, status)
}
