// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package models

// ErrorResponse is the body of every non-2xx API response.
//
//	{"error": "invalid platform \"tidal\" (allowed: spotify, youtube)", "code": "INVALID_FILTER"}
//
// Error carries the human-readable message so that clients written against
// a bare {error} body keep working; Code is machine-readable.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

// HealthStatus is returned by the health probes.
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	Driver            string  `json:"driver"`
	DatabaseConnected bool    `json:"database_connected"`
	BreakerState      string  `json:"breaker_state,omitempty"`
	Uptime            float64 `json:"uptime_seconds"`
}
