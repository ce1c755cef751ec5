// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

// Package metrics declares the Prometheus collectors for Chartroom and small
// helpers to record into them. All collectors register with the default
// registry via promauto and are exposed on /metrics.
package metrics

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chartroom_db_query_duration_seconds",
			Help:    "Duration of star-schema queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chartroom_db_query_errors_total",
			Help: "Total number of failed star-schema queries",
		},
		[]string{"operation", "table", "error_type"},
	)

	DBBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chartroom_db_breaker_state",
			Help: "Database circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	DBBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chartroom_db_breaker_transitions_total",
			Help: "Database circuit breaker state transitions",
		},
		[]string{"from", "to"},
	)

	DBPoolConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "chartroom_db_pool_connections",
			Help: "Database pool connections by state (open, in_use, idle)",
		},
		[]string{"state"},
	)

	DBPoolWaitCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chartroom_db_pool_wait_count",
			Help: "Cumulative number of connections waited for",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chartroom_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chartroom_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chartroom_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	SearchShortCircuits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chartroom_search_short_circuits_total",
			Help: "Artist searches answered without a query because the term was too short",
		},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table, classifyError(err)).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks in-flight API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// SetBreakerState records the numeric breaker state.
func SetBreakerState(state int) {
	DBBreakerState.Set(float64(state))
}

// RecordBreakerTransition counts a breaker state change.
func RecordBreakerTransition(from, to string) {
	DBBreakerTransitions.WithLabelValues(from, to).Inc()
}

// SetDBPoolStats publishes a database/sql pool snapshot.
func SetDBPoolStats(open, inUse, idle int, waitCount int64) {
	DBPoolConnections.WithLabelValues("open").Set(float64(open))
	DBPoolConnections.WithLabelValues("in_use").Set(float64(inUse))
	DBPoolConnections.WithLabelValues("idle").Set(float64(idle))
	DBPoolWaitCount.Set(float64(waitCount))
}

// classifyError keeps the error_type label to a small fixed set.
func classifyError(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "circuit breaker"):
		return "breaker_open"
	case strings.Contains(msg, "connection"), strings.Contains(msg, "broken pipe"):
		return "connection"
	case strings.Contains(msg, "scan"):
		return "scan"
	default:
		return "query"
	}
}
