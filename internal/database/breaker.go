// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package database

import (
	"context"
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/chartroom/internal/logging"
	"github.com/tomtom215/chartroom/internal/metrics"
)

// BreakerDisabled is reported by BreakerState when no breaker is configured.
const BreakerDisabled = "disabled"

// newBreaker builds the circuit breaker guarding every analytics query.
// After BreakerFailures consecutive failures it opens and calls fail fast
// until BreakerTimeout elapses; one probe request is then let through.
func newBreaker(opts Options) *gobreaker.CircuitBreaker[interface{}] {
	failures := opts.BreakerFailures
	if failures == 0 {
		failures = DefaultOptions().BreakerFailures
	}

	settings := gobreaker.Settings{
		Name:        "analytics-db",
		MaxRequests: 1,
		Timeout:     opts.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.SetBreakerState(int(to))
			metrics.RecordBreakerTransition(from.String(), to.String())
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Database circuit breaker state changed")
		},
		// A client hanging up says nothing about backend health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}

	metrics.SetBreakerState(int(gobreaker.StateClosed))
	return gobreaker.NewCircuitBreaker[interface{}](settings)
}

// BreakerState returns closed, half-open, open or disabled.
func (db *DB) BreakerState() string {
	if db.breaker == nil {
		return BreakerDisabled
	}
	return db.breaker.State().String()
}

func isBreakerRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
