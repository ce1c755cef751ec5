// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type requestMetaKey struct{}

// RequestMeta identifies one API request in log output. RequestID is echoed
// to the client in X-Request-ID; CorrelationID is a short tag for grepping.
type RequestMeta struct {
	RequestID     string
	CorrelationID string
}

// NewRequestMeta builds request metadata. An empty requestID is replaced by a
// random UUID.
func NewRequestMeta(requestID string) RequestMeta {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return RequestMeta{
		RequestID:     requestID,
		CorrelationID: uuid.NewString()[:8],
	}
}

// WithRequestMeta attaches meta to ctx.
func WithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

// RequestMetaFromContext returns the metadata attached by WithRequestMeta.
func RequestMetaFromContext(ctx context.Context) (RequestMeta, bool) {
	meta, ok := ctx.Value(requestMetaKey{}).(RequestMeta)
	return meta, ok
}

// Ctx returns the global logger tagged with the request metadata in ctx, if any.
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("kpis query failed")
func Ctx(ctx context.Context) *zerolog.Logger {
	logger := Logger()
	if meta, ok := RequestMetaFromContext(ctx); ok {
		logger = logger.With().
			Str("request_id", meta.RequestID).
			Str("correlation_id", meta.CorrelationID).
			Logger()
	}
	return &logger
}
