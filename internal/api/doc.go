// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

/*
Package api serves the Chartroom analytics HTTP API.

Handler methods translate query parameters into calls on an AnalyticsStore
(implemented by *database.DB) and encode the results as raw JSON bodies.
Router wires them onto a chi router together with the middleware stack.

# Endpoints

	GET /api/kpis?platform=all|spotify|youtube|grammy
	GET /api/artist-rankings?platform=spotify|youtube&limit=N
	GET /api/song-rankings?platform=spotify|youtube&limit=N
	GET /api/chart-data
	GET /api/search/artists?q=term
	GET /api/artist/{id}
	GET /api/artist/{id}/grammys?page=N&limit=N
	GET /api/artist/{id}/producers?page=N&limit=N
	GET /api/health/live
	GET /api/health/ready
	GET /metrics
	GET /swagger/*

# Errors

Every failure is encoded as models.ErrorResponse:

	{"error": "invalid platform \"tidal\" (allowed: spotify, youtube)", "code": "INVALID_FILTER"}

	INVALID_FILTER       400  enum parameter outside its closed set
	VALIDATION_ERROR     400  malformed id, page or limit
	BACKEND_UNAVAILABLE  503  circuit open or database unreachable
	DATABASE_ERROR       500  any other query failure

# Caching

Responses carry Cache-Control: no-cache and a weak ETag over the encoded body.
A matching If-None-Match yields 304 with no body. Nothing is cached server
side.
*/
package api
