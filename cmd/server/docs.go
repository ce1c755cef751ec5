// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

// @title Chartroom API
// @version 1.0
// @description Read-only analytics over a music performance star schema: streaming
// @description totals, artist and song rankings, artist search and per-artist award
// @description and producer history.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "error": "invalid platform \"tidal\" (allowed: spotify, youtube)",
// @description   "code": "INVALID_FILTER"
// @description }
// @description ```
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address. Health probes are exempt.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/chartroom/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3000
// @BasePath /api
// @schemes http https
//
// @tag.name Analytics
// @tag.description KPIs, rankings and dashboard chart data
//
// @tag.name Artists
// @tag.description Artist search and per-artist detail
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main
