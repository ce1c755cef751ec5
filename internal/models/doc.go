// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

/*
Package models defines the value types shared by the database and API layers.

Filters:
  - PlatformFilter: closed set of platform slices (all, spotify, youtube, grammy)
  - RankingKind: artist or song
  - InvalidFilterError: returned for any value outside its closed set

Results:
  - KPIs, RankingEntry, ChartData: dashboard aggregates
  - ArtistSearchResult, ArtistMetrics: artist lookup
  - GrammyRecord, ProducerCredit, Page: paginated artist detail lists

Wire types carry JSON tags matching the public API. RankingEntry is the
internal row type; ArtistRankings and SongRankings convert it for encoding.
*/
package models
