// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

/*
aggregation.go - Declarative Aggregation Specs

Every platform filter maps to an aggregationSpec. The KPI and ranking
builders only read specs; adding a platform means adding a spec, not a new
query branch.

Spotify contributes streams and YouTube contributes views. The two units are
never summed inside one SUM(): a combined total is the sum of two separately
coalesced platform totals.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"strings"

	"github.com/tomtom215/chartroom/internal/models"
)

// metricSpec names the platform a metric lives on and the fact column holding it.
type metricSpec struct {
	platform string
	column   string
}

var (
	spotifyStreams = metricSpec{platform: "Spotify", column: "streams"}
	youtubeViews   = metricSpec{platform: "YouTube", column: "views"}
)

// factsOnPlatform is the fact scope restricted to one platform by name.
const factsOnPlatform = `fact_song_performance f
	JOIN dim_platform p ON p.platform_id = f.platform_id`

// distinctCount describes a COUNT(DISTINCT column) over a scope.
type distinctCount struct {
	from      string
	column    string
	predicate string
	args      []interface{}
}

func (d distinctCount) sql() string {
	q := "SELECT COUNT(DISTINCT " + d.column + ") FROM " + d.from
	if d.predicate != "" {
		q += " WHERE " + d.predicate
	}
	return q
}

// aggregationSpec is the query shape behind one platform filter.
type aggregationSpec struct {
	artists distinctCount
	songs   distinctCount

	// metrics are summed independently and then added together.
	// Empty means the filter has no meaningful total.
	metrics []metricSpec
}

func onPlatform(m metricSpec, column string) distinctCount {
	return distinctCount{
		from:      factsOnPlatform,
		column:    "f." + column,
		predicate: "p.platform_name = ?",
		args:      []interface{}{m.platform},
	}
}

var aggregationSpecs = map[models.PlatformFilter]aggregationSpec{
	models.PlatformAll: {
		artists: distinctCount{from: "dim_artist", column: "artist_id"},
		songs:   distinctCount{from: "dim_song", column: "song_id"},
		metrics: []metricSpec{spotifyStreams, youtubeViews},
	},
	models.PlatformSpotify: {
		artists: onPlatform(spotifyStreams, "artist_id"),
		songs:   onPlatform(spotifyStreams, "song_id"),
		metrics: []metricSpec{spotifyStreams},
	},
	models.PlatformYouTube: {
		artists: onPlatform(youtubeViews, "artist_id"),
		songs:   onPlatform(youtubeViews, "song_id"),
		metrics: []metricSpec{youtubeViews},
	},
	models.PlatformGrammy: {
		artists: distinctCount{from: "dim_grammy", column: "artist_id"},
		songs:   distinctCount{from: "dim_grammy", column: "song_album_name"},
	},
}

// rankingPlatforms maps a ranking platform filter to its metric.
var rankingPlatforms = map[models.PlatformFilter]metricSpec{
	models.PlatformSpotify: spotifyStreams,
	models.PlatformYouTube: youtubeViews,
}

// metricSumSQL is a scalar subquery for the coalesced platform total,
// optionally narrowed by an extra fact predicate.
func metricSumSQL(m metricSpec, extra string) string {
	q := "SELECT CAST(COALESCE(SUM(f." + m.column + "), 0) AS BIGINT) FROM " +
		factsOnPlatform + " WHERE p.platform_name = ?"
	if extra != "" {
		q += " AND " + extra
	}
	return q
}

// kpiQuery builds one SELECT returning artists, songs and the combined total
// (NULL when the filter has no metrics).
func (s aggregationSpec) kpiQuery() (string, []interface{}) {
	args := make([]interface{}, 0, 4)
	args = append(args, s.artists.args...)
	args = append(args, s.songs.args...)

	total := "CAST(NULL AS BIGINT)"
	if len(s.metrics) > 0 {
		parts := make([]string, len(s.metrics))
		for i, m := range s.metrics {
			parts[i] = "(" + metricSumSQL(m, "") + ")"
			args = append(args, m.platform)
		}
		total = strings.Join(parts, " + ")
	}

	query := "SELECT (" + s.artists.sql() + "), (" + s.songs.sql() + "), " + total
	return query, args
}
