// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package database

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tomtom215/chartroom/internal/models"
)

// GetRankings returns the top entries of kind on a platform, highest first.
//
// Artist rankings sum the platform metric per artist. Song rankings take the
// longest chart run (MAX weeks_on_chart) per track name, since a song charting
// on several rows did not chart for the sum of them.
func (db *DB) GetRankings(ctx context.Context, kind models.RankingKind, platform models.PlatformFilter, limit int) ([]models.RankingEntry, error) {
	if _, ok := rankingPlatforms[platform]; !ok {
		_, err := models.ParsePlatformFilter("platform", string(platform), models.RankingPlatforms)
		return nil, err
	}
	return db.rankings(ctx, kind, platform, limit)
}

// GetChartData assembles the dashboard payload: top artists per platform and
// the longest-charting songs across every platform.
func (db *DB) GetChartData(ctx context.Context) (*models.ChartData, error) {
	spotify, err := db.rankings(ctx, models.RankingArtist, models.PlatformSpotify, DefaultRankingLimit)
	if err != nil {
		return nil, err
	}
	youtube, err := db.rankings(ctx, models.RankingArtist, models.PlatformYouTube, DefaultRankingLimit)
	if err != nil {
		return nil, err
	}
	songs, err := db.rankings(ctx, models.RankingSong, models.PlatformAll, DefaultRankingLimit)
	if err != nil {
		return nil, err
	}

	return &models.ChartData{
		TopArtistsSpotify:   models.ArtistRankings(spotify),
		TopArtistsYouTube:   models.ArtistRankings(youtube),
		SongsLongestOnChart: models.SongRankings(songs),
	}, nil
}

// rankings also accepts PlatformAll for song rankings.
func (db *DB) rankings(ctx context.Context, kind models.RankingKind, platform models.PlatformFilter, limit int) ([]models.RankingEntry, error) {
	if limit < 1 || limit > db.opts.MaxRankingLimit {
		return nil, &models.InvalidFilterError{
			Field:   "limit",
			Value:   strconv.Itoa(limit),
			Allowed: []string{"1-" + strconv.Itoa(db.opts.MaxRankingLimit)},
		}
	}

	var (
		query string
		args  []interface{}
	)

	switch kind {
	case models.RankingArtist:
		m, ok := rankingPlatforms[platform]
		if !ok {
			return nil, &models.InvalidFilterError{Field: "platform", Value: string(platform)}
		}
		query = `
			SELECT a.artist_name AS label, CAST(COALESCE(SUM(f.` + m.column + `), 0) AS BIGINT) AS metric_value
			FROM ` + factsOnPlatform + `
			JOIN dim_artist a ON a.artist_id = f.artist_id
			WHERE p.platform_name = ?
			GROUP BY a.artist_id, a.artist_name
			ORDER BY metric_value DESC, a.artist_name ASC, a.artist_id ASC
			LIMIT ?`
		args = []interface{}{m.platform, limit}

	case models.RankingSong:
		where := "f.weeks_on_chart IS NOT NULL"
		if platform != models.PlatformAll {
			m, ok := rankingPlatforms[platform]
			if !ok {
				return nil, &models.InvalidFilterError{Field: "platform", Value: string(platform)}
			}
			where += " AND p.platform_name = ?"
			args = append(args, m.platform)
		}
		query = `
			SELECT s.track_name AS label, CAST(MAX(f.weeks_on_chart) AS BIGINT) AS metric_value
			FROM ` + factsOnPlatform + `
			JOIN dim_song s ON s.song_id = f.song_id
			WHERE ` + where + `
			GROUP BY s.track_name
			ORDER BY metric_value DESC, s.track_name ASC
			LIMIT ?`
		args = append(args, limit)

	default:
		_, err := models.ParseRankingKind(string(kind))
		return nil, err
	}

	entries, err := selectRows[models.RankingEntry](ctx, db, "rankings_"+string(kind), "fact_song_performance", query, args)
	if err != nil {
		return nil, fmt.Errorf("failed to rank %ss on %s: %w", kind, platform, err)
	}
	return entries, nil
}
