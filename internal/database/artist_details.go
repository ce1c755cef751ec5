// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/chartroom/internal/models"
)

// GetArtistMetrics returns the artist's Spotify streams and YouTube views.
// An unknown artist yields zeros.
func (db *DB) GetArtistMetrics(ctx context.Context, artistID int64) (*models.ArtistMetrics, error) {
	query := "SELECT (" + metricSumSQL(spotifyStreams, "f.artist_id = ?") + "), (" +
		metricSumSQL(youtubeViews, "f.artist_id = ?") + ")"
	args := []interface{}{spotifyStreams.platform, artistID, youtubeViews.platform, artistID}

	var m models.ArtistMetrics
	if err := db.queryRow(ctx, "artist_metrics", "fact_song_performance", query, args,
		&m.TotalSpotifyStreams, &m.TotalYouTubeViews); err != nil {
		return nil, fmt.Errorf("failed to load metrics for artist %d: %w", artistID, err)
	}
	return &m, nil
}

// GetAwardHistory pages through an artist's Grammy records, newest first.
func (db *DB) GetAwardHistory(ctx context.Context, artistID int64, req models.PageRequest) (*models.Page[models.GrammyRecord], error) {
	page, err := resolvePage(ctx, db, pagedQuery[models.GrammyRecord]{
		op:       "award_history",
		table:    "dim_grammy",
		countSQL: `SELECT COUNT(*) FROM dim_grammy WHERE artist_id = ?`,
		pageSQL: `
			SELECT COALESCE(song_album_name, '') AS song_album_name, year, category, result
			FROM dim_grammy
			WHERE artist_id = ?
			ORDER BY year DESC, category ASC, song_album_name ASC, grammy_id ASC
			LIMIT ? OFFSET ?`,
		args: []interface{}{artistID},
	}, req)
	if err != nil {
		return nil, fmt.Errorf("failed to load award history for artist %d: %w", artistID, err)
	}
	return page, nil
}

// GetProducerCredits pages through the distinct producers credited on an
// artist. Duplicate bridge rows collapse to one credit.
func (db *DB) GetProducerCredits(ctx context.Context, artistID int64, req models.PageRequest) (*models.Page[models.ProducerCredit], error) {
	page, err := resolvePage(ctx, db, pagedQuery[models.ProducerCredit]{
		op:    "producer_credits",
		table: "bridge_artist_producer",
		countSQL: `
			SELECT COUNT(DISTINCT b.producer_id)
			FROM bridge_artist_producer b
			JOIN dim_producer p ON p.producer_id = b.producer_id
			WHERE b.artist_id = ?`,
		pageSQL: `
			SELECT p.producer_id, p.producer_name
			FROM bridge_artist_producer b
			JOIN dim_producer p ON p.producer_id = b.producer_id
			WHERE b.artist_id = ?
			GROUP BY p.producer_id, p.producer_name
			ORDER BY LOWER(p.producer_name) ASC, p.producer_name ASC, p.producer_id ASC
			LIMIT ? OFFSET ?`,
		args: []interface{}{artistID},
	}, req)
	if err != nil {
		return nil, fmt.Errorf("failed to load producer credits for artist %d: %w", artistID, err)
	}
	return page, nil
}
