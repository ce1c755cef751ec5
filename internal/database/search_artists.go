// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package database

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tomtom215/chartroom/internal/metrics"
	"github.com/tomtom215/chartroom/internal/models"
)

const (
	// MinSearchLength is the shortest trimmed term that reaches the backend.
	MinSearchLength = 2

	// MaxSearchResults caps artist search matches.
	MaxSearchResults = 10
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchArtists finds artists whose name contains term, case-insensitively.
// Terms shorter than MinSearchLength runes return an empty result without a
// query.
func (db *DB) SearchArtists(ctx context.Context, term string) ([]models.ArtistSearchResult, error) {
	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) < MinSearchLength {
		metrics.SearchShortCircuits.Inc()
		return []models.ArtistSearchResult{}, nil
	}

	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"

	query := `
		SELECT artist_id, artist_name
		FROM dim_artist
		WHERE LOWER(artist_name) LIKE ? ESCAPE '\'
		ORDER BY artist_name ASC, artist_id ASC
		LIMIT ?`

	results, err := selectRows[models.ArtistSearchResult](ctx, db, "search_artists", "dim_artist", query,
		[]interface{}{pattern, MaxSearchResults})
	if err != nil {
		return nil, fmt.Errorf("failed to search artists: %w", err)
	}
	return results, nil
}
