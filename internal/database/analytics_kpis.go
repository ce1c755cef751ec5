// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomtom215/chartroom/internal/models"
)

// GetKPIs returns the headline counts for a platform filter.
//
// For grammy the combined total is nil: award rows carry no streams or views.
func (db *DB) GetKPIs(ctx context.Context, filter models.PlatformFilter) (*models.KPIs, error) {
	spec, ok := aggregationSpecs[filter]
	if !ok {
		_, err := models.ParsePlatformFilter("platform", string(filter), models.KPIFilters)
		return nil, err
	}

	query, args := spec.kpiQuery()

	var (
		kpis  models.KPIs
		total sql.NullInt64
	)
	if err := db.queryRow(ctx, "kpis", "fact_song_performance", query, args,
		&kpis.TotalArtists, &kpis.TotalSongs, &total); err != nil {
		return nil, fmt.Errorf("failed to compute KPIs for %s: %w", filter, err)
	}

	if total.Valid {
		v := total.Int64
		kpis.TotalStreamsViews = &v
	}
	return &kpis, nil
}
