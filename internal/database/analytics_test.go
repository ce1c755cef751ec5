// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/chartroom/internal/models"
)

func TestGetKPIs_Filters(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	tests := []struct {
		filter  models.PlatformFilter
		artists int64
		songs   int64
		total   *int64
	}{
		{models.PlatformAll, 5, 5, int64Ptr(5100)},
		{models.PlatformSpotify, 4, 4, int64Ptr(2300)},
		{models.PlatformYouTube, 4, 4, int64Ptr(2800)},
		{models.PlatformGrammy, 2, 6, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			kpis, err := db.GetKPIs(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.artists, kpis.TotalArtists)
			assert.Equal(t, tt.songs, kpis.TotalSongs)
			assert.Equal(t, tt.total, kpis.TotalStreamsViews)
		})
	}
}

func TestGetKPIs_AllIsSumOfPlatforms(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	all, err := db.GetKPIs(ctx, models.PlatformAll)
	require.NoError(t, err)
	spotify, err := db.GetKPIs(ctx, models.PlatformSpotify)
	require.NoError(t, err)
	youtube, err := db.GetKPIs(ctx, models.PlatformYouTube)
	require.NoError(t, err)

	require.NotNil(t, all.TotalStreamsViews)
	assert.Equal(t, *spotify.TotalStreamsViews+*youtube.TotalStreamsViews, *all.TotalStreamsViews)
}

func TestGetKPIs_EmptySchema(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for _, filter := range models.KPIFilters {
		kpis, err := db.GetKPIs(ctx, filter)
		require.NoError(t, err, filter)
		assert.Zero(t, kpis.TotalArtists)
		assert.Zero(t, kpis.TotalSongs)
		if filter == models.PlatformGrammy {
			assert.Nil(t, kpis.TotalStreamsViews)
		} else {
			require.NotNil(t, kpis.TotalStreamsViews)
			assert.Zero(t, *kpis.TotalStreamsViews)
		}
	}
}

func TestGetKPIs_UnknownFilter(t *testing.T) {
	db := NewWithConn(nil, DialectDuckDB, DefaultOptions())

	_, err := db.GetKPIs(context.Background(), "tidal")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalidFilter))

	var filterErr *models.InvalidFilterError
	require.True(t, errors.As(err, &filterErr))
	assert.Equal(t, "platform", filterErr.Field)
	assert.Equal(t, "tidal", filterErr.Value)
}

func TestGetRankings_Artists(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	spotify, err := db.GetRankings(ctx, models.RankingArtist, models.PlatformSpotify, 10)
	require.NoError(t, err)
	assert.Equal(t, []models.RankingEntry{
		{Label: "Beyonce", MetricValue: 900},
		{Label: "Coldplay", MetricValue: 900},
		{Label: "Abba", MetricValue: 500},
		{Label: "100%_Pure", MetricValue: 0},
	}, spotify)

	youtube, err := db.GetRankings(ctx, models.RankingArtist, models.PlatformYouTube, 10)
	require.NoError(t, err)
	assert.Equal(t, []models.RankingEntry{
		{Label: "Adele", MetricValue: 1250},
		{Label: "Beyonce", MetricValue: 1200},
		{Label: "Abba", MetricValue: 300},
		{Label: "Coldplay", MetricValue: 50},
	}, youtube)
}

func TestGetRankings_SongsUseLongestRun(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	// Fix You has two YouTube facts of 5 and 12 weeks: its metric is 12, and
	// a SUM would have put it ahead of Dancing Queen at 17.
	youtube, err := db.GetRankings(ctx, models.RankingSong, models.PlatformYouTube, 10)
	require.NoError(t, err)
	assert.Equal(t, []models.RankingEntry{
		{Label: "Hello", MetricValue: 30},
		{Label: "Dancing Queen", MetricValue: 12},
		{Label: "Fix You", MetricValue: 12},
	}, youtube)

	// Dancing Queen charted 5 weeks on Spotify and 12 on YouTube; each
	// platform only sees its own run.
	spotify, err := db.GetRankings(ctx, models.RankingSong, models.PlatformSpotify, 10)
	require.NoError(t, err)
	assert.Equal(t, []models.RankingEntry{
		{Label: "Halo", MetricValue: 20},
		{Label: "Yellow", MetricValue: 8},
		{Label: "Dancing Queen", MetricValue: 5},
	}, spotify)
}

func TestGetRankings_NonIncreasingAndLimited(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	for _, kind := range []models.RankingKind{models.RankingArtist, models.RankingSong} {
		for _, platform := range models.RankingPlatforms {
			entries, err := db.GetRankings(ctx, kind, platform, 2)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(entries), 2)
			for i := 1; i < len(entries); i++ {
				assert.GreaterOrEqual(t, entries[i-1].MetricValue, entries[i].MetricValue)
			}
		}
	}
}

func TestGetRankings_EmptyIsNonNil(t *testing.T) {
	db := setupTestDB(t)

	entries, err := db.GetRankings(context.Background(), models.RankingArtist, models.PlatformSpotify, 10)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestGetRankings_InvalidArguments(t *testing.T) {
	db := NewWithConn(nil, DialectDuckDB, DefaultOptions())
	ctx := context.Background()

	tests := []struct {
		name     string
		kind     models.RankingKind
		platform models.PlatformFilter
		limit    int
		field    string
	}{
		{"unknown kind", "album", models.PlatformSpotify, 10, "kind"},
		{"all platform", models.RankingArtist, models.PlatformAll, 10, "platform"},
		{"grammy platform", models.RankingSong, models.PlatformGrammy, 10, "platform"},
		{"zero limit", models.RankingArtist, models.PlatformSpotify, 0, "limit"},
		{"limit above max", models.RankingSong, models.PlatformYouTube, 101, "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.GetRankings(ctx, tt.kind, tt.platform, tt.limit)
			var filterErr *models.InvalidFilterError
			require.True(t, errors.As(err, &filterErr), "got %v", err)
			assert.Equal(t, tt.field, filterErr.Field)
		})
	}
}

func TestGetChartData(t *testing.T) {
	db := setupSeededDB(t)

	data, err := db.GetChartData(context.Background())
	require.NoError(t, err)

	require.Len(t, data.TopArtistsSpotify, 4)
	assert.Equal(t, models.ArtistRanking{ArtistName: "Beyonce", TotalMetric: 900}, data.TopArtistsSpotify[0])

	require.Len(t, data.TopArtistsYouTube, 4)
	assert.Equal(t, models.ArtistRanking{ArtistName: "Adele", TotalMetric: 1250}, data.TopArtistsYouTube[0])

	// Songs span every platform.
	assert.Equal(t, []models.SongRanking{
		{TrackName: "Hello", TotalMetric: 30},
		{TrackName: "Halo", TotalMetric: 20},
		{TrackName: "Dancing Queen", TotalMetric: 12},
		{TrackName: "Fix You", TotalMetric: 12},
		{TrackName: "Yellow", TotalMetric: 8},
	}, data.SongsLongestOnChart)
}

func int64Ptr(v int64) *int64 {
	return &v
}
