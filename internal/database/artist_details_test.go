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

	"github.com/tomtom215/chartroom/internal/config"
	"github.com/tomtom215/chartroom/internal/models"
)

func TestSearchArtists(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	tests := []struct {
		term string
		want []string
	}{
		{"ab", []string{"Abba"}},
		{"AB", []string{"Abba"}},
		{"  ab  ", []string{"Abba"}},
		{"e", nil},
		{"le", []string{"Adele"}},
		{"co", []string{"Coldplay"}},
		// % and _ match literally.
		{"0%", []string{"100%_Pure"}},
		{"_p", []string{"100%_Pure"}},
		{"zz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			results, err := db.SearchArtists(ctx, tt.term)
			require.NoError(t, err)
			require.NotNil(t, results)

			names := make([]string, 0, len(results))
			for _, r := range results {
				names = append(names, r.ArtistName)
			}
			if tt.want == nil {
				assert.Empty(t, names)
			} else {
				assert.Equal(t, tt.want, names)
			}
		})
	}
}

func TestSearchArtists_ReturnsIDs(t *testing.T) {
	db := setupSeededDB(t)

	results, err := db.SearchArtists(context.Background(), "abba")
	require.NoError(t, err)
	assert.Equal(t, []models.ArtistSearchResult{{ArtistID: 1, ArtistName: "Abba"}}, results)
}

func TestSearchArtists_CapsResults(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for i := int64(1); i <= 15; i++ {
		_, err := db.Conn().ExecContext(ctx, "INSERT INTO dim_artist VALUES (?, ?)", i, "The Band "+string(rune('A'+i)))
		require.NoError(t, err)
	}

	results, err := db.SearchArtists(ctx, "band")
	require.NoError(t, err)
	assert.Len(t, results, MaxSearchResults)
	assert.Equal(t, "The Band B", results[0].ArtistName)
}

func TestGetArtistMetrics(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		id      int64
		spotify int64
		youtube int64
	}{
		{"both platforms", 1, 500, 300},
		{"youtube only sums every fact", 5, 0, 1250},
		{"null streams", 4, 0, 0},
		{"unknown artist", 999, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := db.GetArtistMetrics(ctx, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.spotify, m.TotalSpotifyStreams)
			assert.Equal(t, tt.youtube, m.TotalYouTubeViews)
		})
	}
}

func TestGetAwardHistory_Paging(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	page1, err := db.GetAwardHistory(ctx, 1, models.PageRequest{Page: 1, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, 2, page1.TotalPages)
	require.Len(t, page1.Data, 5)
	assert.Equal(t, models.GrammyRecord{
		SongAlbumName: "Gold", Year: 1993, Category: "Best Compilation", Result: "Nominated",
	}, page1.Data[0])
	assert.Equal(t, "Arrival", page1.Data[4].SongAlbumName)
	assert.Equal(t, "Album of the Year", page1.Data[4].Category)

	page2, err := db.GetAwardHistory(ctx, 1, models.PageRequest{Page: 2, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, 2, page2.TotalPages)
	require.Len(t, page2.Data, 2)
	assert.Equal(t, "Best Pop", page2.Data[0].Category)
	assert.Equal(t, "Waterloo", page2.Data[1].SongAlbumName)

	page3, err := db.GetAwardHistory(ctx, 1, models.PageRequest{Page: 3, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, 2, page3.TotalPages)
	assert.NotNil(t, page3.Data)
	assert.Empty(t, page3.Data)
}

func TestGetAwardHistory_NullNameAndUnknownArtist(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	page, err := db.GetAwardHistory(ctx, 2, models.PageRequest{Page: 1, PageSize: 5})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "", page.Data[0].SongAlbumName)
	assert.Equal(t, 2010, page.Data[0].Year)

	empty, err := db.GetAwardHistory(ctx, 999, models.PageRequest{Page: 1, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, empty.TotalPages)
	assert.Empty(t, empty.Data)
}

func TestGetAwardHistory_ClampOverflow(t *testing.T) {
	opts := DefaultOptions()
	opts.PageOverflow = config.PageOverflowClamp
	db := setupTestDBWithOptions(t, opts)
	seedFixtures(t, db)

	page, err := db.GetAwardHistory(context.Background(), 1, models.PageRequest{Page: 9, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "Waterloo", page.Data[1].SongAlbumName)
}

func TestGetProducerCredits_Deduplicates(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	page, err := db.GetProducerCredits(ctx, 1, models.PageRequest{Page: 1, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, []models.ProducerCredit{
		{ProducerID: 2, ProducerName: "benny andersson"},
		{ProducerID: 3, ProducerName: "Bjorn Ulvaeus"},
		{ProducerID: 1, ProducerName: "Max Martin"},
	}, page.Data)

	small, err := db.GetProducerCredits(ctx, 1, models.PageRequest{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, small.TotalPages)
	assert.Equal(t, []models.ProducerCredit{{ProducerID: 1, ProducerName: "Max Martin"}}, small.Data)
}

func TestPagedQueries_RejectBadRequests(t *testing.T) {
	db := NewWithConn(nil, DialectDuckDB, DefaultOptions())
	ctx := context.Background()

	_, err := db.GetAwardHistory(ctx, 1, models.PageRequest{Page: 0, PageSize: 5})
	assert.True(t, errors.Is(err, models.ErrInvalidFilter))

	_, err = db.GetProducerCredits(ctx, 1, models.PageRequest{Page: 1, PageSize: 0})
	assert.True(t, errors.Is(err, models.ErrInvalidFilter))
}
