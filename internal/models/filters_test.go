// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatformFilter(t *testing.T) {
	tests := []struct {
		raw     string
		allowed []PlatformFilter
		want    PlatformFilter
		wantErr bool
	}{
		{"all", KPIFilters, PlatformAll, false},
		{"grammy", KPIFilters, PlatformGrammy, false},
		{"spotify", RankingPlatforms, PlatformSpotify, false},
		{"youtube", RankingPlatforms, PlatformYouTube, false},
		{"grammy", RankingPlatforms, "", true},
		{"all", RankingPlatforms, "", true},
		{"Spotify", KPIFilters, "", true},
		{"", KPIFilters, "", true},
		{"tidal", KPIFilters, "", true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.raw, len(tt.allowed)), func(t *testing.T) {
			got, err := ParsePlatformFilter("platform", tt.raw, tt.allowed)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidFilter))
				var ife *InvalidFilterError
				require.True(t, errors.As(err, &ife))
				assert.Equal(t, "platform", ife.Field)
				assert.Equal(t, tt.raw, ife.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRankingKind(t *testing.T) {
	kind, err := ParseRankingKind("song")
	require.NoError(t, err)
	assert.Equal(t, RankingSong, kind)

	_, err = ParseRankingKind("album")
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestInvalidFilterError_Message(t *testing.T) {
	err := &InvalidFilterError{Field: "platform", Value: "tidal", Allowed: []string{"spotify", "youtube"}}
	assert.Equal(t, `invalid platform "tidal" (allowed: spotify, youtube)`, err.Error())

	bare := &InvalidFilterError{Field: "kind", Value: "x"}
	assert.Equal(t, `invalid kind "x"`, bare.Error())
}

func TestInvalidFilterError_Wrapped(t *testing.T) {
	err := fmt.Errorf("kpis: %w", &InvalidFilterError{Field: "platform", Value: "x"})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestKPIs_GrammyTotalEncodesNull(t *testing.T) {
	data, err := json.Marshal(KPIs{TotalArtists: 3, TotalSongs: 4})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_artists":3,"total_songs":4,"total_streams_views":null}`, string(data))

	total := int64(0)
	data, err = json.Marshal(KPIs{TotalStreamsViews: &total})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_artists":0,"total_songs":0,"total_streams_views":0}`, string(data))
}

func TestPage_WireShape(t *testing.T) {
	page := Page[ProducerCredit]{
		Data:       []ProducerCredit{{ProducerID: 7, ProducerName: "Max Martin"}},
		TotalPages: 1,
	}
	data, err := json.Marshal(page)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[{"producer_id":7,"producer_name":"Max Martin"}],"totalPages":1}`, string(data))
}
