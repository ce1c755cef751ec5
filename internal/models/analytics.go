// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package models

// KPIs is the dashboard headline for one platform filter.
//
// TotalStreamsViews is nil for the grammy filter, where no streaming unit
// applies; it encodes as JSON null rather than 0.
type KPIs struct {
	TotalArtists      int64  `json:"total_artists"`
	TotalSongs        int64  `json:"total_songs"`
	TotalStreamsViews *int64 `json:"total_streams_views"`
}

// RankingEntry is one row of a ranking, already ordered by the query.
type RankingEntry struct {
	Label       string `db:"label"`
	MetricValue int64  `db:"metric_value"`
}

// ArtistRanking is the wire shape of an artist ranking row.
type ArtistRanking struct {
	ArtistName  string `json:"artist_name"`
	TotalMetric int64  `json:"total_metric"`
}

// SongRanking is the wire shape of a song ranking row.
type SongRanking struct {
	TrackName   string `json:"track_name"`
	TotalMetric int64  `json:"total_metric"`
}

// ArtistRankings maps ranking entries onto the artist wire shape.
func ArtistRankings(entries []RankingEntry) []ArtistRanking {
	out := make([]ArtistRanking, len(entries))
	for i, e := range entries {
		out[i] = ArtistRanking{ArtistName: e.Label, TotalMetric: e.MetricValue}
	}
	return out
}

// SongRankings maps ranking entries onto the song wire shape.
func SongRankings(entries []RankingEntry) []SongRanking {
	out := make([]SongRanking, len(entries))
	for i, e := range entries {
		out[i] = SongRanking{TrackName: e.Label, TotalMetric: e.MetricValue}
	}
	return out
}

// ChartData is the combined payload behind the dashboard charts.
type ChartData struct {
	TopArtistsSpotify   []ArtistRanking `json:"topArtistsSpotify"`
	TopArtistsYouTube   []ArtistRanking `json:"topArtistsYouTube"`
	SongsLongestOnChart []SongRanking   `json:"songsLongestOnChart"`
}

// ArtistSearchResult is one artist lookup match.
type ArtistSearchResult struct {
	ArtistID   int64  `json:"artist_id" db:"artist_id"`
	ArtistName string `json:"artist_name" db:"artist_name"`
}

// ArtistMetrics holds per-platform totals for a single artist. Both values
// are coalesced to zero independently.
type ArtistMetrics struct {
	TotalSpotifyStreams int64 `json:"total_spotify_streams"`
	TotalYouTubeViews   int64 `json:"total_youtube_views"`
}

// GrammyRecord is one award nomination or win.
type GrammyRecord struct {
	SongAlbumName string `json:"song_album_name" db:"song_album_name"`
	Year          int    `json:"year" db:"year"`
	Category      string `json:"category" db:"category"`
	Result        string `json:"result" db:"result"`
}

// ProducerCredit is one distinct producer credited on an artist's work.
type ProducerCredit struct {
	ProducerID   int64  `json:"producer_id" db:"producer_id"`
	ProducerName string `json:"producer_name" db:"producer_name"`
}

// PageRequest is a 1-indexed page window.
type PageRequest struct {
	Page     int
	PageSize int
}

// Page is one window of a paginated detail list. TotalPages is at least 1.
type Page[T any] struct {
	Data       []T `json:"data"`
	TotalPages int `json:"totalPages"`
}
