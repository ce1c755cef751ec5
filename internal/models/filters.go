// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package models

import (
	"errors"
	"fmt"
	"strings"
)

// PlatformFilter selects the slice of the star schema an aggregation runs over.
//
// KPIs accept every value. Rankings accept PlatformSpotify and PlatformYouTube;
// song rankings additionally accept PlatformAll, which ranks chart runs
// across every platform.
type PlatformFilter string

const (
	PlatformAll     PlatformFilter = "all"
	PlatformSpotify PlatformFilter = "spotify"
	PlatformYouTube PlatformFilter = "youtube"
	PlatformGrammy  PlatformFilter = "grammy"
)

// KPIFilters lists the values accepted by the KPI endpoint.
var KPIFilters = []PlatformFilter{PlatformAll, PlatformSpotify, PlatformYouTube, PlatformGrammy}

// RankingPlatforms lists the values accepted by the ranking endpoints.
var RankingPlatforms = []PlatformFilter{PlatformSpotify, PlatformYouTube}

// RankingKind selects what a ranking groups by.
type RankingKind string

const (
	RankingArtist RankingKind = "artist"
	RankingSong   RankingKind = "song"
)

// ErrInvalidFilter is matched by every InvalidFilterError.
var ErrInvalidFilter = errors.New("invalid filter")

// InvalidFilterError reports an enum parameter outside its closed set.
type InvalidFilterError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidFilterError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid %s %q (allowed: %s)", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// Is makes errors.Is(err, ErrInvalidFilter) true.
func (e *InvalidFilterError) Is(target error) bool {
	return target == ErrInvalidFilter
}

// ParsePlatformFilter validates raw against allowed. Matching is exact;
// "Spotify" is rejected rather than silently normalized.
func ParsePlatformFilter(field, raw string, allowed []PlatformFilter) (PlatformFilter, error) {
	for _, p := range allowed {
		if raw == string(p) {
			return p, nil
		}
	}
	names := make([]string, len(allowed))
	for i, p := range allowed {
		names[i] = string(p)
	}
	return "", &InvalidFilterError{Field: field, Value: raw, Allowed: names}
}

// ParseRankingKind validates a ranking kind.
func ParseRankingKind(raw string) (RankingKind, error) {
	switch RankingKind(raw) {
	case RankingArtist, RankingSong:
		return RankingKind(raw), nil
	}
	return "", &InvalidFilterError{
		Field:   "kind",
		Value:   raw,
		Allowed: []string{string(RankingArtist), string(RankingSong)},
	}
}
