// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pageParams struct {
	ArtistID int64 `query:"id" validate:"min=1"`
	Page     int   `query:"page" validate:"min=1"`
	Limit    int   `query:"limit" validate:"min=1,max=100"`
}

type searchParams struct {
	Term string `query:"q" validate:"max=100"`
	Mode string `validate:"omitempty,oneof=exact fuzzy"`
}

func TestValidateStruct_Valid(t *testing.T) {
	assert.Nil(t, ValidateStruct(&pageParams{ArtistID: 1, Page: 1, Limit: 5}))
	assert.Nil(t, ValidateStruct(&searchParams{Term: "abba"}))
}

func TestValidateStruct_UsesQueryNames(t *testing.T) {
	err := ValidateStruct(&pageParams{ArtistID: 1, Page: 1, Limit: 500})
	require.NotNil(t, err)
	require.Len(t, err.Fields, 1)

	f := err.Fields[0]
	assert.Equal(t, "limit", f.Field)
	assert.Equal(t, "max", f.Tag)
	assert.Equal(t, "100", f.Param)
	assert.Equal(t, "limit must be at most 100", f.Message)
	assert.Equal(t, map[string]string{"limit": "limit must be at most 100"}, err.Details())
}

func TestValidateStruct_MultipleFields(t *testing.T) {
	err := ValidateStruct(&pageParams{ArtistID: 0, Page: 0, Limit: 0})
	require.NotNil(t, err)
	assert.Len(t, err.Fields, 3)
	assert.Equal(t, "id must be at least 1; page must be at least 1; limit must be at least 1", err.Error())
}

func TestValidateStruct_StringAndOneOf(t *testing.T) {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}

	err := ValidateStruct(&searchParams{Term: string(long), Mode: "regex"})
	require.NotNil(t, err)
	details := err.Details()
	assert.Equal(t, "q must be at most 100 characters", details["q"])
	assert.Equal(t, "Mode must be one of: exact, fuzzy", details["Mode"])
}

func TestValidateStruct_NonStruct(t *testing.T) {
	err := ValidateStruct(42)
	require.NotNil(t, err)
	assert.Equal(t, "request", err.Fields[0].Field)
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}

func TestValidateVar(t *testing.T) {
	assert.Nil(t, ValidateVar("limit", 10, "min=1,max=25"))

	err := ValidateVar("limit", 30, "min=1,max=25")
	require.NotNil(t, err)
	require.Len(t, err.Fields, 1)
	assert.Equal(t, "limit", err.Fields[0].Field)
	assert.Equal(t, "limit must be at most 25", err.Error())

	err = ValidateVar("page", 0, "min=1")
	require.NotNil(t, err)
	assert.Equal(t, map[string]string{"page": "page must be at least 1"}, err.Details())
}
