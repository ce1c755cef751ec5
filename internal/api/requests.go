// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package api

import (
	"fmt"
	"net/http"

	"github.com/tomtom215/chartroom/internal/database"
	"github.com/tomtom215/chartroom/internal/models"
	"github.com/tomtom215/chartroom/internal/validation"
)

// RankingQuery holds the validated parameters of the ranking endpoints.
// The upper bound on Limit is api.max_ranking_limit.
type RankingQuery struct {
	Limit int `query:"limit" validate:"min=1"`
}

// PageQuery holds the validated parameters of the paginated artist detail
// endpoints. The upper bound on Limit is api.max_page_size.
type PageQuery struct {
	Page  int `query:"page" validate:"min=1"`
	Limit int `query:"limit" validate:"min=1"`
}

func (q *RankingQuery) validate(maxLimit int) *validation.RequestValidationError {
	if verr := validation.ValidateStruct(q); verr != nil {
		return verr
	}
	return validation.ValidateVar("limit", q.Limit, fmt.Sprintf("max=%d", maxLimit))
}

func (q *PageQuery) validate(maxLimit int) *validation.RequestValidationError {
	if verr := validation.ValidateStruct(q); verr != nil {
		return verr
	}
	return validation.ValidateVar("limit", q.Limit, fmt.Sprintf("max=%d", maxLimit))
}

// PageRequest converts the query into the store's page window.
func (q *PageQuery) PageRequest() models.PageRequest {
	return models.PageRequest{Page: q.Page, PageSize: q.Limit}
}

// parseRankingQuery reads limit, defaulting to database.DefaultRankingLimit.
func (h *Handler) parseRankingQuery(r *http.Request) (*RankingQuery, *validation.RequestValidationError) {
	limit, verr := intQueryParam(r, "limit", database.DefaultRankingLimit)
	if verr != nil {
		return nil, verr
	}
	q := &RankingQuery{Limit: limit}
	if verr := q.validate(h.config.API.MaxRankingLimit); verr != nil {
		return nil, verr
	}
	return q, nil
}

// parsePageQuery reads page and limit, defaulting to 1 and api.default_page_size.
func (h *Handler) parsePageQuery(r *http.Request) (*PageQuery, *validation.RequestValidationError) {
	page, verr := intQueryParam(r, "page", 1)
	if verr != nil {
		return nil, verr
	}
	limit, verr := intQueryParam(r, "limit", h.config.API.DefaultPageSize)
	if verr != nil {
		return nil, verr
	}
	q := &PageQuery{Page: page, Limit: limit}
	if verr := q.validate(h.config.API.MaxPageSize); verr != nil {
		return nil, verr
	}
	return q, nil
}
