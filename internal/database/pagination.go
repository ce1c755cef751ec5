// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package database

import (
	"context"
	"strconv"

	"github.com/tomtom215/chartroom/internal/config"
	"github.com/tomtom215/chartroom/internal/models"
)

// pagedQuery is a count query plus a page query sharing the same scope.
// The page query must end in "LIMIT ? OFFSET ?" and select columns named
// after T's db tags.
type pagedQuery[T any] struct {
	op    string
	table string

	countSQL string
	pageSQL  string
	args     []interface{}
}

// totalPages is never less than 1, so an empty result still has one page.
// The ceiling is taken as (total-1)/size + 1, which cannot overflow for any
// positive page size.
func totalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 1
	}
	return int((total-1)/int64(pageSize) + 1)
}

func validatePageRequest(req models.PageRequest) error {
	if req.Page < 1 {
		return &models.InvalidFilterError{Field: "page", Value: strconv.Itoa(req.Page)}
	}
	if req.PageSize < 1 {
		return &models.InvalidFilterError{Field: "limit", Value: strconv.Itoa(req.PageSize)}
	}
	return nil
}

// resolvePage counts the scope, applies the overflow policy and fetches one
// page. A page past the end is empty under the permissive policy and the
// last page under clamp.
func resolvePage[T any](ctx context.Context, db *DB, q pagedQuery[T], req models.PageRequest) (*models.Page[T], error) {
	if err := validatePageRequest(req); err != nil {
		return nil, err
	}

	var total int64
	if err := db.queryRow(ctx, q.op+"_count", q.table, q.countSQL, q.args, &total); err != nil {
		return nil, err
	}

	pages := totalPages(total, req.PageSize)
	page := req.Page
	if page > pages {
		if db.opts.PageOverflow != config.PageOverflowClamp {
			return &models.Page[T]{Data: []T{}, TotalPages: pages}, nil
		}
		page = pages
	}
	if total == 0 {
		return &models.Page[T]{Data: []T{}, TotalPages: pages}, nil
	}

	args := make([]interface{}, 0, len(q.args)+2)
	args = append(args, q.args...)
	args = append(args, req.PageSize, (page-1)*req.PageSize)

	data, err := selectRows[T](ctx, db, q.op, q.table, q.pageSQL, args)
	if err != nil {
		return nil, err
	}
	return &models.Page[T]{Data: data, TotalPages: pages}, nil
}
