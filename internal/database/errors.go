// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

package database

import (
	"errors"
	"fmt"
	"io"
)

// ErrBackendUnavailable matches every *BackendUnavailableError via errors.Is.
var ErrBackendUnavailable = errors.New("analytics backend unavailable")

// BackendUnavailableError reports a failed backend call.
//
// Unreachable is true when the backend could not be reached at all (circuit
// open, connection refused) as opposed to a query that reached it and failed.
type BackendUnavailableError struct {
	Op          string
	Unreachable bool
	Err         error
}

func (e *BackendUnavailableError) Error() string {
	if e.Unreachable {
		return fmt.Sprintf("%s: backend unreachable: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the driver or breaker error.
func (e *BackendUnavailableError) Unwrap() error {
	return e.Err
}

// Is matches ErrBackendUnavailable.
func (e *BackendUnavailableError) Is(target error) bool {
	return target == ErrBackendUnavailable
}

// closeQuietly closes a resource in an error path where Close errors are not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
