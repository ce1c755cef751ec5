// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

// Package services adapts Chartroom components to suture.Service so the
// supervisor tree can start, restart and stop them.
package services
