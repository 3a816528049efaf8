// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package cache provides a generic, thread-safe LRU cache with TTL expiry.
//
// The rating event consumer uses it to drop redelivered events by event ID:
//
//	seen := cache.NewLRU[string, struct{}](4096, 10*time.Minute)
//	if seen.IsDuplicate(event.EventID) {
//	    return nil
//	}
package cache
