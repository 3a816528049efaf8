// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package storage provides append-only rating stores for the
// recommendation engine.
//
// Two implementations of recommend.RatingStore are available:
//
//   - MemoryStore: a mutex-guarded slice, lost on restart
//   - BadgerStore: BadgerDB-backed, durable across restarts
//
// # Ordering
//
// Both stores return ratings in insertion order. BadgerStore keys every
// rating with a zero-padded value from a BadgerDB sequence, so a prefix scan
// yields insertion order:
//
//	rating:00000000000000000042          -> JSON rating
//	rating_user:00000000000000000007:00000000000000000042 -> JSON rating
//
// The second key is a per-user index used by ByUser.
//
// # Snapshots
//
// All reads from a single BadgerDB read transaction (or under the
// MemoryStore read lock), so a collaborative rebuild never sees a
// half-applied append.
//
// # Usage
//
//	store, err := storage.OpenBadger(storage.BadgerConfig{Path: "/data/ratings"})
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
package storage
