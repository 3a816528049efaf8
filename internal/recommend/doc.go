// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package recommend implements the movie recommendation engine.
//
// # Architecture
//
// Two independent strategies feed a hybrid combiner:
//
//   - Content-based: a TF-IDF index over each movie's genre, director and
//     keywords, with an item-item cosine similarity matrix.
//   - Collaborative: user-based nearest neighbours over a sparse user-item
//     rating matrix; peers' well-rated, unseen movies become candidates.
//
// The models themselves live in the algorithms subpackage and are handed to
// NewEngine through Dependencies, so this package stays free of any
// particular scoring implementation. Ratings are read and written through
// the RatingStore interface (see the storage subpackage).
//
// # Cache Invalidation
//
// Derived structures are never mutated directly:
//
//   - ReplaceCatalog rebuilds the content model wholesale, eagerly.
//   - SubmitRating bumps the ratings version; the next collaborative query
//     (or the background refresh service) rebuilds the user-item matrix from
//     one snapshot of the store.
//
// # Errors
//
// ErrNotFound and ErrUserNotFound are returned for unknown titles and users.
// A valid query with no qualifying results returns an empty slice and a nil
// error.
//
// # Usage
//
//	engine, err := recommend.NewEngine(ctx, cfg, items, recommend.Dependencies{
//	    Store:         storage.NewMemoryStore(),
//	    Content:       algorithms.NewContentSimilarity(logger),
//	    Collaborative: algorithms.NewUserCF(algorithms.DefaultUserCFConfig(), logger),
//	}, logger)
//
//	recs, err := engine.ContentRecommendations(ctx, "Inception", 5)
//
// # Thread Safety
//
// The engine is safe for concurrent use. Catalog replacement holds an
// exclusive lock while content queries share it; user-item matrix rebuilds
// are serialised and swap the trained model in one step, so a reader never
// observes a matrix built from a partial write.
package recommend
