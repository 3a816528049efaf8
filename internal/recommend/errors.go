// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package recommend

import "errors"

var (
	// ErrNotFound means a title or item ID is not in the catalog.
	ErrNotFound = errors.New("item not found")

	// ErrUserNotFound means the user has no rating events.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidRating means a submitted rating is outside the scale or
	// carries an invalid user ID.
	ErrInvalidRating = errors.New("invalid rating")

	// ErrInvalidCatalog means a catalog failed validation (duplicate IDs or
	// titles, missing fields).
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrNotTrained is returned by models queried before their first Train.
	ErrNotTrained = errors.New("model not trained")
)
