// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package recommend

import (
	"context"
	"time"
)

// Model is the common surface of every trained model.
type Model interface {
	Name() string
	IsTrained() bool
	Version() int
	LastTrainedAt() time.Time
}

// ContentModel scores items by metadata similarity.
type ContentModel interface {
	Model

	// Train rebuilds the model from the full ordered catalog.
	Train(ctx context.Context, items []Item) error

	// Similar returns up to n other items ordered by descending similarity
	// to itemID, ties by ascending item ID. ErrNotFound if itemID is unknown.
	Similar(ctx context.Context, itemID, n int) ([]Prediction, error)
}

// CollaborativeModel recommends items from peer ratings.
type CollaborativeModel interface {
	Model

	// Train rebuilds the model from a consistent snapshot of all ratings.
	Train(ctx context.Context, ratings []Rating) error

	// Recommend returns up to n unseen items for userID.
	// ErrUserNotFound if the user has no ratings in the trained snapshot.
	Recommend(ctx context.Context, userID, n int) ([]Prediction, error)

	// UserCount is the number of users in the trained snapshot.
	UserCount() int
}

// RatingStore holds append-only rating events.
type RatingStore interface {
	Append(ctx context.Context, r Rating) error
	ByUser(ctx context.Context, userID int) ([]Rating, error)

	// All returns every rating in insertion order as one consistent snapshot.
	All(ctx context.Context) ([]Rating, error)
	Count(ctx context.Context) (int, error)
	Close() error
}

// RatingPublisher is notified after a rating has been stored.
type RatingPublisher interface {
	PublishRating(ctx context.Context, r Rating) error
}
