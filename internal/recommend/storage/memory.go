// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package storage

import (
	"context"
	"sync"

	"github.com/tomtom215/cinerec/internal/recommend"
)

// MemoryStore keeps ratings in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	ratings []recommend.Rating
	closed  bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append adds r after every previously appended rating.
func (s *MemoryStore) Append(ctx context.Context, r recommend.Rating) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.ratings = append(s.ratings, r)
	return nil
}

// ByUser returns the ratings of userID in insertion order.
func (s *MemoryStore) ByUser(ctx context.Context, userID int) ([]recommend.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	out := make([]recommend.Rating, 0)
	for _, r := range s.ratings {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// All returns a copy of every rating.
func (s *MemoryStore) All(ctx context.Context) ([]recommend.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	return append(make([]recommend.Rating, 0, len(s.ratings)), s.ratings...), nil
}

// Count returns the number of stored ratings.
func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, ErrClosed
	}
	return len(s.ratings), nil
}

// Close drops the stored ratings. Later calls fail with ErrClosed.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.ratings = nil
	return nil
}
