// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package algorithms implements the recommendation models used by the engine.
//
//   - ContentSimilarity: TF-IDF over genre, director and keywords with an
//     item-item cosine similarity matrix (implements recommend.ContentModel).
//   - UserCF: user-based nearest neighbour voting over a sparse user-item
//     rating matrix (implements recommend.CollaborativeModel).
//
// # Thread Safety
//
// Every model is safe for concurrent use. Train builds the new state
// without holding the model lock and swaps it in under the exclusive lock;
// predictions take the shared lock.
package algorithms

import (
	"context"
	"math"
	"sync"
	"time"
)

// BaseAlgorithm carries the bookkeeping shared by all models.
type BaseAlgorithm struct {
	name          string
	trained       bool
	version       int
	lastTrainedAt time.Time
	mu            sync.RWMutex
}

// NewBaseAlgorithm creates a base algorithm with the given name.
func NewBaseAlgorithm(name string) BaseAlgorithm {
	return BaseAlgorithm{name: name}
}

// Name returns the model identifier.
func (b *BaseAlgorithm) Name() string {
	return b.name
}

// IsTrained reports whether Train has succeeded at least once.
func (b *BaseAlgorithm) IsTrained() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.trained
}

// Version increments on every successful Train.
func (b *BaseAlgorithm) Version() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.version
}

// LastTrainedAt returns when the model was last trained.
func (b *BaseAlgorithm) LastTrainedAt() time.Time {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastTrainedAt
}

// markTrained must be called with b.mu held exclusively.
func (b *BaseAlgorithm) markTrained() {
	b.trained = true
	b.version++
	b.lastTrainedAt = time.Now()
}

// cosineSimilarity returns dot(a,b)/(|a||b|), or 0 when either vector has
// zero norm or the lengths differ.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return clampUnit(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}

// clampUnit pins rounding overshoot back into [-1, 1].
func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// ContextCancelled reports whether ctx is done without blocking.
func ContextCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
