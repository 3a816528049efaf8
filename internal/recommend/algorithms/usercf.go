// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package algorithms

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinerec/internal/recommend"
)

// UserCFConfig tunes user-based collaborative filtering.
type UserCFConfig struct {
	// PeerCount is the number of nearest users consulted.
	PeerCount int

	// LikeThreshold is the minimum peer rating for a candidate.
	LikeThreshold float64

	// DuplicatePolicy resolves repeated ratings of one movie by one user.
	DuplicatePolicy DuplicatePolicy
}

// DefaultUserCFConfig returns three peers and a 4-star threshold.
func DefaultUserCFConfig() UserCFConfig {
	return UserCFConfig{
		PeerCount:       3,
		LikeThreshold:   4,
		DuplicatePolicy: DuplicateMean,
	}
}

// Neighbor is a peer user and its cosine similarity to the target user.
type Neighbor struct {
	ID         int
	Similarity float64
}

// UserCF recommends movies that a user's nearest peers rated highly.
//
// Peers are the PeerCount users with the highest cosine similarity between
// dense rating rows, ties by ascending user ID. Every selected peer counts,
// including one with zero similarity when fewer similar users exist.
type UserCF struct {
	BaseAlgorithm
	config UserCFConfig
	logger zerolog.Logger

	matrix *UserItemMatrix
}

// NewUserCF creates an untrained collaborative model.
//
//nolint:gocritic // hugeParam: zerolog.Logger is designed to be passed by value
func NewUserCF(cfg UserCFConfig, logger zerolog.Logger) *UserCF {
	def := DefaultUserCFConfig()
	if cfg.PeerCount <= 0 {
		cfg.PeerCount = def.PeerCount
	}
	if cfg.LikeThreshold <= 0 {
		cfg.LikeThreshold = def.LikeThreshold
	}
	if cfg.DuplicatePolicy == "" {
		cfg.DuplicatePolicy = def.DuplicatePolicy
	}
	return &UserCF{
		BaseAlgorithm: NewBaseAlgorithm("usercf"),
		config:        cfg,
		logger:        logger.With().Str("algorithm", "usercf").Logger(),
	}
}

// Train rebuilds the user-item matrix from a snapshot of all ratings.
func (u *UserCF) Train(ctx context.Context, ratings []recommend.Rating) error {
	if ContextCancelled(ctx) {
		return ctx.Err()
	}
	matrix := BuildUserItemMatrix(ratings, u.config.DuplicatePolicy)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.matrix = matrix
	u.markTrained()

	u.logger.Debug().
		Int("ratings", len(ratings)).
		Int("users", len(matrix.users)).
		Int("items", len(matrix.items)).
		Msg("User-item matrix built")
	return nil
}

// UserCount returns the number of users in the trained matrix.
func (u *UserCF) UserCount() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if u.matrix == nil {
		return 0
	}
	return len(u.matrix.users)
}

// Peers returns the selected nearest peers of userID.
func (u *UserCF) Peers(ctx context.Context, userID int) ([]Neighbor, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if err := u.checkUser(userID); err != nil {
		return nil, err
	}
	return u.peers(ctx, userID)
}

// Recommend returns up to n movies the selected peers rated at or above
// the like threshold and userID has not rated. Candidates are ordered by
// the best peer rating (descending), then item ID (ascending).
func (u *UserCF) Recommend(ctx context.Context, userID, n int) ([]recommend.Prediction, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if err := u.checkUser(userID); err != nil {
		return nil, err
	}
	peers, err := u.peers(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := u.matrix.row(userID)
	best := make(map[int]float64)
	for _, p := range peers {
		for item, rating := range u.matrix.row(p.ID) {
			if rating < u.config.LikeThreshold {
				continue
			}
			if _, rated := seen[item]; rated {
				continue
			}
			if rating > best[item] {
				best[item] = rating
			}
		}
	}

	preds := make([]recommend.Prediction, 0, len(best))
	for item, rating := range best {
		preds = append(preds, recommend.Prediction{ItemID: item, Score: rating})
	}
	sort.Slice(preds, func(i, j int) bool {
		if preds[i].Score != preds[j].Score {
			return preds[i].Score > preds[j].Score
		}
		return preds[i].ItemID < preds[j].ItemID
	})

	if n < 0 {
		n = 0
	}
	if len(preds) > n {
		preds = preds[:n]
	}

	u.logger.Debug().
		Int("user_id", userID).
		Int("peers", len(peers)).
		Int("candidates", len(best)).
		Msg("Collaborative candidates ranked")
	return preds, nil
}

// checkUser must be called with u.mu held.
func (u *UserCF) checkUser(userID int) error {
	if !u.trained {
		return recommend.ErrNotTrained
	}
	if !u.matrix.HasUser(userID) {
		return fmt.Errorf("%w: %d", recommend.ErrUserNotFound, userID)
	}
	return nil
}

// peers must be called with u.mu held.
func (u *UserCF) peers(ctx context.Context, userID int) ([]Neighbor, error) {
	target := u.matrix.Dense(userID)

	neighbors := make([]Neighbor, 0, len(u.matrix.users)-1)
	for _, other := range u.matrix.users {
		if other == userID {
			continue
		}
		if ContextCancelled(ctx) {
			return nil, ctx.Err()
		}
		neighbors = append(neighbors, Neighbor{
			ID:         other,
			Similarity: cosineSimilarity(target, u.matrix.Dense(other)),
		})
	}

	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].Similarity != neighbors[j].Similarity {
			return neighbors[i].Similarity > neighbors[j].Similarity
		}
		return neighbors[i].ID < neighbors[j].ID
	})

	if len(neighbors) > u.config.PeerCount {
		neighbors = neighbors[:u.config.PeerCount]
	}
	return neighbors, nil
}
