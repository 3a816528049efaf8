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

// ContentSimilarity ranks movies by the cosine similarity of their TF-IDF
// feature vectors (genre, director and keywords).
type ContentSimilarity struct {
	BaseAlgorithm
	logger zerolog.Logger

	// Trained model, replaced wholesale by Train.
	index    *TFIDFIndex
	matrix   *SimilarityMatrix
	itemIDs  []int       // position -> item ID
	position map[int]int // item ID -> position
}

// NewContentSimilarity creates an untrained content model.
//
//nolint:gocritic // hugeParam: zerolog.Logger is designed to be passed by value
func NewContentSimilarity(logger zerolog.Logger) *ContentSimilarity {
	return &ContentSimilarity{
		BaseAlgorithm: NewBaseAlgorithm("content"),
		logger:        logger.With().Str("algorithm", "content").Logger(),
	}
}

// Train builds the TF-IDF index and similarity matrix for items, in order.
func (c *ContentSimilarity) Train(ctx context.Context, items []recommend.Item) error {
	docs := make([]string, len(items))
	itemIDs := make([]int, len(items))
	position := make(map[int]int, len(items))
	for i := range items {
		docs[i] = items[i].Features()
		itemIDs[i] = items[i].ID
		position[items[i].ID] = i
	}

	index := BuildTFIDF(docs)
	if ContextCancelled(ctx) {
		return ctx.Err()
	}
	matrix := ComputeSimilarity(index.Vectors)
	if ContextCancelled(ctx) {
		return ctx.Err()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = index
	c.matrix = matrix
	c.itemIDs = itemIDs
	c.position = position
	c.markTrained()

	c.logger.Debug().
		Int("items", len(items)).
		Int("vocabulary", len(index.Vocabulary)).
		Int("version", c.version).
		Msg("Content model trained")
	return nil
}

// Similar returns up to n other items by descending similarity to itemID,
// ties by ascending item ID. The anchor is never included.
func (c *ContentSimilarity) Similar(ctx context.Context, itemID, n int) ([]recommend.Prediction, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.trained {
		return nil, recommend.ErrNotTrained
	}
	anchor, ok := c.position[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: item %d", recommend.ErrNotFound, itemID)
	}
	if ContextCancelled(ctx) {
		return nil, ctx.Err()
	}
	if n <= 0 {
		return []recommend.Prediction{}, nil
	}

	preds := make([]recommend.Prediction, 0, len(c.itemIDs)-1)
	for pos, id := range c.itemIDs {
		if pos == anchor {
			continue
		}
		preds = append(preds, recommend.Prediction{ItemID: id, Score: c.matrix.At(anchor, pos)})
	}

	sort.Slice(preds, func(i, j int) bool {
		if preds[i].Score != preds[j].Score {
			return preds[i].Score > preds[j].Score
		}
		return preds[i].ItemID < preds[j].ItemID
	})

	if len(preds) > n {
		preds = preds[:n]
	}
	return preds, nil
}

// VocabularySize returns the number of distinct terms in the index.
func (c *ContentSimilarity) VocabularySize() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.index == nil {
		return 0
	}
	return len(c.index.Vocabulary)
}

// Matrix returns the current similarity matrix, or nil before Train.
func (c *ContentSimilarity) Matrix() *SimilarityMatrix {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.matrix
}
