// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinerec/internal/metrics"
)

// Dependencies are the collaborators an Engine is built from.
type Dependencies struct {
	Store         RatingStore
	Content       ContentModel
	Collaborative CollaborativeModel

	// Publisher is optional. Publish failures are logged, never returned,
	// because the rating is already stored.
	Publisher RatingPublisher
}

// Engine owns the catalog, the rating store and the two models, and keeps
// the models consistent with the data they are derived from.
type Engine struct {
	config *Config
	logger zerolog.Logger

	store         RatingStore
	content       ContentModel
	collaborative CollaborativeModel
	publisher     RatingPublisher

	// catalogMu guards catalog and the content model built from it.
	catalogMu sync.RWMutex
	catalog   *Catalog

	// ratingsVersion is bumped after every successful append;
	// collabVersion is the ratingsVersion the collaborative model was
	// last trained at.
	ratingsVersion atomic.Uint64
	collabVersion  atomic.Uint64
	collabTrained  atomic.Bool
	refreshMu      sync.Mutex
}

// NewEngine validates cfg and the catalog, then builds the content model.
// The collaborative model is built lazily on first use.
//
//nolint:gocritic // hugeParam: zerolog.Logger is designed to be passed by value
func NewEngine(ctx context.Context, cfg *Config, items []Item, deps Dependencies, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if deps.Store == nil || deps.Content == nil || deps.Collaborative == nil {
		return nil, errors.New("store, content and collaborative dependencies are required")
	}

	e := &Engine{
		config:        cfg,
		logger:        logger.With().Str("component", "recommend").Logger(),
		store:         deps.Store,
		content:       deps.Content,
		collaborative: deps.Collaborative,
		publisher:     deps.Publisher,
	}

	if err := e.ReplaceCatalog(ctx, items); err != nil {
		return nil, err
	}
	return e, nil
}

// ReplaceCatalog swaps in a new item set and rebuilds the content model
// wholesale. On error the previous catalog stays active.
func (e *Engine) ReplaceCatalog(ctx context.Context, items []Item) error {
	catalog, err := NewCatalog(items)
	if err != nil {
		return err
	}

	e.catalogMu.Lock()
	defer e.catalogMu.Unlock()

	start := time.Now()
	err = e.content.Train(ctx, catalog.Items())
	metrics.RecordModelRebuild(e.content.Name(), time.Since(start), err)
	if err != nil {
		return fmt.Errorf("build content model: %w", err)
	}

	e.catalog = catalog
	metrics.CatalogItems.Set(float64(catalog.Len()))

	e.logger.Info().
		Int("items", catalog.Len()).
		Dur("duration", time.Since(start)).
		Msg("Content model rebuilt")
	return nil
}

// Items returns the catalog in load order.
func (e *Engine) Items() []Item {
	e.catalogMu.RLock()
	defer e.catalogMu.RUnlock()
	return e.catalog.Items()
}

// ItemByTitle looks up a movie by exact title.
func (e *Engine) ItemByTitle(title string) (Item, error) {
	e.catalogMu.RLock()
	defer e.catalogMu.RUnlock()
	item, ok := e.catalog.ByTitle(title)
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrNotFound, title)
	}
	return item, nil
}

// ContentRecommendations returns up to n movies most similar to the movie
// titled title, excluding it. n <= 0 yields an empty result.
func (e *Engine) ContentRecommendations(ctx context.Context, title string, n int) ([]ScoredItem, error) {
	start := time.Now()
	out, err := e.contentRecommendations(ctx, title, e.config.limit(n))
	metrics.RecordRecommendation("content", outcome(out, err), time.Since(start))
	return out, err
}

func (e *Engine) contentRecommendations(ctx context.Context, title string, n int) ([]ScoredItem, error) {
	e.catalogMu.RLock()
	defer e.catalogMu.RUnlock()

	anchor, ok := e.catalog.ByTitle(title)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, title)
	}

	preds, err := e.content.Similar(ctx, anchor.ID, n)
	if err != nil {
		return nil, fmt.Errorf("content similarity for %q: %w", title, err)
	}
	return e.resolve(preds), nil
}

// CollaborativeRecommendations returns up to n movies that the user's
// nearest peers rated highly and the user has not rated. A user with no
// ratings yields ErrUserNotFound; no candidates yields an empty slice.
func (e *Engine) CollaborativeRecommendations(ctx context.Context, userID, n int) ([]ScoredItem, error) {
	start := time.Now()
	out, err := e.collaborativeRecommendations(ctx, userID, e.config.limit(n))
	metrics.RecordRecommendation("collaborative", outcome(out, err), time.Since(start))
	return out, err
}

func (e *Engine) collaborativeRecommendations(ctx context.Context, userID, n int) ([]ScoredItem, error) {
	if err := e.Refresh(ctx); err != nil {
		return nil, err
	}

	// Ratings may reference items dropped by ReplaceCatalog, so rank every
	// candidate and truncate after resolving against the catalog.
	preds, err := e.collaborative.Recommend(ctx, userID, math.MaxInt)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("collaborative recommendations for user %d: %w", userID, err)
	}

	e.catalogMu.RLock()
	defer e.catalogMu.RUnlock()
	out := e.resolve(preds)
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// Hybrid runs the content strategy when a title is given and the
// collaborative strategy when a user is given. Unknown titles and users
// omit that strategy's entry; any other error is returned. The content
// entry always precedes the collaborative one.
func (e *Engine) Hybrid(ctx context.Context, req HybridRequest) ([]StrategyResult, error) {
	results := make([]StrategyResult, 0, 2)

	if req.Title != nil {
		items, err := e.ContentRecommendations(ctx, *req.Title, req.N)
		switch {
		case err == nil:
			results = append(results, StrategyResult{Label: LabelContent, Items: items})
		case errors.Is(err, ErrNotFound):
			e.logger.Debug().Str("title", *req.Title).Msg("Hybrid: content strategy omitted")
		default:
			return nil, err
		}
	}

	if req.UserID != nil {
		items, err := e.CollaborativeRecommendations(ctx, *req.UserID, req.N)
		switch {
		case err == nil:
			results = append(results, StrategyResult{Label: LabelCollaborative, Items: items})
		case errors.Is(err, ErrUserNotFound):
			e.logger.Debug().Int("user_id", *req.UserID).Msg("Hybrid: collaborative strategy omitted")
		default:
			return nil, err
		}
	}

	return results, nil
}

// TopRated lists up to n movies by descending quality score, optionally
// restricted to genres containing genre.
func (e *Engine) TopRated(n int, genre string) []Item {
	e.catalogMu.RLock()
	defer e.catalogMu.RUnlock()
	return e.catalog.TopRated(e.config.limit(n), genre)
}

// Search matches query against title, genre, director and keywords.
func (e *Engine) Search(query string) []Item {
	e.catalogMu.RLock()
	defer e.catalogMu.RUnlock()
	return e.catalog.Search(query)
}

// SubmitRating records a rating for the movie titled title. The next
// collaborative query sees it.
func (e *Engine) SubmitRating(ctx context.Context, userID int, title string, value float64) (Rating, error) {
	item, err := e.ItemByTitle(title)
	if err != nil {
		metrics.RecordRatingSubmission("not_found")
		return Rating{}, err
	}
	if userID <= 0 {
		metrics.RecordRatingSubmission("invalid")
		return Rating{}, fmt.Errorf("%w: user id must be positive, got %d", ErrInvalidRating, userID)
	}
	if value < e.config.RatingMin || value > e.config.RatingMax {
		metrics.RecordRatingSubmission("invalid")
		return Rating{}, fmt.Errorf("%w: %g outside [%g, %g]", ErrInvalidRating, value, e.config.RatingMin, e.config.RatingMax)
	}

	r := Rating{
		UserID:    userID,
		ItemID:    item.ID,
		Value:     value,
		CreatedAt: time.Now().UTC(),
	}
	if err := e.store.Append(ctx, r); err != nil {
		metrics.RecordRatingSubmission("error")
		return Rating{}, fmt.Errorf("append rating: %w", err)
	}
	version := e.ratingsVersion.Add(1)
	metrics.RecordRatingSubmission("accepted")

	e.logger.Debug().
		Int("user_id", userID).
		Int("item_id", item.ID).
		Float64("rating", value).
		Uint64("ratings_version", version).
		Msg("Rating stored")

	if e.publisher != nil {
		if err := e.publisher.PublishRating(ctx, r); err != nil {
			e.logger.Warn().Err(err).Int("user_id", userID).Msg("Failed to publish rating event")
		}
	}
	return r, nil
}

// Refresh rebuilds the collaborative model if ratings were added since it
// was last trained. Rebuilds are serialised and read one store snapshot.
func (e *Engine) Refresh(ctx context.Context) error {
	if e.isCollaborativeFresh() {
		return nil
	}

	e.refreshMu.Lock()
	defer e.refreshMu.Unlock()

	if e.isCollaborativeFresh() {
		return nil
	}

	// Read the version before the snapshot: a concurrent append may land in
	// the snapshot without being counted, which only causes an extra rebuild.
	version := e.ratingsVersion.Load()

	start := time.Now()
	ratings, err := e.store.All(ctx)
	if err != nil {
		metrics.RecordModelRebuild(e.collaborative.Name(), time.Since(start), err)
		return fmt.Errorf("snapshot ratings: %w", err)
	}

	err = e.collaborative.Train(ctx, ratings)
	metrics.RecordModelRebuild(e.collaborative.Name(), time.Since(start), err)
	if err != nil {
		return fmt.Errorf("build collaborative model: %w", err)
	}

	e.collabVersion.Store(version)
	e.collabTrained.Store(true)

	e.logger.Info().
		Int("ratings", len(ratings)).
		Int("users", e.collaborative.UserCount()).
		Uint64("ratings_version", version).
		Dur("duration", time.Since(start)).
		Msg("User-item matrix rebuilt")
	return nil
}

// Stale reports whether the collaborative model lags behind the store.
func (e *Engine) Stale() bool {
	return !e.isCollaborativeFresh()
}

func (e *Engine) isCollaborativeFresh() bool {
	return e.collabTrained.Load() && e.collabVersion.Load() == e.ratingsVersion.Load()
}

// Stats returns a snapshot of engine state.
func (e *Engine) Stats(ctx context.Context) (Stats, error) {
	count, err := e.store.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count ratings: %w", err)
	}

	e.catalogMu.RLock()
	items := e.catalog.Len()
	vocabulary := 0
	if v, ok := e.content.(interface{ VocabularySize() int }); ok {
		vocabulary = v.VocabularySize()
	}
	e.catalogMu.RUnlock()

	return Stats{
		Items:          items,
		Vocabulary:     vocabulary,
		Ratings:        count,
		Users:          e.collaborative.UserCount(),
		RatingsVersion: e.ratingsVersion.Load(),
		Models: []ModelStats{
			modelStats(e.content),
			modelStats(e.collaborative),
		},
	}, nil
}

// Ready reports whether the content model has been built.
func (e *Engine) Ready() bool {
	return e.content.IsTrained()
}

// Close releases the rating store.
func (e *Engine) Close() error {
	return e.store.Close()
}

// resolve maps predictions to catalog items; must hold catalogMu.
func (e *Engine) resolve(preds []Prediction) []ScoredItem {
	out := make([]ScoredItem, 0, len(preds))
	for _, p := range preds {
		item, ok := e.catalog.ByID(p.ItemID)
		if !ok {
			e.logger.Debug().Int("item_id", p.ItemID).Msg("Skipping prediction for item outside the catalog")
			continue
		}
		out = append(out, ScoredItem{Item: item, Score: p.Score})
	}
	return out
}

func modelStats(m Model) ModelStats {
	return ModelStats{
		Name:          m.Name(),
		Trained:       m.IsTrained(),
		Version:       m.Version(),
		LastTrainedAt: m.LastTrainedAt(),
	}
}

func outcome(items []ScoredItem, err error) string {
	switch {
	case err == nil && len(items) == 0:
		return metrics.OutcomeEmpty
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, ErrUserNotFound):
		return metrics.OutcomeUserNotFound
	default:
		return metrics.OutcomeError
	}
}
