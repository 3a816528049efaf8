// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package main

import (
	"context"
	"fmt"

	"github.com/tomtom215/cinerec/internal/catalog"
	"github.com/tomtom215/cinerec/internal/config"
	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/recommend"
	"github.com/tomtom215/cinerec/internal/recommend/algorithms"
	"github.com/tomtom215/cinerec/internal/recommend/storage"
)

// initStore opens the configured rating store.
func initStore(cfg *config.StorageConfig) (recommend.RatingStore, error) {
	switch cfg.Backend {
	case "", "memory":
		logging.Info().Msg("Using in-memory rating store")
		return storage.NewMemoryStore(), nil
	case "badger":
		store, err := storage.OpenBadger(storage.BadgerConfig{
			Path:     cfg.Path,
			InMemory: cfg.InMemory,
		})
		if err != nil {
			return nil, fmt.Errorf("open badger rating store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// loadDataset reads the catalog file, or falls back to the sample catalog.
func loadDataset(cfg *config.CatalogConfig) (*catalog.Dataset, error) {
	if cfg.Path == "" {
		ds := catalog.Sample()
		logging.Info().Int("items", len(ds.Items)).Msg("Using built-in sample catalog")
		return ds, nil
	}

	ds, err := catalog.LoadFile(cfg.Path)
	if err != nil {
		return nil, err
	}
	logging.Info().
		Str("path", cfg.Path).
		Int("items", len(ds.Items)).
		Int("ratings", len(ds.Ratings)).
		Msg("Catalog loaded")
	return ds, nil
}

// seedRatings loads the dataset's ratings into an empty store, so a
// persistent store is seeded once. Every rating must fit the configured
// scale, the same bound SubmitRating enforces.
func seedRatings(ctx context.Context, store recommend.RatingStore, ds *catalog.Dataset, enabled bool, rc *config.RecommendConfig) error {
	if !enabled || len(ds.Ratings) == 0 {
		return nil
	}
	if err := ds.ValidateRatings(rc.RatingMin, rc.RatingMax); err != nil {
		return fmt.Errorf("seed ratings: %w", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("count ratings: %w", err)
	}
	if count > 0 {
		logging.Info().Int("ratings", count).Msg("Rating store not empty, skipping seed")
		return nil
	}

	for _, r := range ds.Ratings {
		if err := store.Append(ctx, r); err != nil {
			return fmt.Errorf("seed rating: %w", err)
		}
	}
	logging.Info().Int("ratings", len(ds.Ratings)).Msg("Seed ratings loaded")
	return nil
}

// buildEngineConfig maps the recommend section to the engine config.
func buildEngineConfig(cfg *config.RecommendConfig) *recommend.Config {
	return &recommend.Config{
		RatingMin:       cfg.RatingMin,
		RatingMax:       cfg.RatingMax,
		DefaultResults:  cfg.DefaultResults,
		DefaultTopRated: cfg.DefaultTopRated,
		MaxResults:      cfg.MaxResults,
	}
}

// initEngine builds both models and the engine. publisher may be nil.
func initEngine(ctx context.Context, cfg *config.Config, items []recommend.Item, store recommend.RatingStore, publisher recommend.RatingPublisher) (*recommend.Engine, error) {
	policy, err := algorithms.ParseDuplicatePolicy(cfg.Recommend.DuplicatePolicy)
	if err != nil {
		return nil, err
	}

	logger := logging.WithComponent("recommend")
	content := algorithms.NewContentSimilarity(logger)
	collaborative := algorithms.NewUserCF(algorithms.UserCFConfig{
		PeerCount:       cfg.Recommend.PeerCount,
		LikeThreshold:   cfg.Recommend.LikeThreshold,
		DuplicatePolicy: policy,
	}, logger)

	engine, err := recommend.NewEngine(ctx, buildEngineConfig(&cfg.Recommend), items, recommend.Dependencies{
		Store:         store,
		Content:       content,
		Collaborative: collaborative,
		Publisher:     publisher,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	logger.Info().
		Int("peer_count", cfg.Recommend.PeerCount).
		Float64("like_threshold", cfg.Recommend.LikeThreshold).
		Str("duplicate_policy", string(policy)).
		Msg("Recommendation engine ready")
	return engine, nil
}
