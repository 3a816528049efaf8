// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package api

import (
	"context"
	"time"

	"github.com/tomtom215/cinerec/internal/recommend"
)

// Recommender is the engine surface the handlers use.
type Recommender interface {
	Items() []recommend.Item
	TopRated(n int, genre string) []recommend.Item
	Search(query string) []recommend.Item
	ContentRecommendations(ctx context.Context, title string, n int) ([]recommend.ScoredItem, error)
	CollaborativeRecommendations(ctx context.Context, userID, n int) ([]recommend.ScoredItem, error)
	Hybrid(ctx context.Context, req recommend.HybridRequest) ([]recommend.StrategyResult, error)
	SubmitRating(ctx context.Context, userID int, title string, value float64) (recommend.Rating, error)
	Stats(ctx context.Context) (recommend.Stats, error)
	Ready() bool
}

// HandlerConfig holds the result sizes used when a request omits ?n=.
type HandlerConfig struct {
	DefaultResults  int
	DefaultTopRated int
}

// DefaultHandlerConfig returns 5 recommendations and 10 top-rated movies.
func DefaultHandlerConfig() HandlerConfig {
	return HandlerConfig{
		DefaultResults:  5,
		DefaultTopRated: 10,
	}
}

// Handler serves the HTTP API.
type Handler struct {
	engine    Recommender
	config    HandlerConfig
	version   string
	startTime time.Time
}

// NewHandler creates a handler around engine. Non-positive defaults fall
// back to DefaultHandlerConfig.
func NewHandler(engine Recommender, version string, cfg HandlerConfig) *Handler {
	def := DefaultHandlerConfig()
	if cfg.DefaultResults <= 0 {
		cfg.DefaultResults = def.DefaultResults
	}
	if cfg.DefaultTopRated <= 0 {
		cfg.DefaultTopRated = def.DefaultTopRated
	}
	return &Handler{
		engine:    engine,
		config:    cfg,
		version:   version,
		startTime: time.Now(),
	}
}
