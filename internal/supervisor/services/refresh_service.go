// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// ModelRefresher is implemented by recommend.Engine.
type ModelRefresher interface {
	// Stale reports whether ratings arrived since the last rebuild.
	Stale() bool

	// Refresh rebuilds the collaborative model if it is stale.
	Refresh(ctx context.Context) error
}

// refreshTimeout bounds a single rebuild.
const refreshTimeout = 5 * time.Minute

// RefreshService rebuilds the user-item matrix in the background so that
// queries after a burst of ratings do not pay for the rebuild.
type RefreshService struct {
	engine   ModelRefresher
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewRefreshService creates the service. A non-positive interval makes
// Serve idle until cancelled; the engine still refreshes lazily on query.
//
//nolint:gocritic // hugeParam: zerolog.Logger is designed to be passed by value
func NewRefreshService(engine ModelRefresher, interval time.Duration, logger zerolog.Logger) *RefreshService {
	return &RefreshService{
		engine:   engine,
		interval: interval,
		logger:   logger.With().Str("service", "model-refresh").Logger(),
		name:     "model-refresh",
	}
}

// Serve implements suture.Service.
func (s *RefreshService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info().Msg("Periodic model refresh disabled")
		<-ctx.Done()
		return ctx.Err()
	}

	s.logger.Info().Dur("interval", s.interval).Msg("Model refresh service started")

	// initial build so the first query is fast
	s.refresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Model refresh service stopping")
			return ctx.Err()
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *RefreshService) refresh(ctx context.Context) {
	if !s.engine.Stale() {
		return
	}

	refreshCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	start := time.Now()
	if err := s.engine.Refresh(refreshCtx); err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return
		}
		s.logger.Warn().Err(err).Msg("Scheduled model refresh failed")
		return
	}
	s.logger.Debug().Dur("duration", time.Since(start)).Msg("Scheduled model refresh complete")
}

// String implements fmt.Stringer.
func (s *RefreshService) String() string {
	return s.name
}
