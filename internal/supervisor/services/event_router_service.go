// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package services

import (
	"context"
	"errors"
	"fmt"
)

// EventRunner runs a message router until ctx is cancelled.
// Satisfied by *events.Consumer.
type EventRunner interface {
	Run(ctx context.Context) error
}

// EventRouterService supervises the rating event consumer. A router that
// stops while the context is still live is reported as a failure so suture
// restarts it.
type EventRouterService struct {
	runner EventRunner
	name   string
}

// NewEventRouterService wraps runner.
func NewEventRouterService(runner EventRunner) *EventRouterService {
	return &EventRouterService{runner: runner, name: "rating-event-router"}
}

// Serve implements suture.Service.
func (s *EventRouterService) Serve(ctx context.Context) error {
	err := s.runner.Run(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err == nil {
		err = errors.New("router stopped unexpectedly")
	}
	return fmt.Errorf("event router: %w", err)
}

// String implements fmt.Stringer.
func (s *EventRouterService) String() string {
	return s.name
}
