// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package events

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/metrics"
	"github.com/tomtom215/cinerec/internal/recommend"
)

// ErrPublisherClosed is returned by PublishRating after Close.
var ErrPublisherClosed = errors.New("publisher is closed")

// Publisher implements recommend.RatingPublisher on a Watermill publisher,
// guarded by a circuit breaker.
type Publisher struct {
	publisher      message.Publisher
	topic          string
	circuitBreaker *gobreaker.CircuitBreaker[interface{}]
	logger         zerolog.Logger

	mu     sync.RWMutex
	closed bool
}

var _ recommend.RatingPublisher = (*Publisher)(nil)

// NewPublisher wraps pub. The underlying publisher is not closed by Close.
//
//nolint:gocritic // hugeParam: zerolog.Logger is designed to be passed by value
func NewPublisher(pub message.Publisher, cfg Config, logger zerolog.Logger) (*Publisher, error) {
	if pub == nil {
		return nil, errors.New("publisher is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid events config: %w", err)
	}

	logger = logger.With().Str("component", "events").Logger()
	return &Publisher{
		publisher:      pub,
		topic:          cfg.Topic,
		circuitBreaker: NewCircuitBreaker("rating-events", cfg.BreakerMaxFailures, cfg.BreakerTimeout, logger),
		logger:         logger,
	}, nil
}

// PublishRating publishes a RatingSubmitted event for r.
func (p *Publisher) PublishRating(ctx context.Context, r recommend.Rating) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	event := NewRatingSubmitted(r)
	data, err := SerializeEvent(event)
	if err != nil {
		return fmt.Errorf("serialize event: %w", err)
	}

	msg := message.NewMessage(event.EventID, data)
	msg.Metadata.Set("event_type", EventTypeRatingSubmitted)
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		msg.Metadata.Set("correlation_id", id)
	}
	if id := logging.RequestIDFromContext(ctx); id != "" {
		msg.Metadata.Set("request_id", id)
	}

	_, err = p.circuitBreaker.Execute(func() (interface{}, error) {
		return nil, p.publisher.Publish(p.topic, msg)
	})
	metrics.RecordRatingEvent("publish", err)
	if err != nil {
		return fmt.Errorf("publish rating event: %w", err)
	}

	p.logger.Debug().
		Str("event_id", event.EventID).
		Int("user_id", event.UserID).
		Int("item_id", event.ItemID).
		Msg("Rating event published")
	return nil
}

// BreakerState returns the circuit breaker state ("closed", "half-open", "open").
func (p *Publisher) BreakerState() string {
	return p.circuitBreaker.State().String()
}

// Close stops further publishing.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}
