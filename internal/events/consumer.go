// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package events

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinerec/internal/cache"
	"github.com/tomtom215/cinerec/internal/metrics"
)

// Refresher rebuilds derived state after new ratings.
// Satisfied by *recommend.Engine.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Consumer handles RatingSubmitted events with a Watermill router.
type Consumer struct {
	subscriber message.Subscriber
	refresher  Refresher
	config     Config
	logger     zerolog.Logger
	wmLogger   watermill.LoggerAdapter
	seen       *cache.LRU[string, struct{}]

	consumed   atomic.Uint64
	rejected   atomic.Uint64
	duplicates atomic.Uint64
}

// NewConsumer creates a consumer. refresher may be nil.
//
//nolint:gocritic // hugeParam: zerolog.Logger is designed to be passed by value
func NewConsumer(sub message.Subscriber, refresher Refresher, cfg Config, logger zerolog.Logger, wmLogger watermill.LoggerAdapter) (*Consumer, error) {
	if sub == nil {
		return nil, errors.New("subscriber is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid events config: %w", err)
	}
	if wmLogger == nil {
		wmLogger = WatermillLogger()
	}
	return &Consumer{
		subscriber: sub,
		refresher:  refresher,
		config:     cfg,
		logger:     logger.With().Str("component", "events").Logger(),
		wmLogger:   wmLogger,
		seen:       cache.NewLRU[string, struct{}](cfg.DedupCapacity, cfg.DedupWindow),
	}, nil
}

// Run builds a router and blocks until ctx is cancelled. Each call creates
// a new router, so a supervisor may restart it.
func (c *Consumer) Run(ctx context.Context) error {
	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: c.config.CloseTimeout}, c.wmLogger)
	if err != nil {
		return fmt.Errorf("create watermill router: %w", err)
	}
	router.AddMiddleware(middleware.Recoverer)
	router.AddConsumerHandler("rating-events", c.config.Topic, c.subscriber, c.Handle)

	c.logger.Info().Str("topic", c.config.Topic).Msg("Rating event consumer starting")
	return router.Run(ctx)
}

// Handle processes one message. Malformed and redelivered events are
// acknowledged and dropped; a failed refresh is logged since the next query
// retries it.
func (c *Consumer) Handle(msg *message.Message) error {
	event, err := DeserializeEvent(msg.Payload)
	metrics.RecordRatingEvent("consume", err)
	if err != nil {
		c.rejected.Add(1)
		c.logger.Warn().Err(err).Str("message_id", msg.UUID).Msg("Dropping malformed rating event")
		return nil
	}
	if c.seen.IsDuplicate(event.EventID) {
		c.duplicates.Add(1)
		c.logger.Debug().Str("event_id", event.EventID).Msg("Skipping redelivered rating event")
		return nil
	}
	c.consumed.Add(1)

	log := c.logger.With().
		Str("event_id", event.EventID).
		Str("correlation_id", msg.Metadata.Get("correlation_id")).
		Logger()

	if c.refresher != nil {
		if err := c.refresher.Refresh(msg.Context()); err != nil {
			log.Warn().Err(err).Msg("Refresh after rating event failed")
			return nil
		}
	}

	log.Debug().
		Int("user_id", event.UserID).
		Int("item_id", event.ItemID).
		Float64("rating", event.Rating).
		Msg("Rating event processed")
	return nil
}

// Consumed returns the number of events handled successfully.
func (c *Consumer) Consumed() uint64 {
	return c.consumed.Load()
}

// Rejected returns the number of malformed events dropped.
func (c *Consumer) Rejected() uint64 {
	return c.rejected.Load()
}

// Duplicates returns the number of redelivered events skipped.
func (c *Consumer) Duplicates() uint64 {
	return c.duplicates.Load()
}
