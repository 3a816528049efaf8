// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package events

import (
	"errors"
	"fmt"
	"time"
)

// DefaultTopic carries RatingSubmitted events.
const DefaultTopic = "ratings.submitted"

// Config configures the rating event bus.
type Config struct {
	// Topic is the Pub/Sub topic for RatingSubmitted events.
	Topic string

	// BufferSize is the per-subscriber output buffer of the gochannel bus.
	BufferSize int64

	// BreakerMaxFailures is the number of consecutive publish failures that
	// open the circuit breaker.
	BreakerMaxFailures uint32

	// BreakerTimeout is how long the breaker stays open before a trial publish.
	BreakerTimeout time.Duration

	// CloseTimeout bounds how long the consumer router waits for handlers
	// on shutdown.
	CloseTimeout time.Duration

	// DedupCapacity and DedupWindow bound the set of recently seen event
	// IDs used to drop redelivered events.
	DedupCapacity int
	DedupWindow   time.Duration
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		Topic:              DefaultTopic,
		BufferSize:         64,
		BreakerMaxFailures: 5,
		BreakerTimeout:     30 * time.Second,
		CloseTimeout:       10 * time.Second,
		DedupCapacity:      4096,
		DedupWindow:        10 * time.Minute,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Topic == "" {
		return errors.New("topic is required")
	}
	if c.BufferSize < 0 {
		return fmt.Errorf("buffer size must not be negative, got %d", c.BufferSize)
	}
	if c.BreakerMaxFailures == 0 {
		return errors.New("breaker max failures must be at least 1")
	}
	if c.BreakerTimeout <= 0 {
		return fmt.Errorf("breaker timeout must be positive, got %v", c.BreakerTimeout)
	}
	if c.DedupCapacity < 0 {
		return fmt.Errorf("dedup capacity must not be negative, got %d", c.DedupCapacity)
	}
	return nil
}
