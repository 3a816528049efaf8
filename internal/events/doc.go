// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package events publishes and consumes rating events over an in-process
// Watermill Pub/Sub.
//
// # Flow
//
//	Engine.SubmitRating
//	    -> Publisher.PublishRating   (circuit breaker, JSON, uuid message ID)
//	    -> gochannel topic "ratings.submitted"
//	    -> Consumer router handler   (decode, metrics, engine refresh)
//
// The bus is a gochannel.GoChannel: messages are delivered to subscribers
// that exist at publish time and are not persisted. Ratings themselves are
// durable in the rating store, so a lost event only delays the next
// collaborative rebuild until the next query or scheduled refresh.
//
// # Circuit Breaker
//
// Publishing runs through a sony/gobreaker circuit breaker. After
// BreakerMaxFailures consecutive failures the breaker opens and publishes
// fail fast with gobreaker.ErrOpenState until BreakerTimeout elapses.
// The breaker state is exported as cinerec_rating_event_breaker_state.
//
// # Logging
//
// Watermill logs through the process zerolog logger via the slog adapter in
// internal/logging.
package events
