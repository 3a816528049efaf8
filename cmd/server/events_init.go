// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package main

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/tomtom215/cinerec/internal/config"
	"github.com/tomtom215/cinerec/internal/events"
	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/recommend"
	"github.com/tomtom215/cinerec/internal/supervisor"
	"github.com/tomtom215/cinerec/internal/supervisor/services"
)

// eventComponents is the rating event pipeline. The zero value means
// events are disabled.
type eventComponents struct {
	config   events.Config
	wmLogger watermill.LoggerAdapter
	bus      *gochannel.GoChannel
	pub      *events.Publisher
}

func eventsConfig(cfg *config.EventsConfig) events.Config {
	ec := events.DefaultConfig()
	if cfg.Topic != "" {
		ec.Topic = cfg.Topic
	}
	if cfg.BufferSize > 0 {
		ec.BufferSize = cfg.BufferSize
	}
	if cfg.BreakerMaxFailures > 0 {
		ec.BreakerMaxFailures = cfg.BreakerMaxFailures
	}
	if cfg.BreakerTimeout > 0 {
		ec.BreakerTimeout = cfg.BreakerTimeout
	}
	if cfg.DedupWindow > 0 {
		ec.DedupWindow = cfg.DedupWindow
	}
	return ec
}

// initEvents creates the bus and publisher when events are enabled.
func initEvents(cfg *config.EventsConfig) (*eventComponents, error) {
	if !cfg.Enabled {
		logging.Info().Msg("Rating events disabled (EVENTS_ENABLED=false)")
		return &eventComponents{}, nil
	}

	ec := eventsConfig(cfg)
	if err := ec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid events config: %w", err)
	}

	wmLogger := events.WatermillLogger()
	bus := events.NewBus(ec, wmLogger)
	pub, err := events.NewPublisher(bus, ec, logging.WithComponent("events"))
	if err != nil {
		_ = bus.Close()
		return nil, err
	}

	logging.Info().Str("topic", ec.Topic).Msg("Rating event bus ready")
	return &eventComponents{config: ec, wmLogger: wmLogger, bus: bus, pub: pub}, nil
}

// publisher returns the engine's publisher, or a nil interface when
// events are disabled.
func (e *eventComponents) publisher() recommend.RatingPublisher {
	if e.pub == nil {
		return nil
	}
	return e.pub
}

// startConsumer adds the event router to the messaging layer.
func (e *eventComponents) startConsumer(refresher events.Refresher, tree *supervisor.SupervisorTree) error {
	if e.bus == nil {
		return nil
	}
	consumer, err := events.NewConsumer(e.bus, refresher, e.config, logging.WithComponent("events"), e.wmLogger)
	if err != nil {
		return err
	}
	tree.AddMessagingService(services.NewEventRouterService(consumer))
	return nil
}

func (e *eventComponents) close() {
	if e.pub != nil {
		_ = e.pub.Close()
	}
	if e.bus != nil {
		if err := e.bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}
}
