// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package events

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/tomtom215/cinerec/internal/logging"
)

// NewBus creates the in-process Pub/Sub shared by Publisher and Consumer.
// The caller owns it and must Close it after both are stopped.
func NewBus(cfg Config, logger watermill.LoggerAdapter) *gochannel.GoChannel {
	if logger == nil {
		logger = WatermillLogger()
	}
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: cfg.BufferSize,
	}, logger)
}

// WatermillLogger adapts the process logger for Watermill components.
func WatermillLogger() watermill.LoggerAdapter {
	return watermill.NewSlogLogger(logging.NewSlogLogger())
}
