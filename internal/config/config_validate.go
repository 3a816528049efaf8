// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package config

import (
	"fmt"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

var validStorageBackends = map[string]bool{
	"memory": true,
	"badger": true,
}

var validDuplicatePolicies = map[string]bool{
	"mean":   true,
	"latest": true,
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateStorage(); err != nil {
		return err
	}
	return c.validateEvents()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.RateLimitDisabled {
		return nil
	}
	if c.Server.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Server.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.PeerCount < 1 {
		return fmt.Errorf("RECOMMEND_PEER_COUNT must be at least 1")
	}
	if r.RatingMin >= r.RatingMax {
		return fmt.Errorf("RECOMMEND_RATING_MIN (%g) must be below RECOMMEND_RATING_MAX (%g)", r.RatingMin, r.RatingMax)
	}
	if r.LikeThreshold < r.RatingMin || r.LikeThreshold > r.RatingMax {
		return fmt.Errorf("RECOMMEND_LIKE_THRESHOLD must lie within the rating scale")
	}
	if r.DefaultResults < 1 || r.DefaultTopRated < 1 {
		return fmt.Errorf("default result counts must be at least 1")
	}
	if r.MaxResults < r.DefaultResults || r.MaxResults < r.DefaultTopRated {
		return fmt.Errorf("RECOMMEND_MAX_RESULTS must not be below the default result counts")
	}
	if !validDuplicatePolicies[r.DuplicatePolicy] {
		return fmt.Errorf("RECOMMEND_DUPLICATE_POLICY must be one of: mean, latest")
	}
	if r.RefreshInterval < 0 {
		return fmt.Errorf("RECOMMEND_REFRESH_INTERVAL must not be negative")
	}
	return nil
}

func (c *Config) validateStorage() error {
	if !validStorageBackends[c.Storage.Backend] {
		return fmt.Errorf("STORAGE_BACKEND must be one of: memory, badger")
	}
	if c.Storage.Backend == "badger" && !c.Storage.InMemory && c.Storage.Path == "" {
		return fmt.Errorf("STORAGE_PATH is required when STORAGE_BACKEND=badger")
	}
	return nil
}

func (c *Config) validateEvents() error {
	if !c.Events.Enabled {
		return nil
	}
	if c.Events.Topic == "" {
		return fmt.Errorf("EVENTS_TOPIC is required when EVENTS_ENABLED=true")
	}
	if c.Events.BufferSize < 0 {
		return fmt.Errorf("EVENTS_BUFFER_SIZE must not be negative")
	}
	return nil
}
