// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package config loads CineRec configuration with Koanf v2.
//
// Sources are layered with increasing priority:
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/cinerec/config.yaml)
//  3. Explicitly mapped environment variables (see envTransformFunc)
//
// Example:
//
//	cfg, err := config.LoadWithKoanf()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Recommend RecommendConfig `koanf:"recommend"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Storage   StorageConfig   `koanf:"storage"`
	Events    EventsConfig    `koanf:"events"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes file:line in every entry.
	Caller bool `koanf:"caller"`
}

// RecommendConfig tunes the recommendation engine.
type RecommendConfig struct {
	// PeerCount is the number of nearest peer users consulted for
	// collaborative recommendations.
	// Default: 3
	PeerCount int `koanf:"peer_count"`

	// LikeThreshold is the minimum peer rating for an item to become a
	// collaborative candidate.
	// Default: 4
	LikeThreshold float64 `koanf:"like_threshold"`

	// RatingMin and RatingMax bound accepted rating values (inclusive).
	// Default: 1 and 5
	RatingMin float64 `koanf:"rating_min"`
	RatingMax float64 `koanf:"rating_max"`

	// DefaultResults is used when a query does not specify n.
	// Default: 5
	DefaultResults int `koanf:"default_results"`

	// DefaultTopRated is the default size of the top-rated listing.
	// Default: 10
	DefaultTopRated int `koanf:"default_top_rated"`

	// MaxResults caps n on every query.
	// Default: 100
	MaxResults int `koanf:"max_results"`

	// DuplicatePolicy resolves repeated (user, item) ratings: mean or latest.
	// Default: mean
	DuplicatePolicy string `koanf:"duplicate_policy"`

	// RefreshInterval is how often the background service rebuilds a stale
	// user-item matrix. Zero disables the periodic refresh; queries still
	// rebuild lazily.
	// Default: 1m
	RefreshInterval time.Duration `koanf:"refresh_interval"`
}

// CatalogConfig selects where the movie catalog comes from.
type CatalogConfig struct {
	// Path is a JSON catalog file. Empty uses the built-in sample catalog.
	Path string `koanf:"path"`

	// SeedRatings loads the ratings bundled with the catalog source into an
	// empty rating store on startup.
	// Default: true
	SeedRatings bool `koanf:"seed_ratings"`
}

// StorageConfig selects the rating store backend.
type StorageConfig struct {
	// Backend is memory or badger.
	// Default: memory
	Backend string `koanf:"backend"`

	// Path is the Badger data directory.
	Path string `koanf:"path"`

	// InMemory runs Badger without touching disk (tests, demos).
	InMemory bool `koanf:"in_memory"`
}

// EventsConfig controls publication of rating events.
type EventsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Topic   string `koanf:"topic"`

	// BufferSize is the gochannel output buffer per subscriber.
	BufferSize int64 `koanf:"buffer_size"`

	// BreakerMaxFailures opens the publish circuit breaker after this many
	// consecutive failures.
	BreakerMaxFailures uint32        `koanf:"breaker_max_failures"`
	BreakerTimeout     time.Duration `koanf:"breaker_timeout"`

	// DedupWindow is how long a consumed event ID is remembered.
	DedupWindow time.Duration `koanf:"dedup_window"`
}
