// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order; the first existing file wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cinerec/config.yaml",
	"/etc/cinerec/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              8080,
			Host:              "0.0.0.0",
			Timeout:           30 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Recommend: RecommendConfig{
			PeerCount:       3,
			LikeThreshold:   4,
			RatingMin:       1,
			RatingMax:       5,
			DefaultResults:  5,
			DefaultTopRated: 10,
			MaxResults:      100,
			DuplicatePolicy: "mean",
			RefreshInterval: time.Minute,
		},
		Catalog: CatalogConfig{
			Path:        "",
			SeedRatings: true,
		},
		Storage: StorageConfig{
			Backend: "memory",
			Path:    "/data/ratings",
		},
		Events: EventsConfig{
			Enabled:            true,
			Topic:              "ratings.submitted",
			BufferSize:         64,
			BreakerMaxFailures: 5,
			BreakerTimeout:     30 * time.Second,
			DedupWindow:        10 * time.Minute,
		},
	}
}

// LoadWithKoanf loads configuration from defaults, an optional YAML file and
// the environment, in that order of increasing priority, then validates it.
func LoadWithKoanf() (*Config, error) {
	return load(findConfigFile())
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are split on commas when they arrive as a single string.
var sliceConfigPaths = []string{
	"server.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envTransformFunc maps known environment variables to config paths.
// Unknown variables map to "" and are ignored.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - RECOMMEND_PEER_COUNT -> recommend.peer_count
//   - STORAGE_BACKEND -> storage.backend
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		"http_port":             "server.port",
		"http_host":             "server.host",
		"http_timeout":          "server.timeout",
		"http_shutdown_timeout": "server.shutdown_timeout",
		"rate_limit_requests":   "server.rate_limit_reqs",
		"rate_limit_window":     "server.rate_limit_window",
		"disable_rate_limit":    "server.rate_limit_disabled",
		"cors_origins":          "server.cors_origins",

		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",

		"recommend_peer_count":        "recommend.peer_count",
		"recommend_like_threshold":    "recommend.like_threshold",
		"recommend_rating_min":        "recommend.rating_min",
		"recommend_rating_max":        "recommend.rating_max",
		"recommend_default_results":   "recommend.default_results",
		"recommend_default_top_rated": "recommend.default_top_rated",
		"recommend_max_results":       "recommend.max_results",
		"recommend_duplicate_policy":  "recommend.duplicate_policy",
		"recommend_refresh_interval":  "recommend.refresh_interval",

		"catalog_path":         "catalog.path",
		"catalog_seed_ratings": "catalog.seed_ratings",

		"storage_backend":   "storage.backend",
		"storage_path":      "storage.path",
		"storage_in_memory": "storage.in_memory",

		"events_enabled":              "events.enabled",
		"events_topic":                "events.topic",
		"events_buffer_size":          "events.buffer_size",
		"events_breaker_max_failures": "events.breaker_max_failures",
		"events_breaker_timeout":      "events.breaker_timeout",
		"events_dedup_window":         "events.dedup_window",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return ""
}
