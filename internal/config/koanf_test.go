// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Recommend.PeerCount != 3 {
		t.Errorf("Recommend.PeerCount = %d, want 3", cfg.Recommend.PeerCount)
	}
	if cfg.Recommend.LikeThreshold != 4 {
		t.Errorf("Recommend.LikeThreshold = %v, want 4", cfg.Recommend.LikeThreshold)
	}
	if cfg.Recommend.RatingMin != 1 || cfg.Recommend.RatingMax != 5 {
		t.Errorf("rating scale = [%v,%v], want [1,5]", cfg.Recommend.RatingMin, cfg.Recommend.RatingMax)
	}
	if cfg.Recommend.DefaultResults != 5 {
		t.Errorf("Recommend.DefaultResults = %d, want 5", cfg.Recommend.DefaultResults)
	}
	if cfg.Recommend.DefaultTopRated != 10 {
		t.Errorf("Recommend.DefaultTopRated = %d, want 10", cfg.Recommend.DefaultTopRated)
	}
	if cfg.Storage.Backend != "memory" {
		t.Errorf("Storage.Backend = %q, want memory", cfg.Storage.Backend)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() = %v, want nil", err)
	}
}

func TestLoad_YAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlContent := `
server:
  port: 9090
recommend:
  peer_count: 5
  duplicate_policy: latest
storage:
  backend: badger
  path: /tmp/ratings
`
	if err := os.WriteFile(path, []byte(yamlContent), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	t.Setenv("HTTP_PORT", "9191")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RECOMMEND_REFRESH_INTERVAL", "5m")

	cfg, err := load(path)
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if cfg.Server.Port != 9191 {
		t.Errorf("Server.Port = %d, want 9191 (env beats file)", cfg.Server.Port)
	}
	if cfg.Recommend.PeerCount != 5 {
		t.Errorf("Recommend.PeerCount = %d, want 5", cfg.Recommend.PeerCount)
	}
	if cfg.Recommend.DuplicatePolicy != "latest" {
		t.Errorf("Recommend.DuplicatePolicy = %q, want latest", cfg.Recommend.DuplicatePolicy)
	}
	if cfg.Recommend.RefreshInterval != 5*time.Minute {
		t.Errorf("Recommend.RefreshInterval = %v, want 5m", cfg.Recommend.RefreshInterval)
	}
	if cfg.Storage.Backend != "badger" || cfg.Storage.Path != "/tmp/ratings" {
		t.Errorf("Storage = %+v, want badger at /tmp/ratings", cfg.Storage)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Server.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.Server.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Server.CORSOrigins[i] != want[i] {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Server.CORSOrigins[i], want[i])
		}
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "postgres")

	_, err := load("")
	if err == nil {
		t.Fatal("load() error = nil, want validation error")
	}
	if !strings.Contains(err.Error(), "STORAGE_BACKEND") {
		t.Errorf("load() error = %v, want STORAGE_BACKEND mention", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"LOG_LEVEL", "logging.level"},
		{"RECOMMEND_LIKE_THRESHOLD", "recommend.like_threshold"},
		{"CATALOG_PATH", "catalog.path"},
		{"EVENTS_TOPIC", "events.topic"},
		{"HOME", ""},
		{"PATH", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"zero peers", func(c *Config) { c.Recommend.PeerCount = 0 }, "PEER_COUNT"},
		{"inverted scale", func(c *Config) { c.Recommend.RatingMin = 5; c.Recommend.RatingMax = 1 }, "RATING_MIN"},
		{"threshold outside scale", func(c *Config) { c.Recommend.LikeThreshold = 9 }, "LIKE_THRESHOLD"},
		{"unknown duplicate policy", func(c *Config) { c.Recommend.DuplicatePolicy = "first" }, "DUPLICATE_POLICY"},
		{"badger without path", func(c *Config) { c.Storage.Backend = "badger"; c.Storage.Path = "" }, "STORAGE_PATH"},
		{"badger in memory", func(c *Config) { c.Storage.Backend = "badger"; c.Storage.Path = ""; c.Storage.InMemory = true }, ""},
		{"events without topic", func(c *Config) { c.Events.Topic = "" }, "EVENTS_TOPIC"},
		{"rate limit disabled skips checks", func(c *Config) { c.Server.RateLimitDisabled = true; c.Server.RateLimitReqs = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
