// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package recommend

import "fmt"

// Config holds engine level settings. Model tuning (peer count, like
// threshold) belongs to the models themselves.
type Config struct {
	// RatingMin and RatingMax bound accepted rating values, inclusive.
	RatingMin float64 `json:"rating_min"`
	RatingMax float64 `json:"rating_max"`

	// DefaultResults is the n API requests use when they omit it.
	DefaultResults int `json:"default_results"`

	// DefaultTopRated is the n top-rated requests use when they omit it.
	DefaultTopRated int `json:"default_top_rated"`

	// MaxResults caps n on every query.
	MaxResults int `json:"max_results"`
}

// DefaultConfig returns the 1-5 scale with the usual result sizes.
func DefaultConfig() *Config {
	return &Config{
		RatingMin:       1,
		RatingMax:       5,
		DefaultResults:  5,
		DefaultTopRated: 10,
		MaxResults:      100,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.RatingMin >= c.RatingMax {
		return fmt.Errorf("rating_min (%g) must be below rating_max (%g)", c.RatingMin, c.RatingMax)
	}
	if c.DefaultResults < 1 {
		return fmt.Errorf("default_results must be at least 1, got %d", c.DefaultResults)
	}
	if c.DefaultTopRated < 1 {
		return fmt.Errorf("default_top_rated must be at least 1, got %d", c.DefaultTopRated)
	}
	if c.MaxResults < c.DefaultResults || c.MaxResults < c.DefaultTopRated {
		return fmt.Errorf("max_results (%d) must not be below the defaults", c.MaxResults)
	}
	return nil
}

// limit caps a requested result count at MaxResults. n <= 0 yields 0.
func (c *Config) limit(n int) int {
	if n <= 0 {
		return 0
	}
	if n > c.MaxResults {
		n = c.MaxResults
	}
	return n
}
