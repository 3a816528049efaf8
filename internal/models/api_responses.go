// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package models

import (
	"time"

	"github.com/tomtom215/cinerec/internal/recommend"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error codes returned in APIError.Code.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeInvalidRating = "INVALID_RATING"
	CodeNotFound      = "NOT_FOUND"
	CodeUserNotFound  = "USER_NOT_FOUND"
	CodeRateLimited   = "RATE_LIMIT_EXCEEDED"
	CodeInternal      = "INTERNAL_ERROR"
)

// APIResponse is the envelope of every HTTP response.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response timing.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Count       *int      `json:"count,omitempty"`
}

// APIError is a structured error.
//
// Common codes:
//   - VALIDATION_ERROR: malformed parameters or body
//   - INVALID_RATING: rating outside the accepted scale
//   - NOT_FOUND: unknown movie title
//   - USER_NOT_FOUND: user has no ratings
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RatingRequest is the body of POST /api/v1/ratings.
type RatingRequest struct {
	UserID int     `json:"user_id" validate:"required,gt=0"`
	Title  string  `json:"title" validate:"required,notblank"`
	Rating float64 `json:"rating" validate:"required"`
}

// RecommendationsResponse is the payload of a single-strategy query.
type RecommendationsResponse struct {
	Strategy string                 `json:"strategy"`
	Anchor   string                 `json:"anchor,omitempty"`
	UserID   int                    `json:"user_id,omitempty"`
	Items    []recommend.ScoredItem `json:"items"`
}

// HybridResponse is the payload of a hybrid query. Results holds zero, one
// or two labeled lists, content first.
type HybridResponse struct {
	Results []recommend.StrategyResult `json:"results"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Ready   bool   `json:"ready"`
	Version string `json:"version,omitempty"`
	Uptime  string `json:"uptime,omitempty"`
}
