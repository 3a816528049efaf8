// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide; it caches struct
// metadata and is safe for concurrent use. Field errors are reported by their
// JSON names so API clients see the same names they sent.
//
// Custom tags:
//   - notblank: string must contain a non-whitespace character
//
// Example:
//
//	type RatingRequest struct {
//	    UserID int     `json:"user_id" validate:"gt=0"`
//	    Title  string  `json:"title" validate:"required,notblank"`
//	    Rating float64 `json:"rating" validate:"gte=1,lte=5"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // apiErr.Code == "VALIDATION_ERROR"
//	}
package validation
