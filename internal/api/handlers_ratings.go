// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/models"
)

// SubmitRating stores a rating for a movie identified by title.
func (h *Handler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RatingRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.CodeValidation, "Invalid JSON body", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	rating, err := h.engine.SubmitRating(r.Context(), req.UserID, req.Title, req.Rating)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Int("user_id", rating.UserID).
		Int("item_id", rating.ItemID).
		Float64("rating", rating.Value).
		Msg("Rating submitted")

	respondSuccess(w, http.StatusCreated, rating, start)
}
