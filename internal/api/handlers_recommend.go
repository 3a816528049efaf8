// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinerec/internal/models"
	"github.com/tomtom215/cinerec/internal/recommend"
)

// ContentRecommendations returns movies similar to ?title=.
func (h *Handler) ContentRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	title := r.URL.Query().Get("title")
	if strings.TrimSpace(title) == "" {
		respondError(w, http.StatusBadRequest, models.CodeValidation, "title is required", nil)
		return
	}
	n, err := getIntParam(r, "n", h.config.DefaultResults)
	if err != nil {
		respondError(w, http.StatusBadRequest, models.CodeValidation, err.Error(), nil)
		return
	}

	items, err := h.engine.ContentRecommendations(r.Context(), title, n)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, models.RecommendationsResponse{
		Strategy: recommend.LabelContent,
		Anchor:   title,
		Items:    items,
	}, start)
}

// UserRecommendations returns collaborative recommendations for {userID}.
func (h *Handler) UserRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil || userID <= 0 {
		respondError(w, http.StatusBadRequest, models.CodeValidation, "userID must be a positive integer", nil)
		return
	}
	n, err := getIntParam(r, "n", h.config.DefaultResults)
	if err != nil {
		respondError(w, http.StatusBadRequest, models.CodeValidation, err.Error(), nil)
		return
	}

	items, err := h.engine.CollaborativeRecommendations(r.Context(), userID, n)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, models.RecommendationsResponse{
		Strategy: recommend.LabelCollaborative,
		UserID:   userID,
		Items:    items,
	}, start)
}

// Hybrid combines the content strategy (?title=) and the collaborative
// strategy (?user_id=). Either may be omitted; unknown inputs drop their
// entry instead of failing the request.
func (h *Handler) Hybrid(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	var req recommend.HybridRequest
	if raw := strings.TrimSpace(q.Get("user_id")); raw != "" {
		userID, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, models.CodeValidation, "user_id must be an integer", nil)
			return
		}
		req.UserID = &userID
	}
	if title := q.Get("title"); strings.TrimSpace(title) != "" {
		req.Title = &title
	}
	n, err := getIntParam(r, "n", h.config.DefaultResults)
	if err != nil {
		respondError(w, http.StatusBadRequest, models.CodeValidation, err.Error(), nil)
		return
	}
	req.N = n

	results, err := h.engine.Hybrid(r.Context(), req)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	if results == nil {
		results = []recommend.StrategyResult{}
	}
	respondSuccess(w, http.StatusOK, models.HybridResponse{Results: results}, start)
}
