// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinerec/internal/models"
)

// Movies lists the full catalog in load order.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondList(w, h.engine.Items(), start)
}

// TopRated lists movies by quality score, optionally filtered by genre.
func (h *Handler) TopRated(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	n, err := getIntParam(r, "n", h.config.DefaultTopRated)
	if err != nil {
		respondError(w, http.StatusBadRequest, models.CodeValidation, err.Error(), nil)
		return
	}
	respondList(w, h.engine.TopRated(n, r.URL.Query().Get("genre")), start)
}

// Search matches q against title, genre, director and keywords.
// An empty q returns the whole catalog.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondList(w, h.engine.Search(r.URL.Query().Get("q")), start)
}
