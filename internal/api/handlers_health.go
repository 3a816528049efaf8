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

// HealthLive reports that the process is serving requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, http.StatusOK, models.HealthResponse{
		Status:  "alive",
		Ready:   h.engine.Ready(),
		Version: h.version,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
	}, start)
}

// HealthReady returns 503 until the content model has been built.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.engine.Ready() {
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status:   models.StatusError,
			Data:     models.HealthResponse{Status: "not_ready"},
			Metadata: models.Metadata{Timestamp: time.Now().UTC()},
			Error:    &models.APIError{Code: "NOT_READY", Message: "Content model not built"},
		})
		return
	}
	respondSuccess(w, http.StatusOK, models.HealthResponse{Status: "ready", Ready: true, Version: h.version}, start)
}

// Stats returns engine counters and model versions.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	stats, err := h.engine.Stats(r.Context())
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, stats, start)
}
