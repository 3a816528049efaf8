// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/cinerec/internal/config"
	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/models"
)

func TestChiMiddlewareConfigFromServer(t *testing.T) {
	cfg := ChiMiddlewareConfigFromServer(&config.ServerConfig{
		RateLimitReqs:     5,
		RateLimitWindow:   time.Second,
		RateLimitDisabled: true,
		CORSOrigins:       []string{"https://example.com"},
	})

	if cfg.RateLimitRequests != 5 || cfg.RateLimitWindow != time.Second || !cfg.RateLimitDisabled {
		t.Errorf("rate limit = %d/%v disabled=%v, want 5/1s disabled=true",
			cfg.RateLimitRequests, cfg.RateLimitWindow, cfg.RateLimitDisabled)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "https://example.com" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}

	def := ChiMiddlewareConfigFromServer(nil)
	if def.RateLimitRequests != 100 || def.RateLimitWindow != time.Minute {
		t.Errorf("defaults = %d/%v, want 100/1m", def.RateLimitRequests, def.RateLimitWindow)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	h := NewRouter(NewHandler(&stubRecommender{ready: true}, "test", DefaultHandlerConfig()), cfg).SetupChi()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec, env := do(t, h, http.MethodGet, "/api/v1/movies", "")
		codes = append(codes, rec.Code)
		if rec.Code == http.StatusTooManyRequests && (env.Error == nil || env.Error.Code != models.CodeRateLimited) {
			t.Errorf("429 error = %+v, want RATE_LIMIT_EXCEEDED", env.Error)
		}
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("status codes = %v, want [200 200 429]", codes)
	}

	// health endpoints are not rate limited
	for i := 0; i < 3; i++ {
		if rec, _ := do(t, h, http.MethodGet, "/api/v1/health/live", ""); rec.Code != http.StatusOK {
			t.Fatalf("health status = %d, want 200", rec.Code)
		}
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	m := NewChiMiddleware(&ChiMiddlewareConfig{RateLimitDisabled: true})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	h := m.RateLimit()(next)

	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("request %d status = %d, want 204", i, rec.Code)
		}
	}
}

func TestCORS(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://app.example.com"}
	cfg.RateLimitDisabled = true
	h := NewRouter(NewHandler(&stubRecommender{ready: true}, "test", DefaultHandlerConfig()), cfg).SetupChi()

	tests := []struct {
		origin string
		want   string
	}{
		{"https://app.example.com", "https://app.example.com"},
		{"https://evil.example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/v1/movies", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRequestIDWithLogging(t *testing.T) {
	var seenRequestID, seenCorrelationID, seenChiID string
	h := RequestIDWithLogging()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenRequestID = logging.RequestIDFromContext(r.Context())
		seenCorrelationID = logging.CorrelationIDFromContext(r.Context())
		seenChiID = chimiddleware.GetReqID(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if seenRequestID == "" || seenCorrelationID == "" {
			t.Fatalf("request id = %q, correlation id = %q, want both set", seenRequestID, seenCorrelationID)
		}
		if seenChiID != seenRequestID {
			t.Errorf("chi request id = %q, want %q", seenChiID, seenRequestID)
		}
		if got := rec.Header().Get(chimiddleware.RequestIDHeader); got != seenRequestID {
			t.Errorf("response header = %q, want %q", got, seenRequestID)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(chimiddleware.RequestIDHeader, "client-id-1")
		h.ServeHTTP(httptest.NewRecorder(), req)

		if seenRequestID != "client-id-1" {
			t.Errorf("request id = %q, want client-id-1", seenRequestID)
		}
	})
}

func TestRouter_MetricsAndFallbacks(t *testing.T) {
	h := newTestServer(t, newTestEngine(t))

	// generate at least one labelled API request
	do(t, h, http.MethodGet, "/api/v1/movies", "")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "cinerec_") {
		t.Error("GET /metrics does not expose cinerec_ metrics")
	}

	notFound, env := do(t, h, http.MethodGet, "/api/v1/nope", "")
	if notFound.Code != http.StatusNotFound || env.Error == nil || env.Error.Code != models.CodeNotFound {
		t.Errorf("unknown route = %d %+v, want 404 NOT_FOUND", notFound.Code, env.Error)
	}

	wrongMethod, env := do(t, h, http.MethodDelete, "/api/v1/ratings", "")
	if wrongMethod.Code != http.StatusMethodNotAllowed || env.Error == nil {
		t.Errorf("DELETE /ratings = %d %+v, want 405", wrongMethod.Code, env.Error)
	}
}
