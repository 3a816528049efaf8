// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

/*
Package metrics exposes Prometheus instrumentation for CineRec.

Metrics are registered on the default registry through promauto and served
at /metrics:

	curl http://localhost:8080/metrics

# Available Metrics

Recommendations:
  - cinerec_recommendations_total{strategy,outcome}
  - cinerec_recommendation_duration_seconds{strategy}
  - cinerec_model_rebuilds_total{model,status}
  - cinerec_model_rebuild_duration_seconds{model}
  - cinerec_catalog_items

Ratings:
  - cinerec_ratings_submitted_total{status}
  - cinerec_rating_events_total{direction,status}

HTTP:
  - cinerec_api_requests_total{method,endpoint,status}
  - cinerec_api_request_duration_seconds{method,endpoint}
  - cinerec_api_active_requests
*/
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for RecordRecommendation.
const (
	OutcomeOK           = "ok"
	OutcomeEmpty        = "empty"
	OutcomeNotFound     = "not_found"
	OutcomeUserNotFound = "user_not_found"
	OutcomeError        = "error"
)

var (
	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinerec_recommendations_total",
			Help: "Total recommendation queries by strategy and outcome",
		},
		[]string{"strategy", "outcome"},
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinerec_recommendation_duration_seconds",
			Help:    "Duration of recommendation queries in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"strategy"},
	)

	ModelRebuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinerec_model_rebuilds_total",
			Help: "Total model rebuilds by model and status",
		},
		[]string{"model", "status"},
	)

	ModelRebuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinerec_model_rebuild_duration_seconds",
			Help:    "Duration of model rebuilds in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinerec_catalog_items",
			Help: "Number of movies in the loaded catalog",
		},
	)

	// Rating Metrics
	RatingsSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinerec_ratings_submitted_total",
			Help: "Total rating submissions by status",
		},
		[]string{"status"}, // "accepted", "not_found", "invalid", "error"
	)

	RatingEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinerec_rating_events_total",
			Help: "Rating events published and consumed",
		},
		[]string{"direction", "status"}, // direction: "publish", "consume"
	)

	RatingEventBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinerec_rating_event_breaker_state",
			Help: "Rating event publish circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinerec_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinerec_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinerec_api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)
)

// RecordRecommendation records one recommendation query.
func RecordRecommendation(strategy, outcome string, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(strategy, outcome).Inc()
	RecommendationDuration.WithLabelValues(strategy).Observe(duration.Seconds())
}

// RecordModelRebuild records a model rebuild.
func RecordModelRebuild(model string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ModelRebuildsTotal.WithLabelValues(model, status).Inc()
	ModelRebuildDuration.WithLabelValues(model).Observe(duration.Seconds())
}

// RecordRatingSubmission records a rating submission outcome.
func RecordRatingSubmission(status string) {
	RatingsSubmittedTotal.WithLabelValues(status).Inc()
}

// RecordRatingEvent records a published or consumed rating event.
func RecordRatingEvent(direction string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	RatingEventsTotal.WithLabelValues(direction, status).Inc()
}

// RecordBreakerState records the publish circuit breaker state.
func RecordBreakerState(state int) {
	RatingEventBreakerState.Set(float64(state))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
