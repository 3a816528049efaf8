// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

/*
Package api exposes the recommendation engine over HTTP using the Chi router.

# Routes

	GET  /api/v1/health/live                     liveness
	GET  /api/v1/health/ready                    content model built
	GET  /api/v1/movies                          full catalog
	GET  /api/v1/movies/top?n=&genre=            top rated
	GET  /api/v1/movies/search?q=                substring search
	GET  /api/v1/recommendations/content?title=&n=
	GET  /api/v1/recommendations/users/{userID}?n=
	GET  /api/v1/recommendations/hybrid?user_id=&title=&n=
	POST /api/v1/ratings                         {"user_id","title","rating"}
	GET  /api/v1/stats
	GET  /metrics                                Prometheus exposition

# Middleware

Applied globally in order: request ID with logging context, real IP, panic
recovery, CORS. API routes add rate limiting (go-chi/httprate) and
Prometheus request metrics.

# Errors

Engine errors map to status codes:

	recommend.ErrNotFound       404 NOT_FOUND
	recommend.ErrUserNotFound   404 USER_NOT_FOUND
	recommend.ErrInvalidRating  400 INVALID_RATING
	validation failures         400 VALIDATION_ERROR
	anything else               500 INTERNAL_ERROR

An empty recommendation list is a 200 with an empty array.
*/
package api
