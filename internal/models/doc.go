// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package models holds the JSON request and response shapes of the HTTP API.
//
// Every endpoint answers with an APIResponse envelope:
//
//	{
//	  "status": "success",
//	  "data": [...],
//	  "metadata": {"timestamp": "2026-01-01T12:00:00Z", "query_time_ms": 3}
//	}
//
// Errors carry a machine readable code:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "metadata": {"timestamp": "2026-01-01T12:00:00Z"},
//	  "error": {"code": "NOT_FOUND", "message": "Movie not found"}
//	}
package models
