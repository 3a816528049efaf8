// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

/*
Package services adapts CineRec components to suture's Serve(ctx) model.

  - HTTPServerService: *http.Server with graceful shutdown
  - RefreshService: rebuilds a stale user-item matrix on a ticker
  - EventRouterService: runs the rating event consumer router

Every service returns ctx.Err() on cancellation and a non-nil error when
it should be restarted, and implements fmt.Stringer so suture logs a
readable name.
*/
package services
