// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

/*
Command server runs the CineRec HTTP API.

Startup order:

 1. Configuration (koanf: defaults, config.yaml, environment)
 2. Logging (zerolog)
 3. Rating store (memory or Badger)
 4. Catalog (JSON file or the built-in sample) and seed ratings
 5. Rating event bus and publisher (if EVENTS_ENABLED)
 6. Recommendation engine (content model built eagerly)
 7. Supervisor tree: refresh service, event router, HTTP server

SIGINT and SIGTERM cancel the tree; the HTTP server drains in-flight
requests within SERVER_SHUTDOWN_TIMEOUT, then the event bus and the rating
store are closed.

Examples:

	# sample catalog, in-memory ratings
	./cinerec

	# persistent ratings and a custom catalog
	STORAGE_BACKEND=badger STORAGE_PATH=/var/lib/cinerec \
	CATALOG_PATH=/etc/cinerec/movies.json ./cinerec

	curl 'localhost:8080/api/v1/recommendations/content?title=Inception&n=3'
*/
package main
