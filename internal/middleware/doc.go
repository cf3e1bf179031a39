// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

/*
Package middleware provides the chi middleware shared by every API route.

  - RequestID: accepts or generates X-Request-ID and X-Correlation-ID and
    stores both in the context for logging.Ctx
  - Metrics: records moodmap_api_* metrics labelled by chi route pattern
  - AccessLog: one structured log line per request
  - Compression: gzip for JSON bodies

Order matters. RequestID must run first so later middleware log with the
IDs; Metrics and AccessLog read the route pattern after the handler has
run, when chi has resolved it.

	r.Use(middleware.RequestID)
	r.Use(middleware.Metrics)
	r.Use(middleware.AccessLog)
	r.Use(middleware.Compression(5))
*/
package middleware
