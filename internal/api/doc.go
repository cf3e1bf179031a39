// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

/*
Package api provides the HTTP REST API layer for Moodmap.

Clients send the places they are showing and get back clusters, ranked
places and availability verdicts. The server keeps no place data; the only
server-side state is per-session filter state and saved collections, held
in a store.Store.

Routes:

	GET    /api/v1/health/live
	GET    /api/v1/health/ready
	GET    /metrics

	GET    /api/v1/catalog/moods
	GET    /api/v1/catalog/sliders
	GET    /api/v1/catalog/layers

	POST   /api/v1/clusters
	POST   /api/v1/places/filter
	POST   /api/v1/places/evaluate
	POST   /api/v1/places/discover
	POST   /api/v1/places/tags
	POST   /api/v1/places/sliders

	POST   /api/v1/sessions
	GET    /api/v1/sessions/{sessionID}/filters
	PUT    /api/v1/sessions/{sessionID}/filters
	DELETE /api/v1/sessions/{sessionID}/filters
	GET    /api/v1/sessions/{sessionID}/collections
	POST   /api/v1/sessions/{sessionID}/collections
	GET    /api/v1/sessions/{sessionID}/collections/{collectionID}
	DELETE /api/v1/sessions/{sessionID}/collections/{collectionID}

Every JSON response uses models.APIResponse. Errors carry one of the
ErrCode constants; validation failures carry per-field details.

Middleware order: request ID, real IP, access log, panic recovery, CORS,
Prometheus metrics, security headers; /api/v1 adds rate limiting and
compression.
*/
package api
