// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

/*
Package models defines the value types shared by the moodmap engine, store and API.

All types are plain data. The engine never mutates a Place it receives; derived
values (clusters, scores, layer results) are new values that reference the input.

Key Components:

  - Place: externally supplied, read-only place record
  - Cluster, BoundingBox, ClusterStats: GeoClusterer output
  - FilterState, ScoredPlace: FilterScorer input and output
  - TimeContext, LayerResult: TimeAvailabilityEngine input and output
  - Collection: saved list of place IDs per session
  - APIResponse, APIError, Metadata: HTTP envelope

JSON Shape:

Place records arrive from a map/search backend as camelCase JSON, so the engine
types keep camelCase field names. Only the HTTP envelope uses snake_case.
*/
package models
