// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

package api

import "github.com/tomtom215/moodmap/internal/models"

// Request bodies are checked with go-playground/validator before any engine
// call. Place fields themselves are only range-checked in strict mode; see
// validation.ValidatePlaces.

// ClustersRequest is the body of POST /api/v1/clusters.
//
// Fields:
//   - Places: places to group
//   - Zoom: map zoom level (0-24); the reference zoom when omitted
type ClustersRequest struct {
	Places []models.Place `json:"places"`
	Zoom   *float64       `json:"zoom" validate:"omitempty,gte=0,lte=24"`
}

// FilterRequest is the body of POST /api/v1/places/filter.
//
// Filters wins over SessionID. With neither, every place passes with score
// 100.
type FilterRequest struct {
	Places    []models.Place      `json:"places"`
	Filters   *models.FilterState `json:"filters"`
	SessionID string              `json:"sessionId" validate:"omitempty,uuid"`
}

// EvaluateRequest is the body of POST /api/v1/places/evaluate.
//
// Time defaults to the server clock in the configured zone.
type EvaluateRequest struct {
	Places []models.Place      `json:"places"`
	Layer  string              `json:"layer" validate:"required,max=64"`
	Time   *models.TimeContext `json:"time"`
}

// DiscoverRequest is the body of POST /api/v1/places/discover. It combines
// FilterRequest and EvaluateRequest; Layer defaults to "now".
type DiscoverRequest struct {
	Places        []models.Place      `json:"places"`
	Filters       *models.FilterState `json:"filters"`
	SessionID     string              `json:"sessionId" validate:"omitempty,uuid"`
	Layer         string              `json:"layer" validate:"omitempty,max=64"`
	Time          *models.TimeContext `json:"time"`
	OnlyAvailable bool                `json:"onlyAvailable"`
}

// PlacesRequest is the body of the per-place inspection endpoints.
type PlacesRequest struct {
	Places []models.Place `json:"places"`
}

// CreateSessionRequest is the optional body of POST /api/v1/sessions.
type CreateSessionRequest struct {
	Filters *models.FilterState `json:"filters"`
}

// CreateCollectionRequest is the body of POST .../collections.
type CreateCollectionRequest struct {
	Name     string   `json:"name" validate:"required,max=100"`
	PlaceIDs []string `json:"placeIds" validate:"max=1000,dive,required,max=256"`
}

// sessionPath validates the {sessionID} URL parameter.
type sessionPath struct {
	SessionID string `json:"sessionId" validate:"required,uuid"`
}

// collectionPath validates the collection URL parameters.
type collectionPath struct {
	SessionID    string `json:"sessionId" validate:"required,uuid"`
	CollectionID string `json:"collectionId" validate:"required,uuid"`
}
