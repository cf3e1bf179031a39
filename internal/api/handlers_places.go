// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/moodmap/internal/models"
	"github.com/tomtom215/moodmap/internal/store"
)

// clustersResponse is the data payload of POST /api/v1/clusters.
type clustersResponse struct {
	Zoom         float64                   `json:"zoom"`
	RadiusMeters float64                   `json:"radiusMeters"`
	Clusters     []models.ClusterWithStats `json:"clusters"`
}

// placeTags pairs a place ID with its derived tags.
type placeTags struct {
	ID   string   `json:"id"`
	Tags []string `json:"tags"`
}

// placeSliders pairs a place ID with its slider positions.
type placeSliders struct {
	ID     string             `json:"id"`
	Values map[string]float64 `json:"values"`
}

// Clusters groups places by proximity
//
// @Summary Cluster places for a map zoom level
// @Tags Places
// @Accept json
// @Produce json
// @Param request body ClustersRequest true "Places and zoom"
// @Success 200 {object} models.APIResponse{data=clustersResponse}
// @Failure 400 {object} models.APIResponse
// @Failure 413 {object} models.APIResponse
// @Router /api/v1/clusters [post]
func (h *Handler) Clusters(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req ClustersRequest
	if !h.decodeJSON(w, r, &req) || !validateRequest(w, r, &req) || !h.checkPlaces(w, r, req.Places) {
		return
	}

	zoom := h.engine.ReferenceZoom()
	if req.Zoom != nil {
		zoom = *req.Zoom
	}

	clusters := h.engine.ClustersWithStats(req.Places, zoom)
	respondSuccess(w, r, http.StatusOK, clustersResponse{
		Zoom:         zoom,
		RadiusMeters: h.engine.RadiusForZoom(zoom),
		Clusters:     clusters,
	}, len(clusters), start)
}

// FilterPlaces scores places against moods and sliders
//
// @Summary Filter and rank places
// @Description Uses the inline filters, else the session's saved filters, else no filter.
// @Tags Places
// @Accept json
// @Produce json
// @Param request body FilterRequest true "Places and filters"
// @Success 200 {object} models.APIResponse{data=[]models.ScoredPlace}
// @Failure 400 {object} models.APIResponse
// @Router /api/v1/places/filter [post]
func (h *Handler) FilterPlaces(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req FilterRequest
	if !h.decodeJSON(w, r, &req) || !validateRequest(w, r, &req) || !h.checkPlaces(w, r, req.Places) {
		return
	}

	state, ok := h.resolveFilters(w, r, req.Filters, req.SessionID)
	if !ok {
		return
	}

	scored := h.engine.FilterPlaces(req.Places, state)
	respondSuccess(w, r, http.StatusOK, scored, len(scored), start)
}

// EvaluatePlaces reports availability for a time layer
//
// @Summary Evaluate places against a time layer
// @Tags Places
// @Accept json
// @Produce json
// @Param request body EvaluateRequest true "Places, layer and optional time"
// @Success 200 {object} models.APIResponse{data=[]models.EvaluatedPlace}
// @Failure 400 {object} models.APIResponse
// @Router /api/v1/places/evaluate [post]
func (h *Handler) EvaluatePlaces(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req EvaluateRequest
	if !h.decodeJSON(w, r, &req) || !validateRequest(w, r, &req) || !h.checkPlaces(w, r, req.Places) {
		return
	}

	evaluated := h.engine.EvaluateAll(req.Places, req.Layer, h.timeContext(req.Time))
	respondSuccess(w, r, http.StatusOK, evaluated, len(evaluated), start)
}

// Discover filters, ranks and evaluates places in one call
//
// @Summary Filter, rank and evaluate places
// @Tags Places
// @Accept json
// @Produce json
// @Param request body DiscoverRequest true "Places, filters, layer and time"
// @Success 200 {object} models.APIResponse{data=[]models.DiscoveredPlace}
// @Failure 400 {object} models.APIResponse
// @Router /api/v1/places/discover [post]
func (h *Handler) Discover(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req DiscoverRequest
	if !h.decodeJSON(w, r, &req) || !validateRequest(w, r, &req) || !h.checkPlaces(w, r, req.Places) {
		return
	}

	state, ok := h.resolveFilters(w, r, req.Filters, req.SessionID)
	if !ok {
		return
	}

	layer := req.Layer
	if layer == "" {
		layer = defaultLayer
	}

	found := h.engine.Discover(req.Places, state, layer, h.timeContext(req.Time), req.OnlyAvailable)
	respondSuccess(w, r, http.StatusOK, found, len(found), start)
}

// PlaceTags returns the derived tags of each place
//
// @Summary Derive semantic tags
// @Tags Places
// @Accept json
// @Produce json
// @Param request body PlacesRequest true "Places"
// @Success 200 {object} models.APIResponse{data=[]placeTags}
// @Router /api/v1/places/tags [post]
func (h *Handler) PlaceTags(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req PlacesRequest
	if !h.decodeJSON(w, r, &req) || !h.checkPlaces(w, r, req.Places) {
		return
	}

	out := make([]placeTags, len(req.Places))
	for i, p := range req.Places {
		out[i] = placeTags{ID: p.ID, Tags: h.engine.ExtractTags(p)}
	}
	respondSuccess(w, r, http.StatusOK, out, len(out), start)
}

// PlaceSliders returns every slider position of each place
//
// @Summary Compute slider positions
// @Tags Places
// @Accept json
// @Produce json
// @Param request body PlacesRequest true "Places"
// @Success 200 {object} models.APIResponse{data=[]placeSliders}
// @Router /api/v1/places/sliders [post]
func (h *Handler) PlaceSliders(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req PlacesRequest
	if !h.decodeJSON(w, r, &req) || !h.checkPlaces(w, r, req.Places) {
		return
	}

	out := make([]placeSliders, len(req.Places))
	for i, p := range req.Places {
		out[i] = placeSliders{ID: p.ID, Values: h.engine.SliderValues(p)}
	}
	respondSuccess(w, r, http.StatusOK, out, len(out), start)
}

const defaultLayer = "now"

// timeContext returns tc, or the engine clock when tc is nil.
func (h *Handler) timeContext(tc *models.TimeContext) models.TimeContext {
	if tc != nil {
		return *tc
	}
	return h.engine.Now()
}

// resolveFilters picks inline filters, then saved session filters, then the
// empty state. Inline filters are validated here since they are a pointer.
func (h *Handler) resolveFilters(w http.ResponseWriter, r *http.Request, inline *models.FilterState, sessionID string) (models.FilterState, bool) {
	if inline != nil {
		if !validateRequest(w, r, inline) {
			return models.FilterState{}, false
		}
		return *inline, true
	}
	if sessionID == "" {
		return models.FilterState{}, true
	}

	state, err := h.loadFilterState(r.Context(), sessionID)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStoreError, "Failed to load session filters", err)
		return models.FilterState{}, false
	}
	return state, true
}

// loadFilterState treats a missing session as the empty state.
func (h *Handler) loadFilterState(ctx context.Context, sessionID string) (models.FilterState, error) {
	state, err := h.store.GetFilterState(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return models.FilterState{}, nil
	}
	return state, err
}
