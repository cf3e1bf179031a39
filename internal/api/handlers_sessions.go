// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tomtom215/moodmap/internal/models"
	"github.com/tomtom215/moodmap/internal/store"
)

// sessionResponse is returned when a session is created.
type sessionResponse struct {
	SessionID string             `json:"sessionId"`
	Filters   models.FilterState `json:"filters"`
}

// CreateSession starts a session with optional initial filters
//
// @Summary Create a session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest false "Initial filters"
// @Success 201 {object} models.APIResponse{data=sessionResponse}
// @Router /api/v1/sessions [post]
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req CreateSessionRequest
	if !h.decodeOptionalJSON(w, r, &req) {
		return
	}

	resp := sessionResponse{SessionID: uuid.NewString()}
	if req.Filters != nil {
		if !validateRequest(w, r, req.Filters) {
			return
		}
		if err := h.store.SaveFilterState(r.Context(), resp.SessionID, *req.Filters); err != nil {
			respondError(w, r, http.StatusInternalServerError, ErrCodeStoreError, "Failed to save session filters", err)
			return
		}
		resp.Filters = *req.Filters
	}

	w.Header().Set("Location", "/api/v1/sessions/"+resp.SessionID+"/filters")
	respondSuccess(w, r, http.StatusCreated, resp, -1, start)
}

// GetFilters returns the session's saved filters, or the empty state
//
// @Summary Get session filters
// @Tags Sessions
// @Produce json
// @Param sessionID path string true "Session UUID"
// @Success 200 {object} models.APIResponse{data=models.FilterState}
// @Router /api/v1/sessions/{sessionID}/filters [get]
func (h *Handler) GetFilters(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sessionID, ok := sessionParam(w, r)
	if !ok {
		return
	}

	state, err := h.loadFilterState(r.Context(), sessionID)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStoreError, "Failed to load session filters", err)
		return
	}
	respondSuccess(w, r, http.StatusOK, state, -1, start)
}

// PutFilters replaces the session's filters
//
// @Summary Save session filters
// @Tags Sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session UUID"
// @Param request body models.FilterState true "Filters"
// @Success 200 {object} models.APIResponse{data=models.FilterState}
// @Router /api/v1/sessions/{sessionID}/filters [put]
func (h *Handler) PutFilters(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sessionID, ok := sessionParam(w, r)
	if !ok {
		return
	}

	var state models.FilterState
	if !h.decodeJSON(w, r, &state) || !validateRequest(w, r, &state) {
		return
	}
	if err := h.store.SaveFilterState(r.Context(), sessionID, state); err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStoreError, "Failed to save session filters", err)
		return
	}
	respondSuccess(w, r, http.StatusOK, state, -1, start)
}

// DeleteFilters clears the session's filters. Clearing an unknown session
// succeeds.
//
// @Summary Clear session filters
// @Tags Sessions
// @Param sessionID path string true "Session UUID"
// @Success 204
// @Router /api/v1/sessions/{sessionID}/filters [delete]
func (h *Handler) DeleteFilters(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionParam(w, r)
	if !ok {
		return
	}
	if err := h.store.DeleteFilterState(r.Context(), sessionID); err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStoreError, "Failed to clear session filters", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCollections returns the session's collections, oldest first
//
// @Summary List collections
// @Tags Collections
// @Produce json
// @Param sessionID path string true "Session UUID"
// @Success 200 {object} models.APIResponse{data=[]models.Collection}
// @Router /api/v1/sessions/{sessionID}/collections [get]
func (h *Handler) ListCollections(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sessionID, ok := sessionParam(w, r)
	if !ok {
		return
	}

	cols, err := h.store.ListCollections(r.Context(), sessionID)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStoreError, "Failed to list collections", err)
		return
	}
	if cols == nil {
		cols = []models.Collection{}
	}
	respondSuccess(w, r, http.StatusOK, cols, len(cols), start)
}

// CreateCollection saves a named list of place IDs
//
// @Summary Create a collection
// @Tags Collections
// @Accept json
// @Produce json
// @Param sessionID path string true "Session UUID"
// @Param request body CreateCollectionRequest true "Collection"
// @Success 201 {object} models.APIResponse{data=models.Collection}
// @Router /api/v1/sessions/{sessionID}/collections [post]
func (h *Handler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sessionID, ok := sessionParam(w, r)
	if !ok {
		return
	}

	var req CreateCollectionRequest
	if !h.decodeJSON(w, r, &req) || !validateRequest(w, r, &req) {
		return
	}

	now := h.now().UTC()
	placeIDs := req.PlaceIDs
	if placeIDs == nil {
		placeIDs = []string{}
	}
	c := models.Collection{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Name:      req.Name,
		PlaceIDs:  placeIDs,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.store.SaveCollection(r.Context(), c); err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStoreError, "Failed to save collection", err)
		return
	}

	w.Header().Set("Location", "/api/v1/sessions/"+sessionID+"/collections/"+c.ID)
	respondSuccess(w, r, http.StatusCreated, c, -1, start)
}

// GetCollection returns one collection
//
// @Summary Get a collection
// @Tags Collections
// @Produce json
// @Param sessionID path string true "Session UUID"
// @Param collectionID path string true "Collection UUID"
// @Success 200 {object} models.APIResponse{data=models.Collection}
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/sessions/{sessionID}/collections/{collectionID} [get]
func (h *Handler) GetCollection(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sessionID, collectionID, ok := collectionParams(w, r)
	if !ok {
		return
	}

	c, err := h.store.GetCollection(r.Context(), sessionID, collectionID)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Collection not found", nil)
		return
	}
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStoreError, "Failed to load collection", err)
		return
	}
	respondSuccess(w, r, http.StatusOK, c, -1, start)
}

// DeleteCollection removes one collection
//
// @Summary Delete a collection
// @Tags Collections
// @Param sessionID path string true "Session UUID"
// @Param collectionID path string true "Collection UUID"
// @Success 204
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/sessions/{sessionID}/collections/{collectionID} [delete]
func (h *Handler) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	sessionID, collectionID, ok := collectionParams(w, r)
	if !ok {
		return
	}

	err := h.store.DeleteCollection(r.Context(), sessionID, collectionID)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Collection not found", nil)
		return
	}
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStoreError, "Failed to delete collection", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func sessionParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	p := sessionPath{SessionID: chi.URLParam(r, "sessionID")}
	if !validateRequest(w, r, &p) {
		return "", false
	}
	return p.SessionID, true
}

func collectionParams(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	p := collectionPath{
		SessionID:    chi.URLParam(r, "sessionID"),
		CollectionID: chi.URLParam(r, "collectionID"),
	}
	if !validateRequest(w, r, &p) {
		return "", "", false
	}
	return p.SessionID, p.CollectionID, true
}
