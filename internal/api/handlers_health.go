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

	"github.com/tomtom215/moodmap/internal/store"
)

// readinessProbeTimeout bounds the store round trip in HealthReady.
const readinessProbeTimeout = 2 * time.Second

// readinessSession never matches a real session ID.
const readinessSession = "__readiness__"

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, -1, time.Now())
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the session store answers
//
// @Summary Kubernetes readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessProbeTimeout)
	defer cancel()

	_, err := h.store.GetFilterState(ctx, readinessSession)
	storeOK := err == nil || errors.Is(err, store.ErrNotFound)

	data := map[string]interface{}{
		"store_connected": storeOK,
		"ready_to_serve":  storeOK,
		"uptime":          time.Since(h.startTime).Seconds(),
	}
	if !storeOK {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeNotReady, "Session store unavailable", err)
		return
	}
	respondSuccess(w, r, http.StatusOK, data, -1, time.Now())
}
