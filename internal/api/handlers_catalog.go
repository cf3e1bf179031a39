// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

package api

import (
	"net/http"
	"time"
)

// catalogCacheControl lets clients cache the static catalog.
const catalogCacheControl = "public, max-age=300"

// ListMoods returns the mood catalog
//
// @Summary List moods
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]catalog.Mood}
// @Router /api/v1/catalog/moods [get]
func (h *Handler) ListMoods(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	moods := h.engine.Catalog().ListMoods()
	w.Header().Set("Cache-Control", catalogCacheControl)
	respondSuccess(w, r, http.StatusOK, moods, len(moods), start)
}

// ListSliders returns the slider catalog
//
// @Summary List sliders
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]catalog.SliderRule}
// @Router /api/v1/catalog/sliders [get]
func (h *Handler) ListSliders(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sliders := h.engine.Catalog().ListSliders()
	w.Header().Set("Cache-Control", catalogCacheControl)
	respondSuccess(w, r, http.StatusOK, sliders, len(sliders), start)
}

// ListLayers returns the time layer catalog
//
// @Summary List time layers
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]catalog.TimeLayer}
// @Router /api/v1/catalog/layers [get]
func (h *Handler) ListLayers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	layers := h.engine.Catalog().ListLayers()
	w.Header().Set("Cache-Control", catalogCacheControl)
	respondSuccess(w, r, http.StatusOK, layers, len(layers), start)
}
