// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

package api

import (
	"compress/flate"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/moodmap/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(middleware.Metrics)
	r.Use(APISecurityHeaders())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})

	// ========================
	// Health and Metrics
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})
	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// API v1
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.Compression(flate.DefaultCompression))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/moods", router.handler.ListMoods)
			r.Get("/sliders", router.handler.ListSliders)
			r.Get("/layers", router.handler.ListLayers)
		})

		r.Post("/clusters", router.handler.Clusters)

		r.Route("/places", func(r chi.Router) {
			r.Post("/filter", router.handler.FilterPlaces)
			r.Post("/evaluate", router.handler.EvaluatePlaces)
			r.Post("/discover", router.handler.Discover)
			r.Post("/tags", router.handler.PlaceTags)
			r.Post("/sliders", router.handler.PlaceSliders)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", router.handler.CreateSession)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/filters", router.handler.GetFilters)
				r.Put("/filters", router.handler.PutFilters)
				r.Delete("/filters", router.handler.DeleteFilters)

				r.Get("/collections", router.handler.ListCollections)
				r.Post("/collections", router.handler.CreateCollection)
				r.Get("/collections/{collectionID}", router.handler.GetCollection)
				r.Delete("/collections/{collectionID}", router.handler.DeleteCollection)
			})
		})
	})

	return r
}
