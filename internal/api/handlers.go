// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

package api

import (
	"time"

	"github.com/tomtom215/moodmap/internal/engine"
	"github.com/tomtom215/moodmap/internal/store"
)

// Handler defaults.
const (
	DefaultMaxPlaces    = 5000
	DefaultMaxBodyBytes = 16 << 20
)

// HandlerConfig bounds request size and selects validation strictness.
type HandlerConfig struct {
	MaxPlaces        int
	MaxBodyBytes     int64
	StrictValidation bool
}

// Handler serves the HTTP API over an engine and a session store.
type Handler struct {
	engine    *engine.Engine
	store     store.Store
	cfg       HandlerConfig
	startTime time.Time
	now       func() time.Time
}

// NewHandler creates a Handler. Non-positive limits take their defaults.
func NewHandler(eng *engine.Engine, st store.Store, cfg HandlerConfig) *Handler {
	if cfg.MaxPlaces <= 0 {
		cfg.MaxPlaces = DefaultMaxPlaces
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return &Handler{
		engine:    eng,
		store:     st,
		cfg:       cfg,
		startTime: time.Now(),
		now:       time.Now,
	}
}
