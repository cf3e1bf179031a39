// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

// Package store persists per-session filter state and saved collections.
//
// The engine never touches a store. Callers load a FilterState before an
// engine call and save it afterwards; a session without saved state reads
// as ErrNotFound and callers fall back to the empty FilterState.
package store

import (
	"context"
	"errors"

	"github.com/tomtom215/moodmap/internal/models"
)

// ErrNotFound is returned when a session has no saved filter state or the
// requested collection does not exist.
var ErrNotFound = errors.New("not found")

// Backend names.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
)

// Store is the persistence boundary for session state.
type Store interface {
	GetFilterState(ctx context.Context, sessionID string) (models.FilterState, error)
	SaveFilterState(ctx context.Context, sessionID string, state models.FilterState) error
	DeleteFilterState(ctx context.Context, sessionID string) error

	SaveCollection(ctx context.Context, c models.Collection) error
	GetCollection(ctx context.Context, sessionID, collectionID string) (models.Collection, error)
	ListCollections(ctx context.Context, sessionID string) ([]models.Collection, error)
	DeleteCollection(ctx context.Context, sessionID, collectionID string) error

	Close() error
}

// cloneFilterState copies the slice and map so stored state never aliases
// caller memory.
func cloneFilterState(s models.FilterState) models.FilterState {
	out := models.FilterState{}
	if s.ActiveMoods != nil {
		out.ActiveMoods = append([]string(nil), s.ActiveMoods...)
	}
	if s.SliderValues != nil {
		out.SliderValues = make(map[string]float64, len(s.SliderValues))
		for k, v := range s.SliderValues {
			out.SliderValues[k] = v
		}
	}
	return out
}

func cloneCollection(c models.Collection) models.Collection {
	if c.PlaceIDs != nil {
		c.PlaceIDs = append([]string(nil), c.PlaceIDs...)
	}
	return c
}
