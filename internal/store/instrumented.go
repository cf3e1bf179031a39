// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package store

import (
	"context"

	"github.com/tomtom215/moodmap/internal/metrics"
	"github.com/tomtom215/moodmap/internal/models"
)

// instrumented records a metric for every call on the wrapped Store.
type instrumented struct {
	next    Store
	backend string
}

// Instrument wraps s so each operation is counted under backend with an
// ok, not_found or error result.
func Instrument(s Store, backend string) Store {
	return &instrumented{next: s, backend: backend}
}

func (s *instrumented) record(op string, err error) {
	metrics.RecordStoreOperation(s.backend, op, err, ErrNotFound)
}

func (s *instrumented) GetFilterState(ctx context.Context, sessionID string) (models.FilterState, error) {
	st, err := s.next.GetFilterState(ctx, sessionID)
	s.record("get_filter_state", err)
	return st, err
}

func (s *instrumented) SaveFilterState(ctx context.Context, sessionID string, state models.FilterState) error {
	err := s.next.SaveFilterState(ctx, sessionID, state)
	s.record("save_filter_state", err)
	return err
}

func (s *instrumented) DeleteFilterState(ctx context.Context, sessionID string) error {
	err := s.next.DeleteFilterState(ctx, sessionID)
	s.record("delete_filter_state", err)
	return err
}

func (s *instrumented) SaveCollection(ctx context.Context, c models.Collection) error {
	err := s.next.SaveCollection(ctx, c)
	s.record("save_collection", err)
	return err
}

func (s *instrumented) GetCollection(ctx context.Context, sessionID, collectionID string) (models.Collection, error) {
	c, err := s.next.GetCollection(ctx, sessionID, collectionID)
	s.record("get_collection", err)
	return c, err
}

func (s *instrumented) ListCollections(ctx context.Context, sessionID string) ([]models.Collection, error) {
	cs, err := s.next.ListCollections(ctx, sessionID)
	s.record("list_collections", err)
	return cs, err
}

func (s *instrumented) DeleteCollection(ctx context.Context, sessionID, collectionID string) error {
	err := s.next.DeleteCollection(ctx, sessionID, collectionID)
	s.record("delete_collection", err)
	return err
}

func (s *instrumented) Close() error {
	return s.next.Close()
}

// Unwrap returns the wrapped Store.
func (s *instrumented) Unwrap() Store {
	return s.next
}
