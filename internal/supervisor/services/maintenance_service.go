// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/moodmap/internal/logging"
	"github.com/tomtom215/moodmap/internal/metrics"
)

// DefaultMaintenanceInterval is used when the configured interval is not
// positive.
const DefaultMaintenanceInterval = 5 * time.Minute

// MemoryMaintainer is satisfied by *store.MemoryStore.
type MemoryMaintainer interface {
	CleanupExpired() int
	Len() int
}

// GarbageCollector is satisfied by *store.BadgerStore.
type GarbageCollector interface {
	RunGC() error
}

// StoreMaintenanceService runs one maintenance task on a ticker. A task
// error ends Serve so the supervisor restarts it with backoff.
type StoreMaintenanceService struct {
	task     func(ctx context.Context) error
	interval time.Duration
	name     string
}

// NewMemoryMaintenanceService sweeps expired sessions and publishes the
// live session count.
func NewMemoryMaintenanceService(m MemoryMaintainer, interval time.Duration) *StoreMaintenanceService {
	return newStoreMaintenanceService("store-sweeper", interval, func(context.Context) error {
		if removed := m.CleanupExpired(); removed > 0 {
			logging.Debug().Int("removed", removed).Msg("Expired sessions removed")
		}
		metrics.SetStoreSessions(m.Len())
		return nil
	})
}

// NewBadgerGCService runs value log garbage collection.
func NewBadgerGCService(gc GarbageCollector, interval time.Duration) *StoreMaintenanceService {
	return newStoreMaintenanceService("store-gc", interval, func(context.Context) error {
		if err := gc.RunGC(); err != nil {
			return fmt.Errorf("value log gc: %w", err)
		}
		return nil
	})
}

func newStoreMaintenanceService(name string, interval time.Duration, task func(context.Context) error) *StoreMaintenanceService {
	if interval <= 0 {
		interval = DefaultMaintenanceInterval
	}
	return &StoreMaintenanceService{task: task, interval: interval, name: name}
}

// Serve implements suture.Service.
func (s *StoreMaintenanceService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.task(ctx); err != nil {
				return fmt.Errorf("%s: %w", s.name, err)
			}
		}
	}
}

// String names the service in supervisor logs.
func (s *StoreMaintenanceService) String() string {
	return s.name
}
