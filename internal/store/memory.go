// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tomtom215/moodmap/internal/models"
)

// Memory store defaults.
const (
	DefaultCapacity = 10000
	DefaultTTL      = 24 * time.Hour
)

// sessionEntry is one session's data in the LRU list.
type sessionEntry struct {
	sessionID   string
	filter      *models.FilterState
	collections map[string]models.Collection
	expiresAt   time.Time
	prev        *sessionEntry
	next        *sessionEntry
}

func (e *sessionEntry) empty() bool {
	return e.filter == nil && len(e.collections) == 0
}

// MemoryStore keeps sessions in a least-recently-used list with a TTL.
// Writes refresh a session's TTL; reads refresh only its recency. When
// capacity is reached the least recently used session is evicted whole.
type MemoryStore struct {
	mu sync.Mutex

	capacity int
	ttl      time.Duration
	now      func() time.Time

	items map[string]*sessionEntry

	// head.next is the most recently used, tail.prev the least.
	head *sessionEntry
	tail *sessionEntry
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithMemoryClock overrides the clock used for TTL checks.
func WithMemoryClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// NewMemoryStore creates a MemoryStore. Non-positive capacity or ttl take
// their defaults.
func NewMemoryStore(capacity int, ttl time.Duration, opts ...MemoryOption) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s := &MemoryStore{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		items:    make(map[string]*sessionEntry),
		head:     &sessionEntry{},
		tail:     &sessionEntry{},
	}
	s.head.next = s.tail
	s.tail.prev = s.head

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetFilterState implements Store.
func (s *MemoryStore) GetFilterState(_ context.Context, sessionID string) (models.FilterState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.lookup(sessionID)
	if e == nil || e.filter == nil {
		return models.FilterState{}, ErrNotFound
	}
	return cloneFilterState(*e.filter), nil
}

// SaveFilterState implements Store.
func (s *MemoryStore) SaveFilterState(_ context.Context, sessionID string, state models.FilterState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := cloneFilterState(state)
	s.upsert(sessionID).filter = &st
	return nil
}

// DeleteFilterState implements Store. Deleting missing state is not an error.
func (s *MemoryStore) DeleteFilterState(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e := s.lookup(sessionID); e != nil {
		e.filter = nil
		if e.empty() {
			s.removeEntry(e)
		}
	}
	return nil
}

// SaveCollection implements Store.
func (s *MemoryStore) SaveCollection(_ context.Context, c models.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.upsert(c.SessionID)
	if e.collections == nil {
		e.collections = make(map[string]models.Collection)
	}
	e.collections[c.ID] = cloneCollection(c)
	return nil
}

// GetCollection implements Store.
func (s *MemoryStore) GetCollection(_ context.Context, sessionID, collectionID string) (models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.lookup(sessionID)
	if e == nil {
		return models.Collection{}, ErrNotFound
	}
	c, ok := e.collections[collectionID]
	if !ok {
		return models.Collection{}, ErrNotFound
	}
	return cloneCollection(c), nil
}

// ListCollections implements Store. Collections are ordered by creation
// time, then ID.
func (s *MemoryStore) ListCollections(_ context.Context, sessionID string) ([]models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Collection, 0)
	e := s.lookup(sessionID)
	if e == nil {
		return out, nil
	}
	for _, c := range e.collections {
		out = append(out, cloneCollection(c))
	}
	sortCollections(out)
	return out, nil
}

// DeleteCollection implements Store.
func (s *MemoryStore) DeleteCollection(_ context.Context, sessionID, collectionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.lookup(sessionID)
	if e == nil {
		return ErrNotFound
	}
	if _, ok := e.collections[collectionID]; !ok {
		return ErrNotFound
	}
	delete(e.collections, collectionID)
	if e.empty() {
		s.removeEntry(e)
	}
	return nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]*sessionEntry)
	s.head.next = s.tail
	s.tail.prev = s.head
	return nil
}

// Len returns the number of live sessions, counting expired ones until they
// are touched or swept.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// CleanupExpired removes expired sessions and returns how many it removed.
func (s *MemoryStore) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0

	// Walk from tail (oldest) to head (newest)
	for e := s.tail.prev; e != s.head; {
		prev := e.prev
		if now.After(e.expiresAt) {
			s.removeEntry(e)
			removed++
		}
		e = prev
	}
	return removed
}

// Internal methods (must be called with lock held)

// lookup returns a live entry and marks it most recently used.
func (s *MemoryStore) lookup(sessionID string) *sessionEntry {
	e, ok := s.items[sessionID]
	if !ok {
		return nil
	}
	if s.now().After(e.expiresAt) {
		s.removeEntry(e)
		return nil
	}
	s.moveToFront(e)
	return e
}

// upsert returns the entry for sessionID, creating it if needed, and
// refreshes its TTL.
func (s *MemoryStore) upsert(sessionID string) *sessionEntry {
	e := s.lookup(sessionID)
	if e == nil {
		e = &sessionEntry{sessionID: sessionID}
		s.addToFront(e)
		s.items[sessionID] = e
		for len(s.items) > s.capacity {
			s.evictOldest()
		}
	}
	e.expiresAt = s.now().Add(s.ttl)
	return e
}

func (s *MemoryStore) addToFront(e *sessionEntry) {
	e.prev = s.head
	e.next = s.head.next
	s.head.next.prev = e
	s.head.next = e
}

func (s *MemoryStore) moveToFront(e *sessionEntry) {
	e.prev.next = e.next
	e.next.prev = e.prev
	s.addToFront(e)
}

func (s *MemoryStore) removeEntry(e *sessionEntry) {
	e.prev.next = e.next
	e.next.prev = e.prev
	delete(s.items, e.sessionID)
}

func (s *MemoryStore) evictOldest() {
	oldest := s.tail.prev
	if oldest == s.head {
		return
	}
	s.removeEntry(oldest)
}

func sortCollections(cs []models.Collection) {
	sort.Slice(cs, func(i, j int) bool {
		if !cs[i].CreatedAt.Equal(cs[j].CreatedAt) {
			return cs[i].CreatedAt.Before(cs[j].CreatedAt)
		}
		return cs[i].ID < cs[j].ID
	})
}

// Compile-time interface assertion
var _ Store = (*MemoryStore)(nil)
