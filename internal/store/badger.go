// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/moodmap/internal/models"
)

// Key prefixes for BadgerDB storage
const (
	filterKeyPrefix     = "filter:"
	collectionKeyPrefix = "collection:"
)

// gcDiscardRatio is the value log discard ratio used by RunGC.
const gcDiscardRatio = 0.5

// OpenBadger opens a BadgerDB at path with logging suppressed. An empty
// path opens an in-memory database.
func OpenBadger(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}
	return db, nil
}

// BadgerStore implements Store on BadgerDB. Entries expire after the
// configured TTL; each write restarts it for the written key.
type BadgerStore struct {
	db  *badger.DB
	ttl time.Duration
}

// NewBadgerStore wraps db. The store owns db and closes it on Close.
// A non-positive ttl keeps entries forever.
func NewBadgerStore(db *badger.DB, ttl time.Duration) *BadgerStore {
	return &BadgerStore{db: db, ttl: ttl}
}

func filterKey(sessionID string) []byte {
	return []byte(filterKeyPrefix + sessionID)
}

func collectionPrefix(sessionID string) []byte {
	return []byte(collectionKeyPrefix + sessionID + ":")
}

func collectionKey(sessionID, collectionID string) []byte {
	return []byte(collectionKeyPrefix + sessionID + ":" + collectionID)
}

func (s *BadgerStore) set(key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal value: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(key, data)
		if s.ttl > 0 {
			e = e.WithTTL(s.ttl)
		}
		return txn.SetEntry(e)
	})
}

func (s *BadgerStore) get(key []byte, v any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get %s: %w", key, err)
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}

// GetFilterState implements Store.
func (s *BadgerStore) GetFilterState(_ context.Context, sessionID string) (models.FilterState, error) {
	var state models.FilterState
	if err := s.get(filterKey(sessionID), &state); err != nil {
		return models.FilterState{}, err
	}
	return state, nil
}

// SaveFilterState implements Store.
func (s *BadgerStore) SaveFilterState(_ context.Context, sessionID string, state models.FilterState) error {
	if err := s.set(filterKey(sessionID), state); err != nil {
		return fmt.Errorf("save filter state: %w", err)
	}
	return nil
}

// DeleteFilterState implements Store. Deleting missing state is not an error.
func (s *BadgerStore) DeleteFilterState(_ context.Context, sessionID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(filterKey(sessionID)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete filter state: %w", err)
		}
		return nil
	})
}

// SaveCollection implements Store.
func (s *BadgerStore) SaveCollection(_ context.Context, c models.Collection) error {
	if err := s.set(collectionKey(c.SessionID, c.ID), c); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}
	return nil
}

// GetCollection implements Store.
func (s *BadgerStore) GetCollection(_ context.Context, sessionID, collectionID string) (models.Collection, error) {
	var c models.Collection
	if err := s.get(collectionKey(sessionID, collectionID), &c); err != nil {
		return models.Collection{}, err
	}
	return c, nil
}

// ListCollections implements Store. Collections are ordered by creation
// time, then ID.
func (s *BadgerStore) ListCollections(_ context.Context, sessionID string) ([]models.Collection, error) {
	out := make([]models.Collection, 0)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := collectionPrefix(sessionID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var c models.Collection
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &c)
			})
			if err != nil {
				return fmt.Errorf("decode collection %s: %w", it.Item().Key(), err)
			}
			out = append(out, c)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	sortCollections(out)
	return out, nil
}

// DeleteCollection implements Store.
func (s *BadgerStore) DeleteCollection(_ context.Context, sessionID, collectionID string) error {
	key := collectionKey(sessionID, collectionID)
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("get collection: %w", err)
		}
		if err := txn.Delete(key); err != nil {
			return fmt.Errorf("delete collection: %w", err)
		}
		return nil
	})
}

// RunGC reclaims value log space until badger reports nothing to rewrite.
// In-memory databases have no value log and return nil.
func (s *BadgerStore) RunGC() error {
	if s.db.Opts().InMemory {
		return nil
	}
	for {
		err := s.db.RunValueLogGC(gcDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run value log GC: %w", err)
		}
	}
}

// Close implements Store and closes the underlying database.
func (s *BadgerStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Compile-time interface assertion
var _ Store = (*BadgerStore)(nil)
