// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

// Package tags derives semantic tags from a place's static attributes.
package tags

// Set is an insertion-ordered set of tags.
type Set struct {
	order []string
	index map[string]struct{}
}

// NewSet returns a set holding the given tags in first-seen order.
func NewSet(tags ...string) *Set {
	s := &Set{index: make(map[string]struct{}, len(tags))}
	s.Add(tags...)
	return s
}

// Add inserts tags that are not already present.
func (s *Set) Add(tags ...string) {
	if s.index == nil {
		s.index = make(map[string]struct{}, len(tags))
	}
	for _, t := range tags {
		if _, ok := s.index[t]; ok {
			continue
		}
		s.index[t] = struct{}{}
		s.order = append(s.order, t)
	}
}

// Has reports whether tag is in the set.
func (s *Set) Has(tag string) bool {
	_, ok := s.index[tag]
	return ok
}

// Len returns the number of tags.
func (s *Set) Len() int {
	return len(s.order)
}

// Slice returns the tags in insertion order. The result is a copy.
func (s *Set) Slice() []string {
	return append(make([]string, 0, len(s.order)), s.order...)
}

// CountIn returns how many distinct entries of tags are in the set.
func (s *Set) CountIn(tags []string) int {
	seen := make(map[string]struct{}, len(tags))
	n := 0
	for _, t := range tags {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if s.Has(t) {
			n++
		}
	}
	return n
}

// Intersects reports whether any of tags is in the set.
func (s *Set) Intersects(tags []string) bool {
	for _, t := range tags {
		if s.Has(t) {
			return true
		}
	}
	return false
}
