// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

// Package filter decides which places pass the active mood and slider
// filters and ranks them by relevance.
//
// Moods combine with OR: a place passes if its tags intersect any active
// mood. Sliders combine with AND: a place passes only if it is within the
// tolerance of every slider target. The two kinds combine with AND.
//
// The score of a passing place is a weighted blend of
//
//	moodScore   = mean over active moods of |tags ∩ moodTags| / |moodTags| * 100
//	sliderScore = mean over active sliders of max(0, 100 - |value - target|)
//
// with weights renormalized over the kinds that are active. With no active
// filter every place scores 100. Results are sorted by descending score and
// ties keep input order.
//
// Unknown mood IDs are ignored. Unknown slider IDs are compared at the
// neutral slider value.
package filter
