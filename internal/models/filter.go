// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package models

// FilterState is the user's active filter selection, owned by a client-side
// store and supplied per call. The zero value filters nothing.
type FilterState struct {
	// ActiveMoods holds selected mood IDs. A place passes if it matches any of them.
	ActiveMoods []string `json:"activeMoods"`

	// SliderValues maps slider ID to a 0-100 target. A place passes only if it
	// is within tolerance of every target.
	SliderValues map[string]float64 `json:"sliderValues" validate:"dive,gte=0,lte=100"`
}

// IsEmpty reports whether no mood or slider filter is active.
func (s FilterState) IsEmpty() bool {
	return len(s.ActiveMoods) == 0 && len(s.SliderValues) == 0
}

// ScoredPlace is a place that passed the active filters, with its relevance.
type ScoredPlace struct {
	Place

	// FilterScore is the composite relevance in [0, 100].
	FilterScore float64 `json:"filterScore"`
}

// DiscoveredPlace is a ranked place annotated with availability for one time layer.
type DiscoveredPlace struct {
	ScoredPlace
	Availability LayerResult `json:"availability"`
}
