// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package models

// TimeContext is the caller-supplied notion of "now".
// The engine never reads the system clock itself.
type TimeContext struct {
	Hour      int  `json:"hour" validate:"hour"`
	IsWeekend bool `json:"isWeekend"`
}

// LayerStatus is the availability verdict for a time layer.
type LayerStatus string

// Layer statuses.
const (
	StatusOpen          LayerStatus = "open"
	StatusClosed        LayerStatus = "closed"
	StatusUsuallyOpen   LayerStatus = "usually_open"
	StatusUsuallyClosed LayerStatus = "usually_closed"
	StatusWeekendOpen   LayerStatus = "weekend_open"
	StatusWeekendClosed LayerStatus = "weekend_closed"
	StatusUnknown       LayerStatus = "unknown"
)

// CrowdLevel is a coarse crowd estimate for an open place.
type CrowdLevel string

// Crowd levels.
const (
	CrowdLow    CrowdLevel = "low"
	CrowdMedium CrowdLevel = "medium"
	CrowdHigh   CrowdLevel = "high"
)

// LayerResult is the outcome of evaluating one place under one time layer.
// Optional fields are omitted when the layer does not produce them.
type LayerResult struct {
	IsAvailable    bool        `json:"isAvailable"`
	Status         LayerStatus `json:"status"`
	CrowdLevel     CrowdLevel  `json:"crowdLevel,omitempty"`
	SpecialOffers  []string    `json:"specialOffers,omitempty"`
	NextOpenTime   string      `json:"nextOpenTime,omitempty"`
	Recommendation string      `json:"recommendation,omitempty"`

	// Hours is the window the verdict was based on, when there is a single one.
	Hours *HourWindow `json:"hours,omitempty"`
}

// EvaluatedPlace pairs a place with its layer result.
type EvaluatedPlace struct {
	Place
	Availability LayerResult `json:"availability"`
}
