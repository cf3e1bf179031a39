// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

package models

import (
	"fmt"
)

// Coordinates is a WGS84 position in degrees.
// Values are not range-checked by the engine; see validation.ValidatePlaces.
type Coordinates struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// HourWindow is an opening window in whole hours (0-23).
// Start > End denotes a schedule crossing midnight (e.g. 17-2).
// Start == End denotes a place that is open around the clock rather than
// an empty [start, end) window, so 0-0 reads as 24 hours.
type HourWindow struct {
	Start int `json:"start" koanf:"start" validate:"hour"`
	End   int `json:"end" koanf:"end" validate:"hour"`
}

// WrapsMidnight reports whether the window continues past midnight.
func (w HourWindow) WrapsMidnight() bool {
	return w.Start > w.End
}

// String formats the window as "17:00-02:00".
func (w HourWindow) String() string {
	return fmt.Sprintf("%02d:00-%02d:00", w.Start, w.End)
}

// WorkingHours holds the weekday and weekend windows of a place.
// A nil window means the place is closed on that day type.
type WorkingHours struct {
	Weekday *HourWindow `json:"weekday" koanf:"weekday" validate:"omitempty"`
	Weekend *HourWindow `json:"weekend" koanf:"weekend" validate:"omitempty"`
}

// ForDay returns the window for the given day type.
func (h WorkingHours) ForDay(isWeekend bool) *HourWindow {
	if isWeekend {
		return h.Weekend
	}
	return h.Weekday
}

// Place is a geotagged venue supplied by an external collaborator.
//
// Optional numeric attributes are pointers so that "unknown" can be told apart
// from zero: a missing rating contributes no tags and is skipped in averages.
type Place struct {
	ID          string      `json:"id" validate:"required"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Coordinates Coordinates `json:"coordinates"`

	Rating     *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	PriceLevel *int     `json:"priceLevel,omitempty" validate:"omitempty,gte=0,lte=4"`

	HasWifi           bool `json:"hasWifi,omitempty"`
	HasParking        bool `json:"hasParking,omitempty"`
	PetFriendly       bool `json:"petFriendly,omitempty"`
	HasMusic          bool `json:"hasMusic,omitempty"`
	HasOutdoorSeating bool `json:"hasOutdoorSeating,omitempty"`

	// Atmosphere is an ordered set of free-form tags.
	Atmosphere []string `json:"atmosphere,omitempty"`

	// WorkingHours is nil when the backend has no schedule; the category
	// default table is used instead.
	WorkingHours *WorkingHours `json:"workingHours,omitempty"`
}

// Float64 returns a pointer to v. It keeps literals for optional fields short.
func Float64(v float64) *float64 {
	return &v
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}
