// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

package validation

import "github.com/tomtom215/moodmap/internal/models"

// placeList wraps a place slice so failures are reported as
// "places[i].field".
type placeList struct {
	Places []models.Place `json:"places" validate:"dive"`
}

// ValidatePlaces checks every place against its declared ranges: latitude
// and longitude, rating 0-5, price level 0-4 and hours 0-23. The engine
// accepts out-of-range places and degrades them; callers that prefer to
// reject them use this first.
func ValidatePlaces(places []models.Place) *RequestValidationError {
	return ValidateStruct(placeList{Places: places})
}
