// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

package api

import "errors"

// Error codes carried in APIError.Code.
const (
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyPlaces    = "TOO_MANY_PLACES"
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"
	ErrCodeStoreError       = "STORE_ERROR"
	ErrCodeInternal         = "INTERNAL_ERROR"
	ErrCodeNotReady         = "SERVICE_UNAVAILABLE"
)

var (
	// ErrEmptyBody is returned when a request that needs a JSON body has none.
	ErrEmptyBody = errors.New("request body is empty")

	// ErrTooManyPlaces is returned when a place list exceeds the configured cap.
	ErrTooManyPlaces = errors.New("too many places")
)
