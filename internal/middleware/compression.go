// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

package middleware

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// compressibleTypes are the content types worth gzipping. Place lists and
// cluster responses are JSON and compress well.
var compressibleTypes = []string{
	"application/json",
	"text/plain",
}

// Compression gzips compressible responses at level (1-9) for clients that
// accept it.
func Compression(level int) func(http.Handler) http.Handler {
	if level < 1 || level > 9 {
		level = 5
	}
	return chimiddleware.Compress(level, compressibleTypes...)
}
