// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

// Package supervisor runs the long-lived parts of the server under a suture
// supervisor tree.
//
// The tree has two layers:
//   - data: store maintenance (TTL sweeps, value log GC)
//   - api: the HTTP server
//
// A service that returns an error is restarted with backoff. A failure in
// the data layer does not stop the API from answering requests.
//
// Supervisor events are logged through sutureslog, which writes to the
// zerolog logger via logging.NewSlogLogger.
package supervisor
