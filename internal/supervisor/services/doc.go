// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

// Package services adapts server components to suture.Service.
//
// Each wrapper turns a component's own lifecycle (ListenAndServe/Shutdown,
// a periodic sweep) into a Serve(ctx) that blocks until ctx is canceled and
// returns an error when the component fails, so the supervisor restarts it.
package services
