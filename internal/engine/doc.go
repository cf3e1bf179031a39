// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

/*
Package engine is the entry point to place discovery. It wires the catalog
into the clusterer, tag extractor, slider valuator, filter scorer and
availability engine, and exposes them behind one value.

Every operation is total: malformed or unknown input degrades to a neutral
result instead of an error. The engine holds no per-request state, so a
single Engine is shared by all HTTP handlers.

Usage:

	eng, err := engine.New(catalog.Default(), engine.DefaultConfig(), logger)
	if err != nil {
		return err
	}
	ranked := eng.Discover(places, state, catalog.LayerEvening, eng.Now(), true)

Each call is timed into the moodmap_engine_* metrics and logged at debug
level with its input and output sizes.
*/
package engine
