// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
// Package catalog holds the static lookup tables that drive the moodmap engine:
// category tags, mood definitions, slider rules, time layers, default working
// hours, special-offer rules and crowd peaks.
//
// Tables are data, not code branches. Default returns the built-in tables and
// Load overlays a YAML file on top of them, so a deployment can localise
// category names or tune rules without a rebuild:
//
//	cat, err := catalog.Load("/etc/moodmap/catalog.yaml")
//	if err != nil {
//	    return err
//	}
//	extractor := tags.NewExtractor(cat)
//
// Overlay semantics: map entries (categories, default_hours, peak_hours) merge
// key by key; lists (moods, sliders, layers, offers) replace the default list
// when present; scalar thresholds replace the default when non-zero.
//
// A Catalog is treated as immutable once built and may be shared between
// goroutines.
package catalog
