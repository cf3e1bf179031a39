// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

// Package availability evaluates places against time layers.
//
// Hours are whole integers. A window [Start, End) with Start > End crosses
// midnight, and Start == End means open around the clock. A place without
// its own schedule uses its category's default hours from the catalog, and
// unmapped categories use the catalog fallback.
//
// Layer kinds:
//
//   - now: open or closed at the given hour for today's day type. Open
//     places get a crowd level and any offers whose rules match; closed
//     places get a hint for when they next open.
//   - range: usually open if either the weekday or weekend window overlaps
//     the layer's fixed hour range.
//   - weekend: open if a weekend window is defined.
//
// Unknown layer IDs evaluate as available with status "unknown".
package availability
