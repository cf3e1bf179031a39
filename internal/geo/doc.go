// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

// Package geo groups places into map clusters.
//
// Clustering is a single greedy pass: places are visited in input order, each
// unassigned place seeds a cluster, and every later unassigned place within
// the radius of that seed joins it. Membership is measured against the seed
// only, so a cluster's diameter can reach twice the radius and two members
// may be farther apart than the radius from each other.
//
// Distances use the haversine formula on a sphere of radius 6,371 km.
// Cluster centers are the plain arithmetic mean of member coordinates, which
// is accurate at city scale and drifts near the poles or the antimeridian.
// Coordinates are not range-checked here; callers that need strict input
// should run the validation package first.
//
// For large inputs a per-call uniform grid narrows each seed's candidate set.
// Candidates are visited in input order, so the grid never changes results.
package geo
