// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

package models

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// BoundingBox is the componentwise min/max of a cluster's member coordinates.
type BoundingBox struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Cluster groups nearby places into a single map marker.
//
// Center is the unweighted arithmetic mean of member latitudes and longitudes.
// It is not geodesically corrected and degrades near the antimeridian and poles.
type Cluster struct {
	ID          string      `json:"id"`
	Center      Coordinates `json:"center"`
	BoundingBox BoundingBox `json:"boundingBox"`
	Members     []Place     `json:"members"`
}

// Size returns the number of member places.
func (c Cluster) Size() int {
	return len(c.Members)
}

// PriceRange is the spread of defined price levels in a cluster.
// It encodes to JSON as a number when Min == Max and as "min-max" otherwise.
type PriceRange struct {
	Min int
	Max int
}

// String returns "2" or "1-3".
func (r PriceRange) String() string {
	if r.Min == r.Max {
		return strconv.Itoa(r.Min)
	}
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// MarshalJSON implements json.Marshaler.
func (r PriceRange) MarshalJSON() ([]byte, error) {
	if r.Min == r.Max {
		return json.Marshal(r.Min)
	}
	return json.Marshal(r.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *PriceRange) UnmarshalJSON(data []byte) error {
	var single int
	if err := json.Unmarshal(data, &single); err == nil {
		r.Min, r.Max = single, single
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("price range must be a number or \"min-max\" string: %w", err)
	}
	if _, err := fmt.Sscanf(s, "%d-%d", &r.Min, &r.Max); err != nil {
		return fmt.Errorf("parse price range %q: %w", s, err)
	}
	return nil
}

// ClusterStats summarises a cluster for marker popups.
type ClusterStats struct {
	Count int `json:"count"`

	// AvgRating is the mean of defined member ratings rounded to one decimal,
	// or 0 when no member is rated.
	AvgRating float64 `json:"avgRating"`

	// Categories lists member categories in order of first occurrence.
	Categories []string `json:"categories"`

	// PriceRange is nil when no member has a price level.
	PriceRange *PriceRange `json:"priceRange"`
}

// ClusterWithStats pairs a cluster with its statistics for API responses.
type ClusterWithStats struct {
	Cluster
	Stats ClusterStats `json:"stats"`
}
