// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package geo

import (
	"fmt"
	"math"

	"github.com/tomtom215/moodmap/internal/models"
)

// Default clustering parameters.
const (
	DefaultRadiusMeters    = 200.0
	DefaultReferenceZoom   = 15.0
	DefaultMinRadiusMeters = 25.0
	DefaultMaxRadiusMeters = 50000.0
	DefaultIndexThreshold  = 256
)

// ClusterConfig controls the cluster radius and indexing.
type ClusterConfig struct {
	// RadiusMeters is the seed-to-member distance limit, inclusive.
	RadiusMeters float64 `koanf:"radius_meters"`

	// ScaleWithZoom doubles the radius for every zoom level below
	// ReferenceZoom and halves it for every level above, clamped to
	// [MinRadiusMeters, MaxRadiusMeters]. When false the radius is fixed.
	ScaleWithZoom   bool    `koanf:"scale_with_zoom"`
	ReferenceZoom   float64 `koanf:"reference_zoom"`
	MinRadiusMeters float64 `koanf:"min_radius_meters"`
	MaxRadiusMeters float64 `koanf:"max_radius_meters"`

	// IndexThreshold is the input size from which the grid index is used.
	// Zero or negative disables the index.
	IndexThreshold int `koanf:"index_threshold"`
}

// DefaultClusterConfig returns a fixed 200 m radius with the grid index
// enabled for inputs of 256 places or more.
func DefaultClusterConfig() ClusterConfig {
	return ClusterConfig{
		RadiusMeters:    DefaultRadiusMeters,
		ReferenceZoom:   DefaultReferenceZoom,
		MinRadiusMeters: DefaultMinRadiusMeters,
		MaxRadiusMeters: DefaultMaxRadiusMeters,
		IndexThreshold:  DefaultIndexThreshold,
	}
}

// Clusterer groups places by proximity. It holds only its configuration and
// is safe for concurrent use.
type Clusterer struct {
	cfg ClusterConfig
}

// NewClusterer returns a Clusterer. A non-positive radius falls back to
// DefaultRadiusMeters, and missing zoom bounds fall back to their defaults.
func NewClusterer(cfg ClusterConfig) *Clusterer {
	if cfg.RadiusMeters <= 0 {
		cfg.RadiusMeters = DefaultRadiusMeters
	}
	if cfg.MinRadiusMeters <= 0 {
		cfg.MinRadiusMeters = DefaultMinRadiusMeters
	}
	if cfg.MaxRadiusMeters < cfg.MinRadiusMeters {
		cfg.MaxRadiusMeters = math.Max(DefaultMaxRadiusMeters, cfg.MinRadiusMeters)
	}
	return &Clusterer{cfg: cfg}
}

// Config returns the effective configuration.
func (c *Clusterer) Config() ClusterConfig {
	return c.cfg
}

// RadiusForZoom returns the clustering radius in meters at the given zoom.
func (c *Clusterer) RadiusForZoom(zoom float64) float64 {
	if !c.cfg.ScaleWithZoom || math.IsNaN(zoom) || math.IsInf(zoom, 0) {
		return c.cfg.RadiusMeters
	}
	r := c.cfg.RadiusMeters * math.Exp2(c.cfg.ReferenceZoom-zoom)
	return math.Min(math.Max(r, c.cfg.MinRadiusMeters), c.cfg.MaxRadiusMeters)
}

// CreateClusters groups places into clusters at the given zoom. Clusters are
// returned in seed order and members keep input order with the seed first.
// The input slice is not modified.
func (c *Clusterer) CreateClusters(places []models.Place, zoom float64) []models.Cluster {
	clusters := make([]models.Cluster, 0)
	if len(places) == 0 {
		return clusters
	}

	radius := c.RadiusForZoom(zoom)

	points := make([]models.Coordinates, len(places))
	for i := range places {
		points[i] = places[i].Coordinates
	}

	var index *gridIndex
	if c.cfg.IndexThreshold > 0 && len(places) >= c.cfg.IndexThreshold {
		index = newGridIndex(points, radius)
	}

	assigned := make([]bool, len(places))
	for i := range places {
		if assigned[i] {
			continue
		}
		assigned[i] = true
		seed := points[i]
		members := []int{i}

		join := func(j int) {
			if j <= i || assigned[j] {
				return
			}
			if HaversineMeters(seed, points[j]) <= radius {
				assigned[j] = true
				members = append(members, j)
			}
		}

		candidates, ok := []int(nil), false
		if index != nil {
			candidates, ok = index.nearby(seed, radius)
		}
		if ok {
			for _, j := range candidates {
				join(j)
			}
		} else {
			for j := i + 1; j < len(places); j++ {
				join(j)
			}
		}

		clusters = append(clusters, buildCluster(len(clusters), places, points, members))
	}

	return clusters
}

func buildCluster(n int, places []models.Place, points []models.Coordinates, members []int) models.Cluster {
	seed := points[members[0]]
	cluster := models.Cluster{
		ID:     fmt.Sprintf("cluster-%d", n),
		Center: seed,
		BoundingBox: models.BoundingBox{
			North: seed.Lat,
			South: seed.Lat,
			East:  seed.Lng,
			West:  seed.Lng,
		},
		Members: make([]models.Place, len(members)),
	}

	var sumLat, sumLng float64
	for k, idx := range members {
		p := points[idx]
		cluster.Members[k] = places[idx]
		sumLat += p.Lat
		sumLng += p.Lng

		bb := &cluster.BoundingBox
		bb.North = math.Max(bb.North, p.Lat)
		bb.South = math.Min(bb.South, p.Lat)
		bb.East = math.Max(bb.East, p.Lng)
		bb.West = math.Min(bb.West, p.Lng)
	}

	if len(members) > 1 {
		cluster.Center = models.Coordinates{
			Lat: sumLat / float64(len(members)),
			Lng: sumLng / float64(len(members)),
		}
	}

	return cluster
}
