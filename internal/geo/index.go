// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package geo

import (
	"math"
	"sort"

	"github.com/tomtom215/moodmap/internal/models"
)

// polarLimit is the latitude beyond which grid queries give up and the
// caller scans every place.
const polarLimit = 89.0

type cellKey struct {
	X, Y int
}

// gridIndex buckets point indices into square cells of cellSize degrees.
// It is built per clustering call and never shared.
type gridIndex struct {
	cellSize float64
	cells    map[cellKey][]int
}

// newGridIndex builds a grid whose cells are radiusMeters tall. It returns
// nil when any coordinate is not a finite in-range value.
func newGridIndex(points []models.Coordinates, radiusMeters float64) *gridIndex {
	cellSize := radiusMeters / metersPerDegree
	if cellSize <= 0 || math.IsNaN(cellSize) || math.IsInf(cellSize, 0) {
		return nil
	}

	g := &gridIndex{
		cellSize: cellSize,
		cells:    make(map[cellKey][]int),
	}
	for i, p := range points {
		if !inRange(p) {
			return nil
		}
		key := g.cellKey(p.Lat, p.Lng)
		g.cells[key] = append(g.cells[key], i)
	}
	return g
}

func inRange(p models.Coordinates) bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

func (g *gridIndex) cellKey(lat, lng float64) cellKey {
	return cellKey{
		X: int(math.Floor(lng / g.cellSize)),
		Y: int(math.Floor(lat / g.cellSize)),
	}
}

// nearby returns the indices of every point that may lie within
// radiusMeters of p, in ascending order. ok is false when the search box
// reaches a pole or wraps the antimeridian; the caller must then scan all
// points.
func (g *gridIndex) nearby(p models.Coordinates, radiusMeters float64) (indices []int, ok bool) {
	delta := radiusMeters / EarthRadiusMeters
	dLat := delta * 180 / math.Pi

	maxLat := math.Abs(p.Lat) + dLat
	if maxLat >= polarLimit {
		return nil, false
	}

	// Widest longitude span of a spherical cap of angular radius delta,
	// evaluated at the cap's most poleward latitude.
	s := math.Sin(delta/2) / math.Cos(maxLat*math.Pi/180)
	if s >= 1 {
		return nil, false
	}
	dLng := 2 * math.Asin(s) * 180 / math.Pi

	// Absorb floating error at cell edges.
	dLat *= 1 + 1e-9
	dLng *= 1 + 1e-9

	if p.Lng-dLng < -180 || p.Lng+dLng > 180 {
		return nil, false
	}

	lo := g.cellKey(p.Lat-dLat, p.Lng-dLng)
	hi := g.cellKey(p.Lat+dLat, p.Lng+dLng)

	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			indices = append(indices, g.cells[cellKey{X: x, Y: y}]...)
		}
	}

	sort.Ints(indices)
	return indices, true
}
