// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package geo

import (
	"math"

	"github.com/tomtom215/moodmap/internal/models"
)

// EarthRadiusMeters is the mean Earth radius used for haversine distances.
const EarthRadiusMeters = 6371000.0

// metersPerDegree is the length of one degree of latitude on the sphere.
const metersPerDegree = EarthRadiusMeters * math.Pi / 180

// HaversineMeters returns the great-circle distance between a and b in meters.
func HaversineMeters(a, b models.Coordinates) float64 {
	lat1Rad := a.Lat * math.Pi / 180
	lat2Rad := b.Lat * math.Pi / 180
	deltaLat := (b.Lat - a.Lat) * math.Pi / 180
	deltaLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// Offset returns the point reached by moving northMeters along the meridian
// and eastMeters along the parallel from origin. It is a flat approximation
// meant for building fixtures a known distance apart.
func Offset(origin models.Coordinates, northMeters, eastMeters float64) models.Coordinates {
	lat := origin.Lat + northMeters/metersPerDegree
	lng := origin.Lng + eastMeters/(metersPerDegree*math.Cos(origin.Lat*math.Pi/180))
	return models.Coordinates{Lat: lat, Lng: lng}
}
