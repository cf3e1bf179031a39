// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package geo

import (
	"math"
	"testing"

	"github.com/tomtom215/moodmap/internal/models"
)

func TestHaversineMeters(t *testing.T) {
	t.Parallel()

	kyiv := models.Coordinates{Lat: 50.4501, Lng: 30.5234}
	lviv := models.Coordinates{Lat: 49.8397, Lng: 24.0297}

	tests := []struct {
		name      string
		a, b      models.Coordinates
		want      float64
		tolerance float64
	}{
		{name: "same point", a: kyiv, b: kyiv, want: 0, tolerance: 1e-9},
		{name: "kyiv to lviv", a: kyiv, b: lviv, want: 468_000, tolerance: 3_000},
		{name: "one degree of latitude", a: models.Coordinates{}, b: models.Coordinates{Lat: 1}, want: metersPerDegree, tolerance: 1e-6},
		{name: "quarter meridian", a: models.Coordinates{}, b: models.Coordinates{Lat: 90}, want: math.Pi / 2 * EarthRadiusMeters, tolerance: 1e-3},
		{name: "across antimeridian", a: models.Coordinates{Lng: 179.999}, b: models.Coordinates{Lng: -179.999}, want: 0.002 * metersPerDegree, tolerance: 1e-3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := HaversineMeters(tt.a, tt.b)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("HaversineMeters() = %f, want %f ± %f", got, tt.want, tt.tolerance)
			}
			if back := HaversineMeters(tt.b, tt.a); math.Abs(back-got) > 1e-9 {
				t.Errorf("distance not symmetric: %f vs %f", got, back)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	t.Parallel()

	origin := models.Coordinates{Lat: 50.45, Lng: 30.52}

	tests := []struct {
		name        string
		north, east float64
	}{
		{name: "north 200m", north: 200},
		{name: "east 150m", east: 150},
		{name: "south west", north: -120, east: -90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			want := math.Hypot(tt.north, tt.east)
			got := HaversineMeters(origin, Offset(origin, tt.north, tt.east))
			if math.Abs(got-want) > 0.5 {
				t.Errorf("distance after Offset = %f, want ~%f", got, want)
			}
		})
	}
}
