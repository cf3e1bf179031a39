// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

package validation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tomtom215/moodmap/internal/models"
)

func TestValidatePlaces(t *testing.T) {
	t.Parallel()

	valid := models.Place{
		ID:          "p1",
		Coordinates: models.Coordinates{Lat: 50.45, Lng: 30.52},
		Rating:      models.Float64(4.5),
		PriceLevel:  models.Int(2),
		WorkingHours: &models.WorkingHours{
			Weekday: &models.HourWindow{Start: 17, End: 2},
		},
	}

	tests := []struct {
		name   string
		mutate func(*models.Place)
		fields []string
	}{
		{name: "valid", mutate: func(*models.Place) {}},
		{name: "missing id", mutate: func(p *models.Place) { p.ID = "" }, fields: []string{"places[1].id"}},
		{
			name:   "latitude out of range",
			mutate: func(p *models.Place) { p.Coordinates.Lat = 91 },
			fields: []string{"places[1].coordinates.lat"},
		},
		{
			name:   "rating and price out of range",
			mutate: func(p *models.Place) { p.Rating = models.Float64(7); p.PriceLevel = models.Int(-1) },
			fields: []string{"places[1].rating", "places[1].priceLevel"},
		},
		{
			name: "hour out of range",
			mutate: func(p *models.Place) {
				p.WorkingHours = &models.WorkingHours{Weekend: &models.HourWindow{Start: 9, End: 24}}
			},
			fields: []string{"places[1].workingHours.weekend.end"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bad := valid
			tt.mutate(&bad)
			err := ValidatePlaces([]models.Place{valid, bad})

			if len(tt.fields) == 0 {
				if err != nil {
					t.Fatalf("ValidatePlaces() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidatePlaces() error = nil, want failures")
			}
			var got []string
			for _, fe := range err.Errors() {
				got = append(got, fe.Field())
			}
			if diff := cmp.Diff(tt.fields, got); diff != "" {
				t.Errorf("failed fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidatePlaces_Empty(t *testing.T) {
	t.Parallel()
	if err := ValidatePlaces(nil); err != nil {
		t.Errorf("ValidatePlaces(nil) error = %v, want nil", err)
	}
}
