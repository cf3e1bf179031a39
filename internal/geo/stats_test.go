// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package geo

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tomtom215/moodmap/internal/models"
)

func ratedPlace(category string, rating *float64, price *int) models.Place {
	return models.Place{Category: category, Rating: rating, PriceLevel: price}
}

func TestStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		members []models.Place
		want    models.ClusterStats
	}{
		{
			name:    "empty cluster",
			members: nil,
			want:    models.ClusterStats{Categories: []string{}},
		},
		{
			name: "no ratings or prices",
			members: []models.Place{
				ratedPlace("Парк", nil, nil),
			},
			want: models.ClusterStats{Count: 1, Categories: []string{"Парк"}},
		},
		{
			name: "average rounded to one decimal",
			members: []models.Place{
				ratedPlace("Кафе", models.Float64(4.0), nil),
				ratedPlace("Кафе", models.Float64(4.5), nil),
				ratedPlace("Бар", models.Float64(4.6), nil),
			},
			want: models.ClusterStats{Count: 3, AvgRating: 4.4, Categories: []string{"Кафе", "Бар"}},
		},
		{
			name: "unrated members excluded from average",
			members: []models.Place{
				ratedPlace("Кафе", models.Float64(3.0), nil),
				ratedPlace("Кафе", nil, nil),
			},
			want: models.ClusterStats{Count: 2, AvgRating: 3.0, Categories: []string{"Кафе"}},
		},
		{
			name: "single price level",
			members: []models.Place{
				ratedPlace("Бар", nil, models.Int(2)),
				ratedPlace("Ресторан", nil, models.Int(2)),
				ratedPlace("Бар", nil, nil),
			},
			want: models.ClusterStats{Count: 3, Categories: []string{"Бар", "Ресторан"},
				PriceRange: &models.PriceRange{Min: 2, Max: 2}},
		},
		{
			name: "price spread",
			members: []models.Place{
				ratedPlace("Ресторан", nil, models.Int(3)),
				ratedPlace("Кафе", nil, models.Int(1)),
				ratedPlace("Ресторан", nil, models.Int(4)),
			},
			want: models.ClusterStats{Count: 3, Categories: []string{"Ресторан", "Кафе"},
				PriceRange: &models.PriceRange{Min: 1, Max: 4}},
		},
		{
			name: "free places count as a price",
			members: []models.Place{
				ratedPlace("Парк", nil, models.Int(0)),
			},
			want: models.ClusterStats{Count: 1, Categories: []string{"Парк"},
				PriceRange: &models.PriceRange{Min: 0, Max: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Stats(models.Cluster{Members: tt.members})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStats_PriceRangeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r    models.PriceRange
		want string
	}{
		{r: models.PriceRange{Min: 2, Max: 2}, want: "2"},
		{r: models.PriceRange{Min: 1, Max: 4}, want: `"1-4"`},
	}

	for _, tt := range tests {
		b, err := tt.r.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON() error = %v", err)
		}
		if string(b) != tt.want {
			t.Errorf("MarshalJSON(%+v) = %s, want %s", tt.r, b, tt.want)
		}
	}
}
