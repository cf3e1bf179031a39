// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package geo

import (
	"math"

	"github.com/tomtom215/moodmap/internal/models"
)

// Stats summarizes a cluster's members.
func Stats(cluster models.Cluster) models.ClusterStats {
	stats := models.ClusterStats{
		Count:      len(cluster.Members),
		Categories: make([]string, 0),
	}

	var ratingSum float64
	var rated int
	seen := make(map[string]bool)

	for _, m := range cluster.Members {
		if m.Rating != nil {
			ratingSum += *m.Rating
			rated++
		}

		if !seen[m.Category] {
			seen[m.Category] = true
			stats.Categories = append(stats.Categories, m.Category)
		}

		if m.PriceLevel != nil {
			level := *m.PriceLevel
			if stats.PriceRange == nil {
				stats.PriceRange = &models.PriceRange{Min: level, Max: level}
				continue
			}
			if level < stats.PriceRange.Min {
				stats.PriceRange.Min = level
			}
			if level > stats.PriceRange.Max {
				stats.PriceRange.Max = level
			}
		}
	}

	if rated > 0 {
		stats.AvgRating = math.Round(ratingSum/float64(rated)*10) / 10
	}

	return stats
}
