// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package tags

import (
	"github.com/tomtom215/moodmap/internal/catalog"
	"github.com/tomtom215/moodmap/internal/models"
)

// Tags derived from place attributes.
const (
	HighQuality = "high_quality"
	LowQuality  = "low_quality"
	Budget      = "budget"
	Cheap       = "cheap"
	Expensive   = "expensive"
	Luxury      = "luxury"
	Wifi        = "wifi"
	Parking     = "parking"
	PetFriendly = "pet_friendly"
	Music       = "music"
	Outdoor     = "outdoor"
)

// Extractor derives tags using a catalog's category table and thresholds.
type Extractor struct {
	cat *catalog.Catalog
}

// NewExtractor returns an Extractor over cat.
func NewExtractor(cat *catalog.Catalog) *Extractor {
	return &Extractor{cat: cat}
}

// Extract returns the union of category, rating, price, amenity and
// atmosphere tags. Undefined attributes contribute nothing.
func (e *Extractor) Extract(p models.Place) *Set {
	s := NewSet(e.cat.CategoryTags(p.Category)...)
	th := e.cat.TagThresholds

	if p.Rating != nil {
		if *p.Rating >= th.HighQualityRating {
			s.Add(HighQuality)
		}
		if *p.Rating <= th.LowQualityRating {
			s.Add(LowQuality)
		}
	}

	if p.PriceLevel != nil {
		if *p.PriceLevel <= th.BudgetMaxPrice {
			s.Add(Budget, Cheap)
		}
		if *p.PriceLevel >= th.LuxuryMinPrice {
			s.Add(Expensive, Luxury)
		}
	}

	if p.HasWifi {
		s.Add(Wifi)
	}
	if p.HasParking {
		s.Add(Parking)
	}
	if p.PetFriendly {
		s.Add(PetFriendly)
	}
	if p.HasMusic {
		s.Add(Music)
	}
	if p.HasOutdoorSeating {
		s.Add(Outdoor)
	}

	s.Add(p.Atmosphere...)
	return s
}
