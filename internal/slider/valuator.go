// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

// Package slider places a place on each 0-100 slider axis.
//
// Every axis is a catalog rule: a base value, an optional attribute scaled
// by a multiplier, a per-category delta, and conditional adjustments. The
// sum is clamped to the rule's bounds. Unknown slider IDs sit at Neutral.
package slider

import (
	"math"

	"github.com/tomtom215/moodmap/internal/catalog"
	"github.com/tomtom215/moodmap/internal/models"
)

// Neutral is the value reported for unknown sliders.
const Neutral = 50.0

// Valuator evaluates slider rules from a catalog.
type Valuator struct {
	cat *catalog.Catalog
}

// NewValuator returns a Valuator over cat.
func NewValuator(cat *catalog.Catalog) *Valuator {
	return &Valuator{cat: cat}
}

// Value returns the position of p on the slider sliderID.
func (v *Valuator) Value(p models.Place, sliderID string) float64 {
	rule, ok := v.cat.Slider(sliderID)
	if !ok {
		return Neutral
	}
	return Evaluate(rule, p)
}

// Values returns the position of p on every catalog slider, keyed by ID.
func (v *Valuator) Values(p models.Place) map[string]float64 {
	out := make(map[string]float64, len(v.cat.Sliders))
	for _, rule := range v.cat.Sliders {
		out[rule.ID] = Evaluate(rule, p)
	}
	return out
}

// Evaluate applies a single rule to p.
func Evaluate(rule catalog.SliderRule, p models.Place) float64 {
	value := rule.Base

	if rule.Source != "" {
		src, ok := numericField(p, rule.Source)
		if !ok {
			src = rule.SourceDefault
		}
		value += src * rule.Multiplier
	}

	value += rule.CategoryDeltas[p.Category]

	for _, adj := range rule.Adjustments {
		if matches(adj, p) {
			value += adj.Delta
		}
	}

	return math.Min(math.Max(value, rule.Min), rule.Max)
}

func matches(adj catalog.Adjustment, p models.Place) bool {
	switch adj.Op {
	case catalog.OpTrue:
		return boolField(p, adj.Field)
	case catalog.OpGTE:
		v, ok := numericField(p, adj.Field)
		return ok && v >= adj.Value
	case catalog.OpLTE:
		v, ok := numericField(p, adj.Field)
		return ok && v <= adj.Value
	default:
		return false
	}
}

// numericField reports a numeric attribute and whether the place defines it.
func numericField(p models.Place, field string) (float64, bool) {
	switch field {
	case catalog.FieldRating:
		if p.Rating == nil {
			return 0, false
		}
		return *p.Rating, true
	case catalog.FieldPriceLevel:
		if p.PriceLevel == nil {
			return 0, false
		}
		return float64(*p.PriceLevel), true
	default:
		return 0, false
	}
}

func boolField(p models.Place, field string) bool {
	switch field {
	case catalog.FieldHasWifi:
		return p.HasWifi
	case catalog.FieldHasParking:
		return p.HasParking
	case catalog.FieldPetFriendly:
		return p.PetFriendly
	case catalog.FieldHasMusic:
		return p.HasMusic
	case catalog.FieldHasOutdoorSeating:
		return p.HasOutdoorSeating
	default:
		return false
	}
}
