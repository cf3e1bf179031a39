// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package catalog

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/moodmap/internal/models"
)

// Load returns the default catalog overlaid with the YAML file at path.
// An empty path returns the validated defaults.
func Load(path string) (*Catalog, error) {
	base := Default()
	if path == "" {
		return base, base.Validate()
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load catalog file %s: %w", path, err)
	}

	overlay := &Catalog{}
	if err := k.Unmarshal("", overlay); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog file %s: %w", path, err)
	}

	merged := Merge(base, overlay)
	applyExplicitZeros(k, merged, overlay)
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return merged, nil
}

// applyExplicitZeros copies scalars the file sets to zero, which Merge
// cannot tell apart from absent keys.
func applyExplicitZeros(k *koanf.Koanf, dst, o *Catalog) {
	set := func(key string) bool { return k.Exists(key) }

	if set("tag_thresholds.high_quality_rating") {
		dst.TagThresholds.HighQualityRating = o.TagThresholds.HighQualityRating
	}
	if set("tag_thresholds.low_quality_rating") {
		dst.TagThresholds.LowQualityRating = o.TagThresholds.LowQualityRating
	}
	if set("tag_thresholds.budget_max_price") {
		dst.TagThresholds.BudgetMaxPrice = o.TagThresholds.BudgetMaxPrice
	}
	if set("tag_thresholds.luxury_min_price") {
		dst.TagThresholds.LuxuryMinPrice = o.TagThresholds.LuxuryMinPrice
	}
	if set("crowd.peak_boost") {
		dst.Crowd.PeakBoost = o.Crowd.PeakBoost
	}
	if set("crowd.weekend_boost") {
		dst.Crowd.WeekendBoost = o.Crowd.WeekendBoost
	}
	if set("crowd.low_below") {
		dst.Crowd.LowBelow = o.Crowd.LowBelow
	}
	if set("crowd.high_from") {
		dst.Crowd.HighFrom = o.Crowd.HighFrom
	}
}

// Merge overlays o onto base and returns base.
// Map entries merge per key, non-empty lists replace, non-zero scalars replace.
// Load additionally honours scalars a file sets to zero.
func Merge(base, o *Catalog) *Catalog {
	if o == nil {
		return base
	}

	for category, tags := range o.Categories {
		if base.Categories == nil {
			base.Categories = make(map[string][]string)
		}
		base.Categories[category] = tags
	}
	for category, h := range o.DefaultHours {
		if base.DefaultHours == nil {
			base.DefaultHours = make(map[string]models.WorkingHours)
		}
		base.DefaultHours[category] = h
	}
	for category, peaks := range o.PeakHours {
		if base.PeakHours == nil {
			base.PeakHours = make(map[string][]models.HourWindow)
		}
		base.PeakHours[category] = peaks
	}

	if len(o.Moods) > 0 {
		base.Moods = o.Moods
	}
	if len(o.Sliders) > 0 {
		base.Sliders = o.Sliders
	}
	if len(o.Layers) > 0 {
		base.Layers = o.Layers
	}
	if len(o.Offers) > 0 {
		base.Offers = o.Offers
	}

	if o.FallbackHours.Weekday != nil || o.FallbackHours.Weekend != nil {
		base.FallbackHours = o.FallbackHours
	}

	mergeThresholds(&base.TagThresholds, o.TagThresholds)
	mergeCrowd(&base.Crowd, o.Crowd)

	return base
}

func mergeThresholds(dst *TagThresholds, src TagThresholds) {
	if src.HighQualityRating != 0 {
		dst.HighQualityRating = src.HighQualityRating
	}
	if src.LowQualityRating != 0 {
		dst.LowQualityRating = src.LowQualityRating
	}
	if src.BudgetMaxPrice != 0 {
		dst.BudgetMaxPrice = src.BudgetMaxPrice
	}
	if src.LuxuryMinPrice != 0 {
		dst.LuxuryMinPrice = src.LuxuryMinPrice
	}
}

func mergeCrowd(dst *CrowdModel, src CrowdModel) {
	if src.PeakBoost != 0 {
		dst.PeakBoost = src.PeakBoost
	}
	if src.WeekendBoost != 0 {
		dst.WeekendBoost = src.WeekendBoost
	}
	if len(src.WeekendCategories) > 0 {
		dst.WeekendCategories = src.WeekendCategories
	}
	if src.LowBelow != 0 {
		dst.LowBelow = src.LowBelow
	}
	if src.HighFrom != 0 {
		dst.HighFrom = src.HighFrom
	}
}
