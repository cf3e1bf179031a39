// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package catalog

import (
	"fmt"

	"github.com/tomtom215/moodmap/internal/validation"
)

// Validate checks field constraints and cross-table consistency.
func (c *Catalog) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, verr.Error())
	}

	if c.FallbackHours.Weekday == nil && c.FallbackHours.Weekend == nil {
		return fmt.Errorf("%w: fallback_hours must define at least one window", ErrInvalidCatalog)
	}

	kinds := make(map[string]bool, len(c.Layers))
	for _, l := range c.Layers {
		kinds[l.Kind] = true
	}
	if !kinds[LayerKindNow] {
		return fmt.Errorf("%w: at least one layer of kind %q is required", ErrInvalidCatalog, LayerKindNow)
	}

	if c.TagThresholds.LowQualityRating >= c.TagThresholds.HighQualityRating {
		return fmt.Errorf("%w: low_quality_rating (%.1f) must be below high_quality_rating (%.1f)",
			ErrInvalidCatalog, c.TagThresholds.LowQualityRating, c.TagThresholds.HighQualityRating)
	}

	return nil
}
