// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/moodmap/internal/filter"
	"github.com/tomtom215/moodmap/internal/geo"
)

// DefaultTimezone resolves to the host's local zone.
const DefaultTimezone = "Local"

// Config collects the tunables of every engine component.
type Config struct {
	Cluster geo.ClusterConfig `koanf:"cluster"`
	Filter  filter.Config     `koanf:"filter"`

	// Timezone is the IANA zone used by Now to derive hour and weekend.
	Timezone string `koanf:"timezone"`

	// CatalogPath is an optional YAML overlay for the built-in catalog. New
	// does not read it; the caller loads the catalog and passes it in.
	CatalogPath string `koanf:"catalog_path"`
}

// DefaultConfig returns the default clustering, scoring and zone settings.
func DefaultConfig() Config {
	return Config{
		Cluster:  geo.DefaultClusterConfig(),
		Filter:   filter.DefaultConfig(),
		Timezone: DefaultTimezone,
	}
}

// Validate checks the configuration for obviously wrong values.
func (c Config) Validate() error {
	var errs []error

	if c.Cluster.RadiusMeters <= 0 {
		errs = append(errs, fmt.Errorf("cluster radius must be positive, got %v", c.Cluster.RadiusMeters))
	}
	if c.Cluster.ScaleWithZoom && c.Cluster.MinRadiusMeters > c.Cluster.MaxRadiusMeters {
		errs = append(errs, fmt.Errorf("cluster min radius %v exceeds max radius %v",
			c.Cluster.MinRadiusMeters, c.Cluster.MaxRadiusMeters))
	}
	if c.Filter.Tolerance <= 0 {
		errs = append(errs, fmt.Errorf("slider tolerance must be positive, got %v", c.Filter.Tolerance))
	}
	if c.Filter.MoodWeight <= 0 || c.Filter.SliderWeight <= 0 {
		errs = append(errs, fmt.Errorf("score weights must be positive, got mood=%v slider=%v",
			c.Filter.MoodWeight, c.Filter.SliderWeight))
	}
	if _, err := loadLocation(c.Timezone); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}
