// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

package config

import (
	"errors"
	"fmt"

	"github.com/tomtom215/moodmap/internal/store"
	"github.com/tomtom215/moodmap/internal/validation"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout))
	}

	if c.API.MaxPlaces < 1 {
		errs = append(errs, fmt.Errorf("api.max_places must be positive, got %d", c.API.MaxPlaces))
	}
	if !c.API.RateLimitDisabled {
		if c.API.RateLimitRequests < 1 {
			errs = append(errs, fmt.Errorf("api.rate_limit_requests must be positive, got %d", c.API.RateLimitRequests))
		}
		if c.API.RateLimitWindow <= 0 {
			errs = append(errs, fmt.Errorf("api.rate_limit_window must be positive, got %s", c.API.RateLimitWindow))
		}
	}

	if err := c.Engine.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("engine: %w", err))
	}

	switch c.Store.Backend {
	case store.BackendMemory:
	case store.BackendBadger:
		if c.Store.Path == "" {
			errs = append(errs, errors.New("store.path is required for the badger backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.backend must be %q or %q, got %q",
			store.BackendMemory, store.BackendBadger, c.Store.Backend))
	}
	if c.Store.TTL < 0 {
		errs = append(errs, fmt.Errorf("store.ttl must not be negative, got %s", c.Store.TTL))
	}

	if err := validation.ValidateStruct(&c.Logging); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	return errors.Join(errs...)
}
