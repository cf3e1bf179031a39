// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

package config

import (
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/moodmap/internal/engine"
	"github.com/tomtom215/moodmap/internal/logging"
	"github.com/tomtom215/moodmap/internal/store"
)

// Config is the full server configuration.
type Config struct {
	Server  ServerConfig   `koanf:"server"`
	API     APIConfig      `koanf:"api"`
	Engine  engine.Config  `koanf:"engine"`
	Store   StoreConfig    `koanf:"store"`
	Logging logging.Config `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// APIConfig holds request handling settings.
type APIConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// MaxPlaces caps the place list of a single request. Clustering is
	// quadratic in the worst case, so this bounds request cost.
	MaxPlaces int `koanf:"max_places"`

	// StrictValidation rejects places with out-of-range fields with 400
	// instead of letting the engine degrade them.
	StrictValidation bool `koanf:"strict_validation"`
}

// StoreConfig selects and tunes the session store.
type StoreConfig struct {
	Backend  string        `koanf:"backend"`
	Path     string        `koanf:"path"`
	Capacity int           `koanf:"capacity"`
	TTL      time.Duration `koanf:"ttl"`

	// MaintenanceInterval is how often expired sessions are swept or the
	// badger value log is garbage collected.
	MaintenanceInterval time.Duration `koanf:"maintenance_interval"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		API: APIConfig{
			CORSOrigins:       []string{"*"},
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
			MaxPlaces:         5000,
		},
		Engine: engine.DefaultConfig(),
		Store: StoreConfig{
			Backend:             store.BackendMemory,
			Path:                "/data/moodmap",
			Capacity:            store.DefaultCapacity,
			TTL:                 store.DefaultTTL,
			MaintenanceInterval: 5 * time.Minute,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Addr returns host:port for the HTTP listener.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
