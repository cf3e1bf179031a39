// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

/*
Package config loads the server configuration.

Values are layered with koanf, later layers winning:

 1. Built-in defaults (DefaultConfig)
 2. A YAML file: $CONFIG_PATH, else config.yaml or config.yml in the
    working directory, else /etc/moodmap/config.yaml
 3. Environment variables listed in the table below

Unlisted environment variables are ignored.

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT

API:
  - CORS_ORIGINS: comma-separated list (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - API_MAX_PLACES: largest accepted place list (default: 5000)
  - API_STRICT_VALIDATION: reject out-of-range places instead of degrading

Engine:
  - CLUSTER_RADIUS_METERS, CLUSTER_SCALE_WITH_ZOOM, CLUSTER_REFERENCE_ZOOM
  - CLUSTER_MIN_RADIUS_METERS, CLUSTER_MAX_RADIUS_METERS, CLUSTER_INDEX_THRESHOLD
  - SLIDER_TOLERANCE, MOOD_WEIGHT, SLIDER_WEIGHT
  - MOODMAP_TIMEZONE: IANA zone for the "now" layer (default: Local)
  - CATALOG_PATH: YAML overlay for the built-in catalog

Store:
  - STORE_BACKEND: memory or badger
  - STORE_PATH, STORE_CAPACITY, STORE_TTL, STORE_MAINTENANCE_INTERVAL

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Example

	server:
	  port: 8080
	engine:
	  timezone: Europe/Kyiv
	  cluster:
	    scale_with_zoom: true
	store:
	  backend: badger
	  path: /data/moodmap
*/
package config
