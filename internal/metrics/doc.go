// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered on the default registry at package init through
promauto, and the Record helpers keep label handling in one place.

# Metrics Endpoint

Metrics are exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

Engine Metrics:
  - moodmap_engine_operation_duration_seconds: Engine call duration (histogram)
    Labels: operation (cluster, filter, evaluate, discover, tags, sliders)
  - moodmap_engine_places_processed_total: Places passed into engine calls (counter)
    Labels: operation
  - moodmap_clusters_created_total: Clusters produced (counter)
  - moodmap_filter_results_total: Filter verdicts per place (counter)
    Labels: result (kept, dropped)
  - moodmap_layer_evaluations_total: Availability verdicts (counter)
    Labels: layer, status

API Metrics:
  - moodmap_api_requests_total: HTTP requests (counter)
    Labels: method, route, status_code
  - moodmap_api_request_duration_seconds: Request latency (histogram)
    Labels: method, route
  - moodmap_api_active_requests: In-flight requests (gauge)

Store Metrics:
  - moodmap_store_operations_total: Store calls (counter)
    Labels: backend (memory, badger), operation, result (ok, not_found, error)
  - moodmap_store_sessions: Sessions held by the memory store (gauge)

Application Metrics:
  - moodmap_app_info: Build information (gauge, always 1)
    Labels: version, go_version

# Example Queries

	# p95 clustering latency
	histogram_quantile(0.95, rate(moodmap_engine_operation_duration_seconds_bucket{operation="cluster"}[5m]))

	# share of places dropped by filters
	rate(moodmap_filter_results_total{result="dropped"}[5m]) / rate(moodmap_filter_results_total[5m])
*/
package metrics
