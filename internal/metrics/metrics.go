// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "moodmap"

var (
	// Engine Metrics
	EngineOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "engine_operation_duration_seconds",
			Help:      "Duration of engine operations in seconds",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"operation"},
	)

	EnginePlacesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "engine_places_processed_total",
			Help:      "Total number of places passed into engine operations",
		},
		[]string{"operation"},
	)

	ClustersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clusters_created_total",
			Help:      "Total number of clusters produced",
		},
	)

	FilterResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filter_results_total",
			Help:      "Total number of places kept or dropped by filters",
		},
		[]string{"result"},
	)

	LayerEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "layer_evaluations_total",
			Help:      "Total number of time layer evaluations by verdict",
		},
		[]string{"layer", "status"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "Duration of API requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "api_active_requests",
			Help:      "Number of API requests currently being served",
		},
	)

	// Store Metrics
	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Total number of store operations by result",
		},
		[]string{"backend", "operation", "result"},
	)

	StoreSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_sessions",
			Help:      "Number of sessions held by the memory store",
		},
	)

	// Application Info
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "app_info",
			Help:      "Application build information",
		},
		[]string{"version", "go_version"},
	)
)

// Filter verdict labels.
const (
	FilterKept    = "kept"
	FilterDropped = "dropped"
)

// Store result labels.
const (
	StoreResultOK       = "ok"
	StoreResultNotFound = "not_found"
	StoreResultError    = "error"
)

// RecordEngineOperation records one engine call over n places.
func RecordEngineOperation(operation string, n int, duration time.Duration) {
	EngineOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	EnginePlacesProcessed.WithLabelValues(operation).Add(float64(n))
}

// RecordClusters records the number of clusters one call produced.
func RecordClusters(n int) {
	ClustersCreated.Add(float64(n))
}

// RecordFilterResults records how many places a filter call kept and dropped.
func RecordFilterResults(kept, dropped int) {
	FilterResults.WithLabelValues(FilterKept).Add(float64(kept))
	FilterResults.WithLabelValues(FilterDropped).Add(float64(dropped))
}

// RecordLayerEvaluation records one availability verdict.
func RecordLayerEvaluation(layer, status string) {
	LayerEvaluations.WithLabelValues(layer, status).Inc()
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, route, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordStoreOperation records a store call. err is classified with
// notFound, which is matched by errors.Is.
func RecordStoreOperation(backend, operation string, err, notFound error) {
	result := StoreResultOK
	switch {
	case err == nil:
	case notFound != nil && errors.Is(err, notFound):
		result = StoreResultNotFound
	default:
		result = StoreResultError
	}
	StoreOperations.WithLabelValues(backend, operation, result).Inc()
}

// SetStoreSessions sets the memory store session gauge.
func SetStoreSessions(n int) {
	StoreSessions.Set(float64(n))
}

// SetAppInfo publishes build information.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}
