// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package metrics

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

var errMissing = errors.New("missing")

func TestRecordEngineOperation(t *testing.T) {
	before := testutil.ToFloat64(EnginePlacesProcessed.WithLabelValues("test_op"))

	RecordEngineOperation("test_op", 12, 3*time.Millisecond)
	RecordEngineOperation("test_op", 8, time.Millisecond)

	if got := testutil.ToFloat64(EnginePlacesProcessed.WithLabelValues("test_op")) - before; got != 20 {
		t.Errorf("places processed delta = %v, want 20", got)
	}
}

func TestRecordFilterResults(t *testing.T) {
	kept := testutil.ToFloat64(FilterResults.WithLabelValues(FilterKept))
	dropped := testutil.ToFloat64(FilterResults.WithLabelValues(FilterDropped))

	RecordFilterResults(3, 5)

	if got := testutil.ToFloat64(FilterResults.WithLabelValues(FilterKept)) - kept; got != 3 {
		t.Errorf("kept delta = %v, want 3", got)
	}
	if got := testutil.ToFloat64(FilterResults.WithLabelValues(FilterDropped)) - dropped; got != 5 {
		t.Errorf("dropped delta = %v, want 5", got)
	}
}

func TestRecordClustersAndLayers(t *testing.T) {
	clusters := testutil.ToFloat64(ClustersCreated)
	RecordClusters(4)
	if got := testutil.ToFloat64(ClustersCreated) - clusters; got != 4 {
		t.Errorf("clusters delta = %v, want 4", got)
	}

	layer := LayerEvaluations.WithLabelValues("now", "open")
	before := testutil.ToFloat64(layer)
	RecordLayerEvaluation("now", "open")
	if got := testutil.ToFloat64(layer) - before; got != 1 {
		t.Errorf("layer evaluation delta = %v, want 1", got)
	}
}

func TestRecordStoreOperation(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		result string
	}{
		{name: "success", err: nil, result: StoreResultOK},
		{name: "not found", err: errMissing, result: StoreResultNotFound},
		{name: "wrapped not found", err: fmt.Errorf("get: %w", errMissing), result: StoreResultNotFound},
		{name: "other error", err: errors.New("disk full"), result: StoreResultError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := StoreOperations.WithLabelValues("test", tt.name, tt.result)
			before := testutil.ToFloat64(c)

			RecordStoreOperation("test", tt.name, tt.err, errMissing)

			if got := testutil.ToFloat64(c) - before; got != 1 {
				t.Errorf("%s counter delta = %v, want 1", tt.result, got)
			}
		})
	}
}

func TestRecordAPIRequest(t *testing.T) {
	c := APIRequestsTotal.WithLabelValues("POST", "/api/v1/clusters", "200")
	before := testutil.ToFloat64(c)

	RecordAPIRequest("POST", "/api/v1/clusters", "200", 25*time.Millisecond)

	if got := testutil.ToFloat64(c) - before; got != 1 {
		t.Errorf("request counter delta = %v, want 1", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	for i := 0; i < 10; i++ {
		TrackActiveRequest(true)
	}
	for i := 0; i < 10; i++ {
		TrackActiveRequest(false)
	}

	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v after balanced lifecycle, want %v", got, before)
	}
}

func TestGauges(t *testing.T) {
	SetStoreSessions(7)
	if got := testutil.ToFloat64(StoreSessions); got != 7 {
		t.Errorf("StoreSessions = %v, want 7", got)
	}

	SetAppInfo("test", "go1.24")
	if got := testutil.ToFloat64(AppInfo.WithLabelValues("test", "go1.24")); got != 1 {
		t.Errorf("AppInfo = %v, want 1", got)
	}
}

func TestConcurrentMetricRecording(t *testing.T) {
	const goroutines = 20
	c := EnginePlacesProcessed.WithLabelValues("concurrent")
	before := testutil.ToFloat64(c)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			RecordEngineOperation("concurrent", 1, time.Microsecond)
			RecordLayerEvaluation("evening", "usually_open")
			RecordStoreOperation("memory", "get_filter_state", nil, errMissing)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(c) - before; got != goroutines {
		t.Errorf("concurrent delta = %v, want %d", got, goroutines)
	}
}
