// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moodmap/internal/catalog"
	"github.com/tomtom215/moodmap/internal/engine"
	"github.com/tomtom215/moodmap/internal/models"
	"github.com/tomtom215/moodmap/internal/store"
)

// envelope mirrors models.APIResponse with Data left raw.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

type testServer struct {
	handler http.Handler
	h       *Handler
	store   store.Store
}

// handlerNow pins the clock used for collection timestamps.
func (s *testServer) handlerNow(t *testing.T, now time.Time) {
	t.Helper()
	s.h.now = func() time.Time { return now }
}

type serverOption func(*HandlerConfig, *ChiMiddlewareConfig)

func newTestServer(t *testing.T, st store.Store, opts ...serverOption) *testServer {
	t.Helper()

	cfg := engine.DefaultConfig()
	cfg.Timezone = "UTC"
	eng, err := engine.New(catalog.Default(), cfg, zerolog.Nop(),
		engine.WithClock(func() time.Time { return time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC) }))
	if err != nil {
		t.Fatalf("engine.New() error = %v", err)
	}

	if st == nil {
		st = store.NewMemoryStore(100, time.Hour)
	}

	hcfg := HandlerConfig{MaxPlaces: 100}
	mcfg := DefaultChiMiddlewareConfig()
	mcfg.CORSAllowedOrigins = []string{"https://app.example.com"}
	mcfg.RateLimitDisabled = true
	for _, opt := range opts {
		opt(&hcfg, mcfg)
	}

	h := NewHandler(eng, st, hcfg)
	router := NewRouter(h, NewChiMiddleware(mcfg))
	return &testServer{handler: router.Setup(), h: h, store: st}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

func wantError(t *testing.T, rec *httptest.ResponseRecorder, env envelope, status int, code string) {
	t.Helper()
	if rec.Code != status {
		t.Errorf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	if env.Status != "error" || env.Error == nil {
		t.Fatalf("envelope = %+v, want error", env)
	}
	if env.Error.Code != code {
		t.Errorf("error code = %q, want %q", env.Error.Code, code)
	}
}

var errStoreDown = errors.New("store down")

// failingStore fails every call.
type failingStore struct{}

func (failingStore) GetFilterState(context.Context, string) (models.FilterState, error) {
	return models.FilterState{}, errStoreDown
}
func (failingStore) SaveFilterState(context.Context, string, models.FilterState) error {
	return errStoreDown
}
func (failingStore) DeleteFilterState(context.Context, string) error { return errStoreDown }
func (failingStore) SaveCollection(context.Context, models.Collection) error {
	return errStoreDown
}
func (failingStore) GetCollection(context.Context, string, string) (models.Collection, error) {
	return models.Collection{}, errStoreDown
}
func (failingStore) ListCollections(context.Context, string) ([]models.Collection, error) {
	return nil, errStoreDown
}
func (failingStore) DeleteCollection(context.Context, string, string) error { return errStoreDown }
func (failingStore) Close() error                                          { return nil }

func fixturePlaces() []models.Place {
	origin := models.Coordinates{Lat: 50.45, Lng: 30.52}
	return []models.Place{
		{ID: "bar", Category: catalog.CategoryBar, Coordinates: origin, Rating: models.Float64(4.0)},
		{ID: "cafe", Category: catalog.CategoryCafe, Coordinates: models.Coordinates{Lat: 50.4505, Lng: 30.52}, Rating: models.Float64(5.0)},
		{ID: "park", Category: catalog.CategoryPark, Coordinates: models.Coordinates{Lat: 50.50, Lng: 30.52}},
		{ID: "party", Atmosphere: []string{"loud", "party"}, Coordinates: models.Coordinates{Lat: 50.60, Lng: 30.52}},
	}
}
