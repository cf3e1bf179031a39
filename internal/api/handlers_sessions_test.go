// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tomtom215/moodmap/internal/models"
)

const testSession = "0b9f4f3e-6c1a-4d43-9c55-2a4f1f6c8e01"

func TestCreateSession(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, nil)

	t.Run("without body", func(t *testing.T) {
		t.Parallel()
		rec, env := srv.do(t, http.MethodPost, "/api/v1/sessions", nil)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
		}
		var got sessionResponse
		decodeData(t, env, &got)
		if len(got.SessionID) != 36 {
			t.Errorf("sessionId = %q, want a UUID", got.SessionID)
		}
		if !got.Filters.IsEmpty() {
			t.Errorf("filters = %+v, want empty", got.Filters)
		}
	})

	t.Run("empty chunked or blank body", func(t *testing.T) {
		t.Parallel()
		for _, body := range []string{"", "  \n"} {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(body))
			req.ContentLength = -1
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			srv.handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusCreated {
				t.Errorf("body %q: status = %d, want 201 (body %s)", body, rec.Code, rec.Body.String())
			}
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		rec, env := srv.do(t, http.MethodPost, "/api/v1/sessions", "{not json")
		wantError(t, rec, env, http.StatusBadRequest, ErrCodeBadRequest)
	})

	t.Run("with initial filters", func(t *testing.T) {
		t.Parallel()
		initial := models.FilterState{ActiveMoods: []string{"calm"}}
		rec, env := srv.do(t, http.MethodPost, "/api/v1/sessions", CreateSessionRequest{Filters: &initial})
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", rec.Code)
		}
		var created sessionResponse
		decodeData(t, env, &created)
		if loc := rec.Header().Get("Location"); loc != "/api/v1/sessions/"+created.SessionID+"/filters" {
			t.Errorf("Location = %q", loc)
		}

		rec, env = srv.do(t, http.MethodGet, "/api/v1/sessions/"+created.SessionID+"/filters", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET status = %d", rec.Code)
		}
		var got models.FilterState
		decodeData(t, env, &got)
		if diff := cmp.Diff(initial, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("filters mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestFilters_Lifecycle(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, nil)
	path := "/api/v1/sessions/" + testSession + "/filters"

	// A session without saved filters reads as empty.
	rec, env := srv.do(t, http.MethodGet, path, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("initial GET status = %d", rec.Code)
	}
	var got models.FilterState
	decodeData(t, env, &got)
	if !got.IsEmpty() {
		t.Errorf("initial filters = %+v, want empty", got)
	}

	want := models.FilterState{
		ActiveMoods:  []string{"work"},
		SliderValues: map[string]float64{"noise_level": 20},
	}
	if rec, _ = srv.do(t, http.MethodPut, path, want); rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d", rec.Code)
	}

	_, env = srv.do(t, http.MethodGet, path, nil)
	got = models.FilterState{}
	decodeData(t, env, &got)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("saved filters mismatch (-want +got):\n%s", diff)
	}

	for i := 0; i < 2; i++ {
		if rec, _ = srv.do(t, http.MethodDelete, path, nil); rec.Code != http.StatusNoContent {
			t.Fatalf("DELETE #%d status = %d, want 204", i+1, rec.Code)
		}
	}

	_, env = srv.do(t, http.MethodGet, path, nil)
	got = models.FilterState{}
	decodeData(t, env, &got)
	if !got.IsEmpty() {
		t.Errorf("filters after delete = %+v, want empty", got)
	}
}

func TestFilters_Errors(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, nil)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		status int
		code   string
	}{
		{"bad session id", http.MethodGet, "/api/v1/sessions/abc/filters", nil, http.StatusBadRequest, ErrCodeValidation},
		{"slider below 0", http.MethodPut, "/api/v1/sessions/" + testSession + "/filters",
			models.FilterState{SliderValues: map[string]float64{"formality": -5}}, http.StatusBadRequest, ErrCodeValidation},
		{"wrong method", http.MethodPost, "/api/v1/sessions/" + testSession + "/filters", nil, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, env := srv.do(t, tt.method, tt.path, tt.body)
			wantError(t, rec, env, tt.status, tt.code)
		})
	}
}

func TestFilters_StoreError(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, failingStore{})
	path := "/api/v1/sessions/" + testSession + "/filters"

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			t.Parallel()
			rec, env := srv.do(t, method, path, models.FilterState{})
			wantError(t, rec, env, http.StatusInternalServerError, ErrCodeStoreError)
		})
	}
}

func TestCollections_Lifecycle(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, nil)
	srv.handlerNow(t, time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))
	base := "/api/v1/sessions/" + testSession + "/collections"

	rec, env := srv.do(t, http.MethodGet, base, nil)
	if rec.Code != http.StatusOK || string(env.Data) != "[]" {
		t.Fatalf("initial list = %d %s, want 200 []", rec.Code, env.Data)
	}

	rec, env = srv.do(t, http.MethodPost, base, CreateCollectionRequest{Name: "Date night", PlaceIDs: []string{"bar", "cafe"}})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d (body %s)", rec.Code, rec.Body.String())
	}
	var created models.Collection
	decodeData(t, env, &created)
	want := models.Collection{
		SessionID: testSession,
		Name:      "Date night",
		PlaceIDs:  []string{"bar", "cafe"},
		CreatedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, created, cmpopts.IgnoreFields(models.Collection{}, "ID")); diff != "" {
		t.Errorf("created mismatch (-want +got):\n%s", diff)
	}

	rec, env = srv.do(t, http.MethodGet, base+"/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var fetched models.Collection
	decodeData(t, env, &fetched)
	if diff := cmp.Diff(created, fetched); diff != "" {
		t.Errorf("fetched mismatch (-want +got):\n%s", diff)
	}

	_, env = srv.do(t, http.MethodGet, base, nil)
	var list []models.Collection
	decodeData(t, env, &list)
	if len(list) != 1 || list[0].ID != created.ID {
		t.Errorf("list = %+v, want the created collection", list)
	}

	if rec, _ = srv.do(t, http.MethodDelete, base+"/"+created.ID, nil); rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", rec.Code)
	}
	rec, env = srv.do(t, http.MethodDelete, base+"/"+created.ID, nil)
	wantError(t, rec, env, http.StatusNotFound, ErrCodeNotFound)
	rec, env = srv.do(t, http.MethodGet, base+"/"+created.ID, nil)
	wantError(t, rec, env, http.StatusNotFound, ErrCodeNotFound)
}

func TestCollections_Validation(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, nil)
	base := "/api/v1/sessions/" + testSession + "/collections"

	tooMany := make([]string, 1001)
	for i := range tooMany {
		tooMany[i] = "p"
	}

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
	}{
		{"missing name", http.MethodPost, base, CreateCollectionRequest{PlaceIDs: []string{"a"}}},
		{"empty place id", http.MethodPost, base, CreateCollectionRequest{Name: "x", PlaceIDs: []string{""}}},
		{"too many places", http.MethodPost, base, CreateCollectionRequest{Name: "x", PlaceIDs: tooMany}},
		{"bad collection id", http.MethodGet, base + "/nope", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, env := srv.do(t, tt.method, tt.path, tt.body)
			wantError(t, rec, env, http.StatusBadRequest, ErrCodeValidation)
		})
	}
}

func TestCollections_StoreError(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, failingStore{})
	base := "/api/v1/sessions/" + testSession + "/collections"

	rec, env := srv.do(t, http.MethodPost, base, CreateCollectionRequest{Name: "x"})
	wantError(t, rec, env, http.StatusInternalServerError, ErrCodeStoreError)

	rec, env = srv.do(t, http.MethodGet, base, nil)
	wantError(t, rec, env, http.StatusInternalServerError, ErrCodeStoreError)
}
