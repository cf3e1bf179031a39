// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tomtom215/moodmap/internal/logging"
	"github.com/tomtom215/moodmap/internal/store"
)

var ignoreOutput = cmpopts.IgnoreFields(logging.Config{}, "Output")

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	t.Parallel()
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestLoadFile_DefaultsOnly(t *testing.T) {
	t.Parallel()

	got, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile(\"\") error = %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), got, ignoreOutput); diff != "" {
		t.Errorf("LoadFile(\"\") mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
server:
  port: 9090
  shutdown_timeout: 3s
api:
  cors_origins:
    - https://map.example
  max_places: 200
  strict_validation: true
engine:
  timezone: UTC
  cluster:
    radius_meters: 150
    scale_with_zoom: true
  filter:
    slider_tolerance: 10
store:
  backend: badger
  path: /tmp/moodmap
  ttl: 2h
logging:
  level: debug
  format: console
`)

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	want := DefaultConfig()
	want.Server.Port = 9090
	want.Server.ShutdownTimeout = 3 * time.Second
	want.API.CORSOrigins = []string{"https://map.example"}
	want.API.MaxPlaces = 200
	want.API.StrictValidation = true
	want.Engine.Timezone = "UTC"
	want.Engine.Cluster.RadiusMeters = 150
	want.Engine.Cluster.ScaleWithZoom = true
	want.Engine.Filter.Tolerance = 10
	want.Store.Backend = store.BackendBadger
	want.Store.Path = "/tmp/moodmap"
	want.Store.TTL = 2 * time.Hour
	want.Logging.Level = "debug"
	want.Logging.Format = "console"

	if diff := cmp.Diff(want, got, ignoreOutput); diff != "" {
		t.Errorf("LoadFile() mismatch (-want +got):\n%s", diff)
	}
}

// Environment tests cannot run in parallel.
func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("STORE_TTL", "90m")
	t.Setenv("CLUSTER_RADIUS_METERS", "350")
	t.Setenv("CLUSTER_SCALE_WITH_ZOOM", "true")
	t.Setenv("MOODMAP_TIMEZONE", "UTC")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("UNRELATED_SETTING", "ignored")

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"server.port", got.Server.Port, 7070},
		{"api.cors_origins", got.API.CORSOrigins, []string{"https://a.example", "https://b.example"}},
		{"store.ttl", got.Store.TTL, 90 * time.Minute},
		{"engine.cluster.radius_meters", got.Engine.Cluster.RadiusMeters, 350.0},
		{"engine.cluster.scale_with_zoom", got.Engine.Cluster.ScaleWithZoom, true},
		{"engine.timezone", got.Engine.Timezone, "UTC"},
		{"logging.level", got.Logging.Level, "warn"},
	}
	for _, c := range checks {
		if diff := cmp.Diff(c.want, c.got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", c.name, diff)
		}
	}
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "malformed yaml", body: "server: [port", wantErr: "failed to load config file"},
		{name: "bad port", body: "server:\n  port: 70000\n", wantErr: "server.port"},
		{name: "unknown backend", body: "store:\n  backend: redis\n", wantErr: "store.backend"},
		{name: "badger without path", body: "store:\n  backend: badger\n  path: \"\"\n", wantErr: "store.path"},
		{name: "zero radius", body: "engine:\n  cluster:\n    radius_meters: 0\n", wantErr: "cluster radius"},
		{name: "bad timezone", body: "engine:\n  timezone: Atlantis/Capital\n", wantErr: "timezone"},
		{name: "bad log format", body: "logging:\n  format: xml\n", wantErr: "logging"},
		{name: "zero max places", body: "api:\n  max_places: 0\n", wantErr: "api.max_places"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadFile(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadFile() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFile(missing) error = nil, want error")
	}
}

func TestValidate_RateLimitDisabledSkipsChecks(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.API.RateLimitDisabled = true
	cfg.API.RateLimitRequests = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestServerConfig_Addr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"::1", 9000, "[::1]:9000"},
		{"", 80, ":80"},
	}
	for _, tt := range tests {
		if got := (ServerConfig{Host: tt.host, Port: tt.port}).Addr(); got != tt.want {
			t.Errorf("Addr(%q, %d) = %q, want %q", tt.host, tt.port, got, tt.want)
		}
	}
}
