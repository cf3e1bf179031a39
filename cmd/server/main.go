// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

// Package main is the entry point for the Moodmap server.
//
// Moodmap ranks, filters and clusters places for a map client. The client
// sends the places it is showing; the server groups them by proximity,
// scores them against the selected moods and sliders, and reports whether
// each is open for a chosen time layer. Per-session filters and saved
// collections live in an in-memory LRU or in BadgerDB.
//
// # Startup
//
//  1. Configuration: defaults, config.yaml, then environment (Koanf v2)
//  2. Logging: zerolog with the configured level and format
//  3. Catalog: built-in moods, sliders and layers, optionally overlaid by a YAML file
//  4. Engine: clusterer, tag extractor, slider valuator, scorer, availability
//  5. Store: memory or badger, instrumented with Prometheus counters
//  6. Supervisor tree: store maintenance in the data layer, HTTP in the api layer
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the tree. The HTTP server drains in-flight
// requests for HTTP_SHUTDOWN_TIMEOUT, then the store is closed.
//
// # Example Usage
//
//	export STORE_BACKEND=badger
//	export STORE_PATH=/var/lib/moodmap
//	export MOODMAP_TIMEZONE=Europe/Kyiv
//	./moodmap
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/moodmap/internal/api"
	"github.com/tomtom215/moodmap/internal/catalog"
	"github.com/tomtom215/moodmap/internal/config"
	"github.com/tomtom215/moodmap/internal/engine"
	"github.com/tomtom215/moodmap/internal/logging"
	"github.com/tomtom215/moodmap/internal/metrics"
	"github.com/tomtom215/moodmap/internal/store"
	"github.com/tomtom215/moodmap/internal/supervisor"
	"github.com/tomtom215/moodmap/internal/supervisor/services"

	_ "time/tzdata" // MOODMAP_TIMEZONE must resolve in scratch images
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.Logging)
	metrics.SetAppInfo(version, runtime.Version())

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Str("store", cfg.Store.Backend).
		Str("timezone", cfg.Engine.Timezone).
		Msg("Starting Moodmap")

	cat, err := catalog.Load(cfg.Engine.CatalogPath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load catalog")
	}

	eng, err := engine.New(cat, cfg.Engine, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create engine")
	}

	st, maintenance, err := openStore(cfg.Store)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open session store")
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing session store")
		}
	}()

	handler := api.NewHandler(eng, st, api.HandlerConfig{
		MaxPlaces:        cfg.API.MaxPlaces,
		StrictValidation: cfg.API.StrictValidation,
	})
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromAPI(cfg.API)))

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(
		logging.NewSlogLogger(logging.WithComponent("supervisor")),
		supervisor.TreeConfig{ShutdownTimeout: cfg.Server.ShutdownTimeout},
	)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(maintenance)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree")
	for err := range tree.ServeBackground(ctx) {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Moodmap stopped")
}

// openStore builds the configured backend and the service that maintains it.
func openStore(cfg config.StoreConfig) (store.Store, suture.Service, error) {
	switch cfg.Backend {
	case store.BackendBadger:
		db, err := store.OpenBadger(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		bs := store.NewBadgerStore(db, cfg.TTL)
		return store.Instrument(bs, store.BackendBadger), services.NewBadgerGCService(bs, cfg.MaintenanceInterval), nil

	case store.BackendMemory, "":
		ms := store.NewMemoryStore(cfg.Capacity, cfg.TTL)
		return store.Instrument(ms, store.BackendMemory), services.NewMemoryMaintenanceService(ms, cfg.MaintenanceInterval), nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
