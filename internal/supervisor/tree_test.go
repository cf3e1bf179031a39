// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

package supervisor

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodmap/internal/logging"
)

func newTestTree(t *testing.T, cfg TreeConfig) *SupervisorTree {
	t.Helper()
	logger := logging.NewSlogLogger(zerolog.Nop())
	tree, err := NewSupervisorTree(logger, cfg)
	if err != nil {
		t.Fatalf("NewSupervisorTree() error = %v", err)
	}
	return tree
}

func TestNewSupervisorTree_Defaults(t *testing.T) {
	t.Parallel()

	tree := newTestTree(t, TreeConfig{})
	if tree.Root() == nil {
		t.Fatal("Root() = nil")
	}
	if tree.config != DefaultTreeConfig() {
		t.Errorf("config = %+v, want %+v", tree.config, DefaultTreeConfig())
	}

	custom := newTestTree(t, TreeConfig{FailureBackoff: time.Second})
	if custom.config.FailureBackoff != time.Second {
		t.Errorf("FailureBackoff = %v, want 1s", custom.config.FailureBackoff)
	}
}

func TestSupervisorTree_StartsBothLayers(t *testing.T) {
	t.Parallel()

	tree := newTestTree(t, TreeConfig{ShutdownTimeout: time.Second})
	dataSvc := newMockService("data")
	apiSvc := newMockService("api")
	tree.AddDataService(dataSvc)
	tree.AddAPIService(apiSvc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for (dataSvc.starts() == 0 || apiSvc.starts() == 0) && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not shut down")
	}

	if dataSvc.starts() == 0 || apiSvc.starts() == 0 {
		t.Errorf("starts data=%d api=%d, want both >= 1", dataSvc.starts(), apiSvc.starts())
	}
}

func TestSupervisorTree_RestartsFailingService(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewSlogLogger(zerolog.New(&buf))
	tree, err := NewSupervisorTree(logger, TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})
	if err != nil {
		t.Fatalf("NewSupervisorTree() error = %v", err)
	}

	failing := newMockService("flaky-maintenance")
	failing.setFailCount(2)
	stable := newMockService("http")
	tree.AddDataService(failing)
	tree.AddAPIService(stable)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for failing.starts() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-errCh

	if failing.starts() < 3 {
		t.Errorf("failing service starts = %d, want >= 3", failing.starts())
	}
	if stable.starts() != 1 {
		t.Errorf("stable service starts = %d, want 1", stable.starts())
	}
	if !bytes.Contains(buf.Bytes(), []byte("flaky-maintenance")) {
		t.Errorf("supervisor log does not name the failing service: %s", buf.String())
	}
}
