// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/session"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times it was started and stopped.
type mockWorker struct {
	starts int
	stops  int
}

func (m *mockWorker) Start(context.Context) { m.starts++ }

func (m *mockWorker) Stop() { m.stops++ }

func TestWorkers_StartStop_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Start(context.Background())
	ws.Stop()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.starts != 1 || w.stops != 1 {
			t.Errorf("worker[%d]: expected one start and one stop, got %d/%d", i, w.starts, w.stops)
		}
	}
}

func TestWorkers_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}

func TestNewWorkers(t *testing.T) {
	registry := session.NewRegistry(session.Config{})

	ws := NewWorkers(registry, nil, config.Workers{}, logger.Nop())
	if len(ws.workers) != 0 {
		t.Fatalf("reaper must be disabled without idle timeout, got %d workers", len(ws.workers))
	}

	ws = NewWorkers(registry, nil, config.Workers{IdleTimeout: time.Minute, ReapInterval: time.Second}, logger.Nop())
	if len(ws.workers) != 1 {
		t.Fatalf("expected the idle reaper, got %d workers", len(ws.workers))
	}
}
