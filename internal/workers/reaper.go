// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/metrics"
	"github.com/MKhiriev/go-wallet-keeper/internal/session"
)

const defaultReapInterval = time.Minute

// IdleReaper closes sessions that were not used for longer than the idle
// timeout. Stored wallets are untouched; the owner opens again. A session
// touched while it is being reaped is put back unless the identifier was
// reused in the meantime.
type IdleReaper struct {
	registry    *session.Registry
	metrics     *metrics.Metrics
	idleTimeout time.Duration
	interval    time.Duration
	logger      *logger.Logger
	now         func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewIdleReaper creates a reaper that is idle until Start is called. A
// non-positive interval defaults to one minute.
func NewIdleReaper(registry *session.Registry, m *metrics.Metrics, idleTimeout, interval time.Duration, log *logger.Logger) *IdleReaper {
	if interval <= 0 {
		interval = defaultReapInterval
	}
	return &IdleReaper{
		registry:    registry,
		metrics:     m,
		idleTimeout: idleTimeout,
		interval:    interval,
		logger:      log,
		now:         time.Now,
	}
}

// Start stops any previous run and launches the scan loop.
func (r *IdleReaper) Start(ctx context.Context) {
	r.Stop()

	r.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()
		t := time.NewTicker(r.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				r.Reap()
			}
		}
	}()
}

func (r *IdleReaper) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}

// Reap runs one scan and returns the number of sessions it closed.
func (r *IdleReaper) Reap() int {
	deadline := r.now().Add(-r.idleTimeout)

	reaped := 0
	for _, h := range r.registry.Snapshot() {
		if !r.registry.RemoveIdle(h, deadline) {
			continue
		}
		// a command that looked the session up before removal may still touch it
		if !h.LastUsed().Before(deadline) && r.registry.Restore(h) {
			continue
		}

		log := r.logger.ForIdentifier(h.Identifier())
		if err := h.Close(); err != nil {
			log.Err(err).Msg("idle wallet shutdown failed")
		}
		log.Info().Time("last_used", h.LastUsed()).Msg("idle wallet closed")
		reaped++
	}

	r.metrics.ObserveReaped(reaped)
	return reaped
}
