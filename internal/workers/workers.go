package workers

import (
	"context"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/metrics"
	"github.com/MKhiriev/go-wallet-keeper/internal/session"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the server jobs enabled by cfg.
func NewWorkers(registry *session.Registry, m *metrics.Metrics, cfg config.Workers, log *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.IdleTimeout > 0 {
		w.workers = append(w.workers, NewIdleReaper(registry, m, cfg.IdleTimeout, cfg.ReapInterval, log))
	}
	return w
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
