package workers

import (
	"context"

	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers of the client.
func NewWorkers(job service.SyncJob, cfg config.ClientWorkers, logger *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		newSyncWorker(job, cfg.SyncInterval, logger),
	}}
}

// Run starts every worker in registration order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse registration order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
