package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/service"
)

// syncWorker runs the periodic sync job.
type syncWorker struct {
	job      service.SyncJob
	interval time.Duration
	logger   *logger.Logger
}

func newSyncWorker(job service.SyncJob, interval time.Duration, logger *logger.Logger) *syncWorker {
	return &syncWorker{job: job, interval: interval, logger: logger}
}

func (w *syncWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("starting sync worker")
	w.job.Start(w.logger.WithContext(ctx), w.interval)
}

func (w *syncWorker) Stop() {
	w.job.Stop()
	w.logger.Info().Msg("sync worker stopped")
}
