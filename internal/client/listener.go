package client

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/models"
)

// SyncLogger writes one log entry per cycle start and one per domain result.
type SyncLogger struct {
	logger *logger.Logger
}

func NewSyncLogger(logger *logger.Logger) *SyncLogger {
	return &SyncLogger{logger: logger}
}

func (l *SyncLogger) SyncStarted(_ context.Context, startedAt time.Time) {
	l.logger.Debug().Time("started_at", startedAt).Msg("sync started")
}

func (l *SyncLogger) SyncFinished(_ context.Context, result models.SyncResult) {
	for _, d := range models.AllDomains {
		dr, ok := result.Domains[d]
		if !ok {
			continue
		}
		ev := l.logger.Debug()
		if dr.Err != nil {
			ev = l.logger.Warn().Err(dr.Err)
		}
		ev.Str("domain", string(d)).
			Str("outcome", dr.Outcome.String()).
			Int("pushed", dr.Pushed).
			Int("pulled", dr.Pulled).
			Msg("domain synced")
	}

	l.logger.Info().
		Str("status", result.Status.String()).
		Err(result.Err).
		Dur("duration", result.FinishedAt.Sub(result.StartedAt)).
		Msg("sync finished")
}
