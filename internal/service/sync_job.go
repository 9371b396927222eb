package service

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type syncJob struct {
	syncService SyncService
	clock       clockwork.Clock
	trigger     chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that calls syncService.Sync on a ticker of
// clock. The job is idle until Start is called.
func NewSyncJob(syncService SyncService, clock clockwork.Clock) SyncJob {
	return &syncJob{
		syncService: syncService,
		clock:       clock,
		trigger:     make(chan struct{}, 1),
	}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that runs a cycle every interval and on
// every TriggerNow. The goroutine exits when ctx is cancelled or Stop is
// called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := j.clock.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.Chan():
			case <-j.trigger:
			}

			res := j.syncService.Sync(jobCtx)
			if msg := res.UserMessage(); msg != "" {
				logger.FromContext(jobCtx).Warn().
					Str("status", res.Status.String()).
					Str("user_message", msg).
					Msg("sync needs attention")
			}
		}
	}()
}

// TriggerNow implements SyncJob. A trigger arriving while another one is
// queued is dropped; the queued cycle covers both.
func (j *syncJob) TriggerNow() {
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
