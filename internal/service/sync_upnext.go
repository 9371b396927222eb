package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-pod-sync/internal/adapter"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

// upNextSyncer pushes the pending up-next log and adopts the server's
// canonical queue when the server's counter moved.
//
// The request is sent even when the log is empty so that changes made on
// other devices are detected. mu is held while the log is read and while
// the result is committed, never across the round trip.
type upNextSyncer struct {
	repo       store.UpNextRepository
	watermarks store.WatermarkRepository
	adapter    adapter.ServerAdapter
	clock      clockwork.Clock
	mu         *sync.Mutex
}

func (s *upNextSyncer) Domain() models.Domain {
	return models.DomainUpNext
}

func (s *upNextSyncer) Sync(ctx context.Context, cycle *syncCycle) (models.DomainResult, error) {
	log := logger.FromContext(ctx)
	res := models.DomainResult{Domain: models.DomainUpNext}

	stored, pending, err := s.snapshot(ctx)
	if err != nil {
		return res, err
	}

	changes := make([]models.UpNextChangeRecord, 0, len(pending))
	consumed := make([]int64, 0, len(pending))
	for _, c := range pending {
		changes = append(changes, models.NewUpNextChangeRecord(c))
		consumed = append(consumed, c.ID)
	}

	log.Debug().Str("stage", stagePushing).
		Int("changes", len(changes)).
		Str("server_modified", stored.Value).
		Msg("syncing up next")

	resp, err := s.adapter.UpNextSync(ctx, cycle.cred, models.UpNextSyncRequest{
		DeviceTime: s.clock.Now().UnixMilli(),
		Version:    cycle.base.Version,
		UpNext: models.UpNextPayload{
			ServerModified: models.ParseServerModified(stored.Value),
			Changes:        changes,
		},
	})
	if err != nil {
		return res, fmt.Errorf("up next sync: %w", err)
	}

	serverModified := resp.ServerModifiedValue()
	commit := models.UpNextCommit{
		ConsumedChangeIDs: consumed,
		ServerModified:    serverModified,
	}
	// an unchanged counter means the server saw nothing new: the local
	// queue already reflects every change it holds
	if !stored.Equal(serverModified) {
		log.Debug().Str("stage", stageMerging).
			Int("episodes", len(resp.Episodes)).
			Msg("adopting canonical up next queue")
		commit.Replace = true
		commit.Queue = resp.Queue()
	}

	s.mu.Lock()
	err = s.repo.CommitUpNext(ctx, commit)
	s.mu.Unlock()
	if err != nil {
		return res, commitFailed(models.DomainUpNext, err)
	}

	res.Pushed = len(consumed)
	if commit.Replace {
		res.Pulled = len(commit.Queue)
	}
	res.Watermark = serverModified
	return res, nil
}

func (s *upNextSyncer) snapshot(ctx context.Context) (models.Watermark, []models.UpNextChange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.watermarks.GetWatermark(ctx, models.DomainUpNext)
	if err != nil {
		return models.Watermark{}, nil, fmt.Errorf("%w: read up next watermark: %w", ErrLocalStoreUnavailable, err)
	}

	pending, err := s.repo.PendingChanges(ctx)
	if err != nil {
		return models.Watermark{}, nil, fmt.Errorf("%w: read up next log: %w", ErrLocalStoreUnavailable, err)
	}
	return stored, pending, nil
}
