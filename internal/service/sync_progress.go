package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pod-sync/internal/adapter"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

// progressSyncer pushes playback progress. The domain is push-only.
type progressSyncer struct {
	repo    store.EpisodeRepository
	adapter adapter.ServerAdapter
}

func (s *progressSyncer) Domain() models.Domain {
	return models.DomainProgress
}

func (s *progressSyncer) Sync(ctx context.Context, cycle *syncCycle) (models.DomainResult, error) {
	res := models.DomainResult{Domain: models.DomainProgress}

	progress, err := buildChangeSet(ctx, models.DomainProgress, s.repo.DirtyProgress)
	if err != nil {
		return res, err
	}
	if progress.Empty() {
		return res, nil
	}

	logger.FromContext(ctx).Debug().
		Str("stage", stagePushing).
		Int("count", progress.Len()).
		Msg("pushing episode progress")

	_, err = s.adapter.PushEpisodeProgress(ctx, cycle.cred, models.EpisodeProgressRequest{Episodes: progress.Items})
	if err != nil {
		return res, fmt.Errorf("push progress: %w", err)
	}

	if err = s.repo.CommitProgress(ctx, models.ProgressCommit{Pushed: progress.Snapshot}); err != nil {
		return res, commitFailed(models.DomainProgress, err)
	}

	res.Pushed = progress.Len()
	return res, nil
}
