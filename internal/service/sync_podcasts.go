package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pod-sync/internal/adapter"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

// podcastSyncer syncs podcasts and folders.
type podcastSyncer struct {
	repo       store.PodcastRepository
	watermarks store.WatermarkRepository
	adapter    adapter.ServerAdapter
}

func (s *podcastSyncer) Domain() models.Domain {
	return models.DomainPodcasts
}

func (s *podcastSyncer) Sync(ctx context.Context, cycle *syncCycle) (models.DomainResult, error) {
	log := logger.FromContext(ctx)
	res := models.DomainResult{Domain: models.DomainPodcasts}

	pull, err := cycle.pullNeeded(ctx, s.watermarks, models.DomainPodcasts)
	if err != nil {
		return res, err
	}

	var remote models.PodcastListResponse
	if pull {
		log.Debug().Str("stage", stagePulling).Msg("pulling podcasts snapshot")
		remote, err = s.adapter.GetPodcastList(ctx, cycle.cred, models.PodcastListRequest{SyncRequestBase: cycle.base})
		if err != nil {
			return res, fmt.Errorf("pull podcasts: %w", err)
		}
	}

	podcasts, err := buildChangeSet(ctx, models.DomainPodcasts, s.repo.DirtyPodcasts)
	if err != nil {
		return res, err
	}
	folders, err := buildChangeSet(ctx, models.DomainPodcasts, s.repo.DirtyFolders)
	if err != nil {
		return res, err
	}

	if !podcasts.Empty() || !folders.Empty() {
		log.Debug().Str("stage", stagePushing).
			Int("podcasts", podcasts.Len()).
			Int("folders", folders.Len()).
			Msg("pushing podcast changes")
		_, err = s.adapter.PushPodcastChanges(ctx, cycle.cred, models.PodcastChangesRequest{
			SyncRequestBase: cycle.base,
			Podcasts:        podcasts.Items,
			Folders:         folders.Items,
		})
		if err != nil {
			return res, fmt.Errorf("push podcasts: %w", err)
		}
	}

	commit := models.PodcastCommit{
		PushedPodcasts: podcasts.Snapshot,
		PushedFolders:  folders.Snapshot,
	}
	if pull {
		commit.RemotePodcasts = withoutPushed(remote.Podcasts, podcasts.Snapshot)
		commit.RemoteFolders = withoutPushed(remote.Folders, folders.Snapshot)
		commit.Watermark = cycle.watermark(models.DomainPodcasts)
	}

	res.Pushed = podcasts.Len() + folders.Len()
	res.Pulled = len(commit.RemotePodcasts) + len(commit.RemoteFolders)
	if !pull && res.Pushed == 0 {
		return res, nil
	}

	if err = s.repo.CommitPodcasts(ctx, commit); err != nil {
		return res, commitFailed(models.DomainPodcasts, err)
	}
	if commit.Watermark != nil {
		res.Watermark = commit.Watermark.Value
	}
	return res, nil
}
