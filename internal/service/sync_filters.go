package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pod-sync/internal/adapter"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

// filterSyncer syncs playlists and manual playlist episodes.
type filterSyncer struct {
	repo       store.PlaylistRepository
	watermarks store.WatermarkRepository
	adapter    adapter.ServerAdapter
}

func (s *filterSyncer) Domain() models.Domain {
	return models.DomainFilters
}

func (s *filterSyncer) Sync(ctx context.Context, cycle *syncCycle) (models.DomainResult, error) {
	log := logger.FromContext(ctx)
	res := models.DomainResult{Domain: models.DomainFilters}

	pull, err := cycle.pullNeeded(ctx, s.watermarks, models.DomainFilters)
	if err != nil {
		return res, err
	}

	var remote models.PlaylistListResponse
	if pull {
		log.Debug().Str("stage", stagePulling).Msg("pulling filters snapshot")
		remote, err = s.adapter.GetPlaylistList(ctx, cycle.cred, models.PlaylistListRequest{SyncRequestBase: cycle.base})
		if err != nil {
			return res, fmt.Errorf("pull playlists: %w", err)
		}
	}

	playlists, err := buildChangeSet(ctx, models.DomainFilters, s.repo.DirtyPlaylists)
	if err != nil {
		return res, err
	}
	episodes, err := buildChangeSet(ctx, models.DomainFilters, s.repo.DirtyManualEpisodes)
	if err != nil {
		return res, err
	}

	if !playlists.Empty() || !episodes.Empty() {
		log.Debug().Str("stage", stagePushing).
			Int("playlists", playlists.Len()).
			Int("episodes", episodes.Len()).
			Msg("pushing playlist changes")
		_, err = s.adapter.PushPlaylistChanges(ctx, cycle.cred, models.PlaylistChangesRequest{
			SyncRequestBase: cycle.base,
			Playlists:       playlists.Items,
			Episodes:        episodes.Items,
		})
		if err != nil {
			return res, fmt.Errorf("push playlists: %w", err)
		}
	}

	commit := models.PlaylistCommit{
		PushedPlaylists: playlists.Snapshot,
		PushedEpisodes:  episodes.Snapshot,
	}
	if pull {
		commit.RemotePlaylists = withoutPushed(remote.Playlists, playlists.Snapshot)
		commit.RemoteEpisodes = withoutPushed(remote.Episodes, episodes.Snapshot)
		commit.Watermark = cycle.watermark(models.DomainFilters)
	}

	res.Pushed = playlists.Len() + episodes.Len()
	res.Pulled = len(commit.RemotePlaylists) + len(commit.RemoteEpisodes)
	if !pull && res.Pushed == 0 {
		return res, nil
	}

	if err = s.repo.CommitPlaylists(ctx, commit); err != nil {
		return res, commitFailed(models.DomainFilters, err)
	}
	if commit.Watermark != nil {
		res.Watermark = commit.Watermark.Value
	}
	return res, nil
}
