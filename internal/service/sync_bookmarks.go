package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pod-sync/internal/adapter"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

type bookmarkSyncer struct {
	repo       store.BookmarkRepository
	watermarks store.WatermarkRepository
	adapter    adapter.ServerAdapter
}

func (s *bookmarkSyncer) Domain() models.Domain {
	return models.DomainBookmarks
}

func (s *bookmarkSyncer) Sync(ctx context.Context, cycle *syncCycle) (models.DomainResult, error) {
	log := logger.FromContext(ctx)
	res := models.DomainResult{Domain: models.DomainBookmarks}

	pull, err := cycle.pullNeeded(ctx, s.watermarks, models.DomainBookmarks)
	if err != nil {
		return res, err
	}

	var remote models.BookmarkListResponse
	if pull {
		log.Debug().Str("stage", stagePulling).Msg("pulling bookmarks")
		if remote, err = s.adapter.GetBookmarks(ctx, cycle.cred); err != nil {
			return res, fmt.Errorf("pull bookmarks: %w", err)
		}
	}

	bookmarks, err := buildChangeSet(ctx, models.DomainBookmarks, s.repo.DirtyBookmarks)
	if err != nil {
		return res, err
	}

	if !bookmarks.Empty() {
		log.Debug().Str("stage", stagePushing).Int("count", bookmarks.Len()).Msg("pushing bookmarks")
		_, err = s.adapter.PushBookmarks(ctx, cycle.cred, models.BookmarkChangesRequest{Bookmarks: bookmarks.Items})
		if err != nil {
			return res, fmt.Errorf("push bookmarks: %w", err)
		}
	}

	commit := models.BookmarkCommit{Pushed: bookmarks.Snapshot}
	if pull {
		commit.Remote = withoutPushed(remote.Bookmarks, bookmarks.Snapshot)
		commit.Watermark = cycle.watermark(models.DomainBookmarks)
	}

	res.Pushed = bookmarks.Len()
	res.Pulled = len(commit.Remote)
	if !pull && res.Pushed == 0 {
		return res, nil
	}

	if err = s.repo.CommitBookmarks(ctx, commit); err != nil {
		return res, commitFailed(models.DomainBookmarks, err)
	}
	if commit.Watermark != nil {
		res.Watermark = commit.Watermark.Value
	}
	return res, nil
}
