package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pod-sync/internal/adapter"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

// ratingSyncer syncs podcast ratings. The server accepts one rating per
// request, so a failed request fails the domain and the whole batch is
// sent again next cycle.
type ratingSyncer struct {
	repo       store.RatingRepository
	watermarks store.WatermarkRepository
	adapter    adapter.ServerAdapter
}

func (s *ratingSyncer) Domain() models.Domain {
	return models.DomainRatings
}

func (s *ratingSyncer) Sync(ctx context.Context, cycle *syncCycle) (models.DomainResult, error) {
	log := logger.FromContext(ctx)
	res := models.DomainResult{Domain: models.DomainRatings}

	pull, err := cycle.pullNeeded(ctx, s.watermarks, models.DomainRatings)
	if err != nil {
		return res, err
	}

	var remote models.RatingListResponse
	if pull {
		log.Debug().Str("stage", stagePulling).Msg("pulling ratings")
		if remote, err = s.adapter.GetRatings(ctx, cycle.cred); err != nil {
			return res, fmt.Errorf("pull ratings: %w", err)
		}
	}

	ratings, err := buildChangeSet(ctx, models.DomainRatings, s.repo.DirtyRatings)
	if err != nil {
		return res, err
	}

	for _, r := range ratings.Items {
		_, err = s.adapter.AddRating(ctx, cycle.cred, models.RatingRequest{
			PodcastUUID: r.PodcastUUID,
			Rating:      r.Rating,
			Modified:    r.ModifiedAt,
		})
		if err != nil {
			return res, fmt.Errorf("push rating %s: %w", r.PodcastUUID, err)
		}
	}
	if !ratings.Empty() {
		log.Debug().Str("stage", stagePushing).Int("count", ratings.Len()).Msg("ratings pushed")
	}

	commit := models.RatingCommit{Pushed: ratings.Snapshot}
	if pull {
		commit.Remote = withoutPushed(remote.Ratings, ratings.Snapshot)
		commit.Watermark = cycle.watermark(models.DomainRatings)
	}

	res.Pushed = ratings.Len()
	res.Pulled = len(commit.Remote)
	if !pull && res.Pushed == 0 {
		return res, nil
	}

	if err = s.repo.CommitRatings(ctx, commit); err != nil {
		return res, commitFailed(models.DomainRatings, err)
	}
	if commit.Watermark != nil {
		res.Watermark = commit.Watermark.Value
	}
	return res, nil
}
