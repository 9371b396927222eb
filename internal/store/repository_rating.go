package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/models"
)

type ratingRepository struct {
	*DB
	logger *logger.Logger
}

// NewRatingRepository returns the SQLite-backed [RatingRepository].
func NewRatingRepository(db *DB, logger *logger.Logger) RatingRepository {
	return &ratingRepository{DB: db, logger: logger}
}

func (r *ratingRepository) SaveRating(ctx context.Context, rating models.PodcastRating) error {
	return saveLocal(ctx, r.DB, ratingsTable, ratingValues(rating))
}

func (r *ratingRepository) GetRating(ctx context.Context, podcastUUID string) (models.PodcastRating, error) {
	return selectByKey(ctx, r.DB, ratingsTable, []any{podcastUUID}, scanRating)
}

func (r *ratingRepository) DirtyRatings(ctx context.Context) ([]models.PodcastRating, error) {
	items, err := selectDirty(ctx, r.DB, ratingsTable, scanRating)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "ratingRepository.DirtyRatings").
			Msg("failed to select pending ratings")
		return nil, err
	}
	return items, nil
}

func (r *ratingRepository) CommitRatings(ctx context.Context, commit models.RatingCommit) error {
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if err := commitPushed(ctx, tx, ratingsTable, commit.Pushed); err != nil {
			return err
		}

		for _, rt := range commit.Remote {
			remote := rt
			remote.SyncStatus = models.SyncStatusSynced
			if err := applyRemote(ctx, tx, ratingsTable, []any{rt.PodcastUUID}, ratingValues(remote), false); err != nil {
				return err
			}
		}

		if commit.Watermark != nil {
			return advanceWatermark(ctx, tx, *commit.Watermark)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "ratingRepository.CommitRatings").
			Msg("failed to commit ratings domain")
		return err
	}
	return nil
}

func ratingValues(rt models.PodcastRating) []any {
	return []any{rt.PodcastUUID, rt.Rating, int(rt.SyncStatus), rt.ModifiedAt}
}

func scanRating(rows *sql.Rows) (models.PodcastRating, error) {
	var (
		rt     models.PodcastRating
		status int
	)
	if err := rows.Scan(&rt.PodcastUUID, &rt.Rating, &status, &rt.ModifiedAt); err != nil {
		return models.PodcastRating{}, err
	}
	rt.SyncStatus = models.SyncStatus(status)
	return rt, nil
}
