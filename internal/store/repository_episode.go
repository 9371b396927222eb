package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/models"
)

type episodeRepository struct {
	*DB
	logger *logger.Logger
}

// NewEpisodeRepository returns the SQLite-backed [EpisodeRepository].
func NewEpisodeRepository(db *DB, logger *logger.Logger) EpisodeRepository {
	return &episodeRepository{DB: db, logger: logger}
}

func (r *episodeRepository) SaveProgress(ctx context.Context, progress models.EpisodeProgress) error {
	if err := saveLocal(ctx, r.DB, progressTable, progressValues(progress)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "episodeRepository.SaveProgress").
			Str("uuid", progress.UUID).
			Msg("failed to save episode progress")
		return err
	}
	return nil
}

func (r *episodeRepository) GetProgress(ctx context.Context, uuid string) (models.EpisodeProgress, error) {
	rows, err := queryBuilt(ctx, r.DB, sq.Select(progressTable.columns...).
		From(progressTable.name).
		Where(sq.Eq{"uuid": uuid}))
	if err != nil {
		return models.EpisodeProgress{}, err
	}

	items, err := scanAll(rows, scanProgress)
	if err != nil {
		return models.EpisodeProgress{}, err
	}
	if len(items) == 0 {
		return models.EpisodeProgress{}, fmt.Errorf("episode %s: %w", uuid, ErrNotFound)
	}
	return items[0], nil
}

func (r *episodeRepository) DirtyProgress(ctx context.Context) ([]models.EpisodeProgress, error) {
	items, err := selectDirty(ctx, r.DB, progressTable, scanProgress)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "episodeRepository.DirtyProgress").
			Msg("failed to select pending episode progress")
		return nil, err
	}
	return items, nil
}

func (r *episodeRepository) CommitProgress(ctx context.Context, commit models.ProgressCommit) error {
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		return commitPushed(ctx, tx, progressTable, commit.Pushed)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "episodeRepository.CommitProgress").
			Msg("failed to commit progress domain")
		return err
	}
	return nil
}

func progressValues(e models.EpisodeProgress) []any {
	return []any{
		e.UUID, e.PodcastUUID, e.PlayedUpTo, e.Duration, int(e.Status),
		int(e.SyncStatus), e.ModifiedAt,
	}
}

func scanProgress(rows *sql.Rows) (models.EpisodeProgress, error) {
	var (
		e              models.EpisodeProgress
		status, synced int
	)
	err := rows.Scan(
		&e.UUID, &e.PodcastUUID, &e.PlayedUpTo, &e.Duration, &status,
		&synced, &e.ModifiedAt,
	)
	if err != nil {
		return models.EpisodeProgress{}, err
	}
	e.Status = models.PlayingStatus(status)
	e.SyncStatus = models.SyncStatus(synced)
	return e, nil
}
