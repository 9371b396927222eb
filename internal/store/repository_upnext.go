package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/upnext"
	"github.com/MKhiriev/go-pod-sync/models"
)

type upNextRepository struct {
	*DB
	logger *logger.Logger
}

// NewUpNextRepository returns the SQLite-backed [UpNextRepository].
func NewUpNextRepository(db *DB, logger *logger.Logger) UpNextRepository {
	return &upNextRepository{DB: db, logger: logger}
}

func (r *upNextRepository) AppendChange(ctx context.Context, change models.UpNextChange) (models.UpNextChange, error) {
	log := logger.FromContext(ctx)

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, insertUpNextChange,
			int(change.Action),
			change.UUID,
			strings.Join(change.UUIDs, ","),
			change.Title,
			change.URL,
			change.PodcastUUID,
			change.Published,
			change.Modified,
		)
		if err != nil {
			return fmt.Errorf("%w: insert up next change: %w", ErrExecutingStatement, err)
		}
		if change.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("%w: up next change id: %w", ErrExecutingStatement, err)
		}

		queue, err := readQueue(ctx, tx)
		if err != nil {
			return err
		}
		return writeQueue(ctx, tx, upnext.Apply(queue, change))
	})
	if err != nil {
		log.Err(err).
			Str("func", "upNextRepository.AppendChange").
			Str("action", change.Action.String()).
			Str("uuid", change.UUID).
			Msg("failed to append up next change")
		return models.UpNextChange{}, err
	}

	return change, nil
}

func (r *upNextRepository) PendingChanges(ctx context.Context) ([]models.UpNextChange, error) {
	changes, err := readChanges(ctx, r.DB)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "upNextRepository.PendingChanges").
			Msg("failed to read up next change log")
		return nil, err
	}
	return changes, nil
}

func (r *upNextRepository) Queue(ctx context.Context) ([]models.UpNextEpisode, error) {
	return readQueue(ctx, r.DB)
}

// CommitUpNext deletes the consumed log rows, replaces the queue when the
// server sent a new canonical list and stores serverModified. Changes logged
// while the round trip was in flight are replayed on top of the new queue
// and stay pending.
func (r *upNextRepository) CommitUpNext(ctx context.Context, commit models.UpNextCommit) error {
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		for _, id := range commit.ConsumedChangeIDs {
			if _, err := tx.ExecContext(ctx, deleteUpNextChange, id); err != nil {
				return fmt.Errorf("%w: delete up next change %d: %w", ErrExecutingStatement, id, err)
			}
		}

		if commit.Replace {
			remaining, err := readChanges(ctx, tx)
			if err != nil {
				return err
			}
			if err = writeQueue(ctx, tx, upnext.Replay(commit.Queue, remaining)); err != nil {
				return err
			}
		}

		if commit.ServerModified != "" {
			return advanceWatermark(ctx, tx, models.Watermark{
				Domain: models.DomainUpNext,
				Value:  commit.ServerModified,
			})
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "upNextRepository.CommitUpNext").
			Int("count", len(commit.ConsumedChangeIDs)).
			Msg("failed to commit up next domain")
		return err
	}
	return nil
}

func readChanges(ctx context.Context, q queryer) ([]models.UpNextChange, error) {
	rows, err := q.QueryContext(ctx, getUpNextChanges)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return scanAll(rows, func(rows *sql.Rows) (models.UpNextChange, error) {
		var (
			c         models.UpNextChange
			action    int
			uuids     string
			published sql.NullTime
		)
		err := rows.Scan(&c.ID, &action, &c.UUID, &uuids, &c.Title, &c.URL, &c.PodcastUUID, &published, &c.Modified)
		if err != nil {
			return models.UpNextChange{}, err
		}
		c.Action = models.UpNextAction(action)
		if uuids != "" {
			c.UUIDs = strings.Split(uuids, ",")
		}
		if published.Valid {
			t := published.Time
			c.Published = &t
		}
		return c, nil
	})
}

func readQueue(ctx context.Context, q queryer) ([]models.UpNextEpisode, error) {
	rows, err := q.QueryContext(ctx, getUpNextQueue)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return scanAll(rows, func(rows *sql.Rows) (models.UpNextEpisode, error) {
		var (
			ep        models.UpNextEpisode
			published sql.NullTime
		)
		err := rows.Scan(&ep.Position, &ep.EpisodeUUID, &ep.Title, &ep.URL, &ep.PodcastUUID, &published)
		if err != nil {
			return models.UpNextEpisode{}, err
		}
		if published.Valid {
			t := published.Time
			ep.Published = &t
		}
		return ep, nil
	})
}

// writeQueue rewrites the materialized queue. Positions are taken from the
// slice order so they stay contiguous.
func writeQueue(ctx context.Context, tx execer, queue []models.UpNextEpisode) error {
	if _, err := tx.ExecContext(ctx, clearUpNextQueue); err != nil {
		return fmt.Errorf("%w: clear up next queue: %w", ErrExecutingStatement, err)
	}

	for i, ep := range queue {
		_, err := tx.ExecContext(ctx, insertUpNextEpisode,
			i, ep.EpisodeUUID, ep.Title, ep.URL, ep.PodcastUUID, ep.Published)
		if err != nil {
			return fmt.Errorf("%w: insert up next episode %s: %w", ErrExecutingStatement, ep.EpisodeUUID, err)
		}
	}
	return nil
}
