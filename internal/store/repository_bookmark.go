package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/models"
)

type bookmarkRepository struct {
	*DB
	logger *logger.Logger
}

// NewBookmarkRepository returns the SQLite-backed [BookmarkRepository].
func NewBookmarkRepository(db *DB, logger *logger.Logger) BookmarkRepository {
	return &bookmarkRepository{DB: db, logger: logger}
}

func (r *bookmarkRepository) SaveBookmark(ctx context.Context, bookmark models.Bookmark) error {
	if err := saveLocal(ctx, r.DB, bookmarksTable, bookmarkValues(bookmark)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "bookmarkRepository.SaveBookmark").
			Str("uuid", bookmark.UUID).
			Msg("failed to save bookmark")
		return err
	}
	return nil
}

func (r *bookmarkRepository) GetBookmark(ctx context.Context, uuid string) (models.Bookmark, error) {
	return selectByKey(ctx, r.DB, bookmarksTable, []any{uuid}, scanBookmark)
}

func (r *bookmarkRepository) ListBookmarks(ctx context.Context) ([]models.Bookmark, error) {
	return selectLive(ctx, r.DB, bookmarksTable, scanBookmark)
}

func (r *bookmarkRepository) DirtyBookmarks(ctx context.Context) ([]models.Bookmark, error) {
	items, err := selectDirty(ctx, r.DB, bookmarksTable, scanBookmark)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "bookmarkRepository.DirtyBookmarks").
			Msg("failed to select pending bookmarks")
		return nil, err
	}
	return items, nil
}

func (r *bookmarkRepository) CommitBookmarks(ctx context.Context, commit models.BookmarkCommit) error {
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if err := commitPushed(ctx, tx, bookmarksTable, commit.Pushed); err != nil {
			return err
		}

		for _, b := range commit.Remote {
			remote := b
			remote.SyncStatus = models.SyncStatusSynced
			if err := applyRemote(ctx, tx, bookmarksTable, []any{b.UUID}, bookmarkValues(remote), b.Deleted); err != nil {
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
			Str("func", "bookmarkRepository.CommitBookmarks").
			Msg("failed to commit bookmarks domain")
		return err
	}
	return nil
}

func bookmarkValues(b models.Bookmark) []any {
	return []any{
		b.UUID, b.EpisodeUUID, b.PodcastUUID, b.TimeSecs, b.Title, b.CreatedAt,
		int(b.SyncStatus), b.ModifiedAt, b.Deleted,
	}
}

func scanBookmark(rows *sql.Rows) (models.Bookmark, error) {
	var (
		b         models.Bookmark
		createdAt sql.NullTime
		status    int
	)
	err := rows.Scan(
		&b.UUID, &b.EpisodeUUID, &b.PodcastUUID, &b.TimeSecs, &b.Title, &createdAt,
		&status, &b.ModifiedAt, &b.Deleted,
	)
	if err != nil {
		return models.Bookmark{}, err
	}
	b.SyncStatus = models.SyncStatus(status)
	b.CreatedAt = createdAt.Time
	return b, nil
}
