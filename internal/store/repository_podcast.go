package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/models"
)

type podcastRepository struct {
	*DB
	logger *logger.Logger
}

// NewPodcastRepository returns the SQLite-backed [PodcastRepository].
func NewPodcastRepository(db *DB, logger *logger.Logger) PodcastRepository {
	return &podcastRepository{DB: db, logger: logger}
}

func (r *podcastRepository) SavePodcast(ctx context.Context, podcast models.Podcast) error {
	if err := saveLocal(ctx, r.DB, podcastsTable, podcastValues(podcast)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "podcastRepository.SavePodcast").
			Str("uuid", podcast.UUID).
			Msg("failed to save podcast")
		return err
	}
	return nil
}

func (r *podcastRepository) SaveFolder(ctx context.Context, folder models.Folder) error {
	if err := saveLocal(ctx, r.DB, foldersTable, folderValues(folder)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "podcastRepository.SaveFolder").
			Str("uuid", folder.UUID).
			Msg("failed to save folder")
		return err
	}
	return nil
}

func (r *podcastRepository) GetPodcast(ctx context.Context, uuid string) (models.Podcast, error) {
	rows, err := queryBuilt(ctx, r.DB, sq.Select(podcastsTable.columns...).
		From(podcastsTable.name).
		Where(sq.Eq{"uuid": uuid}))
	if err != nil {
		return models.Podcast{}, err
	}

	items, err := scanAll(rows, scanPodcast)
	if err != nil {
		return models.Podcast{}, err
	}
	if len(items) == 0 {
		return models.Podcast{}, fmt.Errorf("podcast %s: %w", uuid, ErrNotFound)
	}
	return items[0], nil
}

func (r *podcastRepository) GetFolder(ctx context.Context, uuid string) (models.Folder, error) {
	return selectByKey(ctx, r.DB, foldersTable, []any{uuid}, scanFolder)
}

func (r *podcastRepository) ListPodcasts(ctx context.Context) ([]models.Podcast, error) {
	return selectLive(ctx, r.DB, podcastsTable, scanPodcast)
}

func (r *podcastRepository) ListFolders(ctx context.Context) ([]models.Folder, error) {
	return selectLive(ctx, r.DB, foldersTable, scanFolder)
}

func (r *podcastRepository) DirtyPodcasts(ctx context.Context) ([]models.Podcast, error) {
	items, err := selectDirty(ctx, r.DB, podcastsTable, scanPodcast)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "podcastRepository.DirtyPodcasts").
			Msg("failed to select pending podcasts")
		return nil, err
	}
	return items, nil
}

func (r *podcastRepository) DirtyFolders(ctx context.Context) ([]models.Folder, error) {
	items, err := selectDirty(ctx, r.DB, foldersTable, scanFolder)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "podcastRepository.DirtyFolders").
			Msg("failed to select pending folders")
		return nil, err
	}
	return items, nil
}

func (r *podcastRepository) CommitPodcasts(ctx context.Context, commit models.PodcastCommit) error {
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if err := commitPushed(ctx, tx, podcastsTable, commit.PushedPodcasts); err != nil {
			return err
		}
		if err := commitPushed(ctx, tx, foldersTable, commit.PushedFolders); err != nil {
			return err
		}

		for _, p := range commit.RemotePodcasts {
			remote := p
			remote.SyncStatus = models.SyncStatusSynced
			if err := applyRemote(ctx, tx, podcastsTable, []any{p.UUID}, podcastValues(remote), p.Deleted); err != nil {
				return err
			}
		}
		for _, f := range commit.RemoteFolders {
			remote := f
			remote.SyncStatus = models.SyncStatusSynced
			if err := applyRemote(ctx, tx, foldersTable, []any{f.UUID}, folderValues(remote), f.Deleted); err != nil {
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
			Str("func", "podcastRepository.CommitPodcasts").
			Msg("failed to commit podcasts domain")
		return err
	}
	return nil
}

func podcastValues(p models.Podcast) []any {
	return []any{
		p.UUID, p.FolderUUID, p.Title, p.Subscribed, p.SortPosition,
		p.AutoStartFrom, p.AutoSkipLast, p.DateAdded,
		int(p.SyncStatus), p.ModifiedAt, p.Deleted,
	}
}

func scanPodcast(rows *sql.Rows) (models.Podcast, error) {
	var (
		p         models.Podcast
		dateAdded sql.NullTime
		status    int
	)
	err := rows.Scan(
		&p.UUID, &p.FolderUUID, &p.Title, &p.Subscribed, &p.SortPosition,
		&p.AutoStartFrom, &p.AutoSkipLast, &dateAdded,
		&status, &p.ModifiedAt, &p.Deleted,
	)
	if err != nil {
		return models.Podcast{}, err
	}
	p.SyncStatus = models.SyncStatus(status)
	if dateAdded.Valid {
		t := dateAdded.Time
		p.DateAdded = &t
	}
	return p, nil
}

func folderValues(f models.Folder) []any {
	return []any{
		f.UUID, f.Name, f.Color, f.SortType, f.SortPosition, f.DateAdded,
		int(f.SyncStatus), f.ModifiedAt, f.Deleted,
	}
}

func scanFolder(rows *sql.Rows) (models.Folder, error) {
	var (
		f         models.Folder
		dateAdded sql.NullTime
		status    int
	)
	err := rows.Scan(
		&f.UUID, &f.Name, &f.Color, &f.SortType, &f.SortPosition, &dateAdded,
		&status, &f.ModifiedAt, &f.Deleted,
	)
	if err != nil {
		return models.Folder{}, err
	}
	f.SyncStatus = models.SyncStatus(status)
	if dateAdded.Valid {
		t := dateAdded.Time
		f.DateAdded = &t
	}
	return f, nil
}
