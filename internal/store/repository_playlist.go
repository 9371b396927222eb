package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/models"
)

type playlistRepository struct {
	*DB
	logger *logger.Logger
}

// NewPlaylistRepository returns the SQLite-backed [PlaylistRepository].
func NewPlaylistRepository(db *DB, logger *logger.Logger) PlaylistRepository {
	return &playlistRepository{DB: db, logger: logger}
}

func (r *playlistRepository) SavePlaylist(ctx context.Context, playlist models.Playlist) error {
	if err := saveLocal(ctx, r.DB, playlistsTable, playlistValues(playlist)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "playlistRepository.SavePlaylist").
			Str("uuid", playlist.UUID).
			Msg("failed to save playlist")
		return err
	}
	return nil
}

func (r *playlistRepository) SaveManualEpisode(ctx context.Context, episode models.ManualPlaylistEpisode) error {
	if err := saveLocal(ctx, r.DB, manualEpisodesTable, manualEpisodeValues(episode)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "playlistRepository.SaveManualEpisode").
			Str("uuid", episode.Key()).
			Msg("failed to save manual playlist episode")
		return err
	}
	return nil
}

func (r *playlistRepository) GetPlaylist(ctx context.Context, uuid string) (models.Playlist, error) {
	return selectByKey(ctx, r.DB, playlistsTable, []any{uuid}, scanPlaylist)
}

func (r *playlistRepository) GetManualEpisode(ctx context.Context, playlistUUID, episodeUUID string) (models.ManualPlaylistEpisode, error) {
	return selectByKey(ctx, r.DB, manualEpisodesTable, []any{playlistUUID, episodeUUID}, scanManualEpisode)
}

func (r *playlistRepository) ListPlaylists(ctx context.Context) ([]models.Playlist, error) {
	return selectLive(ctx, r.DB, playlistsTable, scanPlaylist)
}

func (r *playlistRepository) DirtyPlaylists(ctx context.Context) ([]models.Playlist, error) {
	items, err := selectDirty(ctx, r.DB, playlistsTable, scanPlaylist)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "playlistRepository.DirtyPlaylists").
			Msg("failed to select pending playlists")
		return nil, err
	}
	return items, nil
}

func (r *playlistRepository) DirtyManualEpisodes(ctx context.Context) ([]models.ManualPlaylistEpisode, error) {
	items, err := selectDirty(ctx, r.DB, manualEpisodesTable, scanManualEpisode)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "playlistRepository.DirtyManualEpisodes").
			Msg("failed to select pending manual playlist episodes")
		return nil, err
	}
	return items, nil
}

func (r *playlistRepository) CommitPlaylists(ctx context.Context, commit models.PlaylistCommit) error {
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if err := commitPushed(ctx, tx, playlistsTable, commit.PushedPlaylists); err != nil {
			return err
		}
		if err := commitPushed(ctx, tx, manualEpisodesTable, commit.PushedEpisodes); err != nil {
			return err
		}

		for _, p := range commit.RemotePlaylists {
			remote := p
			remote.SyncStatus = models.SyncStatusSynced
			if err := applyRemote(ctx, tx, playlistsTable, []any{p.UUID}, playlistValues(remote), p.Deleted); err != nil {
				return err
			}
		}
		for _, e := range commit.RemoteEpisodes {
			remote := e
			remote.IsSynced = true
			key := []any{e.PlaylistUUID, e.EpisodeUUID}
			if err := applyRemote(ctx, tx, manualEpisodesTable, key, manualEpisodeValues(remote), e.Deleted); err != nil {
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
			Str("func", "playlistRepository.CommitPlaylists").
			Msg("failed to commit filters domain")
		return err
	}
	return nil
}

func playlistValues(p models.Playlist) []any {
	return []any{
		p.UUID, p.Title, p.Manual, p.SortType, p.SortPosition, p.Starred,
		p.AllPodcasts, strings.Join(p.PodcastUUIDs, ","), p.Unplayed, p.PartiallyPlayed, p.Finished,
		int(p.SyncStatus), p.ModifiedAt, p.Deleted,
	}
}

func scanPlaylist(rows *sql.Rows) (models.Playlist, error) {
	var (
		p        models.Playlist
		podcasts string
		status   int
	)
	err := rows.Scan(
		&p.UUID, &p.Title, &p.Manual, &p.SortType, &p.SortPosition, &p.Starred,
		&p.AllPodcasts, &podcasts, &p.Unplayed, &p.PartiallyPlayed, &p.Finished,
		&status, &p.ModifiedAt, &p.Deleted,
	)
	if err != nil {
		return models.Playlist{}, err
	}
	p.SyncStatus = models.SyncStatus(status)
	if podcasts != "" {
		p.PodcastUUIDs = strings.Split(podcasts, ",")
	}
	return p, nil
}

func manualEpisodeValues(e models.ManualPlaylistEpisode) []any {
	return []any{
		e.PlaylistUUID, e.EpisodeUUID, e.PodcastUUID, e.Title, e.SortPosition,
		e.IsSynced, e.ModifiedAt, e.Deleted,
	}
}

func scanManualEpisode(rows *sql.Rows) (models.ManualPlaylistEpisode, error) {
	var e models.ManualPlaylistEpisode
	err := rows.Scan(
		&e.PlaylistUUID, &e.EpisodeUUID, &e.PodcastUUID, &e.Title, &e.SortPosition,
		&e.IsSynced, &e.ModifiedAt, &e.Deleted,
	)
	return e, err
}
