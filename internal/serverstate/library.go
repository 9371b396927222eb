package serverstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pod-sync/internal/app"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

// PodcastList returns every podcast and folder of the account, tombstones
// included.
func (s *State) PodcastList(ctx context.Context, login string) (models.PodcastListResponse, error) {
	podcasts, err := listRows[models.Podcast](ctx, s.data, login, store.RowPodcast)
	if err != nil {
		return models.PodcastListResponse{}, err
	}
	folders, err := listRows[models.Folder](ctx, s.data, login, store.RowFolder)
	if err != nil {
		return models.PodcastListResponse{}, err
	}
	return models.PodcastListResponse{Podcasts: podcasts, Folders: folders}, nil
}

// UpdatePodcasts applies a podcasts push.
func (s *State) UpdatePodcasts(ctx context.Context, login string, req models.PodcastChangesRequest) (models.SyncAck, error) {
	if err := requireUUIDs(req.Podcasts); err != nil {
		return models.SyncAck{}, err
	}
	if err := requireUUIDs(req.Folders); err != nil {
		return models.SyncAck{}, err
	}

	podcasts, err := encodeRows(store.RowPodcast, req.Podcasts)
	if err != nil {
		return models.SyncAck{}, err
	}
	folders, err := encodeRows(store.RowFolder, req.Folders)
	if err != nil {
		return models.SyncAck{}, err
	}
	return s.applyRows(ctx, login, append(podcasts, folders...))
}

// PlaylistList returns every filter and manual-playlist row of the account.
func (s *State) PlaylistList(ctx context.Context, login string) (models.PlaylistListResponse, error) {
	playlists, err := listRows[models.Playlist](ctx, s.data, login, store.RowPlaylist)
	if err != nil {
		return models.PlaylistListResponse{}, err
	}
	episodes, err := listRows[models.ManualPlaylistEpisode](ctx, s.data, login, store.RowPlaylistEpisode)
	if err != nil {
		return models.PlaylistListResponse{}, err
	}
	return models.PlaylistListResponse{Playlists: playlists, Episodes: episodes}, nil
}

// UpdatePlaylists applies a filters push.
func (s *State) UpdatePlaylists(ctx context.Context, login string, req models.PlaylistChangesRequest) (models.SyncAck, error) {
	if err := requireUUIDs(req.Playlists); err != nil {
		return models.SyncAck{}, err
	}
	for _, ep := range req.Episodes {
		if ep.PlaylistUUID == "" || ep.EpisodeUUID == "" {
			return models.SyncAck{}, fmt.Errorf("%w: playlist episode needs playlist and episode uuid", ErrInvalidData)
		}
	}

	playlists, err := encodeRows(store.RowPlaylist, req.Playlists)
	if err != nil {
		return models.SyncAck{}, err
	}
	episodes, err := encodeRows(store.RowPlaylistEpisode, req.Episodes)
	if err != nil {
		return models.SyncAck{}, err
	}
	return s.applyRows(ctx, login, append(playlists, episodes...))
}

// BookmarkList returns every bookmark of the account.
func (s *State) BookmarkList(ctx context.Context, login string) (models.BookmarkListResponse, error) {
	bookmarks, err := listRows[models.Bookmark](ctx, s.data, login, store.RowBookmark)
	if err != nil {
		return models.BookmarkListResponse{}, err
	}
	return models.BookmarkListResponse{Bookmarks: bookmarks}, nil
}

// UpdateBookmarks applies a bookmarks push.
func (s *State) UpdateBookmarks(ctx context.Context, login string, req models.BookmarkChangesRequest) (models.SyncAck, error) {
	if err := requireUUIDs(req.Bookmarks); err != nil {
		return models.SyncAck{}, err
	}

	rows, err := encodeRows(store.RowBookmark, req.Bookmarks)
	if err != nil {
		return models.SyncAck{}, err
	}
	return s.applyRows(ctx, login, rows)
}

// RatingList returns every podcast rating of the account.
func (s *State) RatingList(ctx context.Context, login string) (models.RatingListResponse, error) {
	ratings, err := listRows[models.PodcastRating](ctx, s.data, login, store.RowRating)
	if err != nil {
		return models.RatingListResponse{}, err
	}
	return models.RatingListResponse{Ratings: ratings}, nil
}

// AddRating stores one rating. Ratings outside 1..5 are rejected.
func (s *State) AddRating(ctx context.Context, login string, req models.RatingRequest) (models.SyncAck, error) {
	if req.PodcastUUID == "" {
		return models.SyncAck{}, fmt.Errorf("%w: podcast %s", ErrInvalidData, app.MsgMissingUUID)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return models.SyncAck{}, fmt.Errorf("%w: %s, got %d", ErrInvalidData, app.MsgRatingOutOfRange, req.Rating)
	}

	rows, err := encodeRows(store.RowRating, []models.PodcastRating{{
		PodcastUUID: req.PodcastUUID,
		Rating:      req.Rating,
		ModifiedAt:  req.Modified,
	}})
	if err != nil {
		return models.SyncAck{}, err
	}
	return s.applyRows(ctx, login, rows)
}

// UpdateEpisodeProgress applies a playback-progress push.
func (s *State) UpdateEpisodeProgress(ctx context.Context, login string, req models.EpisodeProgressRequest) (models.SyncAck, error) {
	for _, ep := range req.Episodes {
		if ep.UUID == "" {
			return models.SyncAck{}, fmt.Errorf("%w: episode %s", ErrInvalidData, app.MsgMissingUUID)
		}
		if !ep.Status.Valid() {
			return models.SyncAck{}, fmt.Errorf("%w: unknown playing status %d", ErrInvalidData, int(ep.Status))
		}
	}

	rows, err := encodeRows(store.RowProgress, req.Episodes)
	if err != nil {
		return models.SyncAck{}, err
	}
	return s.applyRows(ctx, login, rows)
}

// EpisodeProgress returns the stored progress of one episode.
func (s *State) EpisodeProgress(ctx context.Context, login, episodeUUID string) (models.EpisodeProgress, bool, error) {
	row, err := s.data.GetRow(ctx, login, store.RowProgress, episodeUUID)
	if errors.Is(err, store.ErrNotFound) {
		return models.EpisodeProgress{}, false, nil
	}
	if err != nil {
		return models.EpisodeProgress{}, false, stateError(err)
	}

	progress, err := decodeRow[models.EpisodeProgress](row)
	if err != nil {
		return models.EpisodeProgress{}, false, err
	}
	return progress, true, nil
}

// applyRows stores every row at least as new as the held one. Every row
// counts as accepted, including one already held at a newer version.
func (s *State) applyRows(ctx context.Context, login string, rows []store.ServerRow) (models.SyncAck, error) {
	accepted, err := s.data.ApplyRows(ctx, login, rows, s.now())
	if err != nil {
		return models.SyncAck{}, stateError(err)
	}
	return models.SyncAck{Accepted: accepted}, nil
}

func encodeRows[T models.Snapshotter](kind store.RowKind, items []T) ([]store.ServerRow, error) {
	rows := make([]store.ServerRow, 0, len(items))
	for _, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", kind, err)
		}
		ref := item.Ref()
		rows = append(rows, store.ServerRow{
			Kind:       kind,
			UUID:       ref.UUID,
			ModifiedAt: ref.ModifiedAt,
			Payload:    payload,
		})
	}
	return rows, nil
}

func listRows[T models.Snapshotter](ctx context.Context, data store.AccountDataRepository, login string, kind store.RowKind) ([]T, error) {
	rows, err := data.ListRows(ctx, login, kind)
	if err != nil {
		return nil, stateError(err)
	}

	var out []T
	for _, row := range rows {
		item, err := decodeRow[T](row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func decodeRow[T any](row store.ServerRow) (T, error) {
	var item T
	if err := json.Unmarshal(row.Payload, &item); err != nil {
		return item, fmt.Errorf("decode %s %s: %w", row.Kind, row.UUID, err)
	}
	return item, nil
}

func requireUUIDs[T models.Snapshotter](items []T) error {
	for _, item := range items {
		if item.Ref().UUID == "" {
			return fmt.Errorf("%w: %s", ErrInvalidData, app.MsgMissingUUID)
		}
	}
	return nil
}
