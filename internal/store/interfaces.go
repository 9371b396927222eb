// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the local SQLite store of the sync engine and the
// database of the reference sync server.
//
// Every syncable table of the local store carries a dirty flag, a millisecond modified_at
// column and, where rows can be deleted, a tombstone column. Repositories
// expose three kinds of operations: local mutations made by the user,
// dirty selects read by the change-set builder, and one Commit per domain
// that applies a finished round trip in a single transaction.
package store

import (
	"context"

	"github.com/MKhiriev/go-pod-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PodcastRepository stores podcasts and folders.
type PodcastRepository interface {
	SavePodcast(ctx context.Context, podcast models.Podcast) error
	SaveFolder(ctx context.Context, folder models.Folder) error
	GetPodcast(ctx context.Context, uuid string) (models.Podcast, error)
	GetFolder(ctx context.Context, uuid string) (models.Folder, error)
	ListPodcasts(ctx context.Context) ([]models.Podcast, error)
	ListFolders(ctx context.Context) ([]models.Folder, error)
	DirtyPodcasts(ctx context.Context) ([]models.Podcast, error)
	DirtyFolders(ctx context.Context) ([]models.Folder, error)
	CommitPodcasts(ctx context.Context, commit models.PodcastCommit) error
}

// PlaylistRepository stores filters and manual playlist rows.
type PlaylistRepository interface {
	SavePlaylist(ctx context.Context, playlist models.Playlist) error
	SaveManualEpisode(ctx context.Context, episode models.ManualPlaylistEpisode) error
	GetPlaylist(ctx context.Context, uuid string) (models.Playlist, error)
	GetManualEpisode(ctx context.Context, playlistUUID, episodeUUID string) (models.ManualPlaylistEpisode, error)
	ListPlaylists(ctx context.Context) ([]models.Playlist, error)
	DirtyPlaylists(ctx context.Context) ([]models.Playlist, error)
	DirtyManualEpisodes(ctx context.Context) ([]models.ManualPlaylistEpisode, error)
	CommitPlaylists(ctx context.Context, commit models.PlaylistCommit) error
}

// BookmarkRepository stores bookmarks.
type BookmarkRepository interface {
	SaveBookmark(ctx context.Context, bookmark models.Bookmark) error
	GetBookmark(ctx context.Context, uuid string) (models.Bookmark, error)
	ListBookmarks(ctx context.Context) ([]models.Bookmark, error)
	DirtyBookmarks(ctx context.Context) ([]models.Bookmark, error)
	CommitBookmarks(ctx context.Context, commit models.BookmarkCommit) error
}

// RatingRepository stores podcast ratings.
type RatingRepository interface {
	SaveRating(ctx context.Context, rating models.PodcastRating) error
	GetRating(ctx context.Context, podcastUUID string) (models.PodcastRating, error)
	DirtyRatings(ctx context.Context) ([]models.PodcastRating, error)
	CommitRatings(ctx context.Context, commit models.RatingCommit) error
}

// EpisodeRepository stores episode playback progress.
type EpisodeRepository interface {
	SaveProgress(ctx context.Context, progress models.EpisodeProgress) error
	GetProgress(ctx context.Context, uuid string) (models.EpisodeProgress, error)
	DirtyProgress(ctx context.Context) ([]models.EpisodeProgress, error)
	CommitProgress(ctx context.Context, commit models.ProgressCommit) error
}

// UpNextRepository stores the up-next change log and materialized queue.
type UpNextRepository interface {
	// AppendChange logs change and re-materializes the queue with it in the
	// same transaction. It returns the stored change with its ID.
	AppendChange(ctx context.Context, change models.UpNextChange) (models.UpNextChange, error)
	PendingChanges(ctx context.Context) ([]models.UpNextChange, error)
	Queue(ctx context.Context) ([]models.UpNextEpisode, error)
	CommitUpNext(ctx context.Context, commit models.UpNextCommit) error
}

// SettingsRepository stores named settings.
type SettingsRepository interface {
	// SetSetting stores a local edit and marks the field for sync.
	SetSetting(ctx context.Context, setting models.NamedSetting) error
	GetSettings(ctx context.Context) (map[models.SettingField]models.NamedSetting, error)
	CommitSettings(ctx context.Context, commit models.SettingsCommit) error
}

// WatermarkRepository reads and advances per-domain watermarks.
type WatermarkRepository interface {
	GetWatermark(ctx context.Context, domain models.Domain) (models.Watermark, error)
	AdvanceWatermark(ctx context.Context, watermark models.Watermark) error
	ResetWatermarks(ctx context.Context) error
}

// SessionRepository persists the signed-in account's credential.
type SessionRepository interface {
	SaveSession(ctx context.Context, cred models.Credential) error
	GetSession(ctx context.Context) (models.Credential, error)
	DeleteSession(ctx context.Context) error
}
