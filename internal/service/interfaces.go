// Package service is the client sync engine.
//
// Local mutations go through [LibraryService], [UpNextService] and
// [SettingsService], which mark rows dirty in the local store. [SyncService]
// runs sync cycles: it authenticates through [Session], fetches the
// account watermark, and runs one pipeline per domain concurrently. Each
// pipeline builds a change set from dirty rows, pushes it, pulls or merges
// the server state and commits everything in one local transaction.
// [SyncJob] triggers cycles periodically.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pod-sync/models"
)

// SyncService runs sync cycles for the signed-in account.
type SyncService interface {
	// Sync runs one cycle. A trigger while a cycle for the same account is
	// in flight joins it and receives the same result.
	Sync(ctx context.Context) models.SyncResult

	// SignIn authenticates with login and password and stores the
	// credential.
	SignIn(ctx context.Context, login, password string) error

	// Register creates an account and signs in.
	Register(ctx context.Context, login, password string) error

	// SignOut cancels the cycle in flight and waits for it to return, then
	// deletes the stored credential and resets every watermark so the next account starts from a full
	// pull.
	SignOut(ctx context.Context) error
}

// SyncJob runs [SyncService.Sync] in the background.
type SyncJob interface {
	// Start launches the background goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// TriggerNow requests a cycle without waiting for the next tick. It
	// never blocks; triggers arriving while one is queued are merged.
	TriggerNow()

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}

// SyncEventListener observes cycles. Calls are made synchronously from the
// cycle goroutine, so implementations must return quickly and must not
// fail the cycle.
type SyncEventListener interface {
	SyncStarted(ctx context.Context, startedAt time.Time)
	SyncFinished(ctx context.Context, result models.SyncResult)
}

// LibraryService records local mutations of podcasts, folders, filters,
// bookmarks, ratings and episode progress.
type LibraryService interface {
	Subscribe(ctx context.Context, podcast models.Podcast) (models.Podcast, error)
	Unsubscribe(ctx context.Context, podcastUUID string) error
	UpdatePodcast(ctx context.Context, podcast models.Podcast) error
	ListPodcasts(ctx context.Context) ([]models.Podcast, error)

	SaveFolder(ctx context.Context, folder models.Folder) (models.Folder, error)
	DeleteFolder(ctx context.Context, folder models.Folder) error

	SavePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error)
	DeletePlaylist(ctx context.Context, playlist models.Playlist) error
	AddToPlaylist(ctx context.Context, episode models.ManualPlaylistEpisode) error
	RemoveFromPlaylist(ctx context.Context, episode models.ManualPlaylistEpisode) error

	AddBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error)
	DeleteBookmark(ctx context.Context, bookmark models.Bookmark) error

	RatePodcast(ctx context.Context, podcastUUID string, rating int) error

	UpdateProgress(ctx context.Context, progress models.EpisodeProgress) error
}

// UpNextService edits the local up-next queue. Every edit is appended to
// the change log and applied to the materialized queue in one transaction.
type UpNextService interface {
	PlayNow(ctx context.Context, episode models.UpNextEpisode) error
	PlayNext(ctx context.Context, episode models.UpNextEpisode) error
	PlayLast(ctx context.Context, episode models.UpNextEpisode) error
	Remove(ctx context.Context, episodeUUID string) error
	// Reorder replaces the queue with episodes in the given order.
	Reorder(ctx context.Context, episodes []models.UpNextEpisode) error
	Queue(ctx context.Context) ([]models.UpNextEpisode, error)
}

// SettingsService edits named settings locally.
type SettingsService interface {
	// Set stores value for field and marks it for sync. The value kind must
	// match the declared kind of the field.
	Set(ctx context.Context, field models.SettingField, value models.SettingValue) error
	// All returns every tracked setting; fields never set hold their
	// default value.
	All(ctx context.Context) (map[models.SettingField]models.SettingValue, error)
}
