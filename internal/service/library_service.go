package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-pod-sync/internal/app"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/internal/utils"
	"github.com/MKhiriev/go-pod-sync/models"
)

const (
	minRating = 1
	maxRating = 5
)

type libraryService struct {
	podcasts  store.PodcastRepository
	playlists store.PlaylistRepository
	bookmarks store.BookmarkRepository
	ratings   store.RatingRepository
	episodes  store.EpisodeRepository

	clock clockwork.Clock
	uuids *utils.UUIDGenerator
}

// NewLibraryService records local library mutations. Every mutation bumps
// the row's modified time on clock and marks it not synced.
func NewLibraryService(storages *store.ClientStorages, clock clockwork.Clock) LibraryService {
	return &libraryService{
		podcasts:  storages.PodcastRepository,
		playlists: storages.PlaylistRepository,
		bookmarks: storages.BookmarkRepository,
		ratings:   storages.RatingRepository,
		episodes:  storages.EpisodeRepository,
		clock:     clock,
		uuids:     utils.NewUUIDGenerator(),
	}
}

// Subscribe stores podcast as subscribed. Podcasts are identified by the
// catalogue uuid, so it must be set.
func (s *libraryService) Subscribe(ctx context.Context, podcast models.Podcast) (models.Podcast, error) {
	if podcast.UUID == "" {
		return models.Podcast{}, fmt.Errorf("%w: %s", ErrInvalidData, app.MsgMissingUUID)
	}

	existing, err := s.podcasts.GetPodcast(ctx, podcast.UUID)
	stored, err := storedModifiedAt(existing, err)
	if err != nil {
		return models.Podcast{}, s.storeFailed(ctx, "libraryService.Subscribe", err)
	}
	podcast.ModifiedAt = max(podcast.ModifiedAt, stored)

	now := s.clock.Now()
	podcast.Subscribed = true
	podcast.Deleted = false
	if podcast.DateAdded == nil {
		podcast.DateAdded = &now
	}
	podcast.Touch(now)

	if err = s.podcasts.SavePodcast(ctx, podcast); err != nil {
		return models.Podcast{}, s.storeFailed(ctx, "libraryService.Subscribe", err)
	}
	return podcast, nil
}

// Unsubscribe leaves a tombstone that is purged once the server confirms it.
func (s *libraryService) Unsubscribe(ctx context.Context, podcastUUID string) error {
	podcast, err := s.podcasts.GetPodcast(ctx, podcastUUID)
	if err != nil {
		return s.storeFailed(ctx, "libraryService.Unsubscribe", err)
	}

	podcast.Subscribed = false
	podcast.MarkDeleted(s.clock.Now())

	if err = s.podcasts.SavePodcast(ctx, podcast); err != nil {
		return s.storeFailed(ctx, "libraryService.Unsubscribe", err)
	}
	return nil
}

func (s *libraryService) UpdatePodcast(ctx context.Context, podcast models.Podcast) error {
	if podcast.UUID == "" {
		return fmt.Errorf("%w: %s", ErrInvalidData, app.MsgMissingUUID)
	}

	existing, err := s.podcasts.GetPodcast(ctx, podcast.UUID)
	stored, err := storedModifiedAt(existing, err)
	if err != nil {
		return s.storeFailed(ctx, "libraryService.UpdatePodcast", err)
	}

	podcast.ModifiedAt = max(podcast.ModifiedAt, stored)
	podcast.Touch(s.clock.Now())
	if err = s.podcasts.SavePodcast(ctx, podcast); err != nil {
		return s.storeFailed(ctx, "libraryService.UpdatePodcast", err)
	}
	return nil
}

func (s *libraryService) ListPodcasts(ctx context.Context) ([]models.Podcast, error) {
	podcasts, err := s.podcasts.ListPodcasts(ctx)
	if err != nil {
		return nil, s.storeFailed(ctx, "libraryService.ListPodcasts", err)
	}
	return podcasts, nil
}

// SaveFolder creates a folder when its uuid is empty, otherwise updates it.
func (s *libraryService) SaveFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	now := s.clock.Now()
	if folder.UUID == "" {
		folder.UUID = s.uuids.Generate()
		folder.DateAdded = &now
	} else {
		existing, err := s.podcasts.GetFolder(ctx, folder.UUID)
		stored, err := storedModifiedAt(existing, err)
		if err != nil {
			return models.Folder{}, s.storeFailed(ctx, "libraryService.SaveFolder", err)
		}
		folder.ModifiedAt = max(folder.ModifiedAt, stored)
	}
	folder.Touch(now)

	if err := s.podcasts.SaveFolder(ctx, folder); err != nil {
		return models.Folder{}, s.storeFailed(ctx, "libraryService.SaveFolder", err)
	}
	return folder, nil
}

func (s *libraryService) DeleteFolder(ctx context.Context, folder models.Folder) error {
	if folder.UUID == "" {
		return fmt.Errorf("%w: %s", ErrInvalidData, app.MsgMissingUUID)
	}

	existing, err := s.podcasts.GetFolder(ctx, folder.UUID)
	stored, err := storedModifiedAt(existing, err)
	if err != nil {
		return s.storeFailed(ctx, "libraryService.DeleteFolder", err)
	}

	folder.ModifiedAt = max(folder.ModifiedAt, stored)
	folder.MarkDeleted(s.clock.Now())
	if err = s.podcasts.SaveFolder(ctx, folder); err != nil {
		return s.storeFailed(ctx, "libraryService.DeleteFolder", err)
	}
	return nil
}

// SavePlaylist creates a filter when its uuid is empty, otherwise updates it.
func (s *libraryService) SavePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error) {
	if playlist.UUID == "" {
		playlist.UUID = s.uuids.Generate()
	} else {
		existing, err := s.playlists.GetPlaylist(ctx, playlist.UUID)
		stored, err := storedModifiedAt(existing, err)
		if err != nil {
			return models.Playlist{}, s.storeFailed(ctx, "libraryService.SavePlaylist", err)
		}
		playlist.ModifiedAt = max(playlist.ModifiedAt, stored)
	}
	playlist.Touch(s.clock.Now())

	if err := s.playlists.SavePlaylist(ctx, playlist); err != nil {
		return models.Playlist{}, s.storeFailed(ctx, "libraryService.SavePlaylist", err)
	}
	return playlist, nil
}

func (s *libraryService) DeletePlaylist(ctx context.Context, playlist models.Playlist) error {
	if playlist.UUID == "" {
		return fmt.Errorf("%w: %s", ErrInvalidData, app.MsgMissingUUID)
	}

	existing, err := s.playlists.GetPlaylist(ctx, playlist.UUID)
	stored, err := storedModifiedAt(existing, err)
	if err != nil {
		return s.storeFailed(ctx, "libraryService.DeletePlaylist", err)
	}

	playlist.ModifiedAt = max(playlist.ModifiedAt, stored)
	playlist.MarkDeleted(s.clock.Now())
	if err = s.playlists.SavePlaylist(ctx, playlist); err != nil {
		return s.storeFailed(ctx, "libraryService.DeletePlaylist", err)
	}
	return nil
}

// AddToPlaylist adds an episode to a manual playlist. The row stays
// unsynced until the server accepts it.
func (s *libraryService) AddToPlaylist(ctx context.Context, episode models.ManualPlaylistEpisode) error {
	if episode.PlaylistUUID == "" || episode.EpisodeUUID == "" {
		return fmt.Errorf("%w: %s", ErrInvalidData, app.MsgMissingUUID)
	}

	episode.Deleted = false
	return s.saveManualEpisode(ctx, "libraryService.AddToPlaylist", episode)
}

func (s *libraryService) RemoveFromPlaylist(ctx context.Context, episode models.ManualPlaylistEpisode) error {
	if episode.PlaylistUUID == "" || episode.EpisodeUUID == "" {
		return fmt.Errorf("%w: %s", ErrInvalidData, app.MsgMissingUUID)
	}

	episode.Deleted = true
	return s.saveManualEpisode(ctx, "libraryService.RemoveFromPlaylist", episode)
}

func (s *libraryService) saveManualEpisode(ctx context.Context, fn string, episode models.ManualPlaylistEpisode) error {
	existing, err := s.playlists.GetManualEpisode(ctx, episode.PlaylistUUID, episode.EpisodeUUID)
	stored, err := storedModifiedAt(existing, err)
	if err != nil {
		return s.storeFailed(ctx, fn, err)
	}

	episode.ModifiedAt = max(episode.ModifiedAt, stored)
	episode.Touch(s.clock.Now())
	if err = s.playlists.SaveManualEpisode(ctx, episode); err != nil {
		return s.storeFailed(ctx, fn, err)
	}
	return nil
}

func (s *libraryService) AddBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error) {
	if bookmark.EpisodeUUID == "" {
		return models.Bookmark{}, fmt.Errorf("%w: %s", ErrInvalidData, app.MsgMissingUUID)
	}

	now := s.clock.Now()
	if bookmark.UUID == "" {
		bookmark.UUID = s.uuids.Generate()
	} else {
		existing, err := s.bookmarks.GetBookmark(ctx, bookmark.UUID)
		stored, err := storedModifiedAt(existing, err)
		if err != nil {
			return models.Bookmark{}, s.storeFailed(ctx, "libraryService.AddBookmark", err)
		}
		bookmark.ModifiedAt = max(bookmark.ModifiedAt, stored)
	}
	if bookmark.CreatedAt.IsZero() {
		bookmark.CreatedAt = now.UTC()
	}
	bookmark.Touch(now)

	if err := s.bookmarks.SaveBookmark(ctx, bookmark); err != nil {
		return models.Bookmark{}, s.storeFailed(ctx, "libraryService.AddBookmark", err)
	}
	return bookmark, nil
}

func (s *libraryService) DeleteBookmark(ctx context.Context, bookmark models.Bookmark) error {
	if bookmark.UUID == "" {
		return fmt.Errorf("%w: %s", ErrInvalidData, app.MsgMissingUUID)
	}

	existing, err := s.bookmarks.GetBookmark(ctx, bookmark.UUID)
	stored, err := storedModifiedAt(existing, err)
	if err != nil {
		return s.storeFailed(ctx, "libraryService.DeleteBookmark", err)
	}

	bookmark.ModifiedAt = max(bookmark.ModifiedAt, stored)
	bookmark.MarkDeleted(s.clock.Now())
	if err = s.bookmarks.SaveBookmark(ctx, bookmark); err != nil {
		return s.storeFailed(ctx, "libraryService.DeleteBookmark", err)
	}
	return nil
}

func (s *libraryService) RatePodcast(ctx context.Context, podcastUUID string, rating int) error {
	if podcastUUID == "" {
		return fmt.Errorf("%w: %s", ErrInvalidData, app.MsgMissingUUID)
	}
	if rating < minRating || rating > maxRating {
		return fmt.Errorf("%w: %s", ErrInvalidData, app.MsgRatingOutOfRange)
	}

	existing, err := s.ratings.GetRating(ctx, podcastUUID)
	stored, err := storedModifiedAt(existing, err)
	if err != nil {
		return s.storeFailed(ctx, "libraryService.RatePodcast", err)
	}

	r := models.PodcastRating{PodcastUUID: podcastUUID, Rating: rating, ModifiedAt: stored}
	r.Touch(s.clock.Now())
	if err = s.ratings.SaveRating(ctx, r); err != nil {
		return s.storeFailed(ctx, "libraryService.RatePodcast", err)
	}
	return nil
}

// UpdateProgress records the playback position of an episode. The
// modified time never goes back even if the stored row is newer.
func (s *libraryService) UpdateProgress(ctx context.Context, progress models.EpisodeProgress) error {
	if progress.UUID == "" {
		return fmt.Errorf("%w: %s", ErrInvalidData, app.MsgMissingUUID)
	}
	if !progress.Status.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidData, app.MsgInvalidDataProvided)
	}

	existing, err := s.episodes.GetProgress(ctx, progress.UUID)
	stored, err := storedModifiedAt(existing, err)
	if err != nil {
		return s.storeFailed(ctx, "libraryService.UpdateProgress", err)
	}
	progress.ModifiedAt = max(progress.ModifiedAt, stored)

	progress.Touch(s.clock.Now())
	if err = s.episodes.SaveProgress(ctx, progress); err != nil {
		return s.storeFailed(ctx, "libraryService.UpdateProgress", err)
	}
	return nil
}

// storedModifiedAt returns the modified time of the stored version of a row,
// or 0 when there is none. An edit always moves past it, so a push snapshot
// of the stored version never marks the edit synced.
func storedModifiedAt[T models.Snapshotter](stored T, err error) (int64, error) {
	if errors.Is(err, store.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return stored.Ref().ModifiedAt, nil
}

func (s *libraryService) storeFailed(ctx context.Context, fn string, err error) error {
	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("local store operation failed")
	return fmt.Errorf("%w: %w", ErrLocalStoreUnavailable, err)
}
