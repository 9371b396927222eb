package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-pod-sync/internal/app"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/internal/upnext"
	"github.com/MKhiriev/go-pod-sync/models"
)

type upNextService struct {
	repo  store.UpNextRepository
	clock clockwork.Clock
	mu    *sync.Mutex
}

// NewUpNextService edits the queue through the up-next change log. Every
// edit holds locks.UpNext.
func NewUpNextService(repo store.UpNextRepository, clock clockwork.Clock, locks *DomainLocks) UpNextService {
	return &upNextService{repo: repo, clock: clock, mu: &locks.UpNext}
}

func (s *upNextService) PlayNow(ctx context.Context, episode models.UpNextEpisode) error {
	return s.appendEpisode(ctx, models.UpNextActionPlayNow, episode)
}

func (s *upNextService) PlayNext(ctx context.Context, episode models.UpNextEpisode) error {
	return s.appendEpisode(ctx, models.UpNextActionPlayNext, episode)
}

func (s *upNextService) PlayLast(ctx context.Context, episode models.UpNextEpisode) error {
	return s.appendEpisode(ctx, models.UpNextActionPlayLast, episode)
}

// Remove is a no-op on the queue when the episode is not in it, but the
// change is still logged so other devices drop it too.
func (s *upNextService) Remove(ctx context.Context, episodeUUID string) error {
	if episodeUUID == "" {
		return fmt.Errorf("%w: %s", ErrInvalidData, app.MsgMissingUUID)
	}
	return s.append(ctx, models.UpNextChange{Action: models.UpNextActionRemove, UUID: episodeUUID})
}

func (s *upNextService) Reorder(ctx context.Context, episodes []models.UpNextEpisode) error {
	for _, ep := range episodes {
		if ep.EpisodeUUID == "" {
			return fmt.Errorf("%w: %s", ErrInvalidData, app.MsgMissingUUID)
		}
	}
	return s.append(ctx, models.UpNextChange{
		Action: models.UpNextActionReplace,
		UUIDs:  upnext.UUIDs(episodes),
	})
}

func (s *upNextService) Queue(ctx context.Context) ([]models.UpNextEpisode, error) {
	queue, err := s.repo.Queue(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: read up next queue: %w", ErrLocalStoreUnavailable, err)
	}
	return queue, nil
}

func (s *upNextService) appendEpisode(ctx context.Context, action models.UpNextAction, ep models.UpNextEpisode) error {
	if ep.EpisodeUUID == "" {
		return fmt.Errorf("%w: %s", ErrInvalidData, app.MsgMissingUUID)
	}
	return s.append(ctx, models.UpNextChange{
		Action:      action,
		UUID:        ep.EpisodeUUID,
		Title:       ep.Title,
		URL:         ep.URL,
		PodcastUUID: ep.PodcastUUID,
		Published:   ep.Published,
	})
}

func (s *upNextService) append(ctx context.Context, change models.UpNextChange) error {
	s.mu.Lock()
	change.Modified = s.clock.Now().UnixMilli()
	stored, err := s.repo.AppendChange(ctx, change)
	s.mu.Unlock()
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "upNextService.append").
			Str("action", change.Action.String()).
			Msg("failed to log up next change")
		return fmt.Errorf("%w: append up next change: %w", ErrLocalStoreUnavailable, err)
	}

	logger.FromContext(ctx).Debug().
		Int64("id", stored.ID).
		Str("action", change.Action.String()).
		Msg("up next change logged")
	return nil
}
