package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-pod-sync/internal/app"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

type settingsService struct {
	repo  store.SettingsRepository
	clock clockwork.Clock
	mu    *sync.Mutex
}

// NewSettingsService edits named settings locally. Every edit holds
// locks.Settings.
func NewSettingsService(repo store.SettingsRepository, clock clockwork.Clock, locks *DomainLocks) SettingsService {
	return &settingsService{repo: repo, clock: clock, mu: &locks.Settings}
}

func (s *settingsService) Set(ctx context.Context, field models.SettingField, value models.SettingValue) error {
	kind, tracked := models.TrackedSettings[field]
	if !tracked {
		return fmt.Errorf("%w: %s: %w", ErrInvalidData, app.MsgUnknownSetting, models.ErrUnknownSetting)
	}
	if value.Kind() != kind {
		return fmt.Errorf("%w: %s expects %s: %w", ErrInvalidData, field, kind, models.ErrSettingKindMismatch)
	}

	// the previous modified time and the write must not straddle a commit
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.repo.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("%w: read settings: %w", ErrLocalStoreUnavailable, err)
	}

	setting := models.NamedSetting{
		Field:      field,
		Value:      value,
		NeedsSync:  true,
		ModifiedAt: s.clock.Now().UnixMilli(),
	}
	// an edit within the same millisecond must still change modified_at,
	// otherwise a commit of the previous snapshot would clear it
	if prev, ok := stored[field]; ok && setting.ModifiedAt <= prev.ModifiedAt {
		setting.ModifiedAt = prev.ModifiedAt + 1
	}

	if err = s.repo.SetSetting(ctx, setting); err != nil {
		return fmt.Errorf("%w: set %s: %w", ErrLocalStoreUnavailable, field, err)
	}
	return nil
}

func (s *settingsService) All(ctx context.Context) (map[models.SettingField]models.SettingValue, error) {
	stored, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: read settings: %w", ErrLocalStoreUnavailable, err)
	}

	out := models.DefaultSettings()
	for field, setting := range stored {
		if _, tracked := models.TrackedSettings[field]; tracked {
			out[field] = setting.Value
		}
	}
	return out, nil
}
