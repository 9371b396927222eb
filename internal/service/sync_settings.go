package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pod-sync/internal/adapter"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

// settingsSyncer reconciles named settings field by field. Every tracked
// field is sent; fields the server answers with changed=true take the
// server's value, the rest keep the local one.
type settingsSyncer struct {
	repo    store.SettingsRepository
	adapter adapter.ServerAdapter
	mu      *sync.Mutex
}

func (s *settingsSyncer) Domain() models.Domain {
	return models.DomainSettings
}

func (s *settingsSyncer) Sync(ctx context.Context, cycle *syncCycle) (models.DomainResult, error) {
	log := logger.FromContext(ctx)
	res := models.DomainResult{Domain: models.DomainSettings}

	s.mu.Lock()
	stored, err := s.repo.GetSettings(ctx)
	s.mu.Unlock()
	if err != nil {
		return res, fmt.Errorf("%w: read settings: %w", ErrLocalStoreUnavailable, err)
	}

	req := models.NamedSettingsRequest{
		SyncRequestBase: cycle.base,
		Settings:        models.DefaultSettings(),
		Modified:        make(map[models.SettingField]int64, len(stored)),
	}
	synced := make([]models.NamedSetting, 0, len(stored))
	for field, setting := range stored {
		if _, tracked := models.TrackedSettings[field]; !tracked {
			continue
		}
		req.Settings[field] = setting.Value
		req.Modified[field] = setting.ModifiedAt
		synced = append(synced, setting)
		if setting.NeedsSync {
			res.Pushed++
		}
	}

	log.Debug().Str("stage", stagePushing).
		Int("dirty", res.Pushed).
		Msg("sending named settings")

	resp, err := s.adapter.UpdateNamedSettings(ctx, cycle.cred, req)
	if err != nil {
		return res, fmt.Errorf("update named settings: %w", err)
	}

	commit := models.SettingsCommit{
		Overrides: make(map[models.SettingField]models.SettingOverride),
		Synced:    synced,
	}
	for field, result := range resp {
		if !result.Changed {
			continue
		}
		commit.Overrides[field] = models.SettingOverride{Value: result.Value, ModifiedAt: result.Modified}
	}
	res.Pulled = len(commit.Overrides)

	s.mu.Lock()
	err = s.repo.CommitSettings(ctx, commit)
	s.mu.Unlock()
	if err != nil {
		return res, commitFailed(models.DomainSettings, err)
	}
	return res, nil
}
