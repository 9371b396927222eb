package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pod-sync/internal/mock"
	"github.com/MKhiriev/go-pod-sync/models"
)

func TestSettingsSyncer_RemoteWinsPerField(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSettingsRepository(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	syncer := &settingsSyncer{repo: repo, adapter: mockAdapter, mu: &sync.Mutex{}}
	cycle := testCycle()

	stored := map[models.SettingField]models.NamedSetting{
		models.SettingSkipForward: {Field: models.SettingSkipForward, Value: models.IntSetting(45), NeedsSync: true, ModifiedAt: 100},
		models.SettingSkipBack:    {Field: models.SettingSkipBack, Value: models.IntSetting(15), NeedsSync: true, ModifiedAt: 101},
	}

	repo.EXPECT().GetSettings(gomock.Any()).Return(stored, nil)
	mockAdapter.EXPECT().UpdateNamedSettings(gomock.Any(), cycle.cred, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Credential, req models.NamedSettingsRequest) (models.NamedSettingsResponse, error) {
			assert.Equal(t, cycle.base, req.SyncRequestBase)
			// отправляются все отслеживаемые поля, не только изменённые
			assert.Len(t, req.Settings, len(models.TrackedSettings))
			assert.Equal(t, models.IntSetting(45), req.Settings[models.SettingSkipForward])
			assert.Equal(t, int64(101), req.Modified[models.SettingSkipBack])
			return models.NamedSettingsResponse{
				models.SettingSkipForward: {Value: models.IntSetting(45), Changed: false},
				models.SettingSkipBack:    {Value: models.IntSetting(30), Changed: true, Modified: 250},
			}, nil
		})

	var committed models.SettingsCommit
	repo.EXPECT().CommitSettings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.SettingsCommit) error {
			committed = c
			return nil
		})

	res, err := syncer.Sync(context.Background(), cycle)
	require.NoError(t, err)

	// значение сервера приходит вместе с его временем изменения
	assert.Equal(t, map[models.SettingField]models.SettingOverride{
		models.SettingSkipBack: {Value: models.IntSetting(30), ModifiedAt: 250},
	}, committed.Overrides)
	assert.ElementsMatch(t, []models.NamedSetting{
		stored[models.SettingSkipForward],
		stored[models.SettingSkipBack],
	}, committed.Synced)

	assert.Equal(t, 2, res.Pushed)
	assert.Equal(t, 1, res.Pulled)
}

func TestSettingsSyncer_FreshInstallSendsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSettingsRepository(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	syncer := &settingsSyncer{repo: repo, adapter: mockAdapter, mu: &sync.Mutex{}}

	repo.EXPECT().GetSettings(gomock.Any()).Return(map[models.SettingField]models.NamedSetting{}, nil)
	mockAdapter.EXPECT().UpdateNamedSettings(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Credential, req models.NamedSettingsRequest) (models.NamedSettingsResponse, error) {
			assert.Equal(t, models.DefaultSettings(), req.Settings)
			assert.Empty(t, req.Modified)
			return models.NamedSettingsResponse{}, nil
		})
	repo.EXPECT().CommitSettings(gomock.Any(), gomock.Any()).Return(nil)

	res, err := syncer.Sync(context.Background(), testCycle())
	require.NoError(t, err)
	assert.Zero(t, res.Pushed)
	assert.Zero(t, res.Pulled)
}

func TestSettingsSyncer_CommitFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSettingsRepository(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	syncer := &settingsSyncer{repo: repo, adapter: mockAdapter, mu: &sync.Mutex{}}

	repo.EXPECT().GetSettings(gomock.Any()).Return(nil, nil)
	mockAdapter.EXPECT().UpdateNamedSettings(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.NamedSettingsResponse{}, nil)
	repo.EXPECT().CommitSettings(gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))

	_, err := syncer.Sync(context.Background(), testCycle())
	assert.ErrorIs(t, err, ErrLocalStoreUnavailable)
}

// ── locks ────────────────────────────────────────────────────────────────────

func TestSettingsSyncer_HoldsLockOnlyAroundLocalSteps(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSettingsRepository(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mu := &sync.Mutex{}
	syncer := &settingsSyncer{repo: repo, adapter: mockAdapter, mu: mu}

	repo.EXPECT().GetSettings(gomock.Any()).
		DoAndReturn(func(context.Context) (map[models.SettingField]models.NamedSetting, error) {
			assert.False(t, mu.TryLock(), "snapshot is read under the lock")
			return map[models.SettingField]models.NamedSetting{}, nil
		})
	mockAdapter.EXPECT().UpdateNamedSettings(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.Credential, models.NamedSettingsRequest) (models.NamedSettingsResponse, error) {
			// локальные правки не ждут сетевой запрос
			require.True(t, mu.TryLock())
			mu.Unlock()
			return models.NamedSettingsResponse{}, nil
		})
	repo.EXPECT().CommitSettings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.SettingsCommit) error {
			assert.False(t, mu.TryLock(), "commit runs under the lock")
			return nil
		})

	_, err := syncer.Sync(context.Background(), testCycle())
	require.NoError(t, err)
	assert.True(t, mu.TryLock(), "lock released after the cycle")
}
