package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pod-sync/internal/adapter"
	"github.com/MKhiriev/go-pod-sync/internal/mock"
	"github.com/MKhiriev/go-pod-sync/models"
)

type upNextMocks struct {
	repo       *mock.MockUpNextRepository
	watermarks *mock.MockWatermarkRepository
	adapter    *mock.MockServerAdapter
	clock      clockwork.FakeClock
}

func newTestUpNextSyncer(ctrl *gomock.Controller) (*upNextSyncer, upNextMocks) {
	m := upNextMocks{
		repo:       mock.NewMockUpNextRepository(ctrl),
		watermarks: mock.NewMockWatermarkRepository(ctrl),
		adapter:    mock.NewMockServerAdapter(ctrl),
		clock:      clockwork.NewFakeClockAt(time.UnixMilli(1_700_000_000_000)),
	}
	return &upNextSyncer{repo: m.repo, watermarks: m.watermarks, adapter: m.adapter, clock: m.clock, mu: &sync.Mutex{}}, m
}

func strPtr(s string) *string { return &s }

func TestUpNextSyncer_UnchangedServerModified_KeepsLocalQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncer, m := newTestUpNextSyncer(ctrl)
	cycle := testCycle()

	pending := []models.UpNextChange{
		{ID: 1, Action: models.UpNextActionPlayNext, UUID: "e1", Modified: 100},
		{ID: 2, Action: models.UpNextActionRemove, UUID: "e9", Modified: 101},
	}

	m.watermarks.EXPECT().GetWatermark(gomock.Any(), models.DomainUpNext).
		Return(models.Watermark{Domain: models.DomainUpNext, Value: "42"}, nil)
	m.repo.EXPECT().PendingChanges(gomock.Any()).Return(pending, nil)
	m.adapter.EXPECT().UpNextSync(gomock.Any(), cycle.cred, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Credential, req models.UpNextSyncRequest) (models.UpNextSyncResponse, error) {
			assert.Equal(t, int64(1_700_000_000_000), req.DeviceTime)
			assert.Equal(t, cycle.base.Version, req.Version)
			assert.Equal(t, int64(42), req.UpNext.ServerModified)
			require.Len(t, req.UpNext.Changes, 2)
			assert.Equal(t, models.UpNextActionPlayNext, req.UpNext.Changes[0].Action)
			assert.Equal(t, "e9", *req.UpNext.Changes[1].UUID)
			return models.UpNextSyncResponse{
				ServerModified: 42,
				Episodes:       []models.UpNextEpisodeRecord{{UUID: strPtr("stale")}},
			}, nil
		})
	m.repo.EXPECT().CommitUpNext(gomock.Any(), models.UpNextCommit{
		ConsumedChangeIDs: []int64{1, 2},
		ServerModified:    "42",
	}).Return(nil)

	res, err := syncer.Sync(context.Background(), cycle)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Pushed)
	assert.Zero(t, res.Pulled)
	assert.Equal(t, "42", res.Watermark)
}

func TestUpNextSyncer_ChangedServerModified_ReplacesQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncer, m := newTestUpNextSyncer(ctrl)

	m.watermarks.EXPECT().GetWatermark(gomock.Any(), models.DomainUpNext).
		Return(models.Watermark{Domain: models.DomainUpNext, Value: "42"}, nil)
	m.repo.EXPECT().PendingChanges(gomock.Any()).
		Return([]models.UpNextChange{{ID: 7, Action: models.UpNextActionPlayLast, UUID: "e3", Modified: 5}}, nil)
	m.adapter.EXPECT().UpNextSync(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.UpNextSyncResponse{
			ServerModified: 43,
			Episodes: []models.UpNextEpisodeRecord{
				{UUID: strPtr("e1"), Title: strPtr("One")},
				{UUID: strPtr("e3")},
			},
		}, nil)

	var committed models.UpNextCommit
	m.repo.EXPECT().CommitUpNext(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.UpNextCommit) error {
			committed = c
			return nil
		})

	res, err := syncer.Sync(context.Background(), testCycle())
	require.NoError(t, err)

	assert.True(t, committed.Replace)
	assert.Equal(t, []int64{7}, committed.ConsumedChangeIDs)
	assert.Equal(t, "43", committed.ServerModified)
	require.Len(t, committed.Queue, 2)
	assert.Equal(t, "e1", committed.Queue[0].EpisodeUUID)
	assert.Equal(t, 1, committed.Queue[1].Position)

	assert.Equal(t, 1, res.Pushed)
	assert.Equal(t, 2, res.Pulled)
	assert.Equal(t, "43", res.Watermark)
}

func TestUpNextSyncer_EmptyLog_StillAsksServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncer, m := newTestUpNextSyncer(ctrl)

	// свежая установка: watermark пустой, лог пустой
	m.watermarks.EXPECT().GetWatermark(gomock.Any(), models.DomainUpNext).
		Return(models.Watermark{Domain: models.DomainUpNext}, nil)
	m.repo.EXPECT().PendingChanges(gomock.Any()).Return(nil, nil)
	m.adapter.EXPECT().UpNextSync(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Credential, req models.UpNextSyncRequest) (models.UpNextSyncResponse, error) {
			assert.Zero(t, req.UpNext.ServerModified)
			assert.Empty(t, req.UpNext.Changes)
			return models.UpNextSyncResponse{ServerModified: 10, Episodes: []models.UpNextEpisodeRecord{{UUID: strPtr("e1")}}}, nil
		})
	m.repo.EXPECT().CommitUpNext(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.UpNextCommit) error {
			assert.True(t, c.Replace)
			assert.Empty(t, c.ConsumedChangeIDs)
			return nil
		})

	res, err := syncer.Sync(context.Background(), testCycle())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pulled)
}

func TestUpNextSyncer_ServerFailure_KeepsLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncer, m := newTestUpNextSyncer(ctrl)

	m.watermarks.EXPECT().GetWatermark(gomock.Any(), models.DomainUpNext).
		Return(models.Watermark{Domain: models.DomainUpNext, Value: "1"}, nil)
	m.repo.EXPECT().PendingChanges(gomock.Any()).
		Return([]models.UpNextChange{{ID: 1, Action: models.UpNextActionPlayNow, UUID: "e1"}}, nil)
	m.adapter.EXPECT().UpNextSync(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.UpNextSyncResponse{}, adapter.ErrServerError)
	// commit не вызывается: лог остаётся для следующего цикла

	_, err := syncer.Sync(context.Background(), testCycle())
	require.Error(t, err)
	assert.ErrorIs(t, classifyError(err), ErrServerUnavailable)
	assert.True(t, IsRetryable(classifyError(err)))
}

// ── locks ────────────────────────────────────────────────────────────────────

func TestUpNextSyncer_HoldsLockOnlyAroundLocalSteps(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncer, m := newTestUpNextSyncer(ctrl)
	mu := syncer.mu

	m.watermarks.EXPECT().GetWatermark(gomock.Any(), models.DomainUpNext).
		DoAndReturn(func(context.Context, models.Domain) (models.Watermark, error) {
			assert.False(t, mu.TryLock(), "watermark is read under the lock")
			return models.Watermark{Domain: models.DomainUpNext, Value: "1"}, nil
		})
	m.repo.EXPECT().PendingChanges(gomock.Any()).
		DoAndReturn(func(context.Context) ([]models.UpNextChange, error) {
			assert.False(t, mu.TryLock(), "log is read under the lock")
			return nil, nil
		})
	m.adapter.EXPECT().UpNextSync(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.Credential, models.UpNextSyncRequest) (models.UpNextSyncResponse, error) {
			// правки очереди во время запроса не блокируются
			require.True(t, mu.TryLock())
			mu.Unlock()
			return models.UpNextSyncResponse{ServerModified: 2}, nil
		})
	m.repo.EXPECT().CommitUpNext(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.UpNextCommit) error {
			assert.False(t, mu.TryLock(), "commit runs under the lock")
			return nil
		})

	_, err := syncer.Sync(context.Background(), testCycle())
	require.NoError(t, err)
	assert.True(t, mu.TryLock(), "lock released after the cycle")
}
