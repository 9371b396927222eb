package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pod-sync/internal/mock"
	"github.com/MKhiriev/go-pod-sync/models"
)

func TestUpNextService_LogsEveryAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUpNextRepository(ctrl)
	svc := NewUpNextService(repo, clockwork.NewFakeClockAt(testNow), &DomainLocks{})
	ctx := context.Background()

	ep := models.UpNextEpisode{EpisodeUUID: "e1", Title: "One", PodcastUUID: "p1"}

	var logged []models.UpNextChange
	repo.EXPECT().AppendChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.UpNextChange) (models.UpNextChange, error) {
			c.ID = int64(len(logged) + 1)
			logged = append(logged, c)
			return c, nil
		}).Times(5)

	require.NoError(t, svc.PlayNow(ctx, ep))
	require.NoError(t, svc.PlayNext(ctx, ep))
	require.NoError(t, svc.PlayLast(ctx, ep))
	require.NoError(t, svc.Remove(ctx, "e1"))
	require.NoError(t, svc.Reorder(ctx, []models.UpNextEpisode{{EpisodeUUID: "e2"}, {EpisodeUUID: "e1"}}))

	require.Len(t, logged, 5)
	assert.Equal(t, models.UpNextActionPlayNow, logged[0].Action)
	assert.Equal(t, "One", logged[0].Title, "episode hints travel with the change")
	assert.Equal(t, models.UpNextActionPlayNext, logged[1].Action)
	assert.Equal(t, models.UpNextActionPlayLast, logged[2].Action)
	assert.Equal(t, models.UpNextActionRemove, logged[3].Action)
	assert.Equal(t, models.UpNextActionReplace, logged[4].Action)
	assert.Equal(t, []string{"e2", "e1"}, logged[4].UUIDs)

	for _, c := range logged {
		assert.Equal(t, testNow.UnixMilli(), c.Modified)
	}
}

func TestUpNextService_RejectsMissingUUID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewUpNextService(mock.NewMockUpNextRepository(ctrl), clockwork.NewFakeClock(), &DomainLocks{})
	ctx := context.Background()

	assert.ErrorIs(t, svc.PlayNext(ctx, models.UpNextEpisode{}), ErrInvalidData)
	assert.ErrorIs(t, svc.Remove(ctx, ""), ErrInvalidData)
	assert.ErrorIs(t, svc.Reorder(ctx, []models.UpNextEpisode{{EpisodeUUID: "e1"}, {}}), ErrInvalidData)
}

func TestUpNextService_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUpNextRepository(ctrl)
	svc := NewUpNextService(repo, clockwork.NewFakeClock(), &DomainLocks{})

	repo.EXPECT().AppendChange(gomock.Any(), gomock.Any()).Return(models.UpNextChange{}, assert.AnError)
	repo.EXPECT().Queue(gomock.Any()).Return(nil, assert.AnError)

	assert.ErrorIs(t, svc.PlayLast(context.Background(), models.UpNextEpisode{EpisodeUUID: "e1"}), ErrLocalStoreUnavailable)

	_, err := svc.Queue(context.Background())
	assert.ErrorIs(t, err, ErrLocalStoreUnavailable)
}

func TestUpNextService_EditWaitsForCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUpNextRepository(ctrl)
	locks := &DomainLocks{}
	svc := NewUpNextService(repo, clockwork.NewFakeClockAt(testNow), locks)

	var released atomic.Bool
	repo.EXPECT().AppendChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.UpNextChange) (models.UpNextChange, error) {
			assert.True(t, released.Load(), "change logged while a commit held the queue")
			return c, nil
		})

	// коммит синхронизации держит очередь
	locks.UpNext.Lock()
	done := make(chan error, 1)
	go func() { done <- svc.PlayLast(context.Background(), models.UpNextEpisode{EpisodeUUID: "e1"}) }()

	select {
	case err := <-done:
		t.Fatalf("edit finished while the queue was locked: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	released.Store(true)
	locks.UpNext.Unlock()
	require.NoError(t, <-done)
}
