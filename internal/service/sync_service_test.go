// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pod-sync/internal/adapter"
	"github.com/MKhiriev/go-pod-sync/internal/app"
	"github.com/MKhiriev/go-pod-sync/internal/mock"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

// fakeSyncer is a domainSyncer whose behavior is set per test.
type fakeSyncer struct {
	domain models.Domain
	fn     func(ctx context.Context, cycle *syncCycle) (models.DomainResult, error)
	calls  atomic.Int64
}

func (f *fakeSyncer) Domain() models.Domain { return f.domain }

func (f *fakeSyncer) Sync(ctx context.Context, cycle *syncCycle) (models.DomainResult, error) {
	f.calls.Add(1)
	if f.fn == nil {
		return models.DomainResult{Pushed: 1}, nil
	}
	return f.fn(ctx, cycle)
}

// spyListener records cycle events.
type spyListener struct {
	mu       sync.Mutex
	started  int
	finished []models.SyncResult
}

func (l *spyListener) SyncStarted(context.Context, time.Time) {
	l.mu.Lock()
	l.started++
	l.mu.Unlock()
}

func (l *spyListener) SyncFinished(_ context.Context, res models.SyncResult) {
	l.mu.Lock()
	l.finished = append(l.finished, res)
	l.mu.Unlock()
}

var testCredential = models.Credential{Login: "user@example.com", AccessToken: "access", RefreshToken: "refresh"}

type syncServiceMocks struct {
	sessions   *mock.MockSessionRepository
	adapter    *mock.MockServerAdapter
	watermarks *mock.MockWatermarkRepository
	clock      clockwork.FakeClock
	listener   *spyListener
}

func newTestSyncService(ctrl *gomock.Controller, syncers ...domainSyncer) (*syncService, syncServiceMocks) {
	m := syncServiceMocks{
		sessions:   mock.NewMockSessionRepository(ctrl),
		adapter:    mock.NewMockServerAdapter(ctrl),
		watermarks: mock.NewMockWatermarkRepository(ctrl),
		clock:      clockwork.NewFakeClock(),
		listener:   &spyListener{},
	}
	s := &syncService{
		session:       NewSession(m.sessions, m.adapter, m.clock, time.Minute),
		adapter:       m.adapter,
		watermarks:    m.watermarks,
		syncers:       syncers,
		listener:      m.listener,
		clock:         m.clock,
		base:          models.SyncRequestBase{Model: "test-device", Version: "1.0"},
		domainTimeout: time.Second,
		inFlight:      make(map[uint64]inFlightCycle),
	}
	return s, m
}

func (m syncServiceMocks) signedIn() {
	m.sessions.EXPECT().GetSession(gomock.Any()).Return(testCredential, nil)
}

// ── Sync ─────────────────────────────────────────────────────────────────────

func TestSync_AllDomainsSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	podcasts := &fakeSyncer{domain: models.DomainPodcasts}
	bookmarks := &fakeSyncer{domain: models.DomainBookmarks, fn: func(_ context.Context, cycle *syncCycle) (models.DomainResult, error) {
		assert.Equal(t, testLastSyncAt, cycle.lastSyncAt)
		assert.Equal(t, testCredential, cycle.cred)
		return models.DomainResult{Watermark: cycle.lastSyncAt}, nil
	}}
	s, m := newTestSyncService(ctrl, podcasts, bookmarks)

	m.signedIn()
	m.adapter.EXPECT().GetLastSyncAt(gomock.Any(), testCredential).
		Return(models.LastSyncAtResponse{LastSyncAt: testLastSyncAt}, nil)

	res := s.Sync(context.Background())

	assert.Equal(t, models.StatusSuccess, res.Status)
	assert.NoError(t, res.Err)
	require.Len(t, res.Domains, 2)
	assert.Equal(t, models.OutcomeSuccess, res.Domains[models.DomainPodcasts].Outcome)
	assert.Equal(t, models.DomainBookmarks, res.Domains[models.DomainBookmarks].Domain)
	assert.Equal(t, testLastSyncAt, res.Domains[models.DomainBookmarks].Watermark)
	assert.Empty(t, res.UserMessage())

	assert.Equal(t, 1, m.listener.started)
	require.Len(t, m.listener.finished, 1)
	assert.Equal(t, models.StatusSuccess, m.listener.finished[0].Status)
}

func TestSync_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	podcasts := &fakeSyncer{domain: models.DomainPodcasts}
	upNext := &fakeSyncer{domain: models.DomainUpNext, fn: func(ctx context.Context, _ *syncCycle) (models.DomainResult, error) {
		// сервер не отвечает дольше таймаута домена
		<-ctx.Done()
		return models.DomainResult{}, ctx.Err()
	}}
	s, m := newTestSyncService(ctrl, podcasts, upNext)
	s.domainTimeout = 20 * time.Millisecond

	m.signedIn()
	m.adapter.EXPECT().GetLastSyncAt(gomock.Any(), gomock.Any()).
		Return(models.LastSyncAtResponse{LastSyncAt: testLastSyncAt}, nil)

	res := s.Sync(context.Background())

	assert.Equal(t, models.StatusPartial, res.Status)
	assert.Equal(t, []models.Domain{models.DomainUpNext}, res.FailedDomains())
	assert.Equal(t, models.OutcomeSuccess, res.Domains[models.DomainPodcasts].Outcome)

	failed := res.Domains[models.DomainUpNext]
	assert.ErrorIs(t, failed.Err, ErrNoNetwork)
	assert.True(t, IsRetryable(failed.Err))
	assert.Empty(t, res.UserMessage(), "transient failures are silent")
}

var refreshedCredential = models.Credential{Login: testCredential.Login, AccessToken: "access-2", RefreshToken: "refresh-2"}

func TestSync_UnauthorizedDomainRefreshesOnceAndRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	podcasts := &fakeSyncer{domain: models.DomainPodcasts}
	podcasts.fn = func(_ context.Context, cycle *syncCycle) (models.DomainResult, error) {
		// токен отозван на сервере, хотя локально ещё не истёк
		if cycle.cred.AccessToken == testCredential.AccessToken {
			return models.DomainResult{}, adapter.ErrUnauthorized
		}
		return models.DomainResult{Pushed: 2}, nil
	}
	ratings := &fakeSyncer{domain: models.DomainRatings, fn: func(_ context.Context, cycle *syncCycle) (models.DomainResult, error) {
		if cycle.cred.AccessToken == testCredential.AccessToken {
			return models.DomainResult{}, adapter.ErrUnauthorized
		}
		return models.DomainResult{}, nil
	}}
	progress := &fakeSyncer{domain: models.DomainProgress}
	s, m := newTestSyncService(ctrl, podcasts, ratings, progress)

	m.signedIn()
	m.adapter.EXPECT().GetLastSyncAt(gomock.Any(), testCredential).
		Return(models.LastSyncAtResponse{LastSyncAt: testLastSyncAt}, nil)
	m.adapter.EXPECT().RefreshToken(gomock.Any(), "refresh").Return(refreshedCredential, nil).Times(1)
	m.sessions.EXPECT().SaveSession(gomock.Any(), refreshedCredential).Return(nil)

	res := s.Sync(context.Background())

	assert.Equal(t, models.StatusSuccess, res.Status)
	assert.Equal(t, 2, res.Domains[models.DomainPodcasts].Pushed)
	assert.Equal(t, int64(2), podcasts.calls.Load())
	assert.Equal(t, int64(2), ratings.calls.Load())
	assert.Equal(t, int64(1), progress.calls.Load(), "domains that succeeded are not rerun")
	assert.Empty(t, res.UserMessage())

	cred, err := s.session.Credential(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-2", cred.AccessToken)
}

func TestSync_UnauthorizedDomainRefreshFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	podcasts := &fakeSyncer{domain: models.DomainPodcasts, fn: func(context.Context, *syncCycle) (models.DomainResult, error) {
		return models.DomainResult{}, adapter.ErrUnauthorized
	}}
	progress := &fakeSyncer{domain: models.DomainProgress}
	s, m := newTestSyncService(ctrl, podcasts, progress)

	m.signedIn()
	m.adapter.EXPECT().GetLastSyncAt(gomock.Any(), gomock.Any()).
		Return(models.LastSyncAtResponse{LastSyncAt: testLastSyncAt}, nil)
	m.adapter.EXPECT().RefreshToken(gomock.Any(), "refresh").
		Return(models.Credential{}, adapter.ErrUnauthorized).Times(1)

	res := s.Sync(context.Background())

	assert.Equal(t, models.StatusPartial, res.Status)
	assert.ErrorIs(t, res.Domains[models.DomainPodcasts].Err, ErrAuthExpired)
	assert.False(t, IsRetryable(res.Domains[models.DomainPodcasts].Err))
	assert.Equal(t, models.OutcomeSuccess, res.Domains[models.DomainProgress].Outcome)
	assert.Equal(t, app.MsgSignInAgain, res.UserMessage())
	assert.Equal(t, int64(1), podcasts.calls.Load())
}

func TestSync_UnauthorizedAfterRefreshIsNotRefreshedAgain(t *testing.T) {
	ctrl := gomock.NewController(t)
	podcasts := &fakeSyncer{domain: models.DomainPodcasts, fn: func(context.Context, *syncCycle) (models.DomainResult, error) {
		return models.DomainResult{}, adapter.ErrUnauthorized
	}}
	s, m := newTestSyncService(ctrl, podcasts)

	m.signedIn()
	m.adapter.EXPECT().GetLastSyncAt(gomock.Any(), gomock.Any()).
		Return(models.LastSyncAtResponse{LastSyncAt: testLastSyncAt}, nil)
	m.adapter.EXPECT().RefreshToken(gomock.Any(), "refresh").Return(refreshedCredential, nil).Times(1)
	m.sessions.EXPECT().SaveSession(gomock.Any(), refreshedCredential).Return(nil)

	res := s.Sync(context.Background())

	assert.Equal(t, models.StatusFailed, res.Status)
	assert.ErrorIs(t, res.Domains[models.DomainPodcasts].Err, ErrAuthExpired)
	assert.Equal(t, int64(2), podcasts.calls.Load())
}

func TestSync_UnauthorizedLastSyncAtRefreshesFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	podcasts := &fakeSyncer{domain: models.DomainPodcasts, fn: func(_ context.Context, cycle *syncCycle) (models.DomainResult, error) {
		assert.Equal(t, refreshedCredential, cycle.cred)
		assert.NoError(t, cycle.lastSyncErr)
		return models.DomainResult{Watermark: cycle.lastSyncAt}, nil
	}}
	s, m := newTestSyncService(ctrl, podcasts)

	m.signedIn()
	gomock.InOrder(
		m.adapter.EXPECT().GetLastSyncAt(gomock.Any(), testCredential).
			Return(models.LastSyncAtResponse{}, adapter.ErrUnauthorized),
		m.adapter.EXPECT().RefreshToken(gomock.Any(), "refresh").Return(refreshedCredential, nil),
		m.adapter.EXPECT().GetLastSyncAt(gomock.Any(), refreshedCredential).
			Return(models.LastSyncAtResponse{LastSyncAt: testLastSyncAt}, nil),
	)
	m.sessions.EXPECT().SaveSession(gomock.Any(), refreshedCredential).Return(nil)

	res := s.Sync(context.Background())

	assert.Equal(t, models.StatusSuccess, res.Status)
	assert.Equal(t, testLastSyncAt, res.Domains[models.DomainPodcasts].Watermark)
}

func TestSync_UnauthorizedLastSyncAtRefreshFailsAbortsCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	podcasts := &fakeSyncer{domain: models.DomainPodcasts}
	s, m := newTestSyncService(ctrl, podcasts)

	m.signedIn()
	m.adapter.EXPECT().GetLastSyncAt(gomock.Any(), gomock.Any()).
		Return(models.LastSyncAtResponse{}, adapter.ErrUnauthorized)
	m.adapter.EXPECT().RefreshToken(gomock.Any(), "refresh").
		Return(models.Credential{}, adapter.ErrUnauthorized)

	res := s.Sync(context.Background())

	assert.Equal(t, models.StatusFailed, res.Status)
	assert.ErrorIs(t, res.Err, ErrAuthExpired)
	assert.Zero(t, podcasts.calls.Load())
}

func TestSync_NotSignedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	podcasts := &fakeSyncer{domain: models.DomainPodcasts}
	s, m := newTestSyncService(ctrl, podcasts)

	m.sessions.EXPECT().GetSession(gomock.Any()).Return(models.Credential{}, store.ErrSessionNotFound)

	res := s.Sync(context.Background())

	assert.Equal(t, models.StatusFailed, res.Status)
	assert.ErrorIs(t, res.Err, ErrNotSignedIn)
	assert.Equal(t, app.MsgSignInAgain, res.UserMessage())
	assert.Zero(t, podcasts.calls.Load())
	require.Len(t, m.listener.finished, 1)
}

func TestSync_LastSyncAtFailure_ReachesDomains(t *testing.T) {
	ctrl := gomock.NewController(t)
	var seen error
	podcasts := &fakeSyncer{domain: models.DomainPodcasts, fn: func(_ context.Context, cycle *syncCycle) (models.DomainResult, error) {
		seen = cycle.lastSyncErr
		return models.DomainResult{}, cycle.lastSyncErr
	}}
	progress := &fakeSyncer{domain: models.DomainProgress}
	s, m := newTestSyncService(ctrl, podcasts, progress)

	m.signedIn()
	m.adapter.EXPECT().GetLastSyncAt(gomock.Any(), gomock.Any()).
		Return(models.LastSyncAtResponse{}, adapter.ErrServerError)

	res := s.Sync(context.Background())

	assert.ErrorIs(t, seen, adapter.ErrServerError)
	assert.Equal(t, models.StatusPartial, res.Status)
	assert.ErrorIs(t, res.Domains[models.DomainPodcasts].Err, ErrServerUnavailable)
	assert.Equal(t, models.OutcomeSuccess, res.Domains[models.DomainProgress].Outcome)
}

func TestSync_SingleFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	entered := make(chan struct{})
	release := make(chan struct{})
	podcasts := &fakeSyncer{domain: models.DomainPodcasts, fn: func(context.Context, *syncCycle) (models.DomainResult, error) {
		close(entered)
		<-release
		return models.DomainResult{}, nil
	}}
	s, m := newTestSyncService(ctrl, podcasts)

	m.signedIn()
	m.adapter.EXPECT().GetLastSyncAt(gomock.Any(), gomock.Any()).
		Return(models.LastSyncAtResponse{LastSyncAt: testLastSyncAt}, nil).Times(1)

	var wg sync.WaitGroup
	results := make([]models.SyncResult, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0] = s.Sync(context.Background())
	}()
	<-entered

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1] = s.Sync(context.Background())
	}()
	// даём второму вызову присоединиться к текущему циклу
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int64(1), podcasts.calls.Load())
	assert.Equal(t, 1, m.listener.started)
	assert.Equal(t, results[0].Status, results[1].Status)
	assert.Equal(t, models.StatusSuccess, results[1].Status)
}

// ── SignOut ──────────────────────────────────────────────────────────────────

func TestSignOut_CancelsInFlightCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	entered := make(chan struct{})
	upNext := &fakeSyncer{domain: models.DomainUpNext, fn: func(ctx context.Context, _ *syncCycle) (models.DomainResult, error) {
		close(entered)
		<-ctx.Done()
		return models.DomainResult{}, ctx.Err()
	}}
	s, m := newTestSyncService(ctrl, upNext)
	s.domainTimeout = 0

	m.signedIn()
	m.adapter.EXPECT().GetLastSyncAt(gomock.Any(), gomock.Any()).
		Return(models.LastSyncAtResponse{LastSyncAt: testLastSyncAt}, nil)
	m.sessions.EXPECT().DeleteSession(gomock.Any()).Return(nil)
	m.watermarks.EXPECT().ResetWatermarks(gomock.Any()).Return(nil)

	done := make(chan models.SyncResult, 1)
	go func() {
		done <- s.Sync(context.Background())
	}()
	<-entered

	require.NoError(t, s.SignOut(context.Background()))

	select {
	case res := <-done:
		assert.Equal(t, models.StatusFailed, res.Status)
		assert.ErrorIs(t, res.Domains[models.DomainUpNext].Err, ErrSyncCancelled)
	case <-time.After(2 * time.Second):
		t.Fatal("cycle was not cancelled by sign out")
	}

	assert.Empty(t, s.session.Login())
}

func TestSignOut_WaitsForCycleBeforeReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	entered := make(chan struct{})
	var committed atomic.Bool
	podcasts := &fakeSyncer{domain: models.DomainPodcasts, fn: func(ctx context.Context, _ *syncCycle) (models.DomainResult, error) {
		close(entered)
		<-ctx.Done()
		// коммит, начатый до отмены, завершается позже
		time.Sleep(30 * time.Millisecond)
		committed.Store(true)
		return models.DomainResult{}, nil
	}}
	s, m := newTestSyncService(ctrl, podcasts)
	s.domainTimeout = 0

	m.signedIn()
	m.adapter.EXPECT().GetLastSyncAt(gomock.Any(), gomock.Any()).
		Return(models.LastSyncAtResponse{LastSyncAt: testLastSyncAt}, nil)
	m.sessions.EXPECT().DeleteSession(gomock.Any()).DoAndReturn(func(context.Context) error {
		assert.True(t, committed.Load(), "session cleared before the cycle returned")
		return nil
	})
	m.watermarks.EXPECT().ResetWatermarks(gomock.Any()).DoAndReturn(func(context.Context) error {
		assert.True(t, committed.Load(), "watermarks reset before the cycle returned")
		return nil
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Sync(context.Background())
	}()
	<-entered

	require.NoError(t, s.SignOut(context.Background()))
	<-done
}

func TestSignOut_GivesUpWhenContextEnds(t *testing.T) {
	ctrl := gomock.NewController(t)
	entered := make(chan struct{})
	release := make(chan struct{})
	podcasts := &fakeSyncer{domain: models.DomainPodcasts, fn: func(context.Context, *syncCycle) (models.DomainResult, error) {
		close(entered)
		<-release
		return models.DomainResult{}, nil
	}}
	s, m := newTestSyncService(ctrl, podcasts)

	m.signedIn()
	m.adapter.EXPECT().GetLastSyncAt(gomock.Any(), gomock.Any()).
		Return(models.LastSyncAtResponse{LastSyncAt: testLastSyncAt}, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Sync(context.Background())
	}()
	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := s.SignOut(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	<-done
}

func TestSignOut_ResetFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, m := newTestSyncService(ctrl)

	m.sessions.EXPECT().DeleteSession(gomock.Any()).Return(nil)
	m.watermarks.EXPECT().ResetWatermarks(gomock.Any()).Return(assert.AnError)

	err := s.SignOut(context.Background())
	assert.ErrorIs(t, err, ErrLocalStoreUnavailable)
}

// ── SignIn / Register ────────────────────────────────────────────────────────

func TestSignIn_StoresCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, m := newTestSyncService(ctrl)

	m.adapter.EXPECT().Login(gomock.Any(), models.LoginRequest{Login: "user@example.com", Password: "secret"}).
		Return(testCredential, nil)
	m.sessions.EXPECT().SaveSession(gomock.Any(), testCredential).Return(nil)

	require.NoError(t, s.SignIn(context.Background(), "user@example.com", "secret"))
	assert.Equal(t, "user@example.com", s.session.Login())
}

func TestRegister_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, m := newTestSyncService(ctrl)

	m.adapter.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.Credential{}, adapter.ErrConflict)

	err := s.Register(context.Background(), "user@example.com", "secret")
	assert.ErrorIs(t, err, ErrServerRejected)
	assert.Empty(t, s.session.Login())
}
