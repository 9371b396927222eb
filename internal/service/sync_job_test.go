// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pod-sync/models"
)

// spySyncService считает вызовы Sync.
type spySyncService struct {
	calls  atomic.Int64
	result models.SyncResult
}

func (s *spySyncService) Sync(context.Context) models.SyncResult {
	s.calls.Add(1)
	return s.result
}

func (s *spySyncService) SignIn(context.Context, string, string) error   { return nil }
func (s *spySyncService) Register(context.Context, string, string) error { return nil }
func (s *spySyncService) SignOut(context.Context) error                  { return nil }

func callsReach(t *testing.T, spy *spySyncService, want int64) {
	t.Helper()
	require.Eventually(t, func() bool { return spy.calls.Load() == want },
		time.Second, 5*time.Millisecond, "expected %d Sync calls, got %d", want, spy.calls.Load())
}

// ── NewSyncJob ───────────────────────────────────────────────────────────────

func TestNewSyncJob_ReturnsInterface(t *testing.T) {
	job := NewSyncJob(&spySyncService{}, clockwork.NewFakeClock())
	require.NotNil(t, job)

	var _ SyncJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestSyncJob_RunsOnEveryTick(t *testing.T) {
	spy := &spySyncService{}
	clock := clockwork.NewFakeClock()
	job := NewSyncJob(spy, clock)

	job.Start(context.Background(), time.Minute)
	defer job.Stop()

	clock.BlockUntil(1)
	assert.Zero(t, spy.calls.Load(), "no cycle before the first tick")

	clock.Advance(time.Minute)
	callsReach(t, spy, 1)

	clock.Advance(time.Minute)
	callsReach(t, spy, 2)
}

func TestSyncJob_TriggerNow(t *testing.T) {
	spy := &spySyncService{}
	clock := clockwork.NewFakeClock()
	job := NewSyncJob(spy, clock)

	job.Start(context.Background(), time.Hour)
	defer job.Stop()
	clock.BlockUntil(1)

	job.TriggerNow()
	callsReach(t, spy, 1)
}

func TestSyncJob_TriggerNow_Coalesces(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, clockwork.NewFakeClock()).(*syncJob)

	// джоб не запущен: второй триггер отбрасывается
	job.TriggerNow()
	job.TriggerNow()
	assert.Len(t, job.trigger, 1)
}

func TestSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySyncService{}
	clock := clockwork.NewFakeClock()
	job := NewSyncJob(spy, clock)

	job.Start(context.Background(), time.Minute)
	clock.BlockUntil(1)
	clock.Advance(time.Minute)
	callsReach(t, spy, 1)

	job.Stop()

	clock.Advance(time.Minute)
	job.TriggerNow()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int64(1), spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewSyncJob(&spySyncService{}, clockwork.NewFakeClock())

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_DoubleStop_NoPanic(t *testing.T) {
	clock := clockwork.NewFakeClock()
	job := NewSyncJob(&spySyncService{}, clock)

	job.Start(context.Background(), time.Minute)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_DefaultInterval(t *testing.T) {
	spy := &spySyncService{}
	clock := clockwork.NewFakeClock()
	job := NewSyncJob(spy, clock)

	// interval <= 0 → дефолт 5 минут
	job.Start(context.Background(), 0)
	defer job.Stop()
	clock.BlockUntil(1)

	clock.Advance(time.Minute)
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, spy.calls.Load())

	clock.Advance(defaultSyncInterval)
	callsReach(t, spy, 1)
}

func TestSyncJob_ContextCancelStopsJob(t *testing.T) {
	spy := &spySyncService{}
	clock := clockwork.NewFakeClock()
	job := NewSyncJob(spy, clock)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, time.Minute)
	clock.BlockUntil(1)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked after context cancel")
	}
	assert.Zero(t, spy.calls.Load())
}

func TestSyncJob_RestartReplacesRunningJob(t *testing.T) {
	spy := &spySyncService{}
	clock := clockwork.NewFakeClock()
	job := NewSyncJob(spy, clock)

	job.Start(context.Background(), time.Minute)
	clock.BlockUntil(1)
	job.Start(context.Background(), time.Minute)
	defer job.Stop()

	// после перезапуска работает только один тикер
	clock.BlockUntil(1)
	clock.Advance(time.Minute)
	callsReach(t, spy, 1)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int64(1), spy.calls.Load())
}
