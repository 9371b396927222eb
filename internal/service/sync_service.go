package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-pod-sync/internal/adapter"
	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

type syncService struct {
	session    *Session
	adapter    adapter.ServerAdapter
	watermarks store.WatermarkRepository
	syncers    []domainSyncer
	listener   SyncEventListener
	clock      clockwork.Clock

	base          models.SyncRequestBase
	domainTimeout time.Duration

	flight singleflight.Group

	mu       sync.Mutex
	inFlight map[uint64]inFlightCycle
	nextID   uint64
}

type inFlightCycle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// SyncOption configures a [SyncService].
type SyncOption func(*syncService)

// WithSyncListener registers a listener notified at the start and end of
// every cycle.
func WithSyncListener(listener SyncEventListener) SyncOption {
	return func(s *syncService) {
		if listener != nil {
			s.listener = listener
		}
	}
}

// NewSyncService wires one pipeline per domain on top of storages. The
// up-next and settings pipelines take the matching mutex of locks.
func NewSyncService(
	session *Session,
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	appCfg config.ClientApp,
	syncCfg config.ClientSync,
	clock clockwork.Clock,
	locks *DomainLocks,
	opts ...SyncOption,
) SyncService {
	s := &syncService{
		session:    session,
		adapter:    serverAdapter,
		watermarks: storages.WatermarkRepository,
		listener:   nopListener{},
		clock:      clock,
		base: models.SyncRequestBase{
			Model:   appCfg.DeviceModel,
			Version: appCfg.AppVersion,
		},
		domainTimeout: syncCfg.DomainTimeout,
		inFlight:      make(map[uint64]inFlightCycle),
	}
	s.syncers = []domainSyncer{
		&podcastSyncer{repo: storages.PodcastRepository, watermarks: storages.WatermarkRepository, adapter: serverAdapter},
		&filterSyncer{repo: storages.PlaylistRepository, watermarks: storages.WatermarkRepository, adapter: serverAdapter},
		&progressSyncer{repo: storages.EpisodeRepository, adapter: serverAdapter},
		&upNextSyncer{repo: storages.UpNextRepository, watermarks: storages.WatermarkRepository, adapter: serverAdapter, clock: clock, mu: &locks.UpNext},
		&settingsSyncer{repo: storages.SettingsRepository, adapter: serverAdapter, mu: &locks.Settings},
		&bookmarkSyncer{repo: storages.BookmarkRepository, watermarks: storages.WatermarkRepository, adapter: serverAdapter},
		&ratingSyncer{repo: storages.RatingRepository, watermarks: storages.WatermarkRepository, adapter: serverAdapter},
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// syncFlightKey is the single-flight key of a cycle. A service serves one
// session, so at most one cycle runs at a time.
const syncFlightKey = "sync"

// Sync implements [SyncService]. Callers joining an in-flight cycle share
// the context of the caller that started it.
func (s *syncService) Sync(ctx context.Context) models.SyncResult {
	v, _, shared := s.flight.Do(syncFlightKey, func() (any, error) {
		return s.runCycle(ctx), nil
	})
	if shared {
		logger.FromContext(ctx).Debug().Msg("joined sync cycle in flight")
	}
	return v.(models.SyncResult)
}

func (s *syncService) SignIn(ctx context.Context, login, password string) error {
	if err := s.session.SignIn(ctx, login, password); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncService.SignIn").
			Str("login", login).
			Msg("sign in failed")
		return err
	}
	return nil
}

func (s *syncService) Register(ctx context.Context, login, password string) error {
	if err := s.session.Register(ctx, login, password); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncService.Register").
			Str("login", login).
			Msg("registration failed")
		return err
	}
	return nil
}

func (s *syncService) SignOut(ctx context.Context) error {
	// a cycle that already passed its cancellation check may still commit;
	// the session and watermarks are reset only after it returned
	for _, done := range s.cancelInFlight() {
		select {
		case <-done:
		case <-ctx.Done():
			return fmt.Errorf("sign out: %w", ctx.Err())
		}
	}

	if err := s.session.Clear(ctx); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	if err := s.watermarks.ResetWatermarks(ctx); err != nil {
		return fmt.Errorf("%w: sign out: reset watermarks: %w", ErrLocalStoreUnavailable, err)
	}

	logger.FromContext(ctx).Info().Msg("signed out")
	return nil
}

func (s *syncService) runCycle(parent context.Context) models.SyncResult {
	ctx, done := s.track(parent)
	defer done()

	log := logger.FromContext(ctx)
	startedAt := s.clock.Now()
	s.listener.SyncStarted(ctx, startedAt)

	result := s.cycle(ctx)
	result.StartedAt = startedAt
	result.FinishedAt = s.clock.Now()

	event := log.Info()
	if result.Status != models.StatusSuccess {
		event = log.Warn()
	}
	event.Str("status", result.Status.String()).
		Dur("took", result.FinishedAt.Sub(startedAt)).
		Interface("failed_domains", result.FailedDomains()).
		Msg("sync cycle finished")

	s.listener.SyncFinished(ctx, result)
	return result
}

func (s *syncService) cycle(ctx context.Context) models.SyncResult {
	log := logger.FromContext(ctx)

	cred, err := s.session.Credential(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "syncService.cycle").
			Msg("no usable credential, cycle aborted")
		return abortedResult(err)
	}

	cycle := &syncCycle{cred: cred, base: s.base}
	s.fetchLastSyncAt(ctx, cycle)
	if errors.Is(cycle.lastSyncErr, adapter.ErrUnauthorized) {
		if err = s.reauthenticate(ctx, cycle); err != nil {
			return abortedResult(err)
		}
		s.fetchLastSyncAt(ctx, cycle)
	}

	results := s.runDomains(ctx, cycle, s.syncers)

	// A 401 from any domain refreshes the credential once for the whole
	// cycle, then the rejected domains run again with the new credential.
	rejected := unauthorizedDomains(results)
	if len(rejected) == 0 || cycle.refreshed {
		return models.NewSyncResult(results)
	}

	if err = s.reauthenticate(ctx, cycle); err != nil {
		classified := classifyError(err)
		for _, i := range rejected {
			results[i].Err = classified
		}
		return models.NewSyncResult(results)
	}

	retry := make([]domainSyncer, len(rejected))
	for j, i := range rejected {
		retry[j] = s.syncers[i]
	}
	for j, res := range s.runDomains(ctx, cycle, retry) {
		results[rejected[j]] = res
	}

	return models.NewSyncResult(results)
}

func (s *syncService) fetchLastSyncAt(ctx context.Context, cycle *syncCycle) {
	lastSync, err := s.adapter.GetLastSyncAt(ctx, cycle.cred)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to fetch last sync at, snapshot domains skipped")
		cycle.lastSyncAt, cycle.lastSyncErr = "", err
		return
	}
	cycle.lastSyncAt, cycle.lastSyncErr = lastSync.LastSyncAt, nil
}

// reauthenticate refreshes the credential the server rejected. It runs at
// most once per cycle and never while domains are running.
func (s *syncService) reauthenticate(ctx context.Context, cycle *syncCycle) error {
	cycle.refreshed = true
	s.session.Invalidate(cycle.cred)

	cred, err := s.session.Credential(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncService.reauthenticate").
			Msg("credential rejected by server and refresh failed")
		return err
	}
	cycle.cred = cred
	return nil
}

func (s *syncService) runDomains(ctx context.Context, cycle *syncCycle, syncers []domainSyncer) []models.DomainResult {
	results := make([]models.DomainResult, len(syncers))
	var g errgroup.Group
	for i, syncer := range syncers {
		i, syncer := i, syncer
		g.Go(func() error {
			results[i] = s.runDomain(ctx, cycle, syncer)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func unauthorizedDomains(results []models.DomainResult) []int {
	var idx []int
	for i, r := range results {
		if errors.Is(r.Err, adapter.ErrUnauthorized) {
			idx = append(idx, i)
		}
	}
	return idx
}

func abortedResult(err error) models.SyncResult {
	res := models.NewSyncResult(nil)
	res.Err = classifyError(err)
	return res
}

// runDomain runs one pipeline under its own timeout and turns any failure
// into a failed domain result.
func (s *syncService) runDomain(ctx context.Context, cycle *syncCycle, syncer domainSyncer) models.DomainResult {
	domain := syncer.Domain()
	ctx = logger.WithField(ctx, "domain", string(domain))
	log := logger.FromContext(ctx)

	if s.domainTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.domainTimeout)
		defer cancel()
	}

	res, err := syncer.Sync(ctx, cycle)
	res.Domain = domain
	if err == nil {
		res.Outcome = models.OutcomeSuccess
		log.Debug().
			Str("stage", stageCommitting).
			Int("pushed", res.Pushed).
			Int("pulled", res.Pulled).
			Str("watermark", res.Watermark).
			Msg("domain synced")
		return res
	}

	classified := classifyError(err)
	res.Outcome = models.OutcomeFailed
	res.Err = classified

	event := log.Error()
	if IsRetryable(classified) {
		event = log.Warn()
	}
	event.Err(err).
		Str("func", "syncService.runDomain").
		Msg("domain sync failed")
	return res
}

// track derives the cycle context and registers it so that SignOut can
// cancel the cycle and wait for it.
func (s *syncService) track(parent context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)
	c := inFlightCycle{cancel: cancel, done: make(chan struct{})}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.inFlight[id] = c
	s.mu.Unlock()

	return ctx, func() {
		s.mu.Lock()
		delete(s.inFlight, id)
		s.mu.Unlock()
		cancel()
		close(c.done)
	}
}

func (s *syncService) cancelInFlight() []chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	done := make([]chan struct{}, 0, len(s.inFlight))
	for _, c := range s.inFlight {
		c.cancel()
		done = append(done, c.done)
	}
	return done
}

type nopListener struct{}

func (nopListener) SyncStarted(context.Context, time.Time) {}
func (nopListener) SyncFinished(context.Context, models.SyncResult) {}
