package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-pod-sync/internal/adapter"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/internal/utils"
	"github.com/MKhiriev/go-pod-sync/models"
)

// Session owns the credential of the signed-in account. Every domain of a
// cycle reads the same credential; only [Session.Credential] refreshes it.
type Session struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	clock    clockwork.Clock
	skew     time.Duration

	mu     sync.RWMutex
	cred   models.Credential
	loaded bool
	stale  bool
}

// NewSession creates a Session. The stored credential is loaded lazily on
// first use. skew is how long before expiry an access token is refreshed.
func NewSession(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, clock clockwork.Clock, skew time.Duration) *Session {
	return &Session{
		sessions: sessions,
		adapter:  serverAdapter,
		clock:    clock,
		skew:     skew,
	}
}

// Credential returns a credential that is not about to expire. An expired
// or invalidated credential is refreshed once; if that fails the result is
// [ErrAuthExpired], or [ErrNoNetwork] when the server was unreachable.
func (s *Session) Credential(ctx context.Context) (models.Credential, error) {
	s.mu.RLock()
	cred, loaded, stale := s.cred, s.loaded, s.stale
	s.mu.RUnlock()

	if loaded && !cred.Empty() && !stale && !s.expiring(cred) {
		return cred, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		if err := s.load(ctx); err != nil {
			return models.Credential{}, err
		}
	}
	if s.cred.Empty() && s.cred.RefreshToken == "" {
		return models.Credential{}, ErrNotSignedIn
	}
	if !s.stale && !s.expiring(s.cred) {
		return s.cred, nil
	}

	return s.refresh(ctx)
}

// Invalidate forces a refresh on the next [Session.Credential] call. It is
// used after the server rejected cred with 401; a credential that was
// already replaced is left alone.
func (s *Session) Invalidate(cred models.Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cred.AccessToken == cred.AccessToken {
		s.stale = true
	}
}

// Login returns the account login of the loaded credential.
func (s *Session) Login() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cred.Login
}

// SignIn replaces the credential with one obtained from login and password.
func (s *Session) SignIn(ctx context.Context, login, password string) error {
	cred, err := s.adapter.Login(ctx, models.LoginRequest{Login: login, Password: password})
	if err != nil {
		return fmt.Errorf("sign in: %w", classifyError(err))
	}
	return s.store(ctx, cred)
}

// Register creates an account and stores its first credential.
func (s *Session) Register(ctx context.Context, login, password string) error {
	cred, err := s.adapter.Register(ctx, models.LoginRequest{Login: login, Password: password})
	if err != nil {
		return fmt.Errorf("register: %w", classifyError(err))
	}
	return s.store(ctx, cred)
}

// Clear forgets the credential in memory and in the store.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cred = models.Credential{}
	s.loaded = true
	s.stale = false

	if err := s.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("%w: delete session: %w", ErrLocalStoreUnavailable, err)
	}
	return nil
}

func (s *Session) store(ctx context.Context, cred models.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cred = cred
	s.loaded = true
	s.stale = false

	if err := s.sessions.SaveSession(ctx, cred); err != nil {
		return fmt.Errorf("%w: save session: %w", ErrLocalStoreUnavailable, err)
	}
	return nil
}

// load must be called with mu held.
func (s *Session) load(ctx context.Context) error {
	cred, err := s.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		s.loaded = true
		return ErrNotSignedIn
	}
	if err != nil {
		return fmt.Errorf("%w: load session: %w", ErrLocalStoreUnavailable, err)
	}

	s.cred = cred
	s.loaded = true
	return nil
}

// refresh must be called with mu held.
func (s *Session) refresh(ctx context.Context) (models.Credential, error) {
	log := logger.FromContext(ctx)

	if s.cred.RefreshToken == "" {
		return models.Credential{}, fmt.Errorf("%w: no refresh token", ErrAuthExpired)
	}

	cred, err := s.adapter.RefreshToken(ctx, s.cred.RefreshToken)
	if err != nil {
		classified := classifyError(err)
		log.Err(err).
			Str("func", "Session.refresh").
			Str("login", s.cred.Login).
			Msg("failed to refresh credential")
		if IsRetryable(classified) {
			return models.Credential{}, classified
		}
		return models.Credential{}, &SyncError{Kind: ErrAuthExpired, Err: err}
	}
	if cred.Login == "" {
		cred.Login = s.cred.Login
	}

	s.cred = cred
	s.stale = false

	if err = s.sessions.SaveSession(ctx, cred); err != nil {
		// the refreshed credential stays usable for this process
		log.Warn().Err(err).
			Str("func", "Session.refresh").
			Msg("failed to persist refreshed credential")
	}

	log.Debug().Str("login", cred.Login).Msg("credential refreshed")
	return cred, nil
}

func (s *Session) expiring(cred models.Credential) bool {
	return utils.TokenExpiresWithin(cred.AccessToken, s.clock.Now(), s.skew)
}
