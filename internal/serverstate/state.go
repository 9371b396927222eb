// Package serverstate serves the account data of the reference sync server
// from the server database.
//
// Every syncable row is resolved last-writer-wins on its modified
// timestamp. Tombstones are kept so other devices learn about deletions.
// Any write that changes a row moves the account's lastSyncAt forward.
package serverstate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

// State is safe for concurrent use. The writes of one account are
// serialized by the database transaction that carries them.
type State struct {
	accounts store.AccountRepository
	data     store.AccountDataRepository
	clock    clockwork.Clock
}

// New returns a State on top of storages reading time from clock.
func New(storages *store.ServerStorages, clock clockwork.Clock) *State {
	return &State{
		accounts: storages.AccountRepository,
		data:     storages.AccountDataRepository,
		clock:    clock,
	}
}

// CreateAccount stores a new account. The password must already be hashed.
func (s *State) CreateAccount(ctx context.Context, acc models.Account) error {
	if acc.Login == "" || acc.UUID == "" || len(acc.PasswordHash) == 0 {
		return fmt.Errorf("%w: login, uuid and password hash are required", ErrInvalidData)
	}

	return stateError(s.accounts.CreateAccount(ctx, acc, s.now()))
}

// FindAccount returns the account registered under login.
func (s *State) FindAccount(ctx context.Context, login string) (models.Account, error) {
	acc, err := s.accounts.FindAccount(ctx, login)
	return acc, stateError(err)
}

// SaveRefreshToken remembers tokenHash as a live refresh token of login.
func (s *State) SaveRefreshToken(ctx context.Context, login, tokenHash string) error {
	if tokenHash == "" {
		return fmt.Errorf("%w: empty refresh token hash", ErrInvalidData)
	}

	return stateError(s.accounts.SaveRefreshToken(ctx, login, tokenHash))
}

// ConsumeRefreshToken returns the login tokenHash was issued to and forgets
// the token, so every refresh token is usable once.
func (s *State) ConsumeRefreshToken(ctx context.Context, tokenHash string) (string, error) {
	login, err := s.accounts.ConsumeRefreshToken(ctx, tokenHash)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrRefreshTokenNotFound
	}
	return login, stateError(err)
}

// LastSyncAt returns the account-wide modification timestamp.
func (s *State) LastSyncAt(ctx context.Context, login string) (models.LastSyncAtResponse, error) {
	at, err := s.accounts.LastSyncAt(ctx, login)
	if err != nil {
		return models.LastSyncAtResponse{}, stateError(err)
	}
	return models.LastSyncAtResponse{LastSyncAt: formatLastSyncAt(at)}, nil
}

func (s *State) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Millisecond)
}

// stateError maps store errors onto the errors of this package.
func stateError(err error) error {
	switch {
	case errors.Is(err, store.ErrAccountNotFound):
		return ErrAccountNotFound
	case errors.Is(err, store.ErrAccountExists):
		return ErrAccountExists
	}
	return err
}

func formatLastSyncAt(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
