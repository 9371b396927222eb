package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository returns the SQLite-backed [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{DB: db, logger: logger}
}

func (r *sessionRepository) SaveSession(ctx context.Context, cred models.Credential) error {
	_, err := r.ExecContext(ctx, upsertSession, cred.Login, cred.AccessToken, cred.RefreshToken, time.Now().UTC())
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.SaveSession").
			Msg("failed to persist session")
		return fmt.Errorf("%w: save session: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context) (models.Credential, error) {
	var cred models.Credential
	err := r.QueryRowContext(ctx, getSession).Scan(&cred.Login, &cred.AccessToken, &cred.RefreshToken)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: get session: %w", ErrExecutingQuery, err)
	}
	return cred, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := r.ExecContext(ctx, deleteSession); err != nil {
		return fmt.Errorf("%w: delete session: %w", ErrExecutingStatement, err)
	}
	return nil
}
