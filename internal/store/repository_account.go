package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/models"
)

type accountRepository struct {
	*ServerDB
	logger *logger.Logger
}

// NewAccountRepository returns the [AccountRepository] of the server
// database.
func NewAccountRepository(db *ServerDB, logger *logger.Logger) AccountRepository {
	return &accountRepository{ServerDB: db, logger: logger}
}

func (r *accountRepository) CreateAccount(ctx context.Context, acc models.Account, createdAt time.Time) error {
	log := logger.FromContext(ctx)

	_, err := execBuilt(ctx, r.DB, r.builder().
		Insert("accounts").
		Columns("login", "uuid", "password_hash", "last_sync_at").
		Values(acc.Login, acc.UUID, string(acc.PasswordHash), createdAt.UnixMilli()))
	if err != nil {
		if r.dialect.uniqueViolation(err) {
			log.Debug().Str("func", "accountRepository.CreateAccount").Str("login", acc.Login).Msg("login taken")
			return ErrAccountExists
		}
		log.Err(err).Str("func", "accountRepository.CreateAccount").Msg("error creating account")
		return err
	}

	return nil
}

func (r *accountRepository) FindAccount(ctx context.Context, login string) (models.Account, error) {
	query, args, err := r.builder().
		Select("login", "uuid", "password_hash").
		From("accounts").
		Where(sq.Eq{"login": login}).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		acc  models.Account
		hash string
	)
	err = r.QueryRowContext(ctx, query, args...).Scan(&acc.Login, &acc.UUID, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "accountRepository.FindAccount").Msg("error reading account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	acc.PasswordHash = []byte(hash)
	return acc, nil
}

func (r *accountRepository) SaveRefreshToken(ctx context.Context, login, tokenHash string) error {
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.lockAccount(ctx, tx, login); err != nil {
			return err
		}

		_, err := execBuilt(ctx, tx, r.builder().
			Insert("refresh_tokens").
			Columns("token_hash", "login").
			Values(tokenHash, login))
		return err
	})
	if err != nil && !errors.Is(err, ErrAccountNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "accountRepository.SaveRefreshToken").Msg("error saving refresh token")
	}
	return err
}

// ConsumeRefreshToken deletes the token and returns its login in one
// statement, so two refreshes racing on one token cannot both succeed.
func (r *accountRepository) ConsumeRefreshToken(ctx context.Context, tokenHash string) (string, error) {
	query, args, err := r.builder().
		Delete("refresh_tokens").
		Where(sq.Eq{"token_hash": tokenHash}).
		Suffix("RETURNING login").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var login string
	err = r.QueryRowContext(ctx, query, args...).Scan(&login)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("refresh token: %w", ErrNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "accountRepository.ConsumeRefreshToken").Msg("error consuming refresh token")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return login, nil
}

func (r *accountRepository) LastSyncAt(ctx context.Context, login string) (time.Time, error) {
	query, args, err := r.builder().
		Select("last_sync_at").
		From("accounts").
		Where(sq.Eq{"login": login}).
		ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var ms int64
	err = r.QueryRowContext(ctx, query, args...).Scan(&ms)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrAccountNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return time.UnixMilli(ms).UTC(), nil
}

// lockAccount fails with [ErrAccountNotFound] for an unknown login. On
// PostgreSQL it also holds the account row until tx ends, so the writes of
// one account never interleave.
func (db *ServerDB) lockAccount(ctx context.Context, tx *sql.Tx, login string) error {
	b := db.builder().Select("1").From("accounts").Where(sq.Eq{"login": login})
	if db.dialect.lockRow != "" {
		b = b.Suffix(db.dialect.lockRow)
	}
	return findAccount(ctx, tx, b)
}

// accountExists is lockAccount outside a transaction.
func (db *ServerDB) accountExists(ctx context.Context, login string) error {
	return findAccount(ctx, db.DB, db.builder().Select("1").From("accounts").Where(sq.Eq{"login": login}))
}

func findAccount(ctx context.Context, q queryer, b sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = q.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAccountNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// touchAccount moves the account's lastSyncAt to now, or one millisecond
// past its current value when now is not later.
func (db *ServerDB) touchAccount(ctx context.Context, tx *sql.Tx, login string, now time.Time) error {
	ms := now.UnixMilli()
	_, err := execBuilt(ctx, tx, db.builder().
		Update("accounts").
		Set("last_sync_at", sq.Expr(touchLastSyncAt, ms, ms)).
		Where(sq.Eq{"login": login}))
	return err
}
