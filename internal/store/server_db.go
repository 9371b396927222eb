package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/migrations"
)

// ServerDB is the database of the reference sync server: PostgreSQL for a
// postgres:// DSN and an SQLite file otherwise.
type ServerDB struct {
	*sql.DB
	dialect serverDialect
	logger  *logger.Logger
}

// serverDialect holds what differs between the two server databases.
type serverDialect struct {
	goose       string
	placeholder sq.PlaceholderFormat
	// lockRow is appended to a SELECT that must hold the row until commit.
	lockRow         string
	uniqueViolation func(err error) bool
}

var (
	postgresDialect = serverDialect{
		goose:           migrations.DialectPostgres,
		placeholder:     sq.Dollar,
		lockRow:         "FOR UPDATE",
		uniqueViolation: func(err error) bool { return postgresError(err) == pgerrcode.UniqueViolation },
	}
	// SQLite runs on one connection, so every transaction is already
	// exclusive.
	sqliteDialect = serverDialect{
		goose:           migrations.DialectSQLite,
		placeholder:     sq.Question,
		uniqueViolation: isSQLiteUniqueViolation,
	}
)

// NewConnectServerDB opens the server database named by cfg.DSN and
// verifies the connection.
func NewConnectServerDB(ctx context.Context, cfg config.ServerDB, log *logger.Logger) (*ServerDB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg.DSN, log)
	}

	db, err := NewConnectSQLite(ctx, config.ClientDB{DSN: cfg.DSN}, log)
	if err != nil {
		return nil, err
	}
	return &ServerDB{DB: db.DB, dialect: sqliteDialect, logger: log}, nil
}

// NewConnectPostgres opens a pgx connection pool to dsn.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*ServerDB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &ServerDB{DB: conn, dialect: postgresDialect, logger: log}, nil
}

// Migrate applies the embedded server migrations.
func (db *ServerDB) Migrate() error {
	return migrations.MigrateServer(db.DB, db.dialect.goose)
}

func (db *ServerDB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return runInTx(ctx, db.DB, fn)
}

func (db *ServerDB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.dialect.placeholder)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func isSQLiteUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
