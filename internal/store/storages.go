package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
)

// ClientStorages groups all client-side repositories into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	PodcastRepository   PodcastRepository
	PlaylistRepository  PlaylistRepository
	BookmarkRepository  BookmarkRepository
	RatingRepository    RatingRepository
	EpisodeRepository   EpisodeRepository
	UpNextRepository    UpNextRepository
	SettingsRepository  SettingsRepository
	WatermarkRepository WatermarkRepository
	SessionRepository   SessionRepository

	db *DB
}

// NewClientStorages initialises the client storage layer. It performs the
// following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs every repository on top of the shared connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		PodcastRepository:   NewPodcastRepository(db, logger),
		PlaylistRepository:  NewPlaylistRepository(db, logger),
		BookmarkRepository:  NewBookmarkRepository(db, logger),
		RatingRepository:    NewRatingRepository(db, logger),
		EpisodeRepository:   NewEpisodeRepository(db, logger),
		UpNextRepository:    NewUpNextRepository(db, logger),
		SettingsRepository:  NewSettingsRepository(db, logger),
		WatermarkRepository: NewWatermarkRepository(db, logger),
		SessionRepository:   NewSessionRepository(db, logger),
		db:                  db,
	}
}

// Close releases the underlying connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ServerStorages groups the repositories of the reference sync server.
type ServerStorages struct {
	AccountRepository     AccountRepository
	AccountDataRepository AccountDataRepository

	db *ServerDB
}

// NewServerStorages opens the server database named by cfg.DB.DSN, runs
// pending migrations and builds the repositories on top of it.
func NewServerStorages(ctx context.Context, cfg config.ServerStorage, logger *logger.Logger) (*ServerStorages, error) {
	logger.Info().Msg("creating new server storages...")

	db, err := NewConnectServerDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("server database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newServerStorages(db, logger), nil
}

func newServerStorages(db *ServerDB, logger *logger.Logger) *ServerStorages {
	return &ServerStorages{
		AccountRepository:     NewAccountRepository(db, logger),
		AccountDataRepository: NewAccountDataRepository(db, logger),
		db:                    db,
	}
}

// Close releases the underlying connection.
func (s *ServerStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
