package service

import (
	"context"

	"github.com/MKhiriev/go-pod-sync/models"
)

// AuthService issues and checks the tokens of the reference sync server.
type AuthService interface {
	// Register creates an account and returns its first token pair.
	Register(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error)

	// Login checks the password and returns a new token pair.
	Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error)

	// RefreshToken exchanges a refresh token for a new token pair. Every
	// refresh token is accepted once.
	RefreshToken(ctx context.Context, req models.RefreshTokenRequest) (models.TokenResponse, error)

	// ParseToken validates an access token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AccountStore persists accounts and live refresh tokens.
type AccountStore interface {
	CreateAccount(ctx context.Context, account models.Account) error
	FindAccount(ctx context.Context, login string) (models.Account, error)
	SaveRefreshToken(ctx context.Context, login, tokenHash string) error
	ConsumeRefreshToken(ctx context.Context, tokenHash string) (string, error)
}

// AccountService serves the sync protocol for one account at a time.
type AccountService interface {
	LastSyncAt(ctx context.Context, login string) (models.LastSyncAtResponse, error)

	PodcastList(ctx context.Context, login string) (models.PodcastListResponse, error)
	UpdatePodcasts(ctx context.Context, login string, req models.PodcastChangesRequest) (models.SyncAck, error)

	PlaylistList(ctx context.Context, login string) (models.PlaylistListResponse, error)
	UpdatePlaylists(ctx context.Context, login string, req models.PlaylistChangesRequest) (models.SyncAck, error)

	UpdateEpisodeProgress(ctx context.Context, login string, req models.EpisodeProgressRequest) (models.SyncAck, error)

	UpNextSync(ctx context.Context, login string, req models.UpNextSyncRequest) (models.UpNextSyncResponse, error)

	UpdateNamedSettings(ctx context.Context, login string, req models.NamedSettingsRequest) (models.NamedSettingsResponse, error)

	BookmarkList(ctx context.Context, login string) (models.BookmarkListResponse, error)
	UpdateBookmarks(ctx context.Context, login string, req models.BookmarkChangesRequest) (models.SyncAck, error)

	RatingList(ctx context.Context, login string) (models.RatingListResponse, error)
	AddRating(ctx context.Context, login string, req models.RatingRequest) (models.SyncAck, error)
}

// ServerState is the storage of the reference sync server.
type ServerState interface {
	AccountStore
	AccountService
}
