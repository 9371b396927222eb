// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the account sync protocol.
//
// [ServerAdapter] hides the transport from the sync services. The package
// ships an HTTP/JSON implementation ([NewHTTPServerAdapter]) built on resty.
// The adapter holds no sync state: the bearer credential is passed to every
// call and retries are left to the caller, which is safe because the server
// is idempotent on uuid and modified.
//
// Non-2xx responses are mapped by mapHTTPError onto the sentinels in
// errors.go, so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401)
// and [errors.As] with [*ServerError] to read the server's errorMessage.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pod-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the account
// sync server.
type ServerAdapter interface {
	// Register creates an account and returns its first credential.
	Register(ctx context.Context, req models.LoginRequest) (models.Credential, error)

	// Login exchanges a login and password for a credential.
	Login(ctx context.Context, req models.LoginRequest) (models.Credential, error)

	// RefreshToken exchanges a refresh token for a new credential. An empty
	// refresh token in the response keeps the one that was sent.
	RefreshToken(ctx context.Context, refreshToken string) (models.Credential, error)

	// GetLastSyncAt returns the account-wide lastSyncAt watermark.
	GetLastSyncAt(ctx context.Context, cred models.Credential) (models.LastSyncAtResponse, error)

	// GetPodcastList returns the full podcasts and folders snapshot.
	GetPodcastList(ctx context.Context, cred models.Credential, req models.PodcastListRequest) (models.PodcastListResponse, error)

	// PushPodcastChanges sends pending podcasts and folders, tombstones
	// included.
	PushPodcastChanges(ctx context.Context, cred models.Credential, req models.PodcastChangesRequest) (models.SyncAck, error)

	// GetPlaylistList returns the full filters snapshot, manual playlist
	// episodes included.
	GetPlaylistList(ctx context.Context, cred models.Credential, req models.PlaylistListRequest) (models.PlaylistListResponse, error)

	// PushPlaylistChanges sends pending playlists and manual playlist
	// episodes.
	PushPlaylistChanges(ctx context.Context, cred models.Credential, req models.PlaylistChangesRequest) (models.SyncAck, error)

	// PushEpisodeProgress sends pending playback positions and statuses.
	PushEpisodeProgress(ctx context.Context, cred models.Credential, req models.EpisodeProgressRequest) (models.SyncAck, error)

	// UpNextSync posts the pending up-next changes and returns the server's
	// canonical queue.
	UpNextSync(ctx context.Context, cred models.Credential, req models.UpNextSyncRequest) (models.UpNextSyncResponse, error)

	// UpdateNamedSettings sends every tracked setting and returns the
	// server's verdict per field. Values are decoded with the declared kind
	// of their field; a value of the wrong type is [ErrMalformedResponse].
	UpdateNamedSettings(ctx context.Context, cred models.Credential, req models.NamedSettingsRequest) (models.NamedSettingsResponse, error)

	// GetBookmarks returns every bookmark of the account.
	GetBookmarks(ctx context.Context, cred models.Credential) (models.BookmarkListResponse, error)

	// PushBookmarks sends pending bookmarks, tombstones included.
	PushBookmarks(ctx context.Context, cred models.Credential, req models.BookmarkChangesRequest) (models.SyncAck, error)

	// GetRatings returns every podcast rating of the account.
	GetRatings(ctx context.Context, cred models.Credential) (models.RatingListResponse, error)

	// AddRating sends one podcast rating.
	AddRating(ctx context.Context, cred models.Credential, req models.RatingRequest) (models.SyncAck, error)
}
