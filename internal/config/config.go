// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// sync client and the reference sync server. It is populated by merging
// values from environment variables, command-line flags and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: device identity sent with every
	// sync request and the token parameters of the server.
	App App `envPrefix:"APP_"`

	// Storage holds the database settings of the client or the server.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address of the reference sync server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote account service the client talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for the background sync job.
	Workers Workers `envPrefix:"WORKERS_"`

	// Sync holds per-cycle limits of the sync engine.
	Sync Sync `envPrefix:"SYNC_"`

	// Account holds optional credentials used to sign in on startup.
	Account Account `envPrefix:"ACCOUNT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// DeviceModel is sent as the "m" parameter of sync requests.
	// Env: APP_DEVICE_MODEL
	DeviceModel string `env:"DEVICE_MODEL"`

	// Version is sent as the "v" parameter of sync requests. Defaults to
	// the build version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// TokenSignKey is the secret key the server signs and verifies JWT
	// tokens with. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// AccessTokenDuration specifies how long an access token remains valid
	// after issuance (e.g. "15m").
	// Env: APP_ACCESS_TOKEN_DURATION
	AccessTokenDuration time.Duration `env:"ACCESS_TOKEN_DURATION"`

	// RefreshTokenDuration specifies how long a refresh token remains valid
	// after issuance (e.g. "720h").
	// Env: APP_REFRESH_TOKEN_DURATION
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION"`

	// HashKey is the HMAC key the server hashes stored refresh tokens with.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the database.
type DB struct {
	// DSN is the SQLite file of the client, e.g. "podsync.db". The server
	// also accepts a postgres:// URL.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the settings of the outbound HTTP client.
type Adapter struct {
	// HTTPAddress is the base URL of the account service, with or without
	// scheme (e.g. "https://sync.example.com" or "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the background sync job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Sync holds per-cycle limits of the sync engine.
type Sync struct {
	// DomainTimeout bounds a single domain pipeline within a cycle.
	// Env: SYNC_DOMAIN_TIMEOUT
	DomainTimeout time.Duration `env:"DOMAIN_TIMEOUT"`

	// TokenRefreshSkew is how long before expiry an access token is
	// refreshed.
	// Env: SYNC_TOKEN_REFRESH_SKEW
	TokenRefreshSkew time.Duration `env:"TOKEN_REFRESH_SKEW"`
}

// Account holds credentials used to sign in when no session is stored.
type Account struct {
	// Env: ACCOUNT_LOGIN
	Login string `env:"LOGIN"`
	// Env: ACCOUNT_PASSWORD
	Password string `env:"PASSWORD"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
