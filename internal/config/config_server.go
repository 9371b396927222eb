package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Server defaults applied to fields no source has set.
const (
	DefaultTokenIssuer          = "go-pod-sync"
	DefaultAccessTokenDuration  = 15 * time.Minute
	DefaultRefreshTokenDuration = 30 * 24 * time.Hour
	DefaultServerRequestTimeout = 30 * time.Second
	DefaultServerDSN            = "podsync-server.db"
)

// ServerAuth holds token parameters of the reference server.
type ServerAuth struct {
	TokenSignKey         string
	TokenIssuer          string
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
	// HashKey hashes stored refresh tokens.
	HashKey string
}

// ServerHTTP holds the listen address and request timeout.
type ServerHTTP struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ServerDB holds the database of the reference server. A postgres:// or
// postgresql:// URL selects PostgreSQL; anything else is an SQLite file path.
type ServerDB struct {
	DSN string
}

// ServerStorage groups server storage backend settings.
type ServerStorage struct {
	DB ServerDB
}

// ServerConfig is the configuration view of the reference sync server.
type ServerConfig struct {
	Auth    ServerAuth
	Server  ServerHTTP
	Storage ServerStorage
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		Auth: ServerAuth{
			TokenSignKey:         cfg.App.TokenSignKey,
			TokenIssuer:          cfg.App.TokenIssuer,
			AccessTokenDuration:  cfg.App.AccessTokenDuration,
			RefreshTokenDuration: cfg.App.RefreshTokenDuration,
			HashKey:              cfg.App.HashKey,
		},
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: ServerStorage{
			DB: ServerDB{DSN: cfg.Storage.DB.DSN},
		},
	}

	defaults := ServerConfig{
		Auth: ServerAuth{
			TokenIssuer:          DefaultTokenIssuer,
			AccessTokenDuration:  DefaultAccessTokenDuration,
			RefreshTokenDuration: DefaultRefreshTokenDuration,
		},
		Server:  ServerHTTP{RequestTimeout: DefaultServerRequestTimeout},
		Storage: ServerStorage{DB: ServerDB{DSN: DefaultServerDSN}},
	}
	if err := mergo.Merge(serverCfg, defaults); err != nil {
		return nil, fmt.Errorf("error applying server defaults: %w", err)
	}

	return serverCfg, serverCfg.validate()
}
