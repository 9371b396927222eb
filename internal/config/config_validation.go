// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig] before the views are built.
// Only values that are invalid for every binary are rejected here; the
// views check what they need.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 {
		return ErrNegativeDuration
	}
	if cfg.Workers.SyncInterval < 0 || cfg.Sync.DomainTimeout < 0 || cfg.Sync.TokenRefreshSkew < 0 {
		return ErrNegativeDuration
	}
	if cfg.App.AccessTokenDuration < 0 || cfg.App.RefreshTokenDuration < 0 {
		return ErrNegativeDuration
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Sync.DomainTimeout == 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.App.DeviceModel == "" || cfg.App.AppVersion == "" {
		return ErrInvalidAppConfigs
	}

	if (cfg.Account.Login == "") != (cfg.Account.Password == "") {
		return ErrInvalidAccountConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" || cfg.Auth.HashKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Auth.AccessTokenDuration >= cfg.Auth.RefreshTokenDuration {
		return ErrInvalidAuthConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
