package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a missing device model or app version.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidSyncConfigs indicates invalid per-cycle limits.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidAccountConfigs indicates a login without a password or the
	// other way round.
	ErrInvalidAccountConfigs = errors.New("invalid account configuration")
	// ErrInvalidAuthConfigs indicates missing server keys or token
	// durations that do not fit together.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrNegativeDuration indicates a negative duration in any source.
	ErrNegativeDuration = errors.New("negative duration in configuration")
)
