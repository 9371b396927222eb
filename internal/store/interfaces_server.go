package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pod-sync/models"
)

// AccountRepository persists the accounts of the reference server and
// their live refresh tokens.
type AccountRepository interface {
	// CreateAccount fails with [ErrAccountExists] for a taken login.
	CreateAccount(ctx context.Context, acc models.Account, createdAt time.Time) error
	FindAccount(ctx context.Context, login string) (models.Account, error)
	SaveRefreshToken(ctx context.Context, login, tokenHash string) error
	// ConsumeRefreshToken returns the login of tokenHash and forgets it.
	ConsumeRefreshToken(ctx context.Context, tokenHash string) (string, error)
	LastSyncAt(ctx context.Context, login string) (time.Time, error)
}

// AccountDataRepository holds the synced data of every account. Each write
// runs in one transaction that also moves the account's lastSyncAt when it
// changed anything.
type AccountDataRepository interface {
	// ListRows returns the held rows of kind ordered by modified time.
	ListRows(ctx context.Context, login string, kind RowKind) ([]ServerRow, error)
	GetRow(ctx context.Context, login string, kind RowKind, uuid string) (ServerRow, error)
	ApplyRows(ctx context.Context, login string, rows []ServerRow, now time.Time) (int, error)
	UpdateUpNext(ctx context.Context, login string, now time.Time, fn func(held ServerUpNext) (ServerUpNext, bool)) (ServerUpNext, error)
	UpdateNamedSettings(ctx context.Context, login string, now time.Time, fn func(held map[models.SettingField]ServerSetting) (map[models.SettingField]ServerSetting, bool)) error
}
