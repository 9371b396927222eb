package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Client defaults applied to fields no source has set.
const (
	DefaultDeviceModel      = "go-pod-sync"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultSyncInterval     = 5 * time.Minute
	DefaultDomainTimeout    = time.Minute
	DefaultTokenRefreshSkew = time.Minute
)

// ClientApp holds the device identity sent with every sync request.
type ClientApp struct {
	// DeviceModel is sent as "m".
	DeviceModel string
	// AppVersion is sent as "v".
	AppVersion string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the account service.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the sync job runs a cycle.
	SyncInterval time.Duration
}

// ClientSync contains per-cycle limits.
type ClientSync struct {
	// DomainTimeout bounds one domain pipeline.
	DomainTimeout time.Duration
	// TokenRefreshSkew is how early an expiring access token is refreshed.
	TokenRefreshSkew time.Duration
}

// ClientAccount holds optional startup credentials.
type ClientAccount struct {
	Login    string
	Password string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains the device identity.
	App ClientApp
	// Adapter contains the server address and request timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Sync contains per-cycle limits.
	Sync ClientSync
	// Account contains optional startup credentials.
	Account ClientAccount
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// appVersion is used when no source sets APP_VERSION.
func GetClientConfig(appVersion string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg, appVersion)
}

func newClientConfig(cfg *StructuredConfig, appVersion string) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			DeviceModel: cfg.App.DeviceModel,
			AppVersion:  cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
		Sync: ClientSync{
			DomainTimeout:    cfg.Sync.DomainTimeout,
			TokenRefreshSkew: cfg.Sync.TokenRefreshSkew,
		},
		Account: ClientAccount{
			Login:    cfg.Account.Login,
			Password: cfg.Account.Password,
		},
	}

	defaults := ClientConfig{
		App:     ClientApp{DeviceModel: DefaultDeviceModel, AppVersion: appVersion},
		Adapter: ClientAdapter{RequestTimeout: DefaultRequestTimeout},
		Workers: ClientWorkers{SyncInterval: DefaultSyncInterval},
		Sync: ClientSync{
			DomainTimeout:    DefaultDomainTimeout,
			TokenRefreshSkew: DefaultTokenRefreshSkew,
		},
	}
	if err := mergo.Merge(clientCfg, defaults); err != nil {
		return nil, fmt.Errorf("error applying client defaults: %w", err)
	}

	return clientCfg, clientCfg.validate()
}
