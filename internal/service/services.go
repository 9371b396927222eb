package service

import (
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-pod-sync/internal/adapter"
	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/store"
)

// ClientServices groups every client-side service.
type ClientServices struct {
	Session         *Session
	SyncService     SyncService
	SyncJob         SyncJob
	LibraryService  LibraryService
	UpNextService   UpNextService
	SettingsService SettingsService
}

// DomainLocks serialize the local edits of the up-next queue and of named
// settings with the snapshot and commit steps of their sync pipelines. An
// edit lands wholly before a snapshot and is pushed with it, or wholly after
// it and stays pending for the next cycle.
type DomainLocks struct {
	UpNext   sync.Mutex
	Settings sync.Mutex
}

// NewClientServices wires the client services on top of storages and
// serverAdapter. All of them share clock.
func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	cfg *config.ClientConfig,
	clock clockwork.Clock,
	opts ...SyncOption,
) *ClientServices {
	session := NewSession(storages.SessionRepository, serverAdapter, clock, cfg.Sync.TokenRefreshSkew)
	locks := &DomainLocks{}
	syncSvc := NewSyncService(session, storages, serverAdapter, cfg.App, cfg.Sync, clock, locks, opts...)

	return &ClientServices{
		Session:         session,
		SyncService:     syncSvc,
		SyncJob:         NewSyncJob(syncSvc, clock),
		LibraryService:  NewLibraryService(storages, clock),
		UpNextService:   NewUpNextService(storages.UpNextRepository, clock, locks),
		SettingsService: NewSettingsService(storages.SettingsRepository, clock, locks),
	}
}
