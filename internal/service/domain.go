package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

// Stages of a domain pipeline, used as the "stage" log field.
const (
	stagePulling    = "pulling"
	stageBuilding   = "building"
	stagePushing    = "pushing"
	stageMerging    = "merging"
	stageCommitting = "committing"
)

// syncCycle is the state every domain of one cycle shares. It is written
// only while no domain is running.
type syncCycle struct {
	cred models.Credential
	base models.SyncRequestBase

	// refreshed is set once the credential was refreshed after a 401.
	refreshed bool

	// lastSyncAt is the account watermark fetched once per cycle. When the
	// fetch failed lastSyncErr is set and snapshot domains fail with it.
	lastSyncAt  string
	lastSyncErr error
}

// domainSyncer is the pipeline of one domain.
type domainSyncer interface {
	Domain() models.Domain
	Sync(ctx context.Context, cycle *syncCycle) (models.DomainResult, error)
}

// pullNeeded reports whether the snapshot of domain has to be pulled: the
// pull is skipped when the account watermark equals the stored one.
func (c *syncCycle) pullNeeded(ctx context.Context, watermarks store.WatermarkRepository, domain models.Domain) (bool, error) {
	if c.lastSyncErr != nil {
		return false, fmt.Errorf("last sync at: %w", c.lastSyncErr)
	}

	stored, err := watermarks.GetWatermark(ctx, domain)
	if err != nil {
		return false, fmt.Errorf("%w: read %s watermark: %w", ErrLocalStoreUnavailable, domain, err)
	}
	return !stored.Equal(c.lastSyncAt), nil
}

// watermark returns the value a snapshot domain stores after a pull.
func (c *syncCycle) watermark(domain models.Domain) *models.Watermark {
	return &models.Watermark{Domain: domain, Value: c.lastSyncAt}
}

func commitFailed(domain models.Domain, err error) error {
	return fmt.Errorf("%w: commit %s: %w", ErrLocalStoreUnavailable, domain, err)
}
