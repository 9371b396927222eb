package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pod-sync/models"
)

// buildChangeSet reads the pending rows of one table and freezes them into
// a change set. A read failure aborts only the domain being built.
func buildChangeSet[T models.Snapshotter](ctx context.Context, domain models.Domain, read func(context.Context) ([]T, error)) (models.ChangeSet[T], error) {
	items, err := read(ctx)
	if err != nil {
		return models.ChangeSet[T]{Domain: domain}, fmt.Errorf("%w: read pending %s: %w", ErrLocalStoreUnavailable, domain, err)
	}
	return models.NewChangeSet(domain, items), nil
}

// withoutPushed drops remote rows whose uuid was just pushed. The pushed
// local version is at least as new as the snapshot pulled before the push,
// and a newer server version will arrive with the next changed watermark.
func withoutPushed[T models.Snapshotter](remote []T, pushed []models.SnapshotRef) []T {
	if len(pushed) == 0 {
		return remote
	}

	skip := make(map[string]struct{}, len(pushed))
	for _, ref := range pushed {
		skip[ref.UUID] = struct{}{}
	}

	out := make([]T, 0, len(remote))
	for _, item := range remote {
		if _, ok := skip[item.Ref().UUID]; ok {
			continue
		}
		out = append(out, item)
	}
	return out
}
