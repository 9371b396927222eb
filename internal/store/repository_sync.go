// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/models"
)

// commitPushed flips every pushed row of t to synced and purges pushed
// tombstones. Rows edited after the snapshot match nothing and stay pending.
func commitPushed(ctx context.Context, tx execer, t tableSpec, pushed []models.SnapshotRef) error {
	for _, ref := range pushed {
		key := refKey(t, ref)

		var err error
		if ref.Deleted && t.tombstone {
			_, err = execBuilt(ctx, tx, buildPurgeTombstoneQuery(t, key, ref.ModifiedAt))
		} else {
			_, err = execBuilt(ctx, tx, buildFlipSyncedQuery(t, key, ref.ModifiedAt))
		}
		if err != nil {
			return fmt.Errorf("commit pushed %s %s: %w", t.name, ref.UUID, err)
		}
	}
	return nil
}

// applyRemote writes one server row. A remote tombstone removes the local
// row; any other row is upserted. Both leave pending local rows untouched.
func applyRemote(ctx context.Context, tx execer, t tableSpec, key []any, values []any, deleted bool) error {
	var err error
	if deleted && t.tombstone {
		_, err = execBuilt(ctx, tx, buildDeleteSyncedQuery(t, key))
	} else {
		_, err = execBuilt(ctx, tx, buildUpsertQuery(t, values, true))
	}
	if err != nil {
		return fmt.Errorf("apply remote %s %v: %w", t.name, key, err)
	}
	return nil
}

// saveLocal writes a locally mutated row unconditionally.
func saveLocal(ctx context.Context, ex execer, t tableSpec, values []any) error {
	if _, err := execBuilt(ctx, ex, buildUpsertQuery(t, values, false)); err != nil {
		return fmt.Errorf("save %s: %w", t.name, err)
	}
	return nil
}

// selectByKey reads the row of t stored under key, tombstones included.
func selectByKey[T any](ctx context.Context, q queryer, t tableSpec, key []any, scan func(*sql.Rows) (T, error)) (T, error) {
	var zero T

	rows, err := queryBuilt(ctx, q, sq.Select(t.columns...).
		From(t.name).
		Where(keyPredicate(t, key)))
	if err != nil {
		return zero, err
	}

	items, err := scanAll(rows, scan)
	if err != nil {
		return zero, err
	}
	if len(items) == 0 {
		return zero, fmt.Errorf("%s %v: %w", t.name, key, ErrNotFound)
	}
	return items[0], nil
}

func selectDirty[T any](ctx context.Context, q queryer, t tableSpec, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := queryBuilt(ctx, q, buildSelectDirtyQuery(t))
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scan)
}

func selectLive[T any](ctx context.Context, q queryer, t tableSpec, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := queryBuilt(ctx, q, buildSelectLiveQuery(t))
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scan)
}

// advanceWatermark stores value for domain unless the stored watermark is
// already greater. It must run inside the domain's commit transaction.
func advanceWatermark(ctx context.Context, tx queryExecer, w models.Watermark) error {
	if !w.Domain.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownDomain, w.Domain)
	}

	stored, err := readWatermark(ctx, tx, w.Domain)
	if err != nil {
		return err
	}

	next := models.MaxWatermark(stored.Value, w.Value)
	if next == stored.Value {
		return nil
	}

	if _, err = tx.ExecContext(ctx, upsertWatermark, string(w.Domain), next); err != nil {
		return fmt.Errorf("%w: advance watermark %s: %w", ErrExecutingStatement, w.Domain, err)
	}
	return nil
}

func readWatermark(ctx context.Context, q queryer, domain models.Domain) (models.Watermark, error) {
	w := models.Watermark{Domain: domain}
	err := q.QueryRowContext(ctx, getWatermark, string(domain)).Scan(&w.Value)
	if errors.Is(err, sql.ErrNoRows) {
		return w, nil
	}
	if err != nil {
		return w, fmt.Errorf("%w: read watermark %s: %w", ErrExecutingQuery, domain, err)
	}
	return w, nil
}

type queryExecer interface {
	queryer
	execer
}

type watermarkRepository struct {
	*DB
	logger *logger.Logger
}

// NewWatermarkRepository returns the SQLite-backed [WatermarkRepository].
func NewWatermarkRepository(db *DB, logger *logger.Logger) WatermarkRepository {
	return &watermarkRepository{DB: db, logger: logger}
}

func (r *watermarkRepository) GetWatermark(ctx context.Context, domain models.Domain) (models.Watermark, error) {
	w, err := readWatermark(ctx, r.DB, domain)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "watermarkRepository.GetWatermark").
			Str("domain", string(domain)).
			Msg("failed to read watermark")
		return models.Watermark{}, err
	}
	return w, nil
}

func (r *watermarkRepository) AdvanceWatermark(ctx context.Context, w models.Watermark) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		return advanceWatermark(ctx, tx, w)
	})
}

func (r *watermarkRepository) ResetWatermarks(ctx context.Context) error {
	if _, err := r.ExecContext(ctx, deleteWatermarks); err != nil {
		return fmt.Errorf("%w: reset watermarks: %w", ErrExecutingStatement, err)
	}
	return nil
}
