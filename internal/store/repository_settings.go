package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/models"
)

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewSettingsRepository returns the SQLite-backed [SettingsRepository].
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{DB: db, logger: logger}
}

// SetSetting stores a local edit. Int and bool values go to separate
// columns and never share an update path.
func (r *settingsRepository) SetSetting(ctx context.Context, s models.NamedSetting) error {
	var err error
	switch s.Value.Kind() {
	case models.SettingKindInt:
		v, _ := s.Value.Int()
		_, err = r.ExecContext(ctx, upsertNamedSettingInt, string(s.Field), v, s.NeedsSync, s.ModifiedAt)
	case models.SettingKindBool:
		v, _ := s.Value.Bool()
		_, err = r.ExecContext(ctx, upsertNamedSettingBool, string(s.Field), v, s.NeedsSync, s.ModifiedAt)
	default:
		return fmt.Errorf("%w: %s has no value", models.ErrSettingKindMismatch, s.Field)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "settingsRepository.SetSetting").
			Str("field", string(s.Field)).
			Msg("failed to store named setting")
		return fmt.Errorf("%w: set setting %s: %w", ErrExecutingStatement, s.Field, err)
	}
	return nil
}

func (r *settingsRepository) GetSettings(ctx context.Context) (map[models.SettingField]models.NamedSetting, error) {
	rows, err := r.QueryContext(ctx, getNamedSettings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	items, err := scanAll(rows, scanNamedSetting)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "settingsRepository.GetSettings").
			Msg("failed to read named settings")
		return nil, err
	}

	out := make(map[models.SettingField]models.NamedSetting, len(items))
	for _, s := range items {
		out[s.Field] = s
	}
	return out, nil
}

// CommitSettings applies server overrides and clears needs_sync for every
// sent field. Both only touch a field whose modified_at still equals the
// snapshot, so an edit made during the round trip survives and is sent
// next cycle. An override takes the server's modified time, so the next
// cycle sends the same time back and the server no longer overrides it.
func (r *settingsRepository) CommitSettings(ctx context.Context, commit models.SettingsCommit) error {
	snapshot := make(map[models.SettingField]int64, len(commit.Synced))
	for _, s := range commit.Synced {
		snapshot[s.Field] = s.ModifiedAt
	}

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		for field, o := range commit.Overrides {
			if err := overrideSetting(ctx, tx, field, o, snapshot[field]); err != nil {
				return err
			}
		}

		for _, s := range commit.Synced {
			if _, err := tx.ExecContext(ctx, clearNamedSettingNeedsSync, string(s.Field), s.ModifiedAt); err != nil {
				return fmt.Errorf("%w: clear needs_sync %s: %w", ErrExecutingStatement, s.Field, err)
			}
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "settingsRepository.CommitSettings").
			Msg("failed to commit settings domain")
		return err
	}
	return nil
}

func overrideSetting(ctx context.Context, tx execer, field models.SettingField, o models.SettingOverride, snapshot int64) error {
	modifiedAt := max(o.ModifiedAt, snapshot)

	var err error
	switch o.Value.Kind() {
	case models.SettingKindInt:
		v, _ := o.Value.Int()
		_, err = tx.ExecContext(ctx, overrideNamedSettingInt, string(field), v, modifiedAt, snapshot)
	case models.SettingKindBool:
		v, _ := o.Value.Bool()
		_, err = tx.ExecContext(ctx, overrideNamedSettingBool, string(field), v, modifiedAt, snapshot)
	default:
		return fmt.Errorf("%w: %s has no value", models.ErrSettingKindMismatch, field)
	}
	if err != nil {
		return fmt.Errorf("%w: override setting %s: %w", ErrExecutingStatement, field, err)
	}
	return nil
}

func scanNamedSetting(rows *sql.Rows) (models.NamedSetting, error) {
	var (
		s         models.NamedSetting
		field     string
		kind      int
		intValue  sql.NullInt64
		boolValue sql.NullBool
	)
	if err := rows.Scan(&field, &kind, &intValue, &boolValue, &s.NeedsSync, &s.ModifiedAt); err != nil {
		return models.NamedSetting{}, err
	}

	s.Field = models.SettingField(field)
	switch models.SettingKind(kind) {
	case models.SettingKindInt:
		s.Value = models.IntSetting(intValue.Int64)
	case models.SettingKindBool:
		s.Value = models.BoolSetting(boolValue.Bool)
	default:
		return models.NamedSetting{}, fmt.Errorf("setting %s has unknown kind %d", field, kind)
	}
	return s, nil
}
