package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/models"
)

// RowKind names the kind of a syncable row held by the server.
type RowKind string

const (
	RowPodcast         RowKind = "podcast"
	RowFolder          RowKind = "folder"
	RowPlaylist        RowKind = "playlist"
	RowPlaylistEpisode RowKind = "playlist_episode"
	RowBookmark        RowKind = "bookmark"
	RowRating          RowKind = "rating"
	RowProgress        RowKind = "progress"
)

// ServerRow is the held version of one syncable row. Payload is the row's
// JSON document.
type ServerRow struct {
	Kind       RowKind
	UUID       string
	ModifiedAt int64
	Payload    []byte
}

// ServerUpNext is the canonical up-next queue of an account.
type ServerUpNext struct {
	Episodes       []models.UpNextEpisode
	ServerModified int64
}

// ServerSetting is the held value of one named setting.
type ServerSetting struct {
	Value    models.SettingValue
	Modified int64
}

type accountDataRepository struct {
	*ServerDB
	logger *logger.Logger
}

// NewAccountDataRepository returns the [AccountDataRepository] of the
// server database.
func NewAccountDataRepository(db *ServerDB, logger *logger.Logger) AccountDataRepository {
	return &accountDataRepository{ServerDB: db, logger: logger}
}

func (r *accountDataRepository) ListRows(ctx context.Context, login string, kind RowKind) ([]ServerRow, error) {
	if err := r.accountExists(ctx, login); err != nil {
		return nil, err
	}

	rows, err := queryBuilt(ctx, r.DB, r.builder().
		Select("uuid", "modified_at", "payload").
		From("sync_rows").
		Where(sq.Eq{"login": login, "kind": string(kind)}).
		OrderBy("modified_at", "uuid"))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "accountDataRepository.ListRows").Str("kind", string(kind)).Msg("error listing rows")
		return nil, err
	}

	return scanAll(rows, func(rows *sql.Rows) (ServerRow, error) {
		row := ServerRow{Kind: kind}
		var payload string
		if err := rows.Scan(&row.UUID, &row.ModifiedAt, &payload); err != nil {
			return ServerRow{}, err
		}
		row.Payload = []byte(payload)
		return row, nil
	})
}

func (r *accountDataRepository) GetRow(ctx context.Context, login string, kind RowKind, uuid string) (ServerRow, error) {
	if err := r.accountExists(ctx, login); err != nil {
		return ServerRow{}, err
	}

	query, args, err := r.builder().
		Select("modified_at", "payload").
		From("sync_rows").
		Where(sq.Eq{"login": login, "kind": string(kind), "uuid": uuid}).
		ToSql()
	if err != nil {
		return ServerRow{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := ServerRow{Kind: kind, UUID: uuid}
	var payload string
	err = r.QueryRowContext(ctx, query, args...).Scan(&row.ModifiedAt, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return ServerRow{}, fmt.Errorf("%s %s: %w", kind, uuid, ErrNotFound)
	}
	if err != nil {
		return ServerRow{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	row.Payload = []byte(payload)
	return row, nil
}

// ApplyRows stores every row at least as new as the held version, all in
// one transaction. Every row counts as accepted; lastSyncAt moves only when
// one was written.
func (r *accountDataRepository) ApplyRows(ctx context.Context, login string, rows []ServerRow, now time.Time) (int, error) {
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.lockAccount(ctx, tx, login); err != nil {
			return err
		}

		var changed bool
		for _, row := range rows {
			n, err := execBuilt(ctx, tx, r.builder().
				Insert("sync_rows").
				Columns("login", "kind", "uuid", "modified_at", "payload").
				Values(login, string(row.Kind), row.UUID, row.ModifiedAt, string(row.Payload)).
				Suffix(upsertSyncRowConflict))
			if err != nil {
				return fmt.Errorf("store %s %s: %w", row.Kind, row.UUID, err)
			}
			changed = changed || n > 0
		}

		if !changed {
			return nil
		}
		return r.touchAccount(ctx, tx, login, now)
	})
	if err != nil {
		if !errors.Is(err, ErrAccountNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "accountDataRepository.ApplyRows").Int("count", len(rows)).Msg("error applying rows")
		}
		return 0, err
	}
	return len(rows), nil
}

// UpdateUpNext hands the held queue to fn inside one transaction. When fn
// reports a change its result is stored and lastSyncAt moves; the queue
// returned is the one held after the call.
func (r *accountDataRepository) UpdateUpNext(
	ctx context.Context,
	login string,
	now time.Time,
	fn func(held ServerUpNext) (ServerUpNext, bool),
) (ServerUpNext, error) {
	var out ServerUpNext
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.lockAccount(ctx, tx, login); err != nil {
			return err
		}

		held, err := r.readUpNext(ctx, tx, login)
		if err != nil {
			return err
		}

		next, changed := fn(held)
		if !changed {
			out = held
			return nil
		}

		episodes, err := json.Marshal(next.Episodes)
		if err != nil {
			return fmt.Errorf("encode up next queue: %w", err)
		}
		_, err = execBuilt(ctx, tx, r.builder().
			Insert("up_next").
			Columns("login", "server_modified", "episodes").
			Values(login, next.ServerModified, string(episodes)).
			Suffix(upsertUpNextConflict))
		if err != nil {
			return err
		}

		out = next
		return r.touchAccount(ctx, tx, login, now)
	})
	if err != nil {
		if !errors.Is(err, ErrAccountNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "accountDataRepository.UpdateUpNext").Msg("error updating up next")
		}
		return ServerUpNext{}, err
	}
	return out, nil
}

func (r *accountDataRepository) readUpNext(ctx context.Context, tx *sql.Tx, login string) (ServerUpNext, error) {
	query, args, err := r.builder().
		Select("server_modified", "episodes").
		From("up_next").
		Where(sq.Eq{"login": login}).
		ToSql()
	if err != nil {
		return ServerUpNext{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		held     ServerUpNext
		episodes string
	)
	err = tx.QueryRowContext(ctx, query, args...).Scan(&held.ServerModified, &episodes)
	if errors.Is(err, sql.ErrNoRows) {
		return ServerUpNext{}, nil
	}
	if err != nil {
		return ServerUpNext{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = json.Unmarshal([]byte(episodes), &held.Episodes); err != nil {
		return ServerUpNext{}, fmt.Errorf("decode up next queue: %w", err)
	}
	return held, nil
}

// UpdateNamedSettings hands the held settings to fn inside one transaction
// and stores the fields fn returns. lastSyncAt moves when fn reports a
// change.
func (r *accountDataRepository) UpdateNamedSettings(
	ctx context.Context,
	login string,
	now time.Time,
	fn func(held map[models.SettingField]ServerSetting) (map[models.SettingField]ServerSetting, bool),
) error {
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.lockAccount(ctx, tx, login); err != nil {
			return err
		}

		held, err := r.readSettings(ctx, tx, login)
		if err != nil {
			return err
		}

		writes, changed := fn(held)
		for field, setting := range writes {
			value, err := setting.Value.MarshalJSON()
			if err != nil {
				return fmt.Errorf("encode setting %s: %w", field, err)
			}
			_, err = execBuilt(ctx, tx, r.builder().
				Insert("named_settings").
				Columns("login", "field", "value", "modified_at").
				Values(login, string(field), string(value), setting.Modified).
				Suffix(upsertServerSettingConflict))
			if err != nil {
				return fmt.Errorf("store setting %s: %w", field, err)
			}
		}

		if !changed {
			return nil
		}
		return r.touchAccount(ctx, tx, login, now)
	})
	if err != nil && !errors.Is(err, ErrAccountNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "accountDataRepository.UpdateNamedSettings").Msg("error updating named settings")
	}
	return err
}

func (r *accountDataRepository) readSettings(ctx context.Context, tx *sql.Tx, login string) (map[models.SettingField]ServerSetting, error) {
	rows, err := queryBuilt(ctx, tx, r.builder().
		Select("field", "value", "modified_at").
		From("named_settings").
		Where(sq.Eq{"login": login}))
	if err != nil {
		return nil, err
	}

	type storedSetting struct {
		field    models.SettingField
		value    string
		modified int64
	}
	items, err := scanAll(rows, func(rows *sql.Rows) (storedSetting, error) {
		var (
			s     storedSetting
			field string
		)
		if err := rows.Scan(&field, &s.value, &s.modified); err != nil {
			return storedSetting{}, err
		}
		s.field = models.SettingField(field)
		return s, nil
	})
	if err != nil {
		return nil, err
	}

	held := make(map[models.SettingField]ServerSetting, len(items))
	for _, s := range items {
		value, err := models.DecodeSettingValue(s.field, json.RawMessage(s.value))
		if err != nil {
			return nil, fmt.Errorf("decode setting %s: %w", s.field, err)
		}
		held[s.field] = ServerSetting{Value: value, Modified: s.modified}
	}
	return held, nil
}
