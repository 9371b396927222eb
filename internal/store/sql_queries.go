// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getWatermark = `SELECT value FROM sync_watermarks WHERE domain = ?;`

	deleteWatermarks = `DELETE FROM sync_watermarks;`

	upsertWatermark = `
		INSERT INTO sync_watermarks (domain, value) VALUES (?, ?)
		ON CONFLICT(domain) DO UPDATE SET value = excluded.value;`

	getSession = `
		SELECT login, access_token, refresh_token
		FROM sync_session
		WHERE id = 1;`

	upsertSession = `
		INSERT INTO sync_session (id, login, access_token, refresh_token, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			login         = excluded.login,
			access_token  = excluded.access_token,
			refresh_token = excluded.refresh_token,
			updated_at    = excluded.updated_at;`

	deleteSession = `DELETE FROM sync_session;`

	insertUpNextChange = `
		INSERT INTO up_next_changes (action, uuid, uuids, title, url, podcast_uuid, published, modified)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	getUpNextChanges = `
		SELECT id, action, uuid, uuids, title, url, podcast_uuid, published, modified
		FROM up_next_changes
		ORDER BY modified ASC, id ASC;`

	deleteUpNextChange = `DELETE FROM up_next_changes WHERE id = ?;`

	getUpNextQueue = `
		SELECT position, episode_uuid, title, url, podcast_uuid, published
		FROM up_next_episodes
		ORDER BY position ASC;`

	clearUpNextQueue = `DELETE FROM up_next_episodes;`

	insertUpNextEpisode = `
		INSERT INTO up_next_episodes (position, episode_uuid, title, url, podcast_uuid, published)
		VALUES (?, ?, ?, ?, ?, ?);`

	getNamedSettings = `
		SELECT field, kind, int_value, bool_value, needs_sync, modified_at
		FROM named_settings;`

	upsertNamedSettingInt = `
		INSERT INTO named_settings (field, kind, int_value, needs_sync, modified_at)
		VALUES (?, 1, ?, ?, ?)
		ON CONFLICT(field) DO UPDATE SET
			int_value   = excluded.int_value,
			needs_sync  = excluded.needs_sync,
			modified_at = excluded.modified_at;`

	upsertNamedSettingBool = `
		INSERT INTO named_settings (field, kind, bool_value, needs_sync, modified_at)
		VALUES (?, 2, ?, ?, ?)
		ON CONFLICT(field) DO UPDATE SET
			bool_value  = excluded.bool_value,
			needs_sync  = excluded.needs_sync,
			modified_at = excluded.modified_at;`

	overrideNamedSettingInt = `
		INSERT INTO named_settings (field, kind, int_value, needs_sync, modified_at)
		VALUES (?, 1, ?, 0, ?)
		ON CONFLICT(field) DO UPDATE SET
			int_value   = excluded.int_value,
			needs_sync  = 0,
			modified_at = excluded.modified_at
		WHERE named_settings.modified_at = ?;`

	overrideNamedSettingBool = `
		INSERT INTO named_settings (field, kind, bool_value, needs_sync, modified_at)
		VALUES (?, 2, ?, 0, ?)
		ON CONFLICT(field) DO UPDATE SET
			bool_value  = excluded.bool_value,
			needs_sync  = 0,
			modified_at = excluded.modified_at
		WHERE named_settings.modified_at = ?;`

	clearNamedSettingNeedsSync = `
		UPDATE named_settings SET needs_sync = 0
		WHERE field = ? AND modified_at = ?;`
)

// Conflict clauses of the server database. Both PostgreSQL and SQLite accept
// them after an INSERT built with the dialect's placeholders.
const (
	// a row replaces the held version only when it is at least as new
	upsertSyncRowConflict = `ON CONFLICT (login, kind, uuid) DO UPDATE SET
		modified_at = excluded.modified_at,
		payload     = excluded.payload
	WHERE sync_rows.modified_at <= excluded.modified_at`

	upsertUpNextConflict = `ON CONFLICT (login) DO UPDATE SET
		server_modified = excluded.server_modified,
		episodes        = excluded.episodes`

	upsertServerSettingConflict = `ON CONFLICT (login, field) DO UPDATE SET
		value       = excluded.value,
		modified_at = excluded.modified_at`

	// lastSyncAt moves forward by at least a millisecond on every write
	touchLastSyncAt = "CASE WHEN ? > last_sync_at THEN ? ELSE last_sync_at + 1 END"
)
