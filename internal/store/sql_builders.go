package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pod-sync/models"
)

// tableSpec describes a syncable table: its key columns, its columns in
// insert order and the column holding the dirty flag. The dirty flag is 0
// for a pending row and 1 for a synced row in every table.
type tableSpec struct {
	name      string
	keys      []string
	columns   []string
	dirty     string
	tombstone bool
}

var (
	podcastsTable = tableSpec{
		name: "podcasts",
		keys: []string{"uuid"},
		columns: []string{
			"uuid", "folder_uuid", "title", "subscribed", "sort_position",
			"auto_start_from", "auto_skip_last", "date_added",
			"sync_status", "modified_at", "deleted",
		},
		dirty:     "sync_status",
		tombstone: true,
	}

	foldersTable = tableSpec{
		name: "folders",
		keys: []string{"uuid"},
		columns: []string{
			"uuid", "name", "color", "sort_type", "sort_position", "date_added",
			"sync_status", "modified_at", "deleted",
		},
		dirty:     "sync_status",
		tombstone: true,
	}

	playlistsTable = tableSpec{
		name: "playlists",
		keys: []string{"uuid"},
		columns: []string{
			"uuid", "title", "manual", "sort_type", "sort_position", "starred",
			"all_podcasts", "podcast_uuids", "unplayed", "partially_played", "finished",
			"sync_status", "modified_at", "deleted",
		},
		dirty:     "sync_status",
		tombstone: true,
	}

	manualEpisodesTable = tableSpec{
		name: "manual_playlist_episodes",
		keys: []string{"playlist_uuid", "episode_uuid"},
		columns: []string{
			"playlist_uuid", "episode_uuid", "podcast_uuid", "title", "sort_position",
			"is_synced", "modified_at", "deleted",
		},
		dirty:     "is_synced",
		tombstone: true,
	}

	bookmarksTable = tableSpec{
		name: "bookmarks",
		keys: []string{"uuid"},
		columns: []string{
			"uuid", "episode_uuid", "podcast_uuid", "time_secs", "title", "created_at",
			"sync_status", "modified_at", "deleted",
		},
		dirty:     "sync_status",
		tombstone: true,
	}

	ratingsTable = tableSpec{
		name:    "podcast_ratings",
		keys:    []string{"podcast_uuid"},
		columns: []string{"podcast_uuid", "rating", "sync_status", "modified_at"},
		dirty:   "sync_status",
	}

	progressTable = tableSpec{
		name: "episode_progress",
		keys: []string{"uuid"},
		columns: []string{
			"uuid", "podcast_uuid", "played_up_to", "duration", "status",
			"sync_status", "modified_at",
		},
		dirty: "sync_status",
	}
)

// buildSelectDirtyQuery selects every pending row of t, oldest first.
func buildSelectDirtyQuery(t tableSpec) sq.SelectBuilder {
	return sq.Select(t.columns...).
		From(t.name).
		Where(sq.Eq{t.dirty: 0}).
		OrderBy("modified_at ASC")
}

// buildSelectLiveQuery selects every row of t that is not a tombstone.
func buildSelectLiveQuery(t tableSpec) sq.SelectBuilder {
	b := sq.Select(t.columns...).From(t.name)
	if t.tombstone {
		b = b.Where(sq.Eq{"deleted": false})
	}
	return b
}

// buildUpsertQuery inserts one row of t. On key conflict every non-key
// column is overwritten. When guarded is set the overwrite only happens if
// the stored row is synced, so a remote row never clobbers a pending local
// edit or tombstone.
func buildUpsertQuery(t tableSpec, values []any, guarded bool) sq.InsertBuilder {
	set := make([]string, 0, len(t.columns))
	for _, c := range t.columns {
		if isKey(t, c) {
			continue
		}
		set = append(set, fmt.Sprintf("%s = excluded.%s", c, c))
	}

	suffix := fmt.Sprintf("ON CONFLICT(%s) DO UPDATE SET %s",
		strings.Join(t.keys, ", "), strings.Join(set, ", "))
	if guarded {
		suffix += fmt.Sprintf(" WHERE %s.%s = 1", t.name, t.dirty)
	}

	return sq.Insert(t.name).
		Columns(t.columns...).
		Values(values...).
		Suffix(suffix)
}

// buildFlipSyncedQuery marks a pushed row synced, but only if it was not
// edited since the snapshot was taken.
func buildFlipSyncedQuery(t tableSpec, key []any, modifiedAt int64) sq.UpdateBuilder {
	return sq.Update(t.name).
		Set(t.dirty, 1).
		Where(keyPredicate(t, key)).
		Where(sq.Eq{"modified_at": modifiedAt})
}

// buildPurgeTombstoneQuery physically removes a pushed tombstone, again only
// if it is still the snapshot version.
func buildPurgeTombstoneQuery(t tableSpec, key []any, modifiedAt int64) sq.DeleteBuilder {
	return sq.Delete(t.name).
		Where(keyPredicate(t, key)).
		Where(sq.Eq{"modified_at": modifiedAt, "deleted": true})
}

// buildDeleteSyncedQuery removes a row the server reports as deleted unless
// the local row is pending.
func buildDeleteSyncedQuery(t tableSpec, key []any) sq.DeleteBuilder {
	return sq.Delete(t.name).
		Where(keyPredicate(t, key)).
		Where(sq.Eq{t.dirty: 1})
}

func keyPredicate(t tableSpec, key []any) sq.And {
	pred := make(sq.And, 0, len(t.keys))
	for i, k := range t.keys {
		pred = append(pred, sq.Eq{k: key[i]})
	}
	return pred
}

func isKey(t tableSpec, column string) bool {
	for _, k := range t.keys {
		if k == column {
			return true
		}
	}
	return false
}

// refKey splits a snapshot reference into the key values of t.
func refKey(t tableSpec, ref models.SnapshotRef) []any {
	if len(t.keys) == 1 {
		return []any{ref.UUID}
	}
	playlist, episode, _ := strings.Cut(ref.UUID, "/")
	return []any{playlist, episode}
}
