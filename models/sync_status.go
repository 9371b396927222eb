// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"slices"
	"time"
)

// SyncStatus is the local dirty flag carried by every syncable row.
//
// The numeric values are persisted in the sync_status column of every
// syncable table, so they must never be reordered.
type SyncStatus int

const (
	// SyncStatusNotSynced marks a row with local mutations that the server
	// has not acknowledged yet.
	SyncStatusNotSynced SyncStatus = iota
	// SyncStatusSynced marks a row that matches the last acknowledged
	// server state.
	SyncStatusSynced
)

// String implements [fmt.Stringer].
func (s SyncStatus) String() string {
	switch s {
	case SyncStatusNotSynced:
		return "not_synced"
	case SyncStatusSynced:
		return "synced"
	}
	return fmt.Sprintf("SyncStatus(%d)", int(s))
}

// Valid reports whether s is one of the declared statuses.
func (s SyncStatus) Valid() bool {
	switch s {
	case SyncStatusNotSynced, SyncStatusSynced:
		return true
	}
	return false
}

// SnapshotRef identifies the exact version of a row that was read by the
// change-set builder. Commit flips only rows whose ModifiedAt still equals
// the snapshot, so edits made while a push is in flight stay dirty.
type SnapshotRef struct {
	UUID       string
	ModifiedAt int64
	Deleted    bool
}

// Snapshotter is implemented by every row type that can be part of a
// change set.
type Snapshotter interface {
	Ref() SnapshotRef
}

// Syncable holds the sync-state columns shared by all syncable entities.
// It is embedded into Podcast, Folder, Playlist and Bookmark.
type Syncable struct {
	// UUID is the globally unique identifier, stable across devices.
	UUID string `json:"uuid"`

	// SyncStatus is local-only and never sent over the wire.
	SyncStatus SyncStatus `json:"-"`

	// ModifiedAt is a monotonically increasing local timestamp in
	// milliseconds since the Unix epoch.
	ModifiedAt int64 `json:"modified"`

	// Deleted is the tombstone flag. Tombstones are purged only after the
	// server acknowledges the deletion.
	Deleted bool `json:"deleted"`
}

// Touch records a local mutation at now: the row becomes dirty and its
// ModifiedAt strictly increases even when the wall clock did not move.
func (s *Syncable) Touch(now time.Time) {
	s.ModifiedAt = nextModified(s.ModifiedAt, now)
	s.SyncStatus = SyncStatusNotSynced
}

// MarkDeleted turns the row into a dirty tombstone.
func (s *Syncable) MarkDeleted(now time.Time) {
	s.Deleted = true
	s.Touch(now)
}

// IsDirty reports whether the row has unacknowledged local mutations.
func (s Syncable) IsDirty() bool {
	return s.SyncStatus == SyncStatusNotSynced
}

// Ref implements [Snapshotter].
func (s Syncable) Ref() SnapshotRef {
	return SnapshotRef{UUID: s.UUID, ModifiedAt: s.ModifiedAt, Deleted: s.Deleted}
}

func nextModified(current int64, now time.Time) int64 {
	ms := now.UnixMilli()
	if ms <= current {
		return current + 1
	}
	return ms
}

// Refs returns the snapshot references of items in their current order.
func Refs[T Snapshotter](items []T) []SnapshotRef {
	refs := make([]SnapshotRef, 0, len(items))
	for _, item := range items {
		refs = append(refs, item.Ref())
	}
	return refs
}

// SortByModified orders items by ModifiedAt ascending, ties broken by UUID,
// so the server observes causally ordered mutations.
func SortByModified[T Snapshotter](items []T) {
	slices.SortStableFunc(items, func(a, b T) int {
		ra, rb := a.Ref(), b.Ref()
		switch {
		case ra.ModifiedAt < rb.ModifiedAt:
			return -1
		case ra.ModifiedAt > rb.ModifiedAt:
			return 1
		case ra.UUID < rb.UUID:
			return -1
		case ra.UUID > rb.UUID:
			return 1
		}
		return 0
	})
}

// UUIDSet collects the UUIDs of items for membership checks.
func UUIDSet[T Snapshotter](items []T) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item.Ref().UUID] = struct{}{}
	}
	return set
}
