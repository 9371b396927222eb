// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// The commit types below describe everything one domain writes to the local
// store after a successful round trip. Each is applied in a single
// transaction: pushed rows are flipped to synced only when their
// ModifiedAt still equals the snapshot, confirmed tombstones are purged,
// remote rows are applied except over locally dirty rows, and the watermark
// is advanced without ever moving backwards.

// PodcastCommit is the commit of the podcasts domain.
type PodcastCommit struct {
	PushedPodcasts []SnapshotRef
	PushedFolders  []SnapshotRef
	RemotePodcasts []Podcast
	RemoteFolders  []Folder
	Watermark      *Watermark
}

// PlaylistCommit is the commit of the filters domain.
type PlaylistCommit struct {
	PushedPlaylists []SnapshotRef
	PushedEpisodes  []SnapshotRef
	RemotePlaylists []Playlist
	RemoteEpisodes  []ManualPlaylistEpisode
	Watermark       *Watermark
}

// BookmarkCommit is the commit of the bookmarks domain.
type BookmarkCommit struct {
	Pushed    []SnapshotRef
	Remote    []Bookmark
	Watermark *Watermark
}

// RatingCommit is the commit of the ratings domain.
type RatingCommit struct {
	Pushed    []SnapshotRef
	Remote    []PodcastRating
	Watermark *Watermark
}

// ProgressCommit is the commit of the push-only progress domain.
type ProgressCommit struct {
	Pushed []SnapshotRef
}

// UpNextCommit is the commit of the up-next domain. When Replace is set the
// materialized queue is replaced by Queue and the change rows still pending
// are replayed on top of it.
type UpNextCommit struct {
	ConsumedChangeIDs []int64
	Queue             []UpNextEpisode
	Replace           bool
	ServerModified    string
}

// SettingsCommit is the commit of the settings domain. Synced holds the
// snapshot of every sent field; NeedsSync clears only where the stored
// ModifiedAt still matches it.
type SettingsCommit struct {
	Overrides map[SettingField]SettingOverride
	Synced    []NamedSetting
}

// SettingOverride is a server value that replaces the local one, stored
// with the server's modified time.
type SettingOverride struct {
	Value      SettingValue
	ModifiedAt int64
}
