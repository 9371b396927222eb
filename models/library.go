// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"
)

// Podcast is a subscription row of the podcasts domain.
type Podcast struct {
	Syncable

	Title         string     `json:"title,omitempty"`
	FolderUUID    string     `json:"folderUuid,omitempty"`
	Subscribed    bool       `json:"subscribed"`
	SortPosition  int        `json:"sortPosition"`
	AutoStartFrom int        `json:"autoStartFrom"`
	AutoSkipLast  int        `json:"autoSkipLast"`
	DateAdded     *time.Time `json:"dateAdded,omitempty"`
}

// Folder groups podcasts. Folders sync in the podcasts domain.
type Folder struct {
	Syncable

	Name         string     `json:"name"`
	Color        int        `json:"color"`
	SortType     int        `json:"sortType"`
	SortPosition int        `json:"sortPosition"`
	DateAdded    *time.Time `json:"dateAdded,omitempty"`
}

// Playlist is a smart filter or a manual playlist of the filters domain.
type Playlist struct {
	Syncable

	Title           string   `json:"title"`
	Manual          bool     `json:"manual"`
	SortType        int      `json:"sortType"`
	SortPosition    int      `json:"sortPosition"`
	Starred         bool     `json:"starred"`
	AllPodcasts     bool     `json:"allPodcasts"`
	PodcastUUIDs    []string `json:"podcastUuids,omitempty"`
	Unplayed        bool     `json:"unplayed"`
	PartiallyPlayed bool     `json:"partiallyPlayed"`
	Finished        bool     `json:"finished"`
}

// ManualPlaylistEpisode is a row of a manual playlist. IsSynced is
// independent of the row's existence: a row added locally exists before the
// server accepts it.
type ManualPlaylistEpisode struct {
	PlaylistUUID string `json:"playlistUuid"`
	EpisodeUUID  string `json:"episodeUuid"`
	PodcastUUID  string `json:"podcastUuid"`
	Title        string `json:"title,omitempty"`
	SortPosition int    `json:"sortPosition"`
	IsSynced     bool   `json:"-"`
	Deleted      bool   `json:"deleted"`
	ModifiedAt   int64  `json:"modified"`
}

// Key returns the composite identifier of the row.
func (m ManualPlaylistEpisode) Key() string {
	return m.PlaylistUUID + "/" + m.EpisodeUUID
}

// Ref implements [Snapshotter]; the composite key stands in for the UUID.
func (m ManualPlaylistEpisode) Ref() SnapshotRef {
	return SnapshotRef{UUID: m.Key(), ModifiedAt: m.ModifiedAt, Deleted: m.Deleted}
}

// Touch marks the row as a pending local change.
func (m *ManualPlaylistEpisode) Touch(now time.Time) {
	m.ModifiedAt = nextModified(m.ModifiedAt, now)
	m.IsSynced = false
}

// Bookmark is a saved position inside an episode.
type Bookmark struct {
	Syncable

	EpisodeUUID string    `json:"episodeUuid"`
	PodcastUUID string    `json:"podcastUuid"`
	TimeSecs    int       `json:"time"`
	Title       string    `json:"title"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PodcastRating is the user's 1..5 star rating of a podcast.
type PodcastRating struct {
	PodcastUUID string     `json:"podcastUuid"`
	Rating      int        `json:"podcastRating"`
	SyncStatus  SyncStatus `json:"-"`
	ModifiedAt  int64      `json:"modified"`
}

// Ref implements [Snapshotter].
func (r PodcastRating) Ref() SnapshotRef {
	return SnapshotRef{UUID: r.PodcastUUID, ModifiedAt: r.ModifiedAt}
}

// Touch marks the rating as a pending local change.
func (r *PodcastRating) Touch(now time.Time) {
	r.ModifiedAt = nextModified(r.ModifiedAt, now)
	r.SyncStatus = SyncStatusNotSynced
}

// EpisodeProgress is the playback state of one episode.
type EpisodeProgress struct {
	UUID        string        `json:"uuid"`
	PodcastUUID string        `json:"podcast"`
	PlayedUpTo  float64       `json:"position"`
	Duration    float64       `json:"duration"`
	Status      PlayingStatus `json:"status"`
	SyncStatus  SyncStatus    `json:"-"`
	ModifiedAt  int64         `json:"modified"`
}

// Ref implements [Snapshotter].
func (e EpisodeProgress) Ref() SnapshotRef {
	return SnapshotRef{UUID: e.UUID, ModifiedAt: e.ModifiedAt}
}

// Touch marks the progress row as a pending local change.
func (e *EpisodeProgress) Touch(now time.Time) {
	e.ModifiedAt = nextModified(e.ModifiedAt, now)
	e.SyncStatus = SyncStatusNotSynced
}
