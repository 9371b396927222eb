// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncRequestBase carries the device model and app version every sync
// request sends as "m" and "v".
type SyncRequestBase struct {
	Model   string `json:"m"`
	Version string `json:"v"`
}

// LastSyncAtResponse is returned by POST /user/last_sync_at.
type LastSyncAtResponse struct {
	LastSyncAt string `json:"lastSyncAt"`
}

// SyncAck acknowledges a push. Accepted counts the rows the server applied
// or already held at the same or a newer version.
type SyncAck struct {
	Accepted int `json:"accepted"`
}

// ErrorResponse is the body of every 4xx/5xx response.
type ErrorResponse struct {
	ErrorMessage string `json:"errorMessage"`
}

// PodcastListRequest is the body of POST /user/podcast/list.
type PodcastListRequest struct {
	SyncRequestBase
}

// PodcastListResponse is the full podcasts snapshot of the account.
type PodcastListResponse struct {
	Podcasts []Podcast `json:"podcasts"`
	Folders  []Folder  `json:"folders"`
}

// PodcastChangesRequest is the body of POST /user/podcast/update.
type PodcastChangesRequest struct {
	SyncRequestBase
	Podcasts []Podcast `json:"podcasts"`
	Folders  []Folder  `json:"folders"`
}

// PlaylistListRequest is the body of POST /user/playlist/list.
type PlaylistListRequest struct {
	SyncRequestBase
}

// PlaylistListResponse is the full filters snapshot of the account.
type PlaylistListResponse struct {
	Playlists []Playlist              `json:"playlists"`
	Episodes  []ManualPlaylistEpisode `json:"episodes"`
}

// PlaylistChangesRequest is the body of POST /user/playlist/update.
type PlaylistChangesRequest struct {
	SyncRequestBase
	Playlists []Playlist              `json:"playlists"`
	Episodes  []ManualPlaylistEpisode `json:"episodes"`
}

// EpisodeProgressRequest is the body of POST /sync/episode/progress.
type EpisodeProgressRequest struct {
	Episodes []EpisodeProgress `json:"episodes"`
}

// BookmarkListResponse is returned by POST /user/bookmark/list.
type BookmarkListResponse struct {
	Bookmarks []Bookmark `json:"bookmarks"`
}

// BookmarkChangesRequest is the body of POST /user/bookmark/update.
type BookmarkChangesRequest struct {
	Bookmarks []Bookmark `json:"bookmarks"`
}

// RatingListResponse is returned by POST /user/podcast_rating/list.
type RatingListResponse struct {
	Ratings []PodcastRating `json:"podcastRatings"`
}

// RatingRequest is the body of POST /user/podcast_rating/add.
type RatingRequest struct {
	PodcastUUID string `json:"podcastUuid"`
	Rating      int    `json:"podcastRating"`
	Modified    int64  `json:"modified"`
}
