// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package upnext materializes the up-next queue from its change log.
//
// The functions are pure: they never touch storage and never mutate their
// input slices. Replaying the same log always yields the same queue, no
// matter how the log was split into batches.
package upnext

import (
	"slices"

	"github.com/MKhiriev/go-pod-sync/models"
)

// Apply returns the queue that results from applying change to queue.
// Positions of the returned queue are contiguous and start at 0.
func Apply(queue []models.UpNextEpisode, change models.UpNextChange) []models.UpNextEpisode {
	out := slices.Clone(queue)

	switch change.Action {
	case models.UpNextActionPlayNow:
		out = []models.UpNextEpisode{episodeFor(queue, change)}
	case models.UpNextActionPlayNext:
		ep := episodeFor(queue, change)
		out = remove(out, change.UUID)
		out = slices.Insert(out, 0, ep)
	case models.UpNextActionPlayLast:
		ep := episodeFor(queue, change)
		out = remove(out, change.UUID)
		out = append(out, ep)
	case models.UpNextActionRemove:
		out = remove(out, change.UUID)
	case models.UpNextActionReplace:
		out = replace(queue, change.UUIDs)
	}

	return renumber(out)
}

// Replay applies changes to queue in log order. See [SortChanges].
func Replay(queue []models.UpNextEpisode, changes []models.UpNextChange) []models.UpNextEpisode {
	ordered := SortChanges(changes)

	out := renumber(slices.Clone(queue))
	for _, c := range ordered {
		out = Apply(out, c)
	}
	return out
}

// SortChanges returns a copy of changes ordered by Modified ascending, ties
// broken by ID.
func SortChanges(changes []models.UpNextChange) []models.UpNextChange {
	out := slices.Clone(changes)
	slices.SortStableFunc(out, func(a, b models.UpNextChange) int {
		switch {
		case a.Modified < b.Modified:
			return -1
		case a.Modified > b.Modified:
			return 1
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out
}

// UUIDs returns the episode uuids of queue in order.
func UUIDs(queue []models.UpNextEpisode) []string {
	out := make([]string, 0, len(queue))
	for _, ep := range queue {
		out = append(out, ep.EpisodeUUID)
	}
	return out
}

// episodeFor builds the row for the change target, keeping metadata already
// known from the queue when the change carries no hints.
func episodeFor(queue []models.UpNextEpisode, change models.UpNextChange) models.UpNextEpisode {
	ep := change.Episode()
	if i := indexOf(queue, change.UUID); i >= 0 {
		ep = merge(queue[i], ep)
	}
	return ep
}

func merge(known, hint models.UpNextEpisode) models.UpNextEpisode {
	if hint.Title == "" {
		hint.Title = known.Title
	}
	if hint.URL == "" {
		hint.URL = known.URL
	}
	if hint.PodcastUUID == "" {
		hint.PodcastUUID = known.PodcastUUID
	}
	if hint.Published == nil {
		hint.Published = known.Published
	}
	return hint
}

func replace(queue []models.UpNextEpisode, uuids []string) []models.UpNextEpisode {
	seen := make(map[string]struct{}, len(uuids))
	out := make([]models.UpNextEpisode, 0, len(uuids))
	for _, id := range uuids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		ep := models.UpNextEpisode{EpisodeUUID: id}
		if i := indexOf(queue, id); i >= 0 {
			ep = queue[i]
		}
		out = append(out, ep)
	}
	return out
}

func remove(queue []models.UpNextEpisode, uuid string) []models.UpNextEpisode {
	return slices.DeleteFunc(queue, func(ep models.UpNextEpisode) bool {
		return ep.EpisodeUUID == uuid
	})
}

func indexOf(queue []models.UpNextEpisode, uuid string) int {
	return slices.IndexFunc(queue, func(ep models.UpNextEpisode) bool {
		return ep.EpisodeUUID == uuid
	})
}

func renumber(queue []models.UpNextEpisode) []models.UpNextEpisode {
	for i := range queue {
		queue[i].Position = i
	}
	return queue
}
