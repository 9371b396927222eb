package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// UpNextAction is a single queue mutation recorded in the up-next log.
// The numeric values are both persisted and sent over the wire.
type UpNextAction int

const (
	UpNextActionPlayNow UpNextAction = iota + 1
	UpNextActionPlayNext
	UpNextActionPlayLast
	UpNextActionRemove
	UpNextActionReplace
)

// String implements [fmt.Stringer].
func (a UpNextAction) String() string {
	switch a {
	case UpNextActionPlayNow:
		return "PLAY_NOW"
	case UpNextActionPlayNext:
		return "PLAY_NEXT"
	case UpNextActionPlayLast:
		return "PLAY_LAST"
	case UpNextActionRemove:
		return "REMOVE"
	case UpNextActionReplace:
		return "REPLACE"
	}
	return fmt.Sprintf("UpNextAction(%d)", int(a))
}

// Valid reports whether a is one of the declared actions.
func (a UpNextAction) Valid() bool {
	return a >= UpNextActionPlayNow && a <= UpNextActionReplace
}

// UnmarshalJSON rejects action codes outside the closed set.
func (a *UpNextAction) UnmarshalJSON(b []byte) error {
	var v int
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("decode up next action: %w", err)
	}
	action := UpNextAction(v)
	if !action.Valid() {
		return fmt.Errorf("unknown up next action %d", v)
	}
	*a = action
	return nil
}

// UpNextEpisode is one row of the materialized up-next queue. Position 0 is
// the head of the queue.
type UpNextEpisode struct {
	EpisodeUUID string
	Position    int
	Title       string
	URL         string
	PodcastUUID string
	Published   *time.Time
}

// UpNextChange is a row of the append-only up-next change log.
//
// UUID is the target of PlayNow, PlayNext, PlayLast and Remove. UUIDs is the
// ordered list carried by Replace. The episode hints let the queue render an
// episode that is not yet in the local library.
type UpNextChange struct {
	ID          int64
	Action      UpNextAction
	UUID        string
	UUIDs       []string
	Title       string
	URL         string
	PodcastUUID string
	Published   *time.Time
	Modified    int64
}

// Episode returns the queue row described by the change hints.
func (c UpNextChange) Episode() UpNextEpisode {
	return UpNextEpisode{
		EpisodeUUID: c.UUID,
		Title:       c.Title,
		URL:         c.URL,
		PodcastUUID: c.PodcastUUID,
		Published:   c.Published,
	}
}
