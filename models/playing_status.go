package models

import (
	"fmt"
)

// PlayingStatus is the playback state of an episode.
type PlayingStatus int

const (
	PlayingStatusUnplayed PlayingStatus = iota
	PlayingStatusInProgress
	PlayingStatusComplete
)

// String implements [fmt.Stringer] and returns the wire name of the status.
func (p PlayingStatus) String() string {
	switch p {
	case PlayingStatusUnplayed:
		return "UNPLAYED"
	case PlayingStatusInProgress:
		return "IN_PROGRESS"
	case PlayingStatusComplete:
		return "COMPLETE"
	}
	return fmt.Sprintf("PlayingStatus(%d)", int(p))
}

// Valid reports whether p is one of the declared statuses.
func (p PlayingStatus) Valid() bool {
	switch p {
	case PlayingStatusUnplayed, PlayingStatusInProgress, PlayingStatusComplete:
		return true
	}
	return false
}

// MarshalText encodes the status as its wire name.
func (p PlayingStatus) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("unknown playing status %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText decodes a wire name. Unknown names are rejected.
func (p *PlayingStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "UNPLAYED":
		*p = PlayingStatusUnplayed
	case "IN_PROGRESS":
		*p = PlayingStatusInProgress
	case "COMPLETE":
		*p = PlayingStatusComplete
	default:
		return fmt.Errorf("unknown playing status %q", string(text))
	}
	return nil
}
