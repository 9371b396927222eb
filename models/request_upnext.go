package models

import (
	"strconv"
	"time"
)

// UpNextSyncRequest is the body of POST /up_next/sync.
type UpNextSyncRequest struct {
	DeviceTime int64         `json:"deviceTime"`
	Version    string        `json:"version"`
	UpNext     UpNextPayload `json:"upNext"`
}

// UpNextPayload carries the stored serverModified and the pending changes.
type UpNextPayload struct {
	ServerModified int64                `json:"serverModified"`
	Changes        []UpNextChangeRecord `json:"changes"`
}

// UpNextChangeRecord is the wire form of an [UpNextChange].
type UpNextChangeRecord struct {
	Action    UpNextAction `json:"action"`
	Modified  int64        `json:"modified"`
	UUID      *string      `json:"uuid,omitempty"`
	UUIDs     []string     `json:"uuids,omitempty"`
	Podcast   *string      `json:"podcast,omitempty"`
	Published *string      `json:"published,omitempty"`
	Title     *string      `json:"title,omitempty"`
	URL       *string      `json:"url,omitempty"`
}

// UpNextSyncResponse is the server's canonical queue.
type UpNextSyncResponse struct {
	ServerModified int64                 `json:"serverModified"`
	Episodes       []UpNextEpisodeRecord `json:"episodes"`
}

// UpNextEpisodeRecord is one skeleton entry of the canonical queue. Every
// field is optional on the wire.
type UpNextEpisodeRecord struct {
	UUID      *string `json:"uuid,omitempty"`
	Title     *string `json:"title,omitempty"`
	URL       *string `json:"url,omitempty"`
	Podcast   *string `json:"podcast,omitempty"`
	Published *string `json:"published,omitempty"`
}

// NewUpNextChangeRecord converts a log row to its wire form.
func NewUpNextChangeRecord(c UpNextChange) UpNextChangeRecord {
	rec := UpNextChangeRecord{
		Action:   c.Action,
		Modified: c.Modified,
		UUIDs:    c.UUIDs,
		UUID:     optString(c.UUID),
		Podcast:  optString(c.PodcastUUID),
		Title:    optString(c.Title),
		URL:      optString(c.URL),
	}
	if c.Published != nil {
		s := c.Published.UTC().Format(time.RFC3339)
		rec.Published = &s
	}
	return rec
}

// Change converts the wire record back into a log row.
func (r UpNextChangeRecord) Change() UpNextChange {
	return UpNextChange{
		Action:      r.Action,
		Modified:    r.Modified,
		UUID:        derefString(r.UUID),
		UUIDs:       r.UUIDs,
		Title:       derefString(r.Title),
		URL:         derefString(r.URL),
		PodcastUUID: derefString(r.Podcast),
		Published:   parsePublished(r.Published),
	}
}

// NewUpNextEpisodeRecord converts a queue row to its wire form.
func NewUpNextEpisodeRecord(e UpNextEpisode) UpNextEpisodeRecord {
	rec := UpNextEpisodeRecord{
		UUID:    &e.EpisodeUUID,
		Title:   &e.Title,
		URL:     &e.URL,
		Podcast: &e.PodcastUUID,
	}
	if e.Published != nil {
		s := e.Published.UTC().Format(time.RFC3339)
		rec.Published = &s
	}
	return rec
}

// Queue converts the canonical list into queue rows. Missing strings become
// empty, an unparsable published date becomes nil and positions follow the
// list order.
func (r UpNextSyncResponse) Queue() []UpNextEpisode {
	queue := make([]UpNextEpisode, 0, len(r.Episodes))
	for i, rec := range r.Episodes {
		queue = append(queue, UpNextEpisode{
			EpisodeUUID: derefString(rec.UUID),
			Position:    i,
			Title:       derefString(rec.Title),
			URL:         derefString(rec.URL),
			PodcastUUID: derefString(rec.Podcast),
			Published:   parsePublished(rec.Published),
		})
	}
	return queue
}

// ServerModifiedValue renders serverModified as a watermark value.
func (r UpNextSyncResponse) ServerModifiedValue() string {
	return strconv.FormatInt(r.ServerModified, 10)
}

// ParseServerModified reads a stored up-next watermark. An empty or
// unparsable value reads as zero, which the server treats as "never synced".
func ParseServerModified(value string) int64 {
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func parsePublished(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}
