package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Syncable ─────────────────────────────────────────────────────────────────

func TestSyncable_Touch_StrictlyIncreases(t *testing.T) {
	now := time.UnixMilli(1_000)
	s := Syncable{UUID: "p1", SyncStatus: SyncStatusSynced, ModifiedAt: 1_000}

	s.Touch(now)
	assert.Equal(t, int64(1_001), s.ModifiedAt, "same wall clock must still move ModifiedAt forward")
	assert.True(t, s.IsDirty())

	s.Touch(time.UnixMilli(5_000))
	assert.Equal(t, int64(5_000), s.ModifiedAt)
}

func TestSyncable_MarkDeleted(t *testing.T) {
	s := Syncable{UUID: "p1", SyncStatus: SyncStatusSynced}
	s.MarkDeleted(time.UnixMilli(10))

	assert.True(t, s.Deleted)
	assert.True(t, s.IsDirty())
	assert.Equal(t, SnapshotRef{UUID: "p1", ModifiedAt: 10, Deleted: true}, s.Ref())
}

func TestSortByModified_TiesByUUID(t *testing.T) {
	items := []Podcast{
		{Syncable: Syncable{UUID: "c", ModifiedAt: 2}},
		{Syncable: Syncable{UUID: "b", ModifiedAt: 1}},
		{Syncable: Syncable{UUID: "a", ModifiedAt: 2}},
	}
	SortByModified(items)

	got := make([]string, 0, len(items))
	for _, p := range items {
		got = append(got, p.UUID)
	}
	assert.Equal(t, []string{"b", "a", "c"}, got)
}

func TestNewChangeSet_RecordsSnapshot(t *testing.T) {
	cs := NewChangeSet(DomainBookmarks, []Bookmark{
		{Syncable: Syncable{UUID: "b2", ModifiedAt: 20}},
		{Syncable: Syncable{UUID: "b1", ModifiedAt: 10}},
	})

	require.Equal(t, 2, cs.Len())
	assert.Equal(t, "b1", cs.Items[0].UUID)
	assert.Equal(t, []SnapshotRef{{UUID: "b1", ModifiedAt: 10}, {UUID: "b2", ModifiedAt: 20}}, cs.Snapshot)
}

// ── Watermark ────────────────────────────────────────────────────────────────

func TestCompareWatermarks(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "numeric", a: "9", b: "10", want: -1},
		{name: "rfc3339", a: "2024-01-02T00:00:00Z", b: "2024-01-01T23:59:59Z", want: 1},
		{name: "rfc3339 different zones", a: "2024-01-01T01:00:00+01:00", b: "2024-01-01T00:00:00Z", want: 0},
		{name: "empty is lowest", a: "", b: "1", want: -1},
		{name: "lexical fallback", a: "abc", b: "abd", want: -1},
		{name: "equal", a: "5", b: "5", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareWatermarks(tt.a, tt.b))
		})
	}
}

func TestMaxWatermark_NeverDecreases(t *testing.T) {
	assert.Equal(t, "10", MaxWatermark("10", "9"))
	assert.Equal(t, "11", MaxWatermark("10", "11"))
	assert.Equal(t, "2024-05-01T00:00:00Z", MaxWatermark("", "2024-05-01T00:00:00Z"))
}

// ── SyncResult ───────────────────────────────────────────────────────────────

func TestNewSyncResult_Aggregates(t *testing.T) {
	ok := DomainResult{Domain: DomainPodcasts, Outcome: OutcomeSuccess}
	bad := DomainResult{Domain: DomainUpNext, Outcome: OutcomeFailed}

	assert.Equal(t, StatusSuccess, NewSyncResult([]DomainResult{ok}).Status)
	assert.Equal(t, StatusFailed, NewSyncResult([]DomainResult{bad}).Status)
	assert.Equal(t, StatusFailed, NewSyncResult(nil).Status)

	partial := NewSyncResult([]DomainResult{ok, bad})
	assert.Equal(t, StatusPartial, partial.Status)
	assert.Equal(t, []Domain{DomainUpNext}, partial.FailedDomains())
}

// ── Settings ─────────────────────────────────────────────────────────────────

func TestSettingValue_DisjointAccessors(t *testing.T) {
	iv := IntSetting(45)
	n, ok := iv.Int()
	assert.True(t, ok)
	assert.Equal(t, int64(45), n)
	_, ok = iv.Bool()
	assert.False(t, ok)

	bv := BoolSetting(true)
	b, ok := bv.Bool()
	assert.True(t, ok)
	assert.True(t, b)
	_, ok = bv.Int()
	assert.False(t, ok)
}

func TestDecodeSettingResult(t *testing.T) {
	res, err := DecodeSettingResult(SettingSkipForward, json.RawMessage(`{"value":45,"changed":true}`))
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, IntSetting(45), res.Value)

	res, err = DecodeSettingResult(SettingMarketingOptIn, json.RawMessage(`{"value":true,"changed":false}`))
	require.NoError(t, err)
	assert.Equal(t, BoolSetting(true), res.Value)
}

func TestDecodeSettingResult_WrongKind(t *testing.T) {
	_, err := DecodeSettingResult(SettingSkipForward, json.RawMessage(`{"value":"45","changed":true}`))
	assert.ErrorIs(t, err, ErrSettingKindMismatch)

	_, err = DecodeSettingResult(SettingMarketingOptIn, json.RawMessage(`{"value":1,"changed":true}`))
	assert.ErrorIs(t, err, ErrSettingKindMismatch)

	_, err = DecodeSettingResult(SettingSkipBack, json.RawMessage(`{"value":1.5,"changed":true}`))
	assert.ErrorIs(t, err, ErrSettingKindMismatch)
}

func TestNamedSettingsResponse_SkipsUntrackedFields(t *testing.T) {
	var resp NamedSettingsResponse
	err := json.Unmarshal([]byte(`{"skipBack":{"value":15,"changed":true},"theme":{"value":"dark","changed":true}}`), &resp)
	require.NoError(t, err)

	require.Len(t, resp, 1)
	assert.Equal(t, IntSetting(15), resp[SettingSkipBack].Value)
}

func TestNamedSettingsRequest_RoundTrip(t *testing.T) {
	req := NamedSettingsRequest{
		SyncRequestBase: SyncRequestBase{Model: "phone", Version: "1.0"},
		Settings: map[SettingField]SettingValue{
			SettingSkipForward:    IntSetting(30),
			SettingMarketingOptIn: BoolSetting(true),
		},
	}
	raw, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"m":"phone"`)
	assert.Contains(t, string(raw), `"skipForward":30`)

	var got NamedSettingsRequest
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, req.Settings, got.Settings)
	assert.Equal(t, "1.0", got.Version)
}

// ── Up next ──────────────────────────────────────────────────────────────────

func TestUpNextAction_RejectsUnknown(t *testing.T) {
	var a UpNextAction
	require.NoError(t, json.Unmarshal([]byte(`3`), &a))
	assert.Equal(t, UpNextActionPlayLast, a)

	assert.Error(t, json.Unmarshal([]byte(`9`), &a))
	assert.Error(t, json.Unmarshal([]byte(`"PLAY_NOW"`), &a))
}

func TestUpNextSyncResponse_Queue_ToleratesSkeletons(t *testing.T) {
	var resp UpNextSyncResponse
	raw := `{"serverModified":77,"episodes":[
		{"uuid":"e1","title":"One","url":"http://x/1.mp3","podcast":"p1","published":"2024-03-01T10:00:00Z"},
		{"uuid":"e2","published":"yesterday"},
		{}
	]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	q := resp.Queue()
	require.Len(t, q, 3)
	assert.Equal(t, "e1", q[0].EpisodeUUID)
	require.NotNil(t, q[0].Published)
	assert.Equal(t, 2024, q[0].Published.Year())

	assert.Equal(t, "e2", q[1].EpisodeUUID)
	assert.Equal(t, "", q[1].Title)
	assert.Nil(t, q[1].Published)
	assert.Equal(t, 1, q[1].Position)

	assert.Equal(t, "", q[2].EpisodeUUID)
	assert.Equal(t, "77", resp.ServerModifiedValue())
}

func TestUpNextChangeRecord_RoundTrip(t *testing.T) {
	published := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	change := UpNextChange{
		Action:      UpNextActionPlayNext,
		UUID:        "e1",
		Title:       "One",
		PodcastUUID: "p1",
		Published:   &published,
		Modified:    42,
	}

	rec := NewUpNextChangeRecord(change)
	assert.Nil(t, rec.URL, "empty hints are omitted")

	back := rec.Change()
	assert.Equal(t, change.UUID, back.UUID)
	assert.Equal(t, change.Modified, back.Modified)
	require.NotNil(t, back.Published)
	assert.True(t, published.Equal(*back.Published))
}

// ── Playing status ───────────────────────────────────────────────────────────

func TestEpisodeProgress_StatusWireNames(t *testing.T) {
	raw, err := json.Marshal(EpisodeProgress{UUID: "e1", Status: PlayingStatusInProgress})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"status":"IN_PROGRESS"`)

	var got EpisodeProgress
	require.NoError(t, json.Unmarshal([]byte(`{"uuid":"e1","status":"COMPLETE"}`), &got))
	assert.Equal(t, PlayingStatusComplete, got.Status)

	assert.Error(t, json.Unmarshal([]byte(`{"status":"PAUSED"}`), &got))
}
