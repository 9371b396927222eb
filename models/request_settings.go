package models

import (
	"encoding/json"
	"fmt"
)

// NamedSettingsRequest is the body of POST /user/named_settings/update.
// Modified carries the local modification time of each field so the server
// can tell which side is newer.
type NamedSettingsRequest struct {
	SyncRequestBase
	Settings map[SettingField]SettingValue `json:"settings"`
	Modified map[SettingField]int64        `json:"modified,omitempty"`
}

// UnmarshalJSON decodes every setting with the declared kind of its field.
// Untracked fields are rejected.
func (r *NamedSettingsRequest) UnmarshalJSON(b []byte) error {
	var wire struct {
		SyncRequestBase
		Settings map[SettingField]json.RawMessage `json:"settings"`
		Modified map[SettingField]int64           `json:"modified"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	settings := make(map[SettingField]SettingValue, len(wire.Settings))
	for field, raw := range wire.Settings {
		v, err := DecodeSettingValue(field, raw)
		if err != nil {
			return err
		}
		settings[field] = v
	}

	r.SyncRequestBase = wire.SyncRequestBase
	r.Settings = settings
	r.Modified = wire.Modified
	return nil
}

// NamedSettingsResponse maps every answered field to the server's verdict.
type NamedSettingsResponse map[SettingField]SettingResult

// UnmarshalJSON decodes each entry once, using the declared kind of its
// field. Fields this client does not track are skipped; a value of the
// wrong type fails the whole response.
func (r *NamedSettingsResponse) UnmarshalJSON(b []byte) error {
	var wire map[SettingField]json.RawMessage
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	out := make(NamedSettingsResponse, len(wire))
	for field, raw := range wire {
		if _, tracked := TrackedSettings[field]; !tracked {
			continue
		}
		res, err := DecodeSettingResult(field, raw)
		if err != nil {
			return fmt.Errorf("named settings response: %w", err)
		}
		out[field] = res
	}

	*r = out
	return nil
}
