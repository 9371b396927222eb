package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// SettingField is the wire name of a tracked named setting.
type SettingField string

const (
	SettingSkipForward             SettingField = "skipForward"
	SettingSkipBack                SettingField = "skipBack"
	SettingMarketingOptIn          SettingField = "marketingOptIn"
	SettingFreeGiftAcknowledgement SettingField = "freeGiftAcknowledgement"
	SettingGridOrder               SettingField = "gridOrder"
	SettingAutoArchivePlayed       SettingField = "autoArchivePlayed"
)

// SettingKind is the declared type of a setting value.
type SettingKind int

const (
	SettingKindInt SettingKind = iota + 1
	SettingKindBool
)

// String implements [fmt.Stringer].
func (k SettingKind) String() string {
	switch k {
	case SettingKindInt:
		return "int"
	case SettingKindBool:
		return "bool"
	}
	return fmt.Sprintf("SettingKind(%d)", int(k))
}

// TrackedSettings declares every synced setting and its kind.
var TrackedSettings = map[SettingField]SettingKind{
	SettingSkipForward:             SettingKindInt,
	SettingSkipBack:                SettingKindInt,
	SettingMarketingOptIn:          SettingKindBool,
	SettingFreeGiftAcknowledgement: SettingKindBool,
	SettingGridOrder:               SettingKindInt,
	SettingAutoArchivePlayed:       SettingKindInt,
}

// ErrUnknownSetting is returned for a field that is not tracked.
var ErrUnknownSetting = errors.New("unknown setting")

// ErrSettingKindMismatch is returned when a value does not match the
// declared kind of its field.
var ErrSettingKindMismatch = errors.New("setting value kind mismatch")

// SettingValue is an int or bool setting value. The zero value is invalid.
type SettingValue struct {
	kind SettingKind
	i    int64
	b    bool
}

// IntSetting returns an int setting value.
func IntSetting(v int64) SettingValue {
	return SettingValue{kind: SettingKindInt, i: v}
}

// BoolSetting returns a bool setting value.
func BoolSetting(v bool) SettingValue {
	return SettingValue{kind: SettingKindBool, b: v}
}

// Kind returns the kind of the value.
func (v SettingValue) Kind() SettingKind {
	return v.kind
}

// Int returns the int payload; ok is false for a bool value.
func (v SettingValue) Int() (int64, bool) {
	return v.i, v.kind == SettingKindInt
}

// Bool returns the bool payload; ok is false for an int value.
func (v SettingValue) Bool() (bool, bool) {
	return v.b, v.kind == SettingKindBool
}

// String implements [fmt.Stringer].
func (v SettingValue) String() string {
	switch v.kind {
	case SettingKindInt:
		return fmt.Sprintf("%d", v.i)
	case SettingKindBool:
		return fmt.Sprintf("%t", v.b)
	}
	return "<invalid>"
}

// MarshalJSON encodes the value as a bare JSON number or boolean.
func (v SettingValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case SettingKindInt:
		return json.Marshal(v.i)
	case SettingKindBool:
		return json.Marshal(v.b)
	}
	return nil, errors.New("marshal invalid setting value")
}

// DecodeSettingValue decodes raw according to the declared kind of field.
func DecodeSettingValue(field SettingField, raw json.RawMessage) (SettingValue, error) {
	kind, ok := TrackedSettings[field]
	if !ok {
		return SettingValue{}, fmt.Errorf("%w: %s", ErrUnknownSetting, field)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return SettingValue{}, fmt.Errorf("decode setting %s: %w", field, err)
	}

	switch kind {
	case SettingKindInt:
		n, ok := v.(json.Number)
		if !ok {
			return SettingValue{}, fmt.Errorf("%w: %s expects int, got %s", ErrSettingKindMismatch, field, raw)
		}
		i, err := n.Int64()
		if err != nil {
			return SettingValue{}, fmt.Errorf("%w: %s expects int, got %s", ErrSettingKindMismatch, field, raw)
		}
		return IntSetting(i), nil
	case SettingKindBool:
		b, ok := v.(bool)
		if !ok {
			return SettingValue{}, fmt.Errorf("%w: %s expects bool, got %s", ErrSettingKindMismatch, field, raw)
		}
		return BoolSetting(b), nil
	}
	return SettingValue{}, fmt.Errorf("%w: %s", ErrUnknownSetting, field)
}

// NamedSetting is the local row of one tracked setting.
type NamedSetting struct {
	Field      SettingField
	Value      SettingValue
	NeedsSync  bool
	ModifiedAt int64
}

// SettingResult is the server's per-field answer. Changed means the server
// holds a newer value that overrides the local one. Modified is the
// server's modified time of that value and is set only when Changed.
type SettingResult struct {
	Value    SettingValue
	Changed  bool
	Modified int64
}

type settingResultWire struct {
	Value    json.RawMessage `json:"value"`
	Changed  bool            `json:"changed"`
	Modified int64           `json:"modified,omitempty"`
}

// MarshalJSON encodes the result as {"value": ..., "changed": ...}.
func (r SettingResult) MarshalJSON() ([]byte, error) {
	value, err := r.Value.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(settingResultWire{Value: value, Changed: r.Changed, Modified: r.Modified})
}

// DecodeSettingResult decodes one {"value", "changed"} entry of a
// named-settings response using the declared kind of field.
func DecodeSettingResult(field SettingField, raw json.RawMessage) (SettingResult, error) {
	var w settingResultWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return SettingResult{}, fmt.Errorf("decode setting result %s: %w", field, err)
	}
	if len(w.Value) == 0 {
		return SettingResult{}, fmt.Errorf("%w: %s has no value", ErrSettingKindMismatch, field)
	}

	value, err := DecodeSettingValue(field, w.Value)
	if err != nil {
		return SettingResult{}, err
	}
	return SettingResult{Value: value, Changed: w.Changed, Modified: w.Modified}, nil
}

// DefaultSettings returns the value every tracked setting has on a fresh
// install.
func DefaultSettings() map[SettingField]SettingValue {
	return map[SettingField]SettingValue{
		SettingSkipForward:             IntSetting(30),
		SettingSkipBack:                IntSetting(10),
		SettingMarketingOptIn:          BoolSetting(false),
		SettingFreeGiftAcknowledgement: BoolSetting(false),
		SettingGridOrder:               IntSetting(0),
		SettingAutoArchivePlayed:       IntSetting(0),
	}
}
