package models

import "encoding/json"

// FlexString decodes a JSON string or a bare scalar (number, bool) into a
// string. The boss change feed mixes both for old/new values.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	if string(b) == "null" {
		*f = ""
		return nil
	}
	*f = FlexString(b)
	return nil
}

// BossChange is one entry in the boss spawn change feed. Timestamp is
// milliseconds since the epoch.
type BossChange struct {
	Boss      string     `json:"boss"`
	GameMode  string     `json:"game_mode"`
	Map       string     `json:"map"`
	Field     string     `json:"field"`
	OldValue  FlexString `json:"old_value"`
	NewValue  FlexString `json:"new_value"`
	Timestamp int64      `json:"timestamp"`
}
