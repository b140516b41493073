package opportunity

import (
	"bytes"
	"encoding/json"
	"time"
)

// timeLayouts are tried in order when parsing pipeline timestamps.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTime parses ts against timeLayouts.
func parseTime(ts string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Timestamp is a record timestamp that decodes leniently. Naive and
// date-only values are read as UTC; an empty, null or unparseable value
// decodes to the zero time instead of failing the whole record.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	if parsed, ok := parseTime(s); ok {
		t.Time = parsed
	}
	return nil
}

// MarshalJSON emits RFC3339, or null for the zero time.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339Nano))
}
