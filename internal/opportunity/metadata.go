package opportunity

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// Metadata is an open-ended JSON object. All accessors are total: a missing
// key or a value of the wrong type returns the zero value.
type Metadata map[string]any

// Has reports whether key is present with a non-null value.
func (m Metadata) Has(key string) bool {
	v, ok := m[key]
	return ok && v != nil
}

// String returns the string stored at key, or "".
func (m Metadata) String(key string) string {
	s, _ := m[key].(string)
	return s
}

// Float returns the numeric value stored at key, or 0. Numeric strings are
// accepted since some collectors stringify counts.
func (m Metadata) Float(key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Int returns the value at key truncated to an int, or 0.
func (m Metadata) Int(key string) int {
	f := m.Float(key)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}

// Strings returns the string elements of the list stored at key. Non-string
// elements are skipped.
func (m Metadata) Strings(key string) []string {
	switch v := m[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Infinite is returned by DaysSince when the timestamp cannot be parsed.
const Infinite = math.MaxInt

// DaysSince returns the number of whole days between ts and now. An empty or
// unparseable ts returns Infinite so that "within N days" checks are false.
func DaysSince(ts string, now time.Time) int {
	if ts == "" {
		return Infinite
	}
	t, ok := parseTime(ts)
	if !ok {
		return Infinite
	}
	return int(math.Floor(now.Sub(t).Hours() / 24))
}
