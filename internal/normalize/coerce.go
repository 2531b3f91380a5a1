package normalize

import (
	"encoding/json"
	"time"
)

// The coercion helpers accept whatever shape the decoded payload has and
// return the zero value plus false when a field is missing or wrong-typed.
// They never mutate the input.

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// asInt coerces the numeric representations JSON decoding can produce.
// Fractional values are truncated.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		if f, err := n.Float64(); err == nil {
			return int(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

func asTime(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func stringField(m map[string]any, key string) string {
	if s, ok := asString(m[key]); ok {
		return s
	}
	return ""
}

func intField(m map[string]any, key string) (int, bool) {
	return asInt(m[key])
}
