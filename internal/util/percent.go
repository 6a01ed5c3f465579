package util

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ParsePercent coerces a raw JSON value into a percentage. Accepts numbers,
// json.Number and strings such as "100", "100%", "98,5 %". Returns nil when
// the value is absent or not a number.
func ParsePercent(v any) *float64 {
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		return FloatPtr(t)
	case int:
		return FloatPtr(float64(t))
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return FloatPtr(f)
		}
		return nil
	case string:
		s := strings.TrimSpace(t)
		s = strings.TrimSuffix(s, "%")
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		s = normalizeNumericToken(s)
		if parsed, err := strconv.ParseFloat(s, 64); err == nil {
			return FloatPtr(parsed)
		}
		return nil
	default:
		return nil
	}
}

// normalizeNumericToken converts a decimal comma to a dot.
func normalizeNumericToken(token string) string {
	compact := strings.ReplaceAll(token, " ", "")
	if strings.Contains(compact, ",") && !strings.Contains(compact, ".") {
		return strings.ReplaceAll(compact, ",", ".")
	}
	return compact
}
