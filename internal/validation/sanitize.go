package validation

import "strings"

// Sanitize returns a copy of in with every blank scalar field removed, so a
// client sending "" or null gets the same behavior as not sending the field
// at all. Keys listed in bulk (array fields such as ingredients and steps)
// are passed through untouched: for those, an empty array is a meaningful
// signal distinct from absence. The input map is never mutated.
func Sanitize(in map[string]any, bulk []string) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		if isBulk(k, bulk) {
			out[k] = v
			continue
		}
		if isBlank(v) {
			continue
		}
		out[k] = v
	}
	return out
}

func isBulk(key string, bulk []string) bool {
	for _, b := range bulk {
		if key == b {
			return true
		}
	}
	return false
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
