package sanitize

import "strings"

// Text normalizes an untrusted value into a bounded string. Non-string input
// yields "". The result is trimmed and hard-truncated to maxLen runes; a
// maxLen <= 0 disables the cap. Total and deterministic: this is the safety
// boundary between caller input and prompt interpolation.
func Text(value any, maxLen int) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	s = strings.TrimSpace(s)
	if maxLen > 0 {
		if r := []rune(s); len(r) > maxLen {
			// re-trim so a cut landing on whitespace stays idempotent
			s = strings.TrimSpace(string(r[:maxLen]))
		}
	}
	return s
}

// StringArray normalizes an untrusted value into a bounded []string.
// Non-array input yields an empty slice. Non-string and blank-after-trim
// elements are dropped silently; each retained element passes through Text
// with maxLenEach; collection stops once maxItems is reached (maxItems <= 0
// disables the count cap). Never returns nil.
func StringArray(value any, maxItems, maxLenEach int) []string {
	out := []string{}
	items, ok := value.([]any)
	if !ok {
		// direct []string callers (not coming through encoding/json)
		if ss, ok := value.([]string); ok {
			items = make([]any, len(ss))
			for i, s := range ss {
				items[i] = s
			}
		} else {
			return out
		}
	}
	for _, item := range items {
		if maxItems > 0 && len(out) >= maxItems {
			break
		}
		s := Text(item, maxLenEach)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
