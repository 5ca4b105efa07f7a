package extract

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrUnparsable is returned when both extraction stages fail.
var ErrUnparsable = errors.New("resposta do modelo não contém JSON válido")

// JSON recovers a JSON object from a model's free-form reply in two stages:
// a direct parse of the trimmed text, then a parse of the substring between
// the first '{' and the last '}'. The second stage handles replies that wrap
// valid JSON in prose or code fences. Anything deeper (trailing commas,
// unquoted keys) stays unparsable on purpose.
func JSON(raw string) (map[string]any, error) {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &parsed); err == nil && parsed != nil {
		return parsed, nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, ErrUnparsable
	}
	parsed = nil
	if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err != nil || parsed == nil {
		return nil, ErrUnparsable
	}
	return parsed, nil
}
