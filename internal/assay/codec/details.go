package codec

import (
	"encoding/json"
	"fmt"
)

// EncodeDetails serializes the evaluation payload, a sequence of key-value
// mappings with heterogeneous values, into its persisted text form. An empty
// payload encodes to an empty string.
func EncodeDetails(payload []map[string]any) (string, error) {
	if len(payload) == 0 {
		return "", nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("codec: encode evaluation details: %w", err)
	}
	return string(raw), nil
}

// DecodeDetails parses the persisted evaluation text. The payload is
// auxiliary and never load-bearing for record identity, so malformed or
// absent text yields an empty sequence rather than failing the fetch; ok is
// false when the text was present but unreadable.
func DecodeDetails(text string) (payload []map[string]any, ok bool) {
	if text == "" {
		return []map[string]any{}, true
	}

	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return []map[string]any{}, false
	}
	return payload, true
}
