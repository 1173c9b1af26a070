package parser

import (
	"encoding/json"
	"strings"
)

// StripFences returns the content of the first markdown code fence in the
// response, or the trimmed response unchanged when no fence is present.
// A ```json fence is preferred over a bare ``` fence. An unterminated fence
// yields everything after the opening marker.
func StripFences(response string) string {
	text := strings.TrimSpace(response)

	if idx := strings.Index(text, "```json"); idx >= 0 {
		return fenceBody(text, idx+len("```json"))
	}
	if idx := strings.Index(text, "```"); idx >= 0 {
		return fenceBody(text, idx+len("```"))
	}
	return text
}

func fenceBody(text string, start int) string {
	rest := text[start:]
	if end := strings.Index(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

// ExtractJSON strips fences and parses the response as a JSON object.
// Returns nil when the content is not a valid JSON object.
func ExtractJSON(response string) map[string]any {
	var data map[string]any
	if err := json.Unmarshal([]byte(StripFences(response)), &data); err != nil {
		return nil
	}
	return data
}

// String reads a string field from an extracted object, falling back when the
// field is absent, non-string, or the object is nil.
func String(m map[string]any, key, fallback string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return fallback
}

// StringSlice reads a list-of-strings field from an extracted object.
// Non-string items are skipped; a missing field yields nil.
func StringSlice(m map[string]any, key string) []string {
	items, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
