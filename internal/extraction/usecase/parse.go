package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return text[start : end+1]
}

// decodeObject parses content as a JSON object. Content that is already
// valid JSON is never sanitized, so backticks inside string values survive.
func decodeObject(content string) (map[string]json.RawMessage, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &envelope); err == nil {
		return envelope, nil
	}
	var sanitized map[string]json.RawMessage
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(content)), &sanitized); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return sanitized, nil
}

// parseEnvelope extracts the raw elements of the "tasks" array. Elements are
// left undecoded so each one can be validated on its own.
func parseEnvelope(content string) ([]json.RawMessage, error) {
	envelope, err := decodeObject(content)
	if err != nil {
		return nil, err
	}

	raw, ok := envelope["tasks"]
	if !ok {
		return nil, fmt.Errorf(`missing "tasks" field`)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf(`"tasks" is not an array`)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return nil, fmt.Errorf(`invalid "tasks" array: %w`, err)
	}
	return elements, nil
}
