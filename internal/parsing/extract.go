// Package parsing recovers structured payloads from free-form model replies.
// Parsers return either a typed value or a *ParseError; callers decide what a failure means.
package parsing

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/job-search-agent/internal/schemas"
)

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// LLMs often wrap JSON in ```json ... ``` blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a language identifier on the first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}

// ExtractJSONObject returns the text between the first '{' and the last '}' of a reply,
// after stripping code fences.
func ExtractJSONObject(text string) (string, error) {
	text = CleanJSONBlock(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", &ParseError{Message: "no JSON object found in reply"}
	}

	return text[start : end+1], nil
}

// Decode extracts a JSON object from text, checks it against the named schema and
// unmarshals it into T.
func Decode[T any](text string, schema string) (T, error) {
	var zero T

	raw, err := ExtractJSONObject(text)
	if err != nil {
		return zero, err
	}

	if err := schemas.Validate(schema, []byte(raw)); err != nil {
		return zero, &ParseError{Message: "reply does not match expected shape", Cause: err}
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return zero, &ParseError{Message: "failed to parse JSON response", Cause: err}
	}

	return value, nil
}
