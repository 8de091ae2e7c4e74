package analysis

import (
	"encoding/json"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/spacesedan/intentai/internal/models"
)

const previewLength = 50

// Completion holds the top-level fields of a parsed completion object.
type Completion struct {
	Fields map[string]json.RawMessage
}

// Typed decodes the fields the prompt asks for. Missing fields stay zero.
func (c Completion) Typed() (models.CompletionResult, error) {
	var result models.CompletionResult
	raw, err := json.Marshal(c.Fields)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(raw, &result)
	return result, err
}

// ParseCompletion parses completion content. A JSON object is accepted, and a bare
// null reads as an empty object; failures come back as *ParseError.
func ParseCompletion(content string) (Completion, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "null" {
		return Completion{Fields: map[string]json.RawMessage{}}, nil
	}
	if !strings.HasPrefix(trimmed, "{") {
		return Completion{}, &ParseError{
			Preview: preview(trimmed),
			Err:     errors.New("expected a JSON object"),
		}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &fields); err != nil {
		return Completion{}, &ParseError{Preview: preview(trimmed), Err: err}
	}

	return Completion{Fields: fields}, nil
}

// preview cuts raw to at most previewLength bytes without splitting a rune.
func preview(raw string) string {
	if len(raw) <= previewLength {
		return raw
	}
	cut := previewLength
	for cut > 0 && !utf8.RuneStart(raw[cut]) {
		cut--
	}
	return raw[:cut]
}
