package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The prompts use U+2011 (non-breaking hyphen) in "intent‑detection" and "0‑1".
const SystemPrompt = "You are an intent\u2011detection assistant."

const userPromptTemplate = "Text:\n\"\"\"%s\"\"\"\n\n" +
	"Local flags: %s\n\n" +
	"Explain the intent, give 0\u20111 scores for each label, and list highlighted spans.\n" +
	`Return JSON { "scores": {...}, "explanation": "...", "highlights": [...] }.`

// BuildUserPrompt embeds the submitted text and the compacted classifier output.
func BuildUserPrompt(text string, local json.RawMessage) (string, error) {
	var compact bytes.Buffer
	if err := json.Compact(&compact, local); err != nil {
		return "", fmt.Errorf("failed to serialize classifier result: %w", err)
	}
	return fmt.Sprintf(userPromptTemplate, text, compact.String()), nil
}
