package models

import "encoding/json"

// CompletionResult is the typed view of what the completion service is asked to return.
// Nothing downstream requires these fields to be present.
type CompletionResult struct {
	Scores      map[string]float64 `json:"scores"`
	Explanation string             `json:"explanation"`
	Highlights  []json.RawMessage  `json:"highlights"`
}
