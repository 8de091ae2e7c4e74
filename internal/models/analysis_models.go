package models

import (
	"encoding/json"
	"errors"
)

var ErrTextNotString = errors.New("text must be a string")

// AnalysisPayload is the inbound /analyze body. Text is kept raw so falsy values
// (absent, null, false, 0, "") can be told apart from other non-string values.
type AnalysisPayload struct {
	Text json.RawMessage `json:"text"`
}

// Request converts the payload. Falsy text becomes an empty AnalysisRequest, which
// fails validation as missing text; any other non-string is ErrTextNotString.
func (p AnalysisPayload) Request() (AnalysisRequest, error) {
	if len(p.Text) == 0 {
		return AnalysisRequest{}, nil
	}

	var value any
	if err := json.Unmarshal(p.Text, &value); err != nil {
		return AnalysisRequest{}, ErrTextNotString
	}

	switch v := value.(type) {
	case nil:
		return AnalysisRequest{}, nil
	case string:
		return AnalysisRequest{Text: v}, nil
	case bool:
		if !v {
			return AnalysisRequest{}, nil
		}
	case float64:
		if v == 0 {
			return AnalysisRequest{}, nil
		}
	}
	return AnalysisRequest{}, ErrTextNotString
}

type AnalysisRequest struct {
	Text string `json:"text" validate:"required"`
}

// AnalysisResponse is the completion object with the classifier output under "local".
type AnalysisResponse map[string]json.RawMessage

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status     string `json:"status"`
	Classifier string `json:"classifier"`
}
